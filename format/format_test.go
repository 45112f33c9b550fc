// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/mdtoken"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "Empty",
			source: "",
			want:   "",
		},
		{
			name:   "ThematicBreak",
			source: "* * *",
			want: "ThematicBreak 1:1-1:6\n" +
				"  ThematicBreakSequence 1:1-1:2 \"*\"\n" +
				"  SpaceOrTab 1:2-1:3 \" \"\n" +
				"  ThematicBreakSequence 1:3-1:4 \"*\"\n" +
				"  SpaceOrTab 1:4-1:5 \" \"\n" +
				"  ThematicBreakSequence 1:5-1:6 \"*\"\n",
		},
		{
			name:   "IndentedCode",
			source: "    a",
			want: "CodeIndented 1:1-1:6\n" +
				"  SpaceOrTab 1:1-1:5 \"    \"\n" +
				"  CodeFlowChunk 1:5-1:6 \"a\"\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source := []byte(test.source)
			events := mdtoken.Tokenize(source, nil)
			got := new(strings.Builder)
			if err := Format(got, source, events); err != nil {
				t.Error("Format:", err)
			}
			if diff := cmp.Diff(test.want, got.String()); diff != "" {
				t.Errorf("Format(%q) (-want +got):\n%s", test.source, diff)
			}
		})
	}
}

func TestFormatWriteError(t *testing.T) {
	source := []byte("a\nb\n")
	events := mdtoken.Tokenize(source, nil)
	w := &failWriter{n: 1}
	err := Format(w, source, events)
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("Format(...) = %v; want %v", err, errWriteFailed)
	}
	if w.calls > w.n+1 {
		t.Errorf("Format wrote %d times after the first failure", w.calls-w.n-1)
	}
}

var errWriteFailed = errors.New("write failed")

// failWriter accepts n writes, then fails every write after.
type failWriter struct {
	n     int
	calls int
}

func (w *failWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls > w.n {
		return 0, errWriteFailed
	}
	return len(p), nil
}
