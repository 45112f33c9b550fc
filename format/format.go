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

// Package format provides a function to write an event log
// as indented, human-readable text.
package format

import (
	"io"
	"strconv"
	"strings"

	"zombiezen.com/go/mdtoken"
)

// Format writes the spans in events as an indented outline to w,
// one span per line.
// Each line names the token kind and the span's start and end points.
// Linked spans also show their content type and neighbors,
// and spans without children show the source text they cover.
// source must be the input that events was produced from.
func Format(w io.Writer, source []byte, events []mdtoken.Event) error {
	ww := &errWriter{w: w}
	mdtoken.Walk(events, &mdtoken.WalkOptions{
		Pre: func(c *mdtoken.Cursor) bool {
			writeSpan(ww, source, c)
			return ww.err == nil
		},
		Post: func(c *mdtoken.Cursor) bool {
			return ww.err == nil
		},
	})
	return ww.err
}

func writeSpan(w *errWriter, source []byte, c *mdtoken.Cursor) {
	enter := c.Enter()
	exit := c.Exit()
	w.WriteString(strings.Repeat("  ", c.Depth()))
	w.WriteString(enter.Token.String())
	w.WriteString(" ")
	w.WriteString(enter.Point.String())
	w.WriteString("-")
	w.WriteString(exit.Point.String())
	if l := enter.Link; l != nil {
		w.WriteString(" ")
		w.WriteString(l.ContentType.String())
		if l.Previous != mdtoken.NoIndex {
			w.WriteString(" prev=")
			w.WriteString(strconv.Itoa(l.Previous))
		}
		if l.Next != mdtoken.NoIndex {
			w.WriteString(" next=")
			w.WriteString(strconv.Itoa(l.Next))
		}
	}
	if c.IsLeaf() {
		w.WriteString(" ")
		w.WriteString(strconv.Quote(string(source[enter.Point.Offset:exit.Point.Offset])))
	}
	w.WriteString("\n")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
