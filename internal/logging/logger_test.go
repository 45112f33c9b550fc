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

package logging_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"zombiezen.com/go/mdtoken/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"invalid defaults to info", "loud", log.InfoLevel},
		{"case insensitive", "DEBUG", log.DebugLevel},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(new(bytes.Buffer), testCase.level)
			if got := logger.GetLevel(); got != testCase.expected {
				t.Errorf("New(w, %q).GetLevel() = %v; want %v", testCase.level, got, testCase.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if _, err := logging.ParseLevel("warn"); err != nil {
		t.Errorf("ParseLevel(\"warn\") = _, %v; want <nil>", err)
	}
	if _, err := logging.ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(\"verbose\") did not return an error")
	}
}

func TestNewWritesToWriter(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	logger := logging.New(buf, "debug")
	logger.Debug("resolver ran", logging.FieldEvents, 12)
	if got := buf.String(); !strings.Contains(got, "resolver ran") || !strings.Contains(got, "events=12") {
		t.Errorf("log output = %q; want message and field", got)
	}
}

func TestSetLevel(t *testing.T) {
	// Modifies the default logger.
	original := logging.Default()
	defer logging.SetDefault(original)

	logging.SetDefault(logging.New(new(bytes.Buffer), "info"))
	logging.SetLevel("debug")
	if got := logging.Default().GetLevel(); got != log.DebugLevel {
		t.Errorf("after SetLevel(\"debug\"), level = %v", got)
	}
	logging.SetLevel("nonsense")
	if got := logging.Default().GetLevel(); got != log.DebugLevel {
		t.Errorf("after SetLevel(\"nonsense\"), level = %v; want unchanged", got)
	}
}

func TestSetDefaultConcurrent(t *testing.T) {
	// Modifies the default logger.
	original := logging.Default()
	defer logging.SetDefault(original)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			logging.SetDefault(logging.New(new(bytes.Buffer), "warn"))
		}()
		go func() {
			defer wg.Done()
			if logging.Default() == nil {
				t.Error("Default() = nil")
			}
		}()
	}
	wg.Wait()

	logging.SetDefault(nil)
	if logging.Default() == nil {
		t.Error("Default() after SetDefault(nil) = nil")
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := logging.New(new(bytes.Buffer), "error")
	ctx := logging.WithLogger(context.Background(), logger)
	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
	if got := logging.FromContext(context.Background()); got == nil {
		t.Error("FromContext(context.Background()) = nil")
	}
}
