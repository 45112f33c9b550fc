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

// Package logging configures the structured loggers used by mdtoken's commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var defaultLogger atomic.Pointer[log.Logger]

func getDefaultLogger() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New(os.Stderr, "info"))
	return defaultLogger.Load()
}

// New returns a logger that writes to w at the given level.
// Unknown levels mean "info".
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "mdtoken",
	})
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// ParseLevel converts a level name to a [log.Level].
// The empty string is "info".
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Default returns the package-level logger.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault replaces the package-level logger.
// A nil logger restores a fresh default on next use.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the package-level logger.
// Unknown levels are ignored.
func SetLevel(level string) {
	if lvl, err := ParseLevel(level); err == nil {
		getDefaultLogger().SetLevel(lvl)
	}
}
