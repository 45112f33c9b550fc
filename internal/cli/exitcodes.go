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

package cli

import (
	"errors"
	"io/fs"
)

// Exit codes for mdtoken.
const (
	ExitSuccess       = 0
	ExitCheckFailed   = 1
	ExitInvalidUsage  = 64
	ExitConfigError   = 65
	ExitInternalError = 70
	ExitIOError       = 74
)

// ErrCheckFailed is wrapped by the error that --check returns
// when the event log does not hold its invariants.
var ErrCheckFailed = errors.New("event log check failed")

// usageError marks errors caused by bad flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// configError marks errors from loading the configuration file.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// ExitCode returns the process exit code for an error
// returned from executing the root command.
func ExitCode(err error) int {
	var uerr *usageError
	var cerr *configError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrCheckFailed):
		return ExitCheckFailed
	case errors.As(err, &uerr):
		return ExitInvalidUsage
	case errors.As(err, &cerr):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
