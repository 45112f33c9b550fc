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

// Command mdtoken prints the token events of a Markdown document.
package main

import (
	"errors"
	"os"

	"zombiezen.com/go/mdtoken/internal/cli"
	"zombiezen.com/go/mdtoken/internal/config"
	"zombiezen.com/go/mdtoken/internal/logging"
)

// Set via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	logging.SetLevel(os.Getenv(config.EnvLogLevel))
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
	})
	err := rootCmd.Execute()
	if err != nil {
		msg := "command failed"
		if errors.Is(err, cli.ErrCheckFailed) {
			msg = "check failed"
		}
		logging.Default().Error(msg, logging.FieldError, err)
	}
	return cli.ExitCode(err)
}
