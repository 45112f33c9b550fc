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

// Package cli provides the Cobra command structure for mdtoken.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"zombiezen.com/go/mdtoken"
	"zombiezen.com/go/mdtoken/format"
	"zombiezen.com/go/mdtoken/internal/config"
	"zombiezen.com/go/mdtoken/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
}

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

type rootFlags struct {
	debug      bool
	configPath string
	disable    []string
	output     string
	check      bool

	// cfg is loaded once per invocation before any command runs.
	cfg *config.Config
}

// NewRootCommand creates the root mdtoken command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := new(rootFlags)
	rootCmd := &cobra.Command{
		Use:   "mdtoken [FILE]",
		Short: "Print the token events of a Markdown document",
		Long: `mdtoken splits the block structure of a CommonMark document
into a flat log of enter/exit events and prints it.

With no FILE, or when FILE is -, mdtoken reads standard input.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			flags.cfg = cfg
			logger := newLogger(cmd.ErrOrStderr(), flags, cfg)
			if flags.configPath != "" {
				logger.Debug("loaded config", logging.FieldConfig, flags.configPath)
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			return runTokenize(cmd, flags, path)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pflags.StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.Flags().StringSliceVar(&flags.disable, "disable", nil,
		"constructs to turn off: "+strings.Join(constructNames(), ", "))
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", OutputText, "output format: text or json")
	rootCmd.Flags().BoolVar(&flags.check, "check", false, "verify event log invariants instead of printing it")

	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))
	return rootCmd
}

func runTokenize(cmd *cobra.Command, flags *rootFlags, path string) error {
	if flags.output != OutputText && flags.output != OutputJSON {
		return &usageError{fmt.Errorf("unknown output format %q", flags.output)}
	}
	logger := logging.FromContext(cmd.Context())
	opts := flags.cfg.Options(logger)
	if err := disableConstructs(&opts.Constructs, flags.disable); err != nil {
		return err
	}

	source, err := readSource(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	source = mdtoken.NormalizeInput(source)
	logger.Debug("tokenizing", logging.FieldPath, path, logging.FieldBytes, len(source))

	if flags.check {
		events, err := checkedTokenize(source, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Info("ok", logging.FieldPath, path,
			logging.FieldEvents, len(events),
			logging.FieldChains, len(mdtoken.Chains(events)))
		return nil
	}

	events := mdtoken.Tokenize(source, opts)
	logger.Debug("tokenized", logging.FieldEvents, len(events), logging.FieldOutput, flags.output)
	out := cmd.OutOrStdout()
	switch flags.output {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(events); err != nil {
			return fmt.Errorf("write %s: %w", OutputJSON, err)
		}
	default:
		if err := format.Format(out, source, events); err != nil {
			return fmt.Errorf("write %s: %w", OutputText, err)
		}
	}
	return nil
}

// checkedTokenize tokenizes source and verifies the resulting log,
// turning a broken invariant into an error wrapping [ErrCheckFailed].
func checkedTokenize(source []byte, opts *mdtoken.Options) (events []mdtoken.Event, err error) {
	defer func() {
		if v := recover(); v != nil {
			events = nil
			err = fmt.Errorf("%w: %v", ErrCheckFailed, v)
		}
	}()
	events = mdtoken.Tokenize(source, opts)
	if err := mdtoken.CheckBalance(events); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}
	if err := mdtoken.CheckLinks(events); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}
	return events, nil
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath == "" {
		cfg := config.Default()
		if err := cfg.ApplyEnv(); err != nil {
			return nil, &configError{err}
		}
		return cfg, nil
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, &configError{err}
	}
	return cfg, nil
}

func newLogger(w io.Writer, flags *rootFlags, cfg *config.Config) *log.Logger {
	level := cfg.LogLevel
	if flags.debug {
		level = "debug"
	}
	return logging.New(w, level)
}

func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
		return source, nil
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return source, nil
}

var constructSwitches = map[string]func(*mdtoken.Constructs) *bool{
	"code_indented":  func(c *mdtoken.Constructs) *bool { return &c.CodeIndented },
	"definition":     func(c *mdtoken.Constructs) *bool { return &c.Definition },
	"heading_atx":    func(c *mdtoken.Constructs) *bool { return &c.HeadingAtx },
	"thematic_break": func(c *mdtoken.Constructs) *bool { return &c.ThematicBreak },
}

func constructNames() []string {
	return []string{"code_indented", "definition", "heading_atx", "thematic_break"}
}

func disableConstructs(c *mdtoken.Constructs, names []string) error {
	for _, name := range names {
		field := constructSwitches[strings.TrimSpace(name)]
		if field == nil {
			return &usageError{fmt.Errorf("--disable: unknown construct %q (want one of %s)",
				name, strings.Join(constructNames(), ", "))}
		}
		*field(c) = false
	}
	return nil
}

func newConfigCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := flags.cfg.ToYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
