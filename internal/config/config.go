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

// Package config loads tokenizer settings from YAML files.
//
// A file looks like:
//
//	constructs:
//	  heading_atx: false
//	limits:
//	  heading_atx_sequence_max: 3
//	log_level: debug
//
// Constructs that are not mentioned stay enabled.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"zombiezen.com/go/mdtoken"
	"zombiezen.com/go/mdtoken/internal/logging"
)

// EnvLogLevel is the environment variable that overrides log_level.
const EnvLogLevel = "MDTOKEN_LOG_LEVEL"

// Config is the result of loading a configuration file.
type Config struct {
	Constructs mdtoken.Constructs
	Limits     Limits
	LogLevel   string
}

// Limits holds the numeric knobs of the tokenizer.
type Limits struct {
	HeadingAtxSequenceMax int `yaml:"heading_atx_sequence_max"`
}

// file is the on-disk form of [Config].
// Construct switches are pointers so that omitted ones keep their default.
type file struct {
	Constructs struct {
		CodeIndented  *bool `yaml:"code_indented"`
		Definition    *bool `yaml:"definition"`
		HeadingAtx    *bool `yaml:"heading_atx"`
		ThematicBreak *bool `yaml:"thematic_break"`
	} `yaml:"constructs"`
	Limits   Limits `yaml:"limits"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Constructs: mdtoken.DefaultConstructs(),
		Limits: Limits{
			HeadingAtxSequenceMax: mdtoken.DefaultOptions().HeadingAtxSequenceMax,
		},
		LogLevel: "info",
	}
}

// ValidationError describes a setting that was well-formed YAML
// but is not acceptable.
type ValidationError struct {
	Path    string
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	return msg
}

// Load reads the configuration file at path
// and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Parse decodes a configuration file.
// name is used in error messages.
// Unknown keys are an error.
func Parse(data []byte, name string) (*Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	cfg := Default()
	setBool(&cfg.Constructs.CodeIndented, f.Constructs.CodeIndented)
	setBool(&cfg.Constructs.Definition, f.Constructs.Definition)
	setBool(&cfg.Constructs.HeadingAtx, f.Constructs.HeadingAtx)
	setBool(&cfg.Constructs.ThematicBreak, f.Constructs.ThematicBreak)
	if f.Limits.HeadingAtxSequenceMax != 0 {
		cfg.Limits.HeadingAtxSequenceMax = f.Limits.HeadingAtxSequenceMax
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if err := cfg.validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = name
		}
		return nil, err
	}
	return cfg, nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func (cfg *Config) validate() error {
	if n := cfg.Limits.HeadingAtxSequenceMax; n < 1 || n > 6 {
		return &ValidationError{
			Field:   "limits.heading_atx_sequence_max",
			Value:   n,
			Message: "must be between 1 and 6",
		}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of debug, info, warn, error",
		}
	}
	return nil
}

// ApplyEnv overrides settings from the environment.
// [Load] calls it for file-based configurations.
// A log level in [EnvLogLevel] replaces the configured one.
func (cfg *Config) ApplyEnv() error {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		return nil
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	cfg.LogLevel = level
	return nil
}

// Options returns tokenizer options for the configuration.
// The logger may be nil.
func (cfg *Config) Options(logger *log.Logger) *mdtoken.Options {
	return &mdtoken.Options{
		Constructs:            cfg.Constructs,
		HeadingAtxSequenceMax: cfg.Limits.HeadingAtxSequenceMax,
		Logger:                logger,
	}
}

// ToYAML returns the configuration in the form that [Parse] accepts.
func (cfg *Config) ToYAML() ([]byte, error) {
	var f struct {
		Constructs mdtoken.Constructs `yaml:"constructs"`
		Limits     Limits             `yaml:"limits"`
		LogLevel   string             `yaml:"log_level"`
	}
	f.Constructs = cfg.Constructs
	f.Limits = cfg.Limits
	f.LogLevel = cfg.LogLevel

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
