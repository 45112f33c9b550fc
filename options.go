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

package mdtoken

import "github.com/charmbracelet/log"

// headingAtxSequenceMax is the largest number of hashes
// that open a heading (atx) in CommonMark.
const headingAtxSequenceMax = 6

// Options is the set of parameters to [Tokenize].
type Options struct {
	// Constructs selects the optional constructs to recognize.
	// Blank lines and paragraphs are always recognized.
	Constructs Constructs

	// HeadingAtxSequenceMax is the largest number of hashes
	// allowed in the opening sequence of a heading (atx).
	// Zero or values larger than 6 mean 6.
	HeadingAtxSequenceMax int

	// If Logger is not nil, the tokenizer logs resolver activity to it
	// at debug level.
	Logger *log.Logger
}

// Constructs is a table of optional constructs.
// The zero value disables all of them.
type Constructs struct {
	CodeIndented  bool `yaml:"code_indented"`
	Definition    bool `yaml:"definition"`
	HeadingAtx    bool `yaml:"heading_atx"`
	ThematicBreak bool `yaml:"thematic_break"`
}

// DefaultConstructs returns a table with every construct enabled.
func DefaultConstructs() Constructs {
	return Constructs{
		CodeIndented:  true,
		Definition:    true,
		HeadingAtx:    true,
		ThematicBreak: true,
	}
}

// DefaultOptions returns the options that follow CommonMark.
func DefaultOptions() *Options {
	return &Options{
		Constructs:            DefaultConstructs(),
		HeadingAtxSequenceMax: headingAtxSequenceMax,
	}
}

func (opts *Options) headingAtxSequenceMax() int {
	if opts.HeadingAtxSequenceMax <= 0 || opts.HeadingAtxSequenceMax > headingAtxSequenceMax {
		return headingAtxSequenceMax
	}
	return opts.HeadingAtxSequenceMax
}

// maxIndent returns the largest indent that a construct
// can have without turning into indented code.
func (opts *Options) maxIndent() int {
	if opts.Constructs.CodeIndented {
		return tabSize - 1
	}
	return maxSize
}
