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

import "fmt"

// TokenKind identifies what a span in the event log represents.
// The tokenizer does not interpret kinds;
// each construct decides which kinds it produces.
type TokenKind uint16

const (
	// BlankLineEnding is the line ending of a blank line.
	BlankLineEnding TokenKind = 1 + iota
	// LineEnding is a line ending that follows content.
	LineEnding
	// SpaceOrTab is a run of spaces and tabs.
	SpaceOrTab
	// Data is literal content,
	// possibly linked to other data spans to form one run.
	Data

	HeadingAtx
	HeadingAtxSequence
	HeadingAtxText

	ThematicBreak
	ThematicBreakSequence

	CodeIndented
	CodeFlowChunk

	Paragraph

	Definition
	DefinitionMarker
	DefinitionLabel
	DefinitionLabelMarker
	DefinitionLabelString
	DefinitionDestination
	DefinitionDestinationLiteral
	DefinitionDestinationLiteralMarker
	DefinitionDestinationRaw
	DefinitionDestinationString
	DefinitionTitle
	DefinitionTitleMarker
	DefinitionTitleString

	maxTokenKind
)

var tokenKindNames = [...]string{
	BlankLineEnding:                    "BlankLineEnding",
	LineEnding:                         "LineEnding",
	SpaceOrTab:                         "SpaceOrTab",
	Data:                               "Data",
	HeadingAtx:                         "HeadingAtx",
	HeadingAtxSequence:                 "HeadingAtxSequence",
	HeadingAtxText:                     "HeadingAtxText",
	ThematicBreak:                      "ThematicBreak",
	ThematicBreakSequence:              "ThematicBreakSequence",
	CodeIndented:                       "CodeIndented",
	CodeFlowChunk:                      "CodeFlowChunk",
	Paragraph:                          "Paragraph",
	Definition:                         "Definition",
	DefinitionMarker:                   "DefinitionMarker",
	DefinitionLabel:                    "DefinitionLabel",
	DefinitionLabelMarker:              "DefinitionLabelMarker",
	DefinitionLabelString:              "DefinitionLabelString",
	DefinitionDestination:              "DefinitionDestination",
	DefinitionDestinationLiteral:       "DefinitionDestinationLiteral",
	DefinitionDestinationLiteralMarker: "DefinitionDestinationLiteralMarker",
	DefinitionDestinationRaw:           "DefinitionDestinationRaw",
	DefinitionDestinationString:        "DefinitionDestinationString",
	DefinitionTitle:                    "DefinitionTitle",
	DefinitionTitleMarker:              "DefinitionTitleMarker",
	DefinitionTitleString:              "DefinitionTitleString",
}

func (kind TokenKind) String() string {
	if kind == 0 || kind >= maxTokenKind {
		return fmt.Sprintf("TokenKind(%d)", uint16(kind))
	}
	return tokenKindNames[kind]
}

// MarshalText implements [encoding.TextMarshaler].
func (kind TokenKind) MarshalText() ([]byte, error) {
	if kind == 0 || kind >= maxTokenKind {
		return nil, fmt.Errorf("marshal token kind: unknown kind %d", uint16(kind))
	}
	return []byte(tokenKindNames[kind]), nil
}
