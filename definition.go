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

// A definition associates a label with a destination and an optional title:
//
//	definition ::= label ':' [ space_or_tab_eol ] destination [ space_or_tab_eol title ] [ space_or_tab ]
//
// Definitions cannot interrupt a paragraph,
// but they can follow each other.

// definitionStart is at the start of a possible definition.
//
//	> | [a]: b "c"
//	    ^
func definitionStart(t *tokenizer) state {
	if !t.opts.Constructs.Definition || (t.interrupt && !t.followsDefinition()) {
		return stateNok
	}
	t.Enter(Definition)
	// Any amount of indentation is fine,
	// since indented code was tried first.
	return t.Attempt(t.spaceOrTab(), nextState(stateDefinitionBefore), nextState(stateDefinitionBefore))
}

// followsDefinition reports whether the last flow construct
// was a definition.
func (t *tokenizer) followsDefinition() bool {
	i := len(t.events) - 1
	for i >= 0 && t.events[i].Token == LineEnding {
		i--
	}
	return i >= 0 && t.events[i].Kind == Exit && t.events[i].Token == Definition
}

//	> | [a]: b "c"
//	    ^
func definitionBefore(t *tokenizer) state {
	if t.current != '[' {
		return stateNok
	}
	t.scratch.token1 = DefinitionLabel
	t.scratch.token2 = DefinitionLabelMarker
	t.scratch.token3 = DefinitionLabelString
	return t.Attempt(stateLabelStart, nextState(stateDefinitionLabelAfter), nextState(stateDefinitionLabelNok))
}

//	> | [a]: b "c"
//	       ^
func definitionLabelAfter(t *tokenizer) state {
	t.scratch.token1 = 0
	t.scratch.token2 = 0
	t.scratch.token3 = 0
	if t.current != ':' {
		return stateNok
	}
	t.Enter(DefinitionMarker)
	t.Consume()
	t.Exit(DefinitionMarker)
	return nextState(stateDefinitionMarkerAfter)
}

func definitionLabelNok(t *tokenizer) state {
	t.scratch.token1 = 0
	t.scratch.token2 = 0
	t.scratch.token3 = 0
	return stateNok
}

//	> | [a]: b "c"
//	        ^
func definitionMarkerAfter(t *tokenizer) state {
	return t.Attempt(t.spaceOrTabEol(), nextState(stateDefinitionDestinationBefore), nextState(stateDefinitionDestinationBefore))
}

//	> | [a]: b "c"
//	         ^
func definitionDestinationBefore(t *tokenizer) state {
	return t.Attempt(stateDestinationStart, nextState(stateDefinitionDestinationAfter), nextState(stateDefinitionDestinationMissing))
}

//	> | [a]: b "c"
//	          ^
func definitionDestinationAfter(t *tokenizer) state {
	return t.Attempt(stateDefinitionTitleBefore, nextState(stateDefinitionAfter), nextState(stateDefinitionAfter))
}

func definitionDestinationMissing(t *tokenizer) state {
	return stateNok
}

//	> | [a]: b
//	          ^
//	> | [a]: b "c"
//	              ^
func definitionAfter(t *tokenizer) state {
	return t.Attempt(t.spaceOrTab(), nextState(stateDefinitionAfterWhitespace), nextState(stateDefinitionAfterWhitespace))
}

//	> | [a]: b "c"
//	              ^
func definitionAfterWhitespace(t *tokenizer) state {
	if t.current != eof && t.current != '\n' {
		return stateNok
	}
	t.Exit(Definition)
	// Only another definition may follow without a blank line.
	t.interrupt = true
	return stateOk
}

// definitionTitleBefore is after the destination,
// where a title may follow after whitespace or a line ending.
//
//	> | [a]: b "c"
//	          ^
func definitionTitleBefore(t *tokenizer) state {
	return t.Attempt(t.spaceOrTabEol(), nextState(stateDefinitionTitleBeforeMarker), stateNok)
}

//	> | [a]: b "c"
//	           ^
func definitionTitleBeforeMarker(t *tokenizer) state {
	t.scratch.token1 = DefinitionTitle
	t.scratch.token2 = DefinitionTitleMarker
	t.scratch.token3 = DefinitionTitleString
	return t.Attempt(stateTitleStart, nextState(stateDefinitionTitleAfter), nextState(stateDefinitionTitleNok))
}

//	> | [a]: b "c"
//	              ^
func definitionTitleAfter(t *tokenizer) state {
	t.scratch.token1 = 0
	t.scratch.token2 = 0
	t.scratch.token3 = 0
	return t.Attempt(t.spaceOrTab(), nextState(stateDefinitionTitleAfterOptionalWhitespace), nextState(stateDefinitionTitleAfterOptionalWhitespace))
}

//	> | [a]: b "c"
//	              ^
func definitionTitleAfterOptionalWhitespace(t *tokenizer) state {
	if t.current == eof || t.current == '\n' {
		return stateOk
	}
	return stateNok
}

func definitionTitleNok(t *tokenizer) state {
	t.scratch.token1 = 0
	t.scratch.token2 = 0
	t.scratch.token3 = 0
	return stateNok
}
