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

// destinationBalanceMax is the deepest nesting of unescaped parentheses
// allowed in a raw destination.
const destinationBalanceMax = 32

// destinationStart is at the start of a definition destination,
// either enclosed in angle brackets or raw.
//
//	> | <aa>
//	    ^
//	> | aa
//	    ^
func destinationStart(t *tokenizer) state {
	switch {
	case t.current == '<':
		t.Enter(DefinitionDestination)
		t.Enter(DefinitionDestinationLiteral)
		t.Enter(DefinitionDestinationLiteralMarker)
		t.Consume()
		t.Exit(DefinitionDestinationLiteralMarker)
		return nextState(stateDestinationEnclosedBefore)
	case t.current == eof || t.current == ' ' || t.current == ')' || isASCIIControl(t.current):
		return stateNok
	default:
		t.Enter(DefinitionDestination)
		t.Enter(DefinitionDestinationRaw)
		t.Enter(DefinitionDestinationString)
		t.EnterWithContent(Data, String)
		return destinationRaw(t)
	}
}

//	> | <aa>
//	     ^
func destinationEnclosedBefore(t *tokenizer) state {
	if t.current == '>' {
		t.Enter(DefinitionDestinationLiteralMarker)
		t.Consume()
		t.Exit(DefinitionDestinationLiteralMarker)
		t.Exit(DefinitionDestinationLiteral)
		t.Exit(DefinitionDestination)
		return stateOk
	}
	t.Enter(DefinitionDestinationString)
	t.EnterWithContent(Data, String)
	return destinationEnclosed(t)
}

//	> | <aa>
//	     ^
func destinationEnclosed(t *tokenizer) state {
	switch t.current {
	case eof, '\n', '<':
		return stateNok
	case '>':
		t.Exit(Data)
		t.Exit(DefinitionDestinationString)
		return destinationEnclosedBefore(t)
	case '\\':
		t.Consume()
		return nextState(stateDestinationEnclosedEscape)
	default:
		t.Consume()
		return nextState(stateDestinationEnclosed)
	}
}

//	> | <a\*a>
//	       ^
func destinationEnclosedEscape(t *tokenizer) state {
	switch t.current {
	case '<', '>', '\\':
		t.Consume()
		return nextState(stateDestinationEnclosed)
	default:
		return destinationEnclosed(t)
	}
}

//	> | aa
//	    ^
func destinationRaw(t *tokenizer) state {
	c := t.current
	switch {
	case t.scratch.size == 0 && (c == eof || c == '\t' || c == '\n' || c == ' ' || c == ')'):
		t.Exit(Data)
		t.Exit(DefinitionDestinationString)
		t.Exit(DefinitionDestinationRaw)
		t.Exit(DefinitionDestination)
		return stateOk
	case c == '(' && t.scratch.size < destinationBalanceMax:
		t.Consume()
		t.scratch.size++
		return nextState(stateDestinationRaw)
	case c == ')':
		t.Consume()
		t.scratch.size--
		return nextState(stateDestinationRaw)
	case c == eof || c == ' ' || c == '(' || isASCIIControl(c):
		// Unbalanced, too deep, or ended early.
		t.scratch.size = 0
		return stateNok
	case c == '\\':
		t.Consume()
		return nextState(stateDestinationRawEscape)
	default:
		t.Consume()
		return nextState(stateDestinationRaw)
	}
}

//	> | a\*a
//	      ^
func destinationRawEscape(t *tokenizer) state {
	switch t.current {
	case '(', ')', '\\':
		t.Consume()
		return nextState(stateDestinationRaw)
	default:
		return destinationRaw(t)
	}
}

// isASCIIControl reports whether c is an ASCII control character.
// Tab and line feed count as control characters.
func isASCIIControl(c int) bool {
	return (c >= 0 && c < 0x20) || c == 0x7f
}
