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

// linkReferenceSizeMax is the largest number of bytes
// allowed inside a label.
const linkReferenceSizeMax = 999

// labelStart is at the opening bracket of a label,
// such as the one in a definition.
// The enclosing span, the bracket markers, and the string inside
// use the kinds in token1, token2, and token3.
// The string is a linked run of [String] content
// and can span lines, but not blank lines.
//
//	> | [a]
//	    ^
func labelStart(t *tokenizer) state {
	if t.current != '[' {
		return stateNok
	}
	t.Enter(t.scratch.token1)
	t.Enter(t.scratch.token2)
	t.Consume()
	t.Exit(t.scratch.token2)
	t.Enter(t.scratch.token3)
	return nextState(stateLabelAtBreak)
}

//	> | [a]
//	     ^
func labelAtBreak(t *tokenizer) state {
	if t.scratch.size > linkReferenceSizeMax ||
		t.current == eof ||
		t.current == '[' ||
		(t.current == ']' && !t.scratch.seen) {
		return labelReset(t, stateNok)
	}
	switch t.current {
	case '\n':
		name := t.spaceOrTabEolWithOptions(String, t.scratch.connect)
		return t.Attempt(name, nextState(stateLabelEolAfter), nextState(stateLabelAtBlankLine))
	case ']':
		t.Exit(t.scratch.token3)
		t.Enter(t.scratch.token2)
		t.Consume()
		t.Exit(t.scratch.token2)
		t.Exit(t.scratch.token1)
		return labelReset(t, stateOk)
	default:
		t.EnterWithContent(Data, String)
		if t.scratch.connect {
			link(t.events, len(t.events)-1)
		} else {
			t.scratch.connect = true
		}
		return labelInside(t)
	}
}

func labelEolAfter(t *tokenizer) state {
	t.scratch.connect = true
	return labelAtBreak(t)
}

func labelAtBlankLine(t *tokenizer) state {
	return labelReset(t, stateNok)
}

func labelReset(t *tokenizer, s state) state {
	t.scratch.connect = false
	t.scratch.seen = false
	t.scratch.size = 0
	return s
}

//	> | [a]
//	     ^
func labelInside(t *tokenizer) state {
	switch t.current {
	case eof, '\n', '[', ']':
		t.Exit(Data)
		return labelAtBreak(t)
	}
	if t.scratch.size > linkReferenceSizeMax {
		t.Exit(Data)
		return labelAtBreak(t)
	}
	c := t.current
	t.Consume()
	t.scratch.size++
	if !t.scratch.seen && !isSpaceOrTab(c) {
		t.scratch.seen = true
	}
	if c == '\\' {
		return nextState(stateLabelEscape)
	}
	return nextState(stateLabelInside)
}

//	> | [a\*a]
//	       ^
func labelEscape(t *tokenizer) state {
	switch t.current {
	case '[', '\\', ']':
		t.Consume()
		t.scratch.size++
		return nextState(stateLabelInside)
	default:
		return labelInside(t)
	}
}
