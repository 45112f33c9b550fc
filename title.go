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

// titleStart is at the opening marker of a title:
// '"', '\'', or '('.
// The enclosing span, the markers, and the string inside
// use the kinds in token1, token2, and token3.
// The text inside is a linked run of [String] content.
// Titles can span lines, but not blank lines.
//
//	> | "a"
//	    ^
func titleStart(t *tokenizer) state {
	switch t.current {
	case '"', '\'', '(':
		marker := byte(t.current)
		if marker == '(' {
			marker = ')'
		}
		t.scratch.marker = marker
		t.Enter(t.scratch.token1)
		t.Enter(t.scratch.token2)
		t.Consume()
		t.Exit(t.scratch.token2)
		return nextState(stateTitleBegin)
	default:
		return stateNok
	}
}

// titleBegin is after the opening marker
// or at the closing marker.
//
//	> | "a"
//	     ^ ^
func titleBegin(t *tokenizer) state {
	if t.current == int(t.scratch.marker) {
		t.Enter(t.scratch.token2)
		t.Consume()
		t.Exit(t.scratch.token2)
		t.Exit(t.scratch.token1)
		return titleReset(t, stateOk)
	}
	t.Enter(t.scratch.token3)
	return titleAtBreak(t)
}

//	> | "a"
//	     ^
func titleAtBreak(t *tokenizer) state {
	switch {
	case t.current == eof:
		return titleReset(t, stateNok)
	case t.current == '\n':
		name := t.spaceOrTabEolWithOptions(String, t.scratch.connect)
		return t.Attempt(name, nextState(stateTitleAfterEol), nextState(stateTitleAtBlankLine))
	case t.current == int(t.scratch.marker):
		t.Exit(t.scratch.token3)
		return titleBegin(t)
	default:
		t.EnterWithContent(Data, String)
		if t.scratch.connect {
			link(t.events, len(t.events)-1)
		} else {
			t.scratch.connect = true
		}
		return titleInside(t)
	}
}

func titleAfterEol(t *tokenizer) state {
	t.scratch.connect = true
	return titleAtBreak(t)
}

func titleAtBlankLine(t *tokenizer) state {
	return titleReset(t, stateNok)
}

func titleReset(t *tokenizer, s state) state {
	t.scratch.marker = 0
	t.scratch.connect = false
	return s
}

//	> | "a"
//	     ^
func titleInside(t *tokenizer) state {
	if t.current == eof || t.current == '\n' || t.current == int(t.scratch.marker) {
		t.Exit(Data)
		return titleAtBreak(t)
	}
	c := t.current
	t.Consume()
	if c == '\\' {
		return nextState(stateTitleEscape)
	}
	return nextState(stateTitleInside)
}

//	> | "a\*b"
//	      ^
func titleEscape(t *tokenizer) state {
	switch t.current {
	case '"', '\'', ')':
		t.Consume()
		return nextState(stateTitleInside)
	default:
		return titleInside(t)
	}
}
