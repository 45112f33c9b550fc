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

import "math"

// maxSize is an unlimited count for space_or_tab.
const maxSize = math.MaxInt

type spaceOrTabScratch struct {
	min  int
	max  int
	size int
	kind TokenKind
	// If contentType is not zero, the span is linked
	// and connect reports whether it continues an earlier run.
	contentType ContentType
	connect     bool
}

type eolScratch struct {
	contentType ContentType
	connect     bool
	ok          bool
}

// spaceOrTab prepares a required run of whitespace
// and returns the state to attempt.
func (t *tokenizer) spaceOrTab() stateName {
	return t.spaceOrTabMinMax(1, maxSize)
}

// spaceOrTabMinMax prepares a run of min to max whitespace bytes.
// If min is zero, the run is optional and no span is created
// when there is no whitespace.
func (t *tokenizer) spaceOrTabMinMax(min, max int) stateName {
	return t.spaceOrTabWithOptions(spaceOrTabScratch{
		kind: SpaceOrTab,
		min:  min,
		max:  max,
	})
}

func (t *tokenizer) spaceOrTabWithOptions(opts spaceOrTabScratch) stateName {
	opts.size = 0
	t.scratch.spaceOrTab = opts
	return stateSpaceOrTabStart
}

// spaceOrTabEol prepares optional whitespace,
// then an optional line ending followed by optional whitespace.
// Blank lines are not allowed after the line ending.
func (t *tokenizer) spaceOrTabEol() stateName {
	return t.spaceOrTabEolWithOptions(0, false)
}

// spaceOrTabEolWithOptions is like spaceOrTabEol,
// but links the whitespace and line ending as content of type ct
// (if ct is not zero).
// If connect is true, the first span is linked to the preceding one.
func (t *tokenizer) spaceOrTabEolWithOptions(ct ContentType, connect bool) stateName {
	t.scratch.eol = eolScratch{
		contentType: ct,
		connect:     connect,
	}
	return stateSpaceOrTabEolStart
}

//	> | a␠␠b
//	     ^
func spaceOrTabStart(t *tokenizer) state {
	sot := &t.scratch.spaceOrTab
	if sot.max > 0 && isSpaceOrTab(t.current) {
		if sot.contentType != 0 {
			t.EnterWithContent(sot.kind, sot.contentType)
			if sot.connect {
				link(t.events, len(t.events)-1)
			} else {
				sot.connect = true
			}
		} else {
			t.Enter(sot.kind)
		}
		return spaceOrTabInside(t)
	}
	return spaceOrTabAfter(t)
}

//	> | a␠␠b
//	      ^
func spaceOrTabInside(t *tokenizer) state {
	sot := &t.scratch.spaceOrTab
	if isSpaceOrTab(t.current) && sot.size < sot.max {
		t.Consume()
		sot.size++
		return nextState(stateSpaceOrTabInside)
	}
	t.Exit(sot.kind)
	return spaceOrTabAfter(t)
}

func spaceOrTabAfter(t *tokenizer) state {
	result := stateNok
	if t.scratch.spaceOrTab.size >= t.scratch.spaceOrTab.min {
		result = stateOk
	}
	t.scratch.spaceOrTab = spaceOrTabScratch{}
	return result
}

//	> | a␠␠
//	     ^
//	  | ␠␠b
func spaceOrTabEolStart(t *tokenizer) state {
	eol := t.scratch.eol
	name := t.spaceOrTabWithOptions(spaceOrTabScratch{
		kind:        SpaceOrTab,
		min:         1,
		max:         maxSize,
		contentType: eol.contentType,
		connect:     eol.connect,
	})
	return t.Attempt(name, nextState(stateSpaceOrTabEolAfterFirst), nextState(stateSpaceOrTabEolAtEol))
}

//	> | a␠␠
//	       ^
//	  | ␠␠b
func spaceOrTabEolAfterFirst(t *tokenizer) state {
	t.scratch.eol.ok = true
	if t.scratch.eol.contentType != 0 {
		t.scratch.eol.connect = true
	}
	return spaceOrTabEolAtEol(t)
}

//	> | a␠␠
//	       ^
//	  | ␠␠b
func spaceOrTabEolAtEol(t *tokenizer) state {
	eol := &t.scratch.eol
	if t.current != '\n' {
		ok := eol.ok
		*eol = eolScratch{}
		if ok {
			return stateOk
		}
		return stateNok
	}
	if eol.contentType != 0 {
		t.EnterWithContent(LineEnding, eol.contentType)
		if eol.connect {
			link(t.events, len(t.events)-1)
		} else {
			eol.connect = true
		}
	} else {
		t.Enter(LineEnding)
	}
	t.Consume()
	t.Exit(LineEnding)
	return nextState(stateSpaceOrTabEolAfterEol)
}

//	  | a␠␠
//	> | ␠␠b
//	    ^
func spaceOrTabEolAfterEol(t *tokenizer) state {
	eol := t.scratch.eol
	name := t.spaceOrTabWithOptions(spaceOrTabScratch{
		kind:        SpaceOrTab,
		min:         1,
		max:         maxSize,
		contentType: eol.contentType,
		connect:     eol.connect,
	})
	return t.Attempt(name, nextState(stateSpaceOrTabEolAfterMore), nextState(stateSpaceOrTabEolAfterMore))
}

//	  | a␠␠
//	> | ␠␠b
//	      ^
func spaceOrTabEolAfterMore(t *tokenizer) state {
	t.scratch.eol = eolScratch{}
	if t.current == eof || t.current == '\n' {
		// Blank line.
		return stateNok
	}
	return stateOk
}

func isSpaceOrTab(c int) bool {
	return c == ' ' || c == '\t'
}
