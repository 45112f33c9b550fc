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

// thematicBreakMarkerCountMin is the number of markers
// a thematic break needs.
const thematicBreakMarkerCountMin = 3

// thematicBreakStart is at the start of a possible thematic break:
// three or more matching '*', '-', or '_' with optional whitespace between.
//
//	> | ***
//	    ^
func thematicBreakStart(t *tokenizer) state {
	if !t.opts.Constructs.ThematicBreak {
		return stateNok
	}
	t.Enter(ThematicBreak)
	return t.Attempt(t.spaceOrTabMinMax(0, t.opts.maxIndent()), nextState(stateThematicBreakBefore), stateNok)
}

//	> | ***
//	    ^
func thematicBreakBefore(t *tokenizer) state {
	switch t.current {
	case '*', '-', '_':
		t.scratch.marker = byte(t.current)
		return thematicBreakAtBreak(t)
	default:
		return stateNok
	}
}

//	> | * * *
//	      ^
func thematicBreakAtBreak(t *tokenizer) state {
	switch {
	case (t.current == eof || t.current == '\n') && t.scratch.size >= thematicBreakMarkerCountMin:
		t.scratch.marker = 0
		t.scratch.size = 0
		t.Exit(ThematicBreak)
		t.interrupt = false
		return stateOk
	case t.current == int(t.scratch.marker):
		t.Enter(ThematicBreakSequence)
		return thematicBreakSequence(t)
	default:
		t.scratch.marker = 0
		t.scratch.size = 0
		return stateNok
	}
}

//	> | ***
//	     ^
func thematicBreakSequence(t *tokenizer) state {
	if t.current == int(t.scratch.marker) {
		t.Consume()
		t.scratch.size++
		return nextState(stateThematicBreakSequence)
	}
	t.Exit(ThematicBreakSequence)
	return t.Attempt(t.spaceOrTab(), nextState(stateThematicBreakAtBreak), nextState(stateThematicBreakAtBreak))
}
