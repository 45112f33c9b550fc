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

// flowConstructs lists the constructs tried at the start of each line
// that is not blank, in priority order.
// Paragraph comes last and accepts any remaining line.
var flowConstructs = []stateName{
	stateCodeIndentedStart,
	stateHeadingAtxStart,
	stateThematicBreakStart,
	stateDefinitionStart,
	stateParagraphStart,
}

// flowStart is at the start of a line.
// Blank lines are checked before anything else.
//
//	> | ## alpha
//	    ^
func flowStart(t *tokenizer) state {
	if t.current == eof {
		return stateOk
	}
	t.flowCandidate = 0
	return t.Attempt(stateBlankLineStart, nextState(stateFlowBlankLineAfter), nextState(stateFlowBefore))
}

// flowBefore tries the next candidate construct.
// A failed candidate lands back here with the following one selected.
func flowBefore(t *tokenizer) state {
	if t.flowCandidate >= len(flowConstructs) {
		t.flowCandidate = 0
		return stateNok
	}
	name := flowConstructs[t.flowCandidate]
	t.flowCandidate++
	return t.Attempt(name, nextState(stateFlowAfter), nextState(stateFlowBefore))
}

// flowBlankLineAfter is after a blank line.
//
//	> | ␠␠
//	      ^
func flowBlankLineAfter(t *tokenizer) state {
	switch t.current {
	case eof:
		return stateOk
	case '\n':
		t.Enter(BlankLineEnding)
		t.Consume()
		t.Exit(BlankLineEnding)
		t.interrupt = false
		return nextState(stateFlowStart)
	default:
		panic(fmt.Sprintf("flow: blank line ended at %v before end of line", t.point))
	}
}

// flowAfter is after a flow construct.
//
//	> | ## alpha
//	            ^
func flowAfter(t *tokenizer) state {
	t.flowCandidate = 0
	switch t.current {
	case eof:
		return stateOk
	case '\n':
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
		return nextState(stateFlowStart)
	default:
		panic(fmt.Sprintf("flow: construct ended at %v before end of line", t.point))
	}
}
