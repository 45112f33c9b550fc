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

// codeIndentedStart is at the start of possible indented code:
// lines prefixed by four bytes of whitespace.
// Indented code cannot interrupt a paragraph.
//
//	> | ␠␠␠␠aaa
//	    ^
func codeIndentedStart(t *tokenizer) state {
	if t.interrupt || !t.opts.Constructs.CodeIndented {
		return stateNok
	}
	t.Enter(CodeIndented)
	return t.Attempt(t.spaceOrTabMinMax(tabSize, tabSize), nextState(stateCodeIndentedAtBreak), stateNok)
}

//	> | ␠␠␠␠aaa
//	        ^  ^
func codeIndentedAtBreak(t *tokenizer) state {
	switch t.current {
	case eof:
		return codeIndentedAfter(t)
	case '\n':
		return t.Attempt(stateCodeIndentedFurtherStart, nextState(stateCodeIndentedAtBreak), nextState(stateCodeIndentedAfter))
	default:
		t.Enter(CodeFlowChunk)
		return codeIndentedInside(t)
	}
}

//	> | ␠␠␠␠aaa
//	         ^
func codeIndentedInside(t *tokenizer) state {
	if t.current == eof || t.current == '\n' {
		t.Exit(CodeFlowChunk)
		return codeIndentedAtBreak(t)
	}
	t.Consume()
	return nextState(stateCodeIndentedInside)
}

func codeIndentedAfter(t *tokenizer) state {
	t.Exit(CodeIndented)
	t.interrupt = false
	return stateOk
}

// codeIndentedFurtherStart is at a line ending inside indented code.
// It succeeds if the code continues on a later line,
// skipping any blank lines in between.
//
//	> | ␠␠␠␠aaa
//	           ^
//	  | ␠␠␠␠bbb
func codeIndentedFurtherStart(t *tokenizer) state {
	if t.current == '\n' {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
		return nextState(stateCodeIndentedFurtherStart)
	}
	return t.Attempt(t.spaceOrTabMinMax(tabSize, tabSize), stateOk, nextState(stateCodeIndentedFurtherBegin))
}

//	  | ␠␠␠␠aaa
//	> | ␠␠
//	    ^
func codeIndentedFurtherBegin(t *tokenizer) state {
	return t.Attempt(t.spaceOrTab(), nextState(stateCodeIndentedFurtherAfter), nextState(stateCodeIndentedFurtherAfter))
}

//	  | ␠␠␠␠aaa
//	> | ␠␠
//	      ^
func codeIndentedFurtherAfter(t *tokenizer) state {
	if t.current == '\n' {
		return codeIndentedFurtherStart(t)
	}
	return stateNok
}
