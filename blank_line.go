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

// blankLineStart is at the start of a line that might be blank.
// A blank line produces no events other than its whitespace;
// the line ending is left to the caller.
//
//	> | ␠␠
//	    ^
func blankLineStart(t *tokenizer) state {
	return t.Attempt(t.spaceOrTab(), nextState(stateBlankLineAfter), nextState(stateBlankLineAfter))
}

//	> | ␠␠
//	      ^
func blankLineAfter(t *tokenizer) state {
	if t.current == eof || t.current == '\n' {
		return stateOk
	}
	return stateNok
}
