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

// paragraphStart is at the start of a line that no other construct took.
// Each line is tokenized as its own paragraph;
// the paragraph resolver joins consecutive ones.
//
//	> | aaa
//	    ^
func paragraphStart(t *tokenizer) state {
	return t.Attempt(t.spaceOrTab(), nextState(stateParagraphBefore), nextState(stateParagraphBefore))
}

//	> | ␠aaa
//	     ^
func paragraphBefore(t *tokenizer) state {
	if t.current == eof || t.current == '\n' {
		return stateNok
	}
	t.Enter(Paragraph)
	t.EnterWithContent(Data, Text)
	return paragraphInside(t)
}

//	> | aaa
//	     ^
func paragraphInside(t *tokenizer) state {
	if t.current == eof || t.current == '\n' {
		t.Exit(Data)
		t.Exit(Paragraph)
		t.RegisterResolver("paragraph", resolveParagraph)
		// The next line may continue this paragraph.
		t.interrupt = true
		return stateOk
	}
	t.Consume()
	return nextState(stateParagraphInside)
}

// resolveParagraph merges paragraphs on consecutive lines.
// The line ending between two lines becomes the end of the first line's data
// and the data spans are linked into one text run.
// Whitespace at the start of a continuation line is dropped.
func resolveParagraph(events []Event, edits *EditMap) {
	for i := 0; i < len(events); i++ {
		if events[i].Kind != Enter || events[i].Token != Paragraph {
			continue
		}
		// A paragraph line is Enter:Paragraph, Enter:Data, Exit:Data, Exit:Paragraph.
		dataEnter := i + 1
		exitIndex := i + 3
		for {
			j := exitIndex + 1
			if j+1 >= len(events) || events[j].Kind != Enter || events[j].Token != LineEnding {
				break
			}
			lineEndingExit := j + 1
			j += 2
			if j < len(events) && events[j].Kind == Enter && events[j].Token == SpaceOrTab {
				j += 2
			}
			if j >= len(events) || events[j].Kind != Enter || events[j].Token != Paragraph {
				break
			}

			// Remove Exit:Paragraph, the line ending, any whitespace,
			// and Enter:Paragraph.
			edits.Add(exitIndex, j+1-exitIndex, nil)
			events[dataEnter+1].Point = events[lineEndingExit].Point
			linkTo(events, dataEnter, j+1)

			dataEnter = j + 1
			exitIndex = j + 3
		}
		i = exitIndex
	}
}
