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

// Heading (atx) is a line that starts with one to six hashes:
//
//	heading_atx ::= 1*6'#' [ 1*space_or_tab text [ 1*space_or_tab 1*'#' ] ] *space_or_tab
//
// The hashes form a [HeadingAtxSequence].
// The text is tokenized as [Data] runs separated by whitespace;
// the heading_atx resolver later collapses them into one
// [HeadingAtxText] span.

// headingAtxStart is at the start of a possible heading.
//
//	> | ## aa
//	    ^
func headingAtxStart(t *tokenizer) state {
	if !t.opts.Constructs.HeadingAtx {
		return stateNok
	}
	t.Enter(HeadingAtx)
	return t.Attempt(t.spaceOrTabMinMax(0, t.opts.maxIndent()), nextState(stateHeadingAtxBefore), stateNok)
}

//	> | ## aa
//	    ^
func headingAtxBefore(t *tokenizer) state {
	if t.current != '#' {
		return stateNok
	}
	t.Enter(HeadingAtxSequence)
	return headingAtxSequenceOpen(t)
}

//	> | ## aa
//	     ^
func headingAtxSequenceOpen(t *tokenizer) state {
	switch {
	case (t.current == eof || t.current == '\n') && t.scratch.size > 0:
		t.scratch.size = 0
		t.Exit(HeadingAtxSequence)
		return headingAtxAtBreak(t)
	case t.current == '#' && t.scratch.size < t.opts.headingAtxSequenceMax():
		t.scratch.size++
		t.Consume()
		return nextState(stateHeadingAtxSequenceOpen)
	case t.scratch.size > 0:
		t.scratch.size = 0
		t.Exit(HeadingAtxSequence)
		return t.Attempt(t.spaceOrTab(), nextState(stateHeadingAtxAtBreak), stateNok)
	default:
		t.scratch.size = 0
		return stateNok
	}
}

//	> | ## aa
//	      ^
func headingAtxAtBreak(t *tokenizer) state {
	switch t.current {
	case eof, '\n':
		t.Exit(HeadingAtx)
		t.RegisterResolver("heading_atx", resolveHeadingAtx)
		t.interrupt = false
		return stateOk
	case ' ', '\t':
		return t.Attempt(t.spaceOrTab(), nextState(stateHeadingAtxAtBreak), stateNok)
	case '#':
		if t.closingSequenceAhead() {
			t.Enter(HeadingAtxSequence)
			return headingAtxSequenceFurther(t)
		}
		t.EnterWithContent(Data, Text)
		return headingAtxData(t)
	default:
		t.EnterWithContent(Data, Text)
		return headingAtxData(t)
	}
}

// headingAtxSequenceFurther is in a sequence after the text.
// It is either a closing sequence or hashes that are part of the text.
//
//	> | ## aa ##
//	          ^
func headingAtxSequenceFurther(t *tokenizer) state {
	if t.current == '#' {
		t.Consume()
		return nextState(stateHeadingAtxSequenceFurther)
	}
	t.Exit(HeadingAtxSequence)
	return headingAtxAtBreak(t)
}

// closingSequenceAhead reports whether the hashes at the current position
// are followed by whitespace or the end of the line.
// Hashes followed by anything else are text.
func (t *tokenizer) closingSequenceAhead() bool {
	i := t.point.Offset
	for i < len(t.source) && t.source[i] == '#' {
		i++
	}
	c := t.byteAt(i)
	return c == eof || c == '\n' || isSpaceOrTab(c)
}

//	> | ## aa
//	       ^
func headingAtxData(t *tokenizer) state {
	switch t.current {
	case eof, '\t', '\n', ' ':
		// A closing sequence must be preceded by whitespace,
		// so "#" in here is text.
		t.Exit(Data)
		return headingAtxAtBreak(t)
	default:
		t.Consume()
		return nextState(stateHeadingAtxData)
	}
}

// resolveHeadingAtx wraps the text of every heading in a [HeadingAtxText] span.
// Everything from the first data span to the last one
// becomes a single data span.
func resolveHeadingAtx(events []Event, edits *EditMap) {
	inside := false
	dataStart, dataEnd := -1, -1
	for i, ev := range events {
		switch {
		case ev.Token == HeadingAtx && ev.Kind == Enter:
			inside = true
		case ev.Token == HeadingAtx:
			if dataStart >= 0 {
				edits.Add(dataStart, 0, []Event{{
					Kind:  Enter,
					Token: HeadingAtxText,
					Point: events[dataStart].Point,
				}})
				// Remove everything between the first Enter:Data
				// and the last Exit:Data.
				edits.Add(dataStart+1, dataEnd-dataStart-1, nil)
				edits.Add(dataEnd+1, 0, []Event{{
					Kind:  Exit,
					Token: HeadingAtxText,
					Point: events[dataEnd].Point,
				}})
			}
			inside = false
			dataStart, dataEnd = -1, -1
		case inside && ev.Token == Data && ev.Kind == Enter:
			if dataStart < 0 {
				dataStart = i
			}
		case inside && ev.Token == Data:
			dataEnd = i
		}
	}
}
