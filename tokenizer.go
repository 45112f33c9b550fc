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

// Package mdtoken turns [CommonMark] flow content into a flat log of
// enter/exit span events.
//
// The tokenizer runs constructs as state machines with full backtracking.
// Once the whole input is consumed,
// constructs that asked for it get one chance to restructure the log
// through an [EditMap].
// The resulting log is balanced:
// spans nest and every [Enter] has a matching [Exit].
//
// [CommonMark]: https://commonmark.org/
package mdtoken

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
)

// eof is the value of tokenizer.current at the end of input.
const eof = -1

// tabSize is the number of columns that indented code requires.
const tabSize = 4

// tokenizer is a cursor over the input
// that constructs drive to append events to the log.
type tokenizer struct {
	source  []byte
	opts    *Options
	current int // byte at point or eof
	point   Point
	events  []Event

	// open holds the indices of Enter events whose span is still open.
	open []int

	// interrupt is true when the previous flow construct
	// may be continued by the next line,
	// so constructs that cannot interrupt it should not start.
	interrupt bool
	scratch   scratch

	attempts  []attemptFrame
	resolvers []namedResolver
	// flowCandidate is the next entry of flowConstructs to try.
	flowCandidate int

	logger *log.Logger
}

// scratch is per-parse state that constructs borrow while they run.
// A construct must zero whatever it used before returning Ok or Nok.
type scratch struct {
	size    int
	marker  byte
	seen    bool
	connect bool

	// token1, token2, and token3 let one construct
	// produce different token kinds depending on its caller.
	token1 TokenKind
	token2 TokenKind
	token3 TokenKind

	spaceOrTab spaceOrTabScratch
	eol        eolScratch
}

// attemptFrame is pushed by [*tokenizer.Attempt]
// and popped when the attempted construct reaches Ok or Nok.
type attemptFrame struct {
	ok  state
	nok state

	point         Point
	current       int
	eventCount    int
	open          []int
	interrupt     bool
	scratch       scratch
	resolverSize  int
	flowCandidate int
}

func newTokenizer(source []byte, opts *Options) *tokenizer {
	if opts == nil {
		opts = DefaultOptions()
	}
	t := &tokenizer{
		source: source,
		opts:   opts,
		point:  Point{Line: 1, Column: 1},
		logger: opts.Logger,
	}
	t.current = t.byteAt(0)
	return t
}

func (t *tokenizer) byteAt(offset int) int {
	if offset >= len(t.source) {
		return eof
	}
	return int(t.source[offset])
}

// Enter opens a span of the given kind at the current position.
func (t *tokenizer) Enter(kind TokenKind) {
	t.enter(kind, nil)
}

// EnterWithContent opens a span that can be linked to other spans
// holding content of the given type.
func (t *tokenizer) EnterWithContent(kind TokenKind, ct ContentType) {
	t.enter(kind, newLink(ct))
}

func (t *tokenizer) enter(kind TokenKind, l *Link) {
	t.open = append(t.open, len(t.events))
	t.events = append(t.events, Event{
		Kind:  Enter,
		Token: kind,
		Point: t.point,
		Link:  l,
	})
}

// Exit closes the innermost open span, which must be of the given kind
// and must not be empty.
func (t *tokenizer) Exit(kind TokenKind) {
	if len(t.open) == 0 {
		panic(fmt.Sprintf("Exit(%v) at %v: no open span", kind, t.point))
	}
	enterIndex := t.open[len(t.open)-1]
	enter := t.events[enterIndex]
	if enter.Token != kind {
		panic(fmt.Sprintf("Exit(%v) at %v: innermost open span is %v", kind, t.point, enter.Token))
	}
	if enter.Point.Offset == t.point.Offset {
		panic(fmt.Sprintf("Exit(%v) at %v: span is empty", kind, t.point))
	}
	t.open = t.open[:len(t.open)-1]
	t.events = append(t.events, Event{
		Kind:  Exit,
		Token: kind,
		Point: t.point,
	})
}

// Consume moves past the current byte,
// making it part of the innermost open span.
func (t *tokenizer) Consume() {
	if t.current == eof {
		panic(fmt.Sprintf("Consume at %v: end of input", t.point))
	}
	switch c := byte(t.current); {
	case c == '\n':
		t.point.Line++
		t.point.Column = 1
	case c&0xc0 != 0x80:
		// Count the first byte of each UTF-8 sequence.
		t.point.Column++
	}
	t.point.Offset++
	t.current = t.byteAt(t.point.Offset)
}

// Attempt runs the construct starting at start.
// If the construct succeeds, the tokenizer continues with ok.
// If it fails, every change it made is undone
// and the tokenizer continues with nok.
// The caller must return Attempt's result from its state function.
func (t *tokenizer) Attempt(start stateName, ok, nok state) state {
	t.attempts = append(t.attempts, attemptFrame{
		ok:            ok,
		nok:           nok,
		point:         t.point,
		current:       t.current,
		eventCount:    len(t.events),
		open:          slices.Clone(t.open),
		interrupt:     t.interrupt,
		scratch:       t.scratch,
		resolverSize:  len(t.resolvers),
		flowCandidate: t.flowCandidate,
	})
	return nextState(start)
}

func (t *tokenizer) restore(frame *attemptFrame) {
	t.point = frame.point
	t.current = frame.current
	t.events = t.events[:frame.eventCount]
	t.open = frame.open
	t.interrupt = frame.interrupt
	t.scratch = frame.scratch
	t.resolvers = t.resolvers[:frame.resolverSize]
	t.flowCandidate = frame.flowCandidate

	// Spans are only ever linked to the span two events earlier,
	// so only the last kept events can point past the end.
	for i := max(0, frame.eventCount-2); i < frame.eventCount; i++ {
		if l := t.events[i].Link; l != nil && l.Next >= frame.eventCount {
			l.Next = NoIndex
		}
	}
}

// run steps through states until the outermost construct
// reaches Ok or Nok.
// State functions return the next state instead of calling it,
// so the Go stack does not grow with the input.
func (t *tokenizer) run(s state) state {
	for {
		switch s.kind {
		case nextKind:
			s = s.name.call(t)
		case okKind, nokKind:
			if len(t.attempts) == 0 {
				return s
			}
			frame := t.attempts[len(t.attempts)-1]
			t.attempts = t.attempts[:len(t.attempts)-1]
			if s.kind == okKind {
				s = frame.ok
			} else {
				t.restore(&frame)
				s = frame.nok
			}
		default:
			panic(fmt.Sprintf("run: invalid state %v", s))
		}
	}
}

// Tokenize splits source into an event log of flow content.
// source is expected to use "\n" line endings
// (see [NormalizeInput]).
// If opts is nil, Tokenize uses [DefaultOptions].
func Tokenize(source []byte, opts *Options) []Event {
	t := newTokenizer(source, opts)
	if result := t.run(nextState(stateFlowStart)); result.kind != okKind {
		panic(fmt.Sprintf("Tokenize: flow content did not accept input at %v", t.point))
	}
	if t.current != eof {
		panic(fmt.Sprintf("Tokenize: stopped before end of input at %v", t.point))
	}
	if len(t.open) > 0 {
		panic(fmt.Sprintf("Tokenize: %v span left open at end of input", t.events[t.open[len(t.open)-1]].Token))
	}
	events := t.resolve()
	if err := CheckBalance(events); err != nil {
		panic(err)
	}
	if err := CheckLinks(events); err != nil {
		panic(err)
	}
	return events
}
