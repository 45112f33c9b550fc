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

import (
	"fmt"
	"strings"
)

// Point is a position in the tokenizer's input.
type Point struct {
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column number, counted in UTF-8 characters.
	Column int
	// Offset is the 0-based byte offset from the beginning of the input.
	Offset int
}

func (pt Point) String() string {
	return fmt.Sprintf("%d:%d", pt.Line, pt.Column)
}

// EventKind is either [Enter] or [Exit].
type EventKind uint8

const (
	// Enter opens a span.
	Enter EventKind = 1 + iota
	// Exit closes the nearest open span of the same token kind.
	Exit
)

func (kind EventKind) String() string {
	switch kind {
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(kind))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (kind EventKind) MarshalText() ([]byte, error) {
	switch kind {
	case Enter, Exit:
		return []byte(kind.String()), nil
	default:
		return nil, fmt.Errorf("marshal event kind: unknown kind %d", uint8(kind))
	}
}

// An Event is a single entry in the event log.
// Every Enter event has exactly one later Exit event of the same token kind
// and spans nest without overlapping.
// An Enter event's point is the start of the span
// and the matching Exit event's point is its end.
type Event struct {
	Kind  EventKind
	Token TokenKind
	Point Point
	// Link is non-nil for spans that take part in a run
	// of content meant to be tokenized again as one piece.
	// Only Enter events carry links.
	Link *Link `json:",omitempty"`
}

// ContentType names the grammar that a linked run of content
// is written in.
type ContentType uint8

const (
	// Flow is line-oriented block content.
	Flow ContentType = 1 + iota
	// Text is inline content with all constructs available.
	Text
	// String is inline content limited to escapes and references.
	String
)

func (ct ContentType) String() string {
	switch ct {
	case Flow:
		return "flow"
	case Text:
		return "text"
	case String:
		return "string"
	default:
		return fmt.Sprintf("ContentType(%d)", uint8(ct))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (ct ContentType) MarshalText() ([]byte, error) {
	switch ct {
	case Flow, Text, String:
		return []byte(ct.String()), nil
	default:
		return nil, fmt.Errorf("marshal content type: unknown type %d", uint8(ct))
	}
}

// NoIndex is the value of [Link.Previous] and [Link.Next]
// when there is no such event.
const NoIndex = -1

// A Link ties a span to the spans before and after it in the same run.
// The indices refer to Enter events in the same event log.
// A Link never owns the events it refers to.
type Link struct {
	Previous    int
	Next        int
	ContentType ContentType
}

func newLink(ct ContentType) *Link {
	return &Link{
		Previous:    NoIndex,
		Next:        NoIndex,
		ContentType: ct,
	}
}

// link connects the linked Enter event at index
// to the linked span that immediately precedes it.
func link(events []Event, index int) {
	linkTo(events, index-2, index)
}

// linkTo connects the linked span entered at previous
// to the linked span entered at next.
// The span at next does not need to be closed yet.
func linkTo(events []Event, previous, next int) {
	if previous < 0 || events[previous].Kind != Enter {
		panic(fmt.Sprintf("link previous: event %d is not an Enter", previous))
	}
	if events[previous+1].Kind != Exit || events[previous+1].Token != events[previous].Token {
		panic(fmt.Sprintf("link previous: span entered at %d is not a leaf", previous))
	}
	if events[next].Kind != Enter {
		panic(fmt.Sprintf("link next: event %d is not an Enter", next))
	}
	prevLink := events[previous].Link
	nextLink := events[next].Link
	if prevLink == nil || nextLink == nil {
		panic(fmt.Sprintf("link %d to %d: span without link", previous, next))
	}
	if prevLink.ContentType != nextLink.ContentType {
		panic(fmt.Sprintf("link %d to %d: content type %v does not match %v",
			previous, next, prevLink.ContentType, nextLink.ContentType))
	}
	prevLink.Next = next
	nextLink.Previous = previous
}

// Chains returns the index of the first Enter event of every linked run
// in the log, in order.
func Chains(events []Event) []int {
	var starts []int
	for i, ev := range events {
		if ev.Kind == Enter && ev.Link != nil && ev.Link.Previous == NoIndex {
			starts = append(starts, i)
		}
	}
	return starts
}

// LinkedText returns the source text of the linked run
// that starts with the Enter event at start,
// joining every span in the run in order.
// This is the content that a nested tokenizer for the run's content type
// would be given.
func LinkedText(source []byte, events []Event, start int) string {
	sb := new(strings.Builder)
	for i := start; i != NoIndex; {
		enter := events[i]
		if enter.Kind != Enter || enter.Link == nil {
			panic(fmt.Sprintf("LinkedText: event %d is not a linked Enter", i))
		}
		exit := events[i+1]
		if exit.Kind != Exit || exit.Token != enter.Token {
			panic(fmt.Sprintf("LinkedText: linked span entered at %d has children", i))
		}
		sb.Write(source[enter.Point.Offset:exit.Point.Offset])
		i = enter.Link.Next
	}
	return sb.String()
}
