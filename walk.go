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

// A Cursor describes a span encountered during [Walk].
type Cursor struct {
	events []Event
	enter  int
	exit   int
	parent int
	depth  int
}

// Index returns the index of the span's Enter event.
func (c *Cursor) Index() int {
	return c.enter
}

// ExitIndex returns the index of the span's Exit event.
func (c *Cursor) ExitIndex() int {
	return c.exit
}

// Enter returns the span's Enter event.
func (c *Cursor) Enter() Event {
	return c.events[c.enter]
}

// Exit returns the span's Exit event.
func (c *Cursor) Exit() Event {
	return c.events[c.exit]
}

// IsLeaf reports whether the span has no children.
func (c *Cursor) IsLeaf() bool {
	return c.exit == c.enter+1
}

// Parent returns the index of the Enter event of the enclosing span
// or -1 if the span is at the top level.
func (c *Cursor) Parent() int {
	return c.parent
}

// Depth returns the number of spans that enclose the current span.
func (c *Cursor) Depth() int {
	return c.depth
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each span before its children (pre-order).
	// If Pre returns false, no children are traversed, and Post is not called for that span.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each span after its children (post-order).
	// If Post returns false, traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses the spans in an event log in order,
// calling [WalkOptions.Pre] and [WalkOptions.Post].
// Walk panics if events is not balanced (see [CheckBalance]).
func Walk(events []Event, opts *WalkOptions) {
	exits, err := matchExits(events)
	if err != nil {
		panic(err)
	}
	cursor := &Cursor{events: events}
	var stack []int
	for i := 0; i < len(events); i++ {
		if events[i].Kind == Enter {
			cursor.enter = i
			cursor.exit = exits[i]
			cursor.parent = -1
			if len(stack) > 0 {
				cursor.parent = stack[len(stack)-1]
			}
			cursor.depth = len(stack)
			if opts.Pre != nil && !opts.Pre(cursor) {
				i = exits[i]
				continue
			}
			stack = append(stack, i)
			continue
		}

		stack = stack[:len(stack)-1]
		cursor.enter = exits[i]
		cursor.exit = i
		cursor.parent = -1
		if len(stack) > 0 {
			cursor.parent = stack[len(stack)-1]
		}
		cursor.depth = len(stack)
		if opts.Post != nil && !opts.Post(cursor) {
			return
		}
	}
}

// matchExits pairs every Enter event with its Exit event.
// The returned slice maps the index of each event
// to the index of its partner.
func matchExits(events []Event) ([]int, error) {
	if err := CheckBalance(events); err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	partner := make([]int, len(events))
	var stack []int
	for i, ev := range events {
		if ev.Kind == Enter {
			stack = append(stack, i)
			continue
		}
		enter := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		partner[enter] = i
		partner[i] = enter
	}
	return partner, nil
}
