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
	"errors"
	"fmt"
)

// ErrUnbalanced is returned (wrapped) by [CheckBalance].
var ErrUnbalanced = errors.New("unbalanced event log")

// ErrBrokenLink is returned (wrapped) by [CheckLinks].
var ErrBrokenLink = errors.New("broken link")

// CheckBalance verifies that every Enter event in events
// is closed by a later Exit event of the same kind
// and that spans nest properly.
func CheckBalance(events []Event) error {
	var stack []int
	for i, ev := range events {
		switch ev.Kind {
		case Enter:
			stack = append(stack, i)
		case Exit:
			if len(stack) == 0 {
				return fmt.Errorf("event %d: exit %v without enter: %w", i, ev.Token, ErrUnbalanced)
			}
			enter := events[stack[len(stack)-1]]
			if enter.Token != ev.Token {
				return fmt.Errorf("event %d: exit %v while %v (event %d) is open: %w",
					i, ev.Token, enter.Token, stack[len(stack)-1], ErrUnbalanced)
			}
			if ev.Point.Offset < enter.Point.Offset {
				return fmt.Errorf("event %d: %v ends at %v before it starts at %v: %w",
					i, ev.Token, ev.Point, enter.Point, ErrUnbalanced)
			}
			stack = stack[:len(stack)-1]
		default:
			return fmt.Errorf("event %d: invalid kind %v: %w", i, ev.Kind, ErrUnbalanced)
		}
	}
	if len(stack) > 0 {
		i := stack[len(stack)-1]
		return fmt.Errorf("event %d: %v never exited: %w", i, events[i].Token, ErrUnbalanced)
	}
	return nil
}

// CheckLinks verifies that every link in events
// points at a linked Enter event that points back,
// and that linked runs share one content type.
func CheckLinks(events []Event) error {
	for i, ev := range events {
		l := ev.Link
		if l == nil {
			continue
		}
		if ev.Kind != Enter {
			return fmt.Errorf("event %d: link on %v %v: %w", i, ev.Kind, ev.Token, ErrBrokenLink)
		}
		if l.Next != NoIndex {
			if err := checkLinkTarget(events, i, l.Next, func(target *Link) int { return target.Previous }); err != nil {
				return err
			}
		}
		if l.Previous != NoIndex {
			if err := checkLinkTarget(events, i, l.Previous, func(target *Link) int { return target.Next }); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkLinkTarget(events []Event, from, to int, back func(*Link) int) error {
	if to < 0 || to >= len(events) {
		return fmt.Errorf("event %d: link to %d out of range: %w", from, to, ErrBrokenLink)
	}
	target := events[to]
	if target.Kind != Enter || target.Link == nil {
		return fmt.Errorf("event %d: link to %d (%v %v) which is not linked: %w",
			from, to, target.Kind, target.Token, ErrBrokenLink)
	}
	if got := back(target.Link); got != from {
		return fmt.Errorf("event %d: link to %d points back to %d: %w", from, to, got, ErrBrokenLink)
	}
	if target.Link.ContentType != events[from].Link.ContentType {
		return fmt.Errorf("event %d: link to %d changes content type from %v to %v: %w",
			from, to, events[from].Link.ContentType, target.Link.ContentType, ErrBrokenLink)
	}
	return nil
}
