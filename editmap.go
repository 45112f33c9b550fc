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
	"sort"
)

// An EditMap batches changes to an event log.
// Edits are anchored at indices into the log as it was before any edit,
// so independent edits do not need to account for each other.
// [EditMap.Consume] applies all of them at once
// and renumbers every [Link] so that it keeps pointing at the same event.
//
// The zero value is an empty map.
// An EditMap can only be consumed once.
type EditMap struct {
	edits []edit
	// slots maps an anchor to its position in edits.
	slots    map[int]int
	consumed bool
}

type edit struct {
	at     int
	remove int
	add    []Event
}

// jump records the cumulative change in log length
// for all edits up to and including the one at an anchor.
type jump struct {
	at     int
	remove int
	add    int
}

// Add queues removing remove events starting at index at,
// then inserting events in their place.
// If an edit is already queued at the same index,
// the removal counts are summed and events are inserted
// after the previously queued events.
func (m *EditMap) Add(at, remove int, events []Event) {
	m.add(at, remove, events, false)
}

// AddBefore is like [EditMap.Add],
// but events are inserted before any events
// previously queued at the same index.
func (m *EditMap) AddBefore(at, remove int, events []Event) {
	m.add(at, remove, events, true)
}

func (m *EditMap) add(at, remove int, events []Event, before bool) {
	if m.consumed {
		panic("EditMap.Add cannot be called after Consume")
	}
	if at < 0 || remove < 0 {
		panic(fmt.Sprintf("EditMap.Add(%d, %d, ...): negative argument", at, remove))
	}
	if remove == 0 && len(events) == 0 {
		return
	}
	if i, ok := m.slots[at]; ok {
		e := &m.edits[i]
		e.remove += remove
		if before {
			e.add = append(append([]Event(nil), events...), e.add...)
		} else {
			e.add = append(e.add, events...)
		}
		return
	}
	if m.slots == nil {
		m.slots = make(map[int]int)
	}
	m.slots[at] = len(m.edits)
	m.edits = append(m.edits, edit{
		at:     at,
		remove: remove,
		add:    append([]Event(nil), events...),
	})
}

// Len returns the number of distinct indices with queued edits.
func (m *EditMap) Len() int {
	return len(m.edits)
}

// Consume applies the queued edits to events and returns the new log.
// The underlying array of events may be reused.
// Consume panics if it is called more than once,
// if two edits overlap,
// or if an edit lies beyond the end of events.
func (m *EditMap) Consume(events []Event) []Event {
	if m.consumed {
		panic("EditMap.Consume cannot be called twice")
	}
	m.consumed = true
	if len(m.edits) == 0 {
		return events
	}

	sort.Slice(m.edits, func(i, j int) bool {
		return m.edits[i].at < m.edits[j].at
	})
	jumps := make([]jump, 0, len(m.edits))
	var addTotal, removeTotal int
	for i, e := range m.edits {
		if end := e.at + e.remove; end > len(events) {
			panic(fmt.Sprintf("EditMap.Consume: edit at %d removing %d is beyond log of length %d", e.at, e.remove, len(events)))
		} else if i+1 < len(m.edits) && end > m.edits[i+1].at {
			panic(fmt.Sprintf("EditMap.Consume: edit at %d removing %d overlaps edit at %d", e.at, e.remove, m.edits[i+1].at))
		}
		addTotal += len(e.add)
		removeTotal += e.remove
		jumps = append(jumps, jump{at: e.at, remove: removeTotal, add: addTotal})
	}

	// Walk backward so that every split happens on a prefix
	// that still has its original indices.
	segments := make([][]Event, 0, len(m.edits)*2+1)
	rest := events
	for i := len(m.edits) - 1; i >= 0; i-- {
		e := m.edits[i]
		keep := rest[e.at+e.remove:]
		shiftLinks(keep, jumps)
		segments = append(segments, keep, e.add)
		rest = rest[:e.at]
	}
	shiftLinks(rest, jumps)
	segments = append(segments, rest)

	result := make([]Event, 0, len(events)+addTotal-removeTotal)
	for i := len(segments) - 1; i >= 0; i-- {
		result = append(result, segments[i]...)
	}
	m.edits = nil
	m.slots = nil
	return result
}

// shiftLinks renumbers the link indices in events according to jumps.
// Links are replaced rather than modified in place,
// since other copies of the log may share them.
func shiftLinks(events []Event, jumps []jump) {
	for i := range events {
		l := events[i].Link
		if l == nil {
			continue
		}
		newLink := *l
		newLink.Previous = shiftIndex(l.Previous, jumps)
		newLink.Next = shiftIndex(l.Next, jumps)
		events[i].Link = &newLink
	}
}

// shiftIndex maps an index in the log before edits
// to its index after edits.
func shiftIndex(before int, jumps []jump) int {
	if before == NoIndex {
		return NoIndex
	}
	// Find the last jump at or before the index.
	n := sort.Search(len(jumps), func(i int) bool {
		return jumps[i].at > before
	})
	if n == 0 {
		return before
	}
	j := jumps[n-1]
	return before + j.add - j.remove
}
