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

// A Resolver restructures the finished event log.
// It runs once, after all input has been tokenized,
// and must express every insertion or removal as an edit in edits.
// Resolvers see the log before any edit is applied,
// so indices they compute are stable.
// They may change the fields of existing events in place.
type Resolver func(events []Event, edits *EditMap)

type namedResolver struct {
	name    string
	resolve Resolver
}

// RegisterResolver arranges for r to run after tokenizing finishes.
// Registering a name that is already registered does nothing.
// Registrations made during an attempt that fails are discarded.
func (t *tokenizer) RegisterResolver(name string, r Resolver) {
	for _, nr := range t.resolvers {
		if nr.name == name {
			return
		}
	}
	t.resolvers = append(t.resolvers, namedResolver{name: name, resolve: r})
}

// resolve runs the registered resolvers in registration order
// and applies their edits to the log.
func (t *tokenizer) resolve() []Event {
	edits := new(EditMap)
	for _, nr := range t.resolvers {
		before := edits.Len()
		nr.resolve(t.events, edits)
		if t.logger != nil {
			t.logger.Debug("resolver ran", "name", nr.name, "anchors", edits.Len()-before)
		}
	}
	events := edits.Consume(t.events)
	if t.logger != nil {
		t.logger.Debug("edits applied", "resolvers", len(t.resolvers), "before", len(t.events), "after", len(events))
	}
	t.events = events
	return events
}
