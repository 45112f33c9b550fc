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

package mdtoken_test

import (
	"fmt"

	"zombiezen.com/go/mdtoken"
)

func Example() {
	source := mdtoken.NormalizeInput([]byte("# Title\r\n"))
	events := mdtoken.Tokenize(source, nil)
	for _, ev := range events {
		fmt.Println(ev.Kind, ev.Token, ev.Point)
	}
	// Output:
	// enter HeadingAtx 1:1
	// enter HeadingAtxSequence 1:1
	// exit HeadingAtxSequence 1:2
	// enter SpaceOrTab 1:2
	// exit SpaceOrTab 1:3
	// enter HeadingAtxText 1:3
	// enter Data 1:3
	// exit Data 1:8
	// exit HeadingAtxText 1:8
	// exit HeadingAtx 1:8
	// enter LineEnding 1:8
	// exit LineEnding 2:1
}

func ExampleLinkedText() {
	source := []byte("[label]: /url 'a\nmultiline title'\n\nfirst line\n  second line\n")
	events := mdtoken.Tokenize(source, nil)
	// Each linked run is content for a later stage to tokenize as one piece.
	for _, start := range mdtoken.Chains(events) {
		fmt.Printf("%v %q\n", events[start].Link.ContentType, mdtoken.LinkedText(source, events, start))
	}
	// Output:
	// string "label"
	// string "/url"
	// string "a\nmultiline title"
	// text "first line\nsecond line"
}

func ExampleWalk() {
	source := []byte("***\n\n    code\n")
	events := mdtoken.Tokenize(source, nil)
	mdtoken.Walk(events, &mdtoken.WalkOptions{
		Pre: func(c *mdtoken.Cursor) bool {
			if c.Depth() == 0 {
				fmt.Println(c.Enter().Token)
			}
			return false
		},
	})
	// Output:
	// ThematicBreak
	// LineEnding
	// BlankLineEnding
	// CodeIndented
	// LineEnding
}
