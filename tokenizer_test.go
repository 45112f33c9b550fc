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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// outline renders events as "enter Kind@offset" lines
// so that tests can compare logs without spelling out every point.
func outline(events []Event) []string {
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, fmt.Sprintf("%v %v@%d", ev.Kind, ev.Token, ev.Point.Offset))
	}
	return lines
}

func TestTokenize(t *testing.T) {
	noHeading := DefaultOptions()
	noHeading.Constructs.HeadingAtx = false

	tests := []struct {
		name   string
		source string
		opts   *Options
		want   []string
	}{
		{
			name:   "Empty",
			source: "",
			want:   []string{},
		},
		{
			name:   "HeadingText",
			source: "## aa",
			want: []string{
				"enter HeadingAtx@0",
				"enter HeadingAtxSequence@0",
				"exit HeadingAtxSequence@2",
				"enter SpaceOrTab@2",
				"exit SpaceOrTab@3",
				"enter HeadingAtxText@3",
				"enter Data@3",
				"exit Data@5",
				"exit HeadingAtxText@5",
				"exit HeadingAtx@5",
			},
		},
		{
			name:   "HeadingWithoutText",
			source: "## ",
			want: []string{
				"enter HeadingAtx@0",
				"enter HeadingAtxSequence@0",
				"exit HeadingAtxSequence@2",
				"enter SpaceOrTab@2",
				"exit SpaceOrTab@3",
				"exit HeadingAtx@3",
			},
		},
		{
			name:   "HeadingDisabled",
			source: "## aa",
			opts:   noHeading,
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@5",
				"exit Paragraph@5",
			},
		},
		{
			name:   "HeadingManyWords",
			source: "# a b ##",
			want: []string{
				"enter HeadingAtx@0",
				"enter HeadingAtxSequence@0",
				"exit HeadingAtxSequence@1",
				"enter SpaceOrTab@1",
				"exit SpaceOrTab@2",
				"enter HeadingAtxText@2",
				"enter Data@2",
				"exit Data@5",
				"exit HeadingAtxText@5",
				"enter SpaceOrTab@5",
				"exit SpaceOrTab@6",
				"enter HeadingAtxSequence@6",
				"exit HeadingAtxSequence@8",
				"exit HeadingAtx@8",
			},
		},
		{
			name:   "HeadingTooLong",
			source: "####### a",
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@9",
				"exit Paragraph@9",
			},
		},
		{
			name:   "HeadingSequenceLimit",
			source: "### a",
			opts:   &Options{Constructs: DefaultConstructs(), HeadingAtxSequenceMax: 2},
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@5",
				"exit Paragraph@5",
			},
		},
		{
			name:   "BlankLines",
			source: "\n  \n",
			want: []string{
				"enter BlankLineEnding@0",
				"exit BlankLineEnding@1",
				"enter SpaceOrTab@1",
				"exit SpaceOrTab@3",
				"enter BlankLineEnding@3",
				"exit BlankLineEnding@4",
			},
		},
		{
			name:   "ThematicBreakMixedMarkers",
			source: "*-*",
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@3",
				"exit Paragraph@3",
			},
		},
		{
			name:   "ThematicBreakIndented",
			source: "   ___",
			want: []string{
				"enter ThematicBreak@0",
				"enter SpaceOrTab@0",
				"exit SpaceOrTab@3",
				"enter ThematicBreakSequence@3",
				"exit ThematicBreakSequence@6",
				"exit ThematicBreak@6",
			},
		},
		{
			name:   "IndentedCodeAcrossBlankLine",
			source: "    a\n\n    b\nc",
			want: []string{
				"enter CodeIndented@0",
				"enter SpaceOrTab@0",
				"exit SpaceOrTab@4",
				"enter CodeFlowChunk@4",
				"exit CodeFlowChunk@5",
				"enter LineEnding@5",
				"exit LineEnding@6",
				"enter LineEnding@6",
				"exit LineEnding@7",
				"enter SpaceOrTab@7",
				"exit SpaceOrTab@11",
				"enter CodeFlowChunk@11",
				"exit CodeFlowChunk@12",
				"exit CodeIndented@12",
				"enter LineEnding@12",
				"exit LineEnding@13",
				"enter Paragraph@13",
				"enter Data@13",
				"exit Data@14",
				"exit Paragraph@14",
			},
		},
		{
			name:   "IndentedCodeCannotInterruptParagraph",
			source: "a\n    b",
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@2",
				"enter Data@6",
				"exit Data@7",
				"exit Paragraph@7",
			},
		},
		{
			name:   "HeadingInterruptsParagraph",
			source: "a\n# b",
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@1",
				"exit Paragraph@1",
				"enter LineEnding@1",
				"exit LineEnding@2",
				"enter HeadingAtx@2",
				"enter HeadingAtxSequence@2",
				"exit HeadingAtxSequence@3",
				"enter SpaceOrTab@3",
				"exit SpaceOrTab@4",
				"enter HeadingAtxText@4",
				"enter Data@4",
				"exit Data@5",
				"exit HeadingAtxText@5",
				"exit HeadingAtx@5",
			},
		},
		{
			name:   "DefinitionEnclosedDestination",
			source: "[a]: <b c>",
			want: []string{
				"enter Definition@0",
				"enter DefinitionLabel@0",
				"enter DefinitionLabelMarker@0",
				"exit DefinitionLabelMarker@1",
				"enter DefinitionLabelString@1",
				"enter Data@1",
				"exit Data@2",
				"exit DefinitionLabelString@2",
				"enter DefinitionLabelMarker@2",
				"exit DefinitionLabelMarker@3",
				"exit DefinitionLabel@3",
				"enter DefinitionMarker@3",
				"exit DefinitionMarker@4",
				"enter SpaceOrTab@4",
				"exit SpaceOrTab@5",
				"enter DefinitionDestination@5",
				"enter DefinitionDestinationLiteral@5",
				"enter DefinitionDestinationLiteralMarker@5",
				"exit DefinitionDestinationLiteralMarker@6",
				"enter DefinitionDestinationString@6",
				"enter Data@6",
				"exit Data@9",
				"exit DefinitionDestinationString@9",
				"enter DefinitionDestinationLiteralMarker@9",
				"exit DefinitionDestinationLiteralMarker@10",
				"exit DefinitionDestinationLiteral@10",
				"exit DefinitionDestination@10",
				"exit Definition@10",
			},
		},
		{
			name:   "DefinitionWithoutDestination",
			source: "[a]:",
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@4",
				"exit Paragraph@4",
			},
		},
		{
			name:   "DefinitionEmptyLabel",
			source: "[ ]: b",
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@6",
				"exit Paragraph@6",
			},
		},
		{
			name:   "DefinitionCannotInterruptParagraph",
			source: "a\n[b]: c",
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@2",
				"enter Data@2",
				"exit Data@8",
				"exit Paragraph@8",
			},
		},
		{
			name:   "DefinitionWithJunkAfterTitle",
			source: "[a]: b \"c\" d",
			want: []string{
				"enter Paragraph@0",
				"enter Data@0",
				"exit Data@12",
				"exit Paragraph@12",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := outline(Tokenize([]byte(test.source), test.opts))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Tokenize(%q) (-want +got):\n%s", test.source, diff)
			}
		})
	}
}

func TestMultilineTitle(t *testing.T) {
	source := []byte("[x]: y \"a\nb\"")
	events := Tokenize(source, nil)

	titleString := -1
	for i, ev := range events {
		if ev.Kind == Enter && ev.Token == DefinitionTitleString {
			titleString = i
			break
		}
	}
	if titleString < 0 {
		t.Fatalf("no title in %v", outline(events))
	}
	first := titleString + 1
	if got := events[first]; got.Token != Data || got.Link == nil {
		t.Fatalf("events[%d] = %v %v; want linked Data", first, got.Kind, got.Token)
	}

	var linked []TokenKind
	var data []int
	for i := first; i != NoIndex; i = events[i].Link.Next {
		linked = append(linked, events[i].Token)
		if events[i].Token == Data {
			data = append(data, i)
		}
	}
	if diff := cmp.Diff([]TokenKind{Data, LineEnding, Data}, linked); diff != "" {
		t.Errorf("title run (-want +got):\n%s", diff)
	}
	if len(data) == 2 {
		if got := events[data[1]].Link.ContentType; got != String {
			t.Errorf("second data content type = %v; want %v", got, String)
		}
	}
	if got, want := LinkedText(source, events, first), "a\nb"; got != want {
		t.Errorf("LinkedText(...) = %q; want %q", got, want)
	}
}

func TestParagraphRun(t *testing.T) {
	source := []byte("one\n  two\nthree\n\nfour")
	events := Tokenize(source, nil)

	chains := Chains(events)
	if len(chains) != 2 {
		t.Fatalf("Chains(...) = %v; want 2 runs", chains)
	}
	if got, want := LinkedText(source, events, chains[0]), "one\ntwo\nthree"; got != want {
		t.Errorf("first run = %q; want %q", got, want)
	}
	if got, want := LinkedText(source, events, chains[1]), "four"; got != want {
		t.Errorf("second run = %q; want %q", got, want)
	}

	paragraphs := 0
	for _, ev := range events {
		if ev.Kind == Enter && ev.Token == Paragraph {
			paragraphs++
		}
	}
	if paragraphs != 2 {
		t.Errorf("got %d paragraphs; want 2", paragraphs)
	}
}

func TestParagraphManyLines(t *testing.T) {
	const n = 50000
	source := []byte(strings.Repeat("a\n", n))
	events := Tokenize(source, nil)
	if want := 2*n + 4; len(events) != want {
		t.Fatalf("len(events) = %d; want %d", len(events), want)
	}
	chains := Chains(events)
	if len(chains) != 1 {
		t.Fatalf("len(Chains(events)) = %d; want 1", len(chains))
	}
	if got, want := LinkedText(source, events, chains[0]), strings.Repeat("a\n", n-1)+"a"; got != want {
		t.Errorf("linked text has %d bytes; want %d", len(got), len(want))
	}
}

func TestPoints(t *testing.T) {
	source := []byte("é\n# b")
	events := Tokenize(source, nil)
	want := []Point{
		{Line: 1, Column: 1, Offset: 0}, // enter Paragraph
		{Line: 1, Column: 1, Offset: 0}, // enter Data
		{Line: 1, Column: 2, Offset: 2}, // exit Data
		{Line: 1, Column: 2, Offset: 2}, // exit Paragraph
		{Line: 1, Column: 2, Offset: 2}, // enter LineEnding
		{Line: 2, Column: 1, Offset: 3}, // exit LineEnding
	}
	got := make([]Point, 0, len(want))
	for _, ev := range events[:len(want)] {
		got = append(got, ev.Point)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("points (-want +got):\n%s", diff)
	}
}

func TestAttemptRollback(t *testing.T) {
	tok := newTokenizer([]byte("\"a\n\nb"), nil)
	tok.scratch.token1 = DefinitionTitle
	tok.scratch.token2 = DefinitionTitleMarker
	tok.scratch.token3 = DefinitionTitleString
	wantScratch := tok.scratch
	wantPoint := tok.point

	if got := tok.run(tok.Attempt(stateTitleStart, stateOk, stateNok)); got != stateNok {
		t.Fatalf("title attempt = %v; want nok", got)
	}
	if tok.point != wantPoint {
		t.Errorf("point = %v; want %v", tok.point, wantPoint)
	}
	if tok.current != '"' {
		t.Errorf("current = %q; want '\"'", rune(tok.current))
	}
	if len(tok.events) != 0 || len(tok.open) != 0 {
		t.Errorf("events = %v, open = %v; want empty", outline(tok.events), tok.open)
	}
	if diff := cmp.Diff(wantScratch, tok.scratch, cmp.AllowUnexported(scratch{}, spaceOrTabScratch{}, eolScratch{})); diff != "" {
		t.Errorf("scratch (-want +got):\n%s", diff)
	}
}

// FuzzAttemptRollback checks that every flow construct that fails
// leaves the tokenizer exactly as it found it.
func FuzzAttemptRollback(f *testing.F) {
	seeds := []string{
		"",
		"\n",
		"  \n",
		"a",
		"    a\n   b",
		"\t\tcode",
		"####### a",
		"#a",
		"* * ",
		"- _ -",
		"**",
		"[a]: ",
		"[a]: b \"c\n\n",
		"[a]: b 'c' d",
		"[\n\n]: x",
		"[a]:\n",
		"[a] b",
		"   ",
	}
	for _, s := range seeds {
		f.Add(s, false)
		f.Add(s, true)
	}
	starts := append([]stateName{stateBlankLineStart}, flowConstructs...)
	opts := cmp.Options{
		cmp.AllowUnexported(tokenizer{}, scratch{}, spaceOrTabScratch{}, eolScratch{}, attemptFrame{}, state{}),
		cmpopts.IgnoreFields(tokenizer{}, "resolvers", "opts", "logger"),
		cmpopts.EquateEmpty(),
	}
	f.Fuzz(func(t *testing.T, s string, interrupt bool) {
		source := NormalizeInput([]byte(s))
		for _, start := range starts {
			tok := newTokenizer(source, nil)
			tok.interrupt = interrupt
			want := *tok
			if got := tok.run(tok.Attempt(start, stateOk, stateNok)); got != stateNok {
				continue
			}
			if diff := cmp.Diff(&want, tok, opts); diff != "" {
				t.Errorf("after failed %v on %q (interrupt=%t) (-want +got):\n%s", start, source, interrupt, diff)
			}
		}
	})
}

func TestAttemptRollbackClearsDanglingLink(t *testing.T) {
	tok := newTokenizer([]byte("x\n\n"), nil)
	tok.EnterWithContent(Data, String)
	tok.Consume()
	tok.Exit(Data)
	want := []Event{
		{Kind: Enter, Token: Data, Point: Point{Line: 1, Column: 1, Offset: 0}, Link: newLink(String)},
		{Kind: Exit, Token: Data, Point: Point{Line: 1, Column: 2, Offset: 1}},
	}

	// The line ending links to the data, then the blank line fails the attempt.
	name := tok.spaceOrTabEolWithOptions(String, true)
	if got := tok.run(tok.Attempt(name, stateOk, stateNok)); got != stateNok {
		t.Fatalf("attempt = %v; want nok", got)
	}
	if diff := cmp.Diff(want, tok.events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	if tok.point.Offset != 1 {
		t.Errorf("offset = %d; want 1", tok.point.Offset)
	}
}

func TestAttemptRollbackDiscardsResolvers(t *testing.T) {
	tok := newTokenizer([]byte("a"), nil)
	tok.RegisterResolver("kept", func([]Event, *EditMap) {})
	tok.attempts = append(tok.attempts, attemptFrame{
		nok:          stateNok,
		point:        tok.point,
		current:      tok.current,
		resolverSize: len(tok.resolvers),
	})
	tok.RegisterResolver("kept", func([]Event, *EditMap) {})
	tok.RegisterResolver("dropped", func([]Event, *EditMap) {})
	if got := len(tok.resolvers); got != 2 {
		t.Fatalf("len(resolvers) = %d; want 2", got)
	}
	tok.run(stateNok)
	if got := len(tok.resolvers); got != 1 || tok.resolvers[0].name != "kept" {
		t.Errorf("resolvers after rollback = %d; want only \"kept\"", got)
	}
}

func TestAttemptRollbackRestoresFlowCandidate(t *testing.T) {
	tok := newTokenizer([]byte("a"), nil)
	tok.flowCandidate = 2
	tok.Attempt(stateParagraphStart, stateOk, stateNok)
	// A dispatcher nested in the attempt moves on to later candidates.
	tok.flowCandidate = len(flowConstructs)
	if got := tok.run(stateNok); got != stateNok {
		t.Fatalf("run(nok) = %v; want nok", got)
	}
	if tok.flowCandidate != 2 {
		t.Errorf("flowCandidate = %d; want 2", tok.flowCandidate)
	}
}

func TestExitPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func(tok *tokenizer)
		want string
	}{
		{
			name: "NoOpenSpan",
			f:    func(tok *tokenizer) { tok.Exit(Data) },
			want: "no open span",
		},
		{
			name: "Mismatch",
			f: func(tok *tokenizer) {
				tok.Enter(Paragraph)
				tok.Consume()
				tok.Exit(Data)
			},
			want: "innermost open span is Paragraph",
		},
		{
			name: "Empty",
			f: func(tok *tokenizer) {
				tok.Enter(Data)
				tok.Exit(Data)
			},
			want: "span is empty",
		},
		{
			name: "ConsumeAtEOF",
			f: func(tok *tokenizer) {
				tok.Consume()
				tok.Consume()
			},
			want: "end of input",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			msg := catchPanic(func() { test.f(newTokenizer([]byte("a"), nil)) })
			if !strings.Contains(msg, test.want) {
				t.Errorf("panic = %q; want it to contain %q", msg, test.want)
			}
		})
	}
}

// catchPanic returns the formatted panic value of f
// or the empty string if f returns normally.
func catchPanic(f func()) (msg string) {
	defer func() {
		if v := recover(); v != nil {
			msg = fmt.Sprint(v)
		}
	}()
	f()
	return ""
}

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"## aa",
		"## ",
		"[x]: y \"a\nb\"",
		"a\nb\n\n    c\n\n    d\n***\n",
		"[a\nb]: <c> (d\ne)\n[f]: g",
		"# a #b ##\n- - -\n",
		"   ###### x\n####### y",
		"[a]: b\nc",
		"[\n\n]: x",
		"\t\tcode\n\t",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		source := NormalizeInput([]byte(s))
		events := Tokenize(source, nil)
		if err := CheckBalance(events); err != nil {
			t.Error(err)
		}
		if err := CheckLinks(events); err != nil {
			t.Error(err)
		}
		covered := 0
		for i, ev := range events {
			if i > 0 && ev.Point.Offset < events[i-1].Point.Offset {
				t.Fatalf("event %d at offset %d goes backward from %d", i, ev.Point.Offset, events[i-1].Point.Offset)
			}
			covered = max(covered, ev.Point.Offset)
		}
		if covered != len(source) {
			t.Errorf("events end at offset %d; input has %d bytes", covered, len(source))
		}
		for _, start := range Chains(events) {
			LinkedText(source, events, start)
		}
	})
}
