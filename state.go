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

type stateKind uint8

const (
	nextKind stateKind = 1 + iota
	okKind
	nokKind
)

// state is the result of a state function:
// either the name of the state to run next,
// or the outcome of the innermost attempt.
type state struct {
	kind stateKind
	name stateName
}

var (
	stateOk  = state{kind: okKind}
	stateNok = state{kind: nokKind}
)

func nextState(name stateName) state {
	return state{kind: nextKind, name: name}
}

func (s state) String() string {
	switch s.kind {
	case nextKind:
		return "next(" + s.name.String() + ")"
	case okKind:
		return "ok"
	case nokKind:
		return "nok"
	default:
		return fmt.Sprintf("state{%d, %v}", s.kind, s.name)
	}
}

// stateName identifies a state function.
type stateName uint16

const (
	stateFlowStart stateName = 1 + iota
	stateFlowBefore
	stateFlowAfter
	stateFlowBlankLineAfter

	stateBlankLineStart
	stateBlankLineAfter

	stateSpaceOrTabStart
	stateSpaceOrTabInside
	stateSpaceOrTabEolStart
	stateSpaceOrTabEolAfterFirst
	stateSpaceOrTabEolAtEol
	stateSpaceOrTabEolAfterEol
	stateSpaceOrTabEolAfterMore

	stateHeadingAtxStart
	stateHeadingAtxBefore
	stateHeadingAtxSequenceOpen
	stateHeadingAtxAtBreak
	stateHeadingAtxSequenceFurther
	stateHeadingAtxData

	stateThematicBreakStart
	stateThematicBreakBefore
	stateThematicBreakAtBreak
	stateThematicBreakSequence

	stateCodeIndentedStart
	stateCodeIndentedAtBreak
	stateCodeIndentedInside
	stateCodeIndentedAfter
	stateCodeIndentedFurtherStart
	stateCodeIndentedFurtherBegin
	stateCodeIndentedFurtherAfter

	stateParagraphStart
	stateParagraphBefore
	stateParagraphInside

	stateDefinitionStart
	stateDefinitionBefore
	stateDefinitionLabelAfter
	stateDefinitionLabelNok
	stateDefinitionMarkerAfter
	stateDefinitionDestinationBefore
	stateDefinitionDestinationAfter
	stateDefinitionDestinationMissing
	stateDefinitionAfter
	stateDefinitionAfterWhitespace
	stateDefinitionTitleBefore
	stateDefinitionTitleBeforeMarker
	stateDefinitionTitleAfter
	stateDefinitionTitleAfterOptionalWhitespace
	stateDefinitionTitleNok

	stateLabelStart
	stateLabelAtBreak
	stateLabelEolAfter
	stateLabelAtBlankLine
	stateLabelInside
	stateLabelEscape

	stateDestinationStart
	stateDestinationEnclosedBefore
	stateDestinationEnclosed
	stateDestinationEnclosedEscape
	stateDestinationRaw
	stateDestinationRawEscape

	stateTitleStart
	stateTitleBegin
	stateTitleAtBreak
	stateTitleAfterEol
	stateTitleAtBlankLine
	stateTitleInside
	stateTitleEscape
)

// call runs the state function for name.
func (name stateName) call(t *tokenizer) state {
	switch name {
	case stateFlowStart:
		return flowStart(t)
	case stateFlowBefore:
		return flowBefore(t)
	case stateFlowAfter:
		return flowAfter(t)
	case stateFlowBlankLineAfter:
		return flowBlankLineAfter(t)

	case stateBlankLineStart:
		return blankLineStart(t)
	case stateBlankLineAfter:
		return blankLineAfter(t)

	case stateSpaceOrTabStart:
		return spaceOrTabStart(t)
	case stateSpaceOrTabInside:
		return spaceOrTabInside(t)
	case stateSpaceOrTabEolStart:
		return spaceOrTabEolStart(t)
	case stateSpaceOrTabEolAfterFirst:
		return spaceOrTabEolAfterFirst(t)
	case stateSpaceOrTabEolAtEol:
		return spaceOrTabEolAtEol(t)
	case stateSpaceOrTabEolAfterEol:
		return spaceOrTabEolAfterEol(t)
	case stateSpaceOrTabEolAfterMore:
		return spaceOrTabEolAfterMore(t)

	case stateHeadingAtxStart:
		return headingAtxStart(t)
	case stateHeadingAtxBefore:
		return headingAtxBefore(t)
	case stateHeadingAtxSequenceOpen:
		return headingAtxSequenceOpen(t)
	case stateHeadingAtxAtBreak:
		return headingAtxAtBreak(t)
	case stateHeadingAtxSequenceFurther:
		return headingAtxSequenceFurther(t)
	case stateHeadingAtxData:
		return headingAtxData(t)

	case stateThematicBreakStart:
		return thematicBreakStart(t)
	case stateThematicBreakBefore:
		return thematicBreakBefore(t)
	case stateThematicBreakAtBreak:
		return thematicBreakAtBreak(t)
	case stateThematicBreakSequence:
		return thematicBreakSequence(t)

	case stateCodeIndentedStart:
		return codeIndentedStart(t)
	case stateCodeIndentedAtBreak:
		return codeIndentedAtBreak(t)
	case stateCodeIndentedInside:
		return codeIndentedInside(t)
	case stateCodeIndentedAfter:
		return codeIndentedAfter(t)
	case stateCodeIndentedFurtherStart:
		return codeIndentedFurtherStart(t)
	case stateCodeIndentedFurtherBegin:
		return codeIndentedFurtherBegin(t)
	case stateCodeIndentedFurtherAfter:
		return codeIndentedFurtherAfter(t)

	case stateParagraphStart:
		return paragraphStart(t)
	case stateParagraphBefore:
		return paragraphBefore(t)
	case stateParagraphInside:
		return paragraphInside(t)

	case stateDefinitionStart:
		return definitionStart(t)
	case stateDefinitionBefore:
		return definitionBefore(t)
	case stateDefinitionLabelAfter:
		return definitionLabelAfter(t)
	case stateDefinitionLabelNok:
		return definitionLabelNok(t)
	case stateDefinitionMarkerAfter:
		return definitionMarkerAfter(t)
	case stateDefinitionDestinationBefore:
		return definitionDestinationBefore(t)
	case stateDefinitionDestinationAfter:
		return definitionDestinationAfter(t)
	case stateDefinitionDestinationMissing:
		return definitionDestinationMissing(t)
	case stateDefinitionAfter:
		return definitionAfter(t)
	case stateDefinitionAfterWhitespace:
		return definitionAfterWhitespace(t)
	case stateDefinitionTitleBefore:
		return definitionTitleBefore(t)
	case stateDefinitionTitleBeforeMarker:
		return definitionTitleBeforeMarker(t)
	case stateDefinitionTitleAfter:
		return definitionTitleAfter(t)
	case stateDefinitionTitleAfterOptionalWhitespace:
		return definitionTitleAfterOptionalWhitespace(t)
	case stateDefinitionTitleNok:
		return definitionTitleNok(t)

	case stateLabelStart:
		return labelStart(t)
	case stateLabelAtBreak:
		return labelAtBreak(t)
	case stateLabelEolAfter:
		return labelEolAfter(t)
	case stateLabelAtBlankLine:
		return labelAtBlankLine(t)
	case stateLabelInside:
		return labelInside(t)
	case stateLabelEscape:
		return labelEscape(t)

	case stateDestinationStart:
		return destinationStart(t)
	case stateDestinationEnclosedBefore:
		return destinationEnclosedBefore(t)
	case stateDestinationEnclosed:
		return destinationEnclosed(t)
	case stateDestinationEnclosedEscape:
		return destinationEnclosedEscape(t)
	case stateDestinationRaw:
		return destinationRaw(t)
	case stateDestinationRawEscape:
		return destinationRawEscape(t)

	case stateTitleStart:
		return titleStart(t)
	case stateTitleBegin:
		return titleBegin(t)
	case stateTitleAtBreak:
		return titleAtBreak(t)
	case stateTitleAfterEol:
		return titleAfterEol(t)
	case stateTitleAtBlankLine:
		return titleAtBlankLine(t)
	case stateTitleInside:
		return titleInside(t)
	case stateTitleEscape:
		return titleEscape(t)

	default:
		panic(fmt.Sprintf("call: unknown state %v", name))
	}
}

func (name stateName) String() string {
	return fmt.Sprintf("stateName(%d)", uint16(name))
}
