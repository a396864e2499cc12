// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline regenerates an outline for a new topic. Sections parsed
// from a sample keep their titles, order, and item counts while their items
// are reworded toward the topic; when nothing could be parsed a fixed
// six-section template for the topic's type is used instead.
//
// Everything here is a pure function of its inputs.
package outline

import (
	"strings"

	"github.com/pdiddy/outline-engine/internal/topic"
	"github.com/pdiddy/outline-engine/pkg/types"
)

type sectionKind int

const (
	kindBody sectionKind = iota
	kindIntroduction
	kindConclusion
)

// sectionKinds is checked in order against the lower-cased section title.
// "intro" also covers "introduction" and catches short headings like
// "I. Intro".
var sectionKinds = []struct {
	keywords []string
	kind     sectionKind
}{
	{keywords: []string{"intro", "overview"}, kind: kindIntroduction},
	{keywords: []string{"conclusion", "summary"}, kind: kindConclusion},
}

func kindOf(title string) sectionKind {
	lower := strings.ToLower(title)
	for _, k := range sectionKinds {
		for _, kw := range k.keywords {
			if strings.Contains(lower, kw) {
				return k.kind
			}
		}
	}
	return kindBody
}

// Adapt rewords sections toward topicText. The result has the same length
// and order as sections, every title is kept verbatim, and each section
// keeps its item count.
func Adapt(sections []types.Section, topicText string) []types.Section {
	return adaptWith(sections, topic.Analyze(topicText))
}

func adaptWith(sections []types.Section, a topic.Analysis) []types.Section {
	out := make([]types.Section, len(sections))
	for i, s := range sections {
		var items []string
		switch kindOf(s.Title) {
		case kindIntroduction:
			items = IntroductionItems(a, len(s.Items))
		case kindConclusion:
			items = ConclusionItems(a, len(s.Items))
		default:
			items = make([]string, len(s.Items))
			for j, item := range s.Items {
				items[j] = RewriteItem(item, a)
			}
		}
		out[i] = types.Section{Title: s.Title, Items: items}
	}
	return out
}
