// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strconv"

	"github.com/pdiddy/outline-engine/internal/topic"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

// NumberedTitle prefixes title for the 1-based section index in the given
// style. Roman is used for StyleRoman, StyleNone, and unknown styles.
func NumberedTitle(style types.NumberingStyle, index int, title string) string {
	switch style {
	case types.StyleHash:
		return "# " + title
	case types.StyleAlpha:
		return string(rune('A'+index-1)) + ". " + title
	case types.StyleNumeric:
		return strconv.Itoa(index) + ". " + title
	}
	if index >= 1 && index <= len(romanNumerals) {
		return romanNumerals[index-1] + ". " + title
	}
	return strconv.Itoa(index) + ". " + title
}

// Fallback synthesises the six-section outline for topicText's type with
// headings numbered in style.
func Fallback(topicText string, style types.NumberingStyle) []types.Section {
	return fallbackWith(topic.Analyze(topicText), style)
}

func fallbackWith(a topic.Analysis, style types.NumberingStyle) []types.Section {
	build, ok := templates[a.Type]
	if !ok {
		build = generalTemplate
	}
	sections := build(a)
	for i := range sections {
		sections[i].Title = NumberedTitle(style, i+1, sections[i].Title)
	}
	return sections
}
