// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/outline-engine/internal/structure"
	"github.com/pdiddy/outline-engine/internal/topic"
	"github.com/pdiddy/outline-engine/pkg/types"
)

const (
	MinTopicLength = 3
	MaxTopicLength = 200
)

// ErrTopicLength is returned by ValidateTopic for topics outside
// MinTopicLength..MaxTopicLength characters.
var ErrTopicLength = errors.New("topic length out of range")

// ValidateTopic checks that the trimmed topic is between MinTopicLength and
// MaxTopicLength characters long.
func ValidateTopic(s string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n < MinTopicLength || n > MaxTopicLength {
		return fmt.Errorf("%w: got %d characters, want %d to %d",
			ErrTopicLength, n, MinTopicLength, MaxTopicLength)
	}
	return nil
}

// Generated is an outline together with how it was produced.
type Generated struct {
	Outline   types.Outline
	TopicType types.TopicType

	// Style is the numbering style of the outline headings: the style of
	// the sample's first heading, or the style detected for the fallback.
	Style types.NumberingStyle

	// Fallback reports whether the six-section template was used.
	Fallback bool
}

// Generate builds an outline for topicText shaped like sampleText. When the
// sample has headings its sections are adapted; otherwise the fallback
// template is used with a style detected from the raw sample text.
func Generate(topicText, sampleText string) Generated {
	a := topic.Analyze(topicText)
	parsed := structure.Parse(sampleText)

	g := Generated{
		TopicType: a.Type,
		Style:     parsed.Style,
	}
	if parsed.Empty() {
		g.Style = structure.DetectFallbackStyle(sampleText)
		g.Fallback = true
		g.Outline = types.Outline{Title: topicText, Sections: fallbackWith(a, g.Style)}
		return g
	}
	g.Outline = types.Outline{Title: topicText, Sections: adaptWith(parsed.Sections, a)}
	return g
}
