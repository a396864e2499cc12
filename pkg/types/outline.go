// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the outline-engine.
// The structure parser, topic classifier, adapter, renderers, and the
// sample library all exchange these values.
package types

// NumberingStyle is the heading prefix convention of an outline.
type NumberingStyle string

const (
	StyleRoman   NumberingStyle = "roman"
	StyleAlpha   NumberingStyle = "alpha"
	StyleNumeric NumberingStyle = "numeric"
	StyleHash    NumberingStyle = "hash"
	StyleNone    NumberingStyle = "none"
)

// TopicType classifies the rhetorical form of a topic string.
type TopicType string

const (
	TopicHowTo      TopicType = "howto"
	TopicComparison TopicType = "comparison"
	TopicReview     TopicType = "review"
	TopicListicle   TopicType = "listicle"
	TopicGeneral    TopicType = "general"
)

// Section is a titled group of bullet items.
type Section struct {
	// Title is the heading text including any numbering prefix
	// (e.g. "II. Body", "# Analysis").
	Title string `json:"title" yaml:"title"`

	// Items lists the section's bullet-level lines in source order.
	Items []string `json:"items" yaml:"items"`
}

// Outline is a generated outline for a topic.
type Outline struct {
	// Title is the raw topic string the outline was generated for.
	Title string `json:"title" yaml:"title"`

	// Sections lists the outline sections in order.
	Sections []Section `json:"sections" yaml:"sections"`
}

// ItemCount returns the total number of items across all sections.
func (o Outline) ItemCount() int {
	n := 0
	for _, s := range o.Sections {
		n += len(s.Items)
	}
	return n
}
