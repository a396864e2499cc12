// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Sample is a stored sample outline whose structure new outlines imitate.
type Sample struct {
	// ID is a UUID assigned when the sample is added to the library.
	ID string `json:"id" yaml:"id"`

	// Name is the original file name of the sample.
	Name string `json:"name" yaml:"name"`

	// Content is the extracted plain text of the sample.
	Content string `json:"content" yaml:"content"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// GeneratedOutline records one generation run and its result.
type GeneratedOutline struct {
	ID string `json:"id" yaml:"id"`

	// SampleID links to the sample used as the template. Empty when the
	// sample text did not come from the library.
	SampleID string `json:"sample_id,omitempty" yaml:"sample_id,omitempty"`

	// Topic is the topic string the outline was generated for.
	Topic string `json:"topic" yaml:"topic"`

	// TopicType is the classification computed for Topic.
	TopicType TopicType `json:"topic_type" yaml:"topic_type"`

	// Style is the numbering style of the result's headings.
	Style NumberingStyle `json:"style" yaml:"style"`

	// Fallback reports whether the fixed six-section template was used
	// because no structure could be parsed from the sample.
	Fallback bool `json:"fallback" yaml:"fallback"`

	Outline Outline `json:"outline" yaml:"outline"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
