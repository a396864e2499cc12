// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/outline-engine/internal/topic"
)

func TestRewriteItem(t *testing.T) {
	tests := []struct {
		name  string
		item  string
		topic string
		want  string
	}{
		{
			name:  "numbered example keeps prefix",
			item:  "3. Check out this example of success",
			topic: "Time Management",
			want:  "3. Real-world example of Time Management in action",
		},
		{
			name:  "case study",
			item:  "Case studies and success stories",
			topic: "Remote Work",
			want:  "Real-world example of Remote Work in action",
		},
		{
			name:  "benefit strips how to from any topic type",
			item:  "Key benefits of professional outlines",
			topic: "Cats vs Dogs",
			want:  "Key benefit: improved Cats vs Dogs outcomes",
		},
		{
			name:  "advantage on a howto topic",
			item:  "The main Advantage",
			topic: "How to Knit",
			want:  "Key benefit: improved Knit outcomes",
		},
		{
			name:  "step",
			item:  "Preparation steps",
			topic: "Gardening",
			want:  "Essential step in mastering Gardening",
		},
		{
			name:  "process",
			item:  "Iterative improvement process",
			topic: "Gardening",
			want:  "Essential step in mastering Gardening",
		},
		{
			name:  "tool",
			item:  "Toolkit overview",
			topic: "Gardening",
			want:  "Recommended tools and resources for Gardening",
		},
		{
			name:  "challenge",
			item:  "Common challenges and solutions",
			topic: "Gardening",
			want:  "Common challenge when working with Gardening and its solution",
		},
		{
			name:  "problem",
			item:  "2.  Problem areas",
			topic: "Gardening",
			want:  "2.  Common challenge when working with Gardening and its solution",
		},
		{
			name:  "example beats benefit",
			item:  "Example of a benefit",
			topic: "Gardening",
			want:  "Real-world example of Gardening in action",
		},
		{
			name:  "step beats tool",
			item:  "Step one: choose a tool",
			topic: "Gardening",
			want:  "Essential step in mastering Gardening",
		},
		{
			name:  "no rule keeps body",
			item:  "Foundational principles",
			topic: "Gardening",
			want:  "Foundational principles related to Gardening",
		},
		{
			name:  "no rule strips numeric prefix from body only",
			item:  "12. Foundational principles",
			topic: "Gardening",
			want:  "12. Foundational principles related to Gardening",
		},
		{
			name:  "prefix needs whitespace",
			item:  "1.5 million users",
			topic: "Gardening",
			want:  "1.5 million users related to Gardening",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteItem(tt.item, topic.Analyze(tt.topic)))
		})
	}
}
