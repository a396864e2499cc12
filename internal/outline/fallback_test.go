// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outline-engine/pkg/types"
)

func TestNumberedTitle(t *testing.T) {
	tests := []struct {
		style types.NumberingStyle
		index int
		want  string
	}{
		{types.StyleHash, 3, "# Title"},
		{types.StyleAlpha, 1, "A. Title"},
		{types.StyleAlpha, 6, "F. Title"},
		{types.StyleNumeric, 4, "4. Title"},
		{types.StyleRoman, 1, "I. Title"},
		{types.StyleRoman, 4, "IV. Title"},
		{types.StyleRoman, 6, "VI. Title"},
		{types.StyleNone, 2, "II. Title"},
		{types.NumberingStyle("unknown"), 5, "V. Title"},
		{types.StyleRoman, 11, "11. Title"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberedTitle(tt.style, tt.index, "Title"), "%s %d", tt.style, tt.index)
	}
}

func TestFallbackHowTo(t *testing.T) {
	got := Fallback("How to Bake Bread", types.StyleRoman)
	require.Len(t, got, 6)

	titles := make([]string, len(got))
	for i, s := range got {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		"I. Introduction: Why Bake Bread Matters",
		"II. What You'll Need",
		"III. Step-by-Step Process",
		"IV. Common Mistakes to Avoid",
		"V. Advanced Tips for Better Results",
		"VI. Conclusion and Next Steps",
	}, titles)
	assert.Equal(t, []string{
		"The importance of Bake Bread",
		"Common challenges people face",
		"What you'll learn in this guide",
	}, got[0].Items)
	assert.Len(t, got[2].Items, 4)
}

func TestFallbackComparison(t *testing.T) {
	got := Fallback("Cats vs Dogs", types.StyleHash)
	require.Len(t, got, 6)
	assert.Equal(t, "# Introduction to Cats and Dogs", got[0].Title)
	assert.Equal(t, "What is Cats? - Overview and history", got[0].Items[0])
	assert.Equal(t, "Dogs standout features", got[1].Items[1])
	assert.Equal(t, "# Verdict and Recommendations", got[5].Title)

	placeholder := Fallback("A Comparison of Databases", types.StyleHash)
	assert.Equal(t, "# Introduction to Option A and Option B", placeholder[0].Title)
}

func TestFallbackReview(t *testing.T) {
	got := Fallback("Pixel 9 Review", types.StyleNumeric)
	require.Len(t, got, 6)
	assert.Equal(t, "1. Introduction to Pixel 9", got[0].Title)
	assert.Equal(t, "What is Pixel 9? - Overview and background", got[0].Items[0])
	assert.Equal(t, "6. Final Verdict", got[5].Title)

	assert.Equal(t, "1. Introduction to Product", Fallback("Review", types.StyleNumeric)[0].Title)
}

func TestFallbackListicle(t *testing.T) {
	got := Fallback("Travel Tips", types.StyleAlpha)
	require.Len(t, got, 6)
	assert.Equal(t, "A. Introduction: Why Travel Matter", got[0].Title)
	assert.Equal(t, "B. Essential Tips (#1-5)", got[1].Title)
	assert.Equal(t, []string{
		"Tip #11: Specific actionable advice",
		"Tip #12: Specific actionable advice",
		"Tip #13: Specific actionable advice",
		"Tip #14: Specific actionable advice",
		"Tip #15: Specific actionable advice",
	}, got[3].Items)
	assert.Equal(t, "F. Implementation Plan", got[5].Title)
}

func TestFallbackGeneral(t *testing.T) {
	got := Fallback("Time Management", types.StyleRoman)
	require.Len(t, got, 6)
	assert.Equal(t, "I. Introduction", got[0].Title)
	assert.Equal(t, "What is Time Management? - Definitions and context", got[0].Items[0])
	assert.Equal(t, "VI. Conclusion and Future Directions", got[5].Title)
}

func TestFallbackAlwaysSixSections(t *testing.T) {
	topics := []string{"How to Knit", "Cats vs Dogs", "Phone Review", "Travel Tips", "Gardening"}
	styles := []types.NumberingStyle{types.StyleRoman, types.StyleAlpha, types.StyleNumeric, types.StyleHash}
	for _, topicText := range topics {
		for _, style := range styles {
			got := Fallback(topicText, style)
			require.Len(t, got, 6, "%s/%s", topicText, style)
			for i, s := range got {
				assert.NotEmpty(t, s.Items, "%s/%s section %d", topicText, style, i)
			}
		}
	}
}

func TestFallbackDeterministic(t *testing.T) {
	assert.Equal(t, Fallback("Cats vs Dogs", types.StyleAlpha), Fallback("Cats vs Dogs", types.StyleAlpha))
}

// Templates are rebuilt per call, so renumbering one result must not
// leak into the next.
func TestFallbackTemplatesNotShared(t *testing.T) {
	first := Fallback("Gardening", types.StyleHash)
	first[0].Items[0] = "mutated"
	second := Fallback("Gardening", types.StyleRoman)
	assert.Equal(t, "I. Introduction", second[0].Title)
	assert.Equal(t, "What is Gardening? - Definitions and context", second[0].Items[0])
}
