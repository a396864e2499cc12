// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outline-engine/pkg/types"
)

const docxSample = `
I. Introduction
- Understanding the importance of a well-structured document
- Key benefits of professional outlines
- Overview of outline methodologies

II. Document Structure Fundamentals
- Headers and section organization
- Bullet points vs. numbered lists
- The hierarchy of information

III. Tools and Resources
- Software recommendations
- Template galleries
- Learning resources

IV. Conclusion
- Implementing what you've learned
- Iterative improvement process
- Next steps in your document journey
`

func TestGenerateAdaptsParsedSample(t *testing.T) {
	g := Generate("How to Train a Puppy", docxSample)

	assert.False(t, g.Fallback)
	assert.Equal(t, types.StyleRoman, g.Style)
	assert.Equal(t, types.TopicHowTo, g.TopicType)
	assert.Equal(t, "How to Train a Puppy", g.Outline.Title)
	require.Len(t, g.Outline.Sections, 4)

	assert.Equal(t, []string{
		"Why learning to Train a Puppy is important",
		"Common challenges when trying to Train a Puppy",
		"Benefits you'll gain from mastering Train a Puppy",
	}, g.Outline.Sections[0].Items)
	assert.Equal(t, []string{
		"Headers and section organization related to How to Train a Puppy",
		"Bullet points vs. numbered lists related to How to Train a Puppy",
		"The hierarchy of information related to How to Train a Puppy",
	}, g.Outline.Sections[1].Items)
	assert.Equal(t, []string{
		"Summary of key points about How to Train a Puppy",
		"Practical takeaways and next steps",
		"Resources for further learning about How to Train a Puppy",
	}, g.Outline.Sections[3].Items)
}

func TestGenerateFallback(t *testing.T) {
	tests := []struct {
		name      string
		sample    string
		wantStyle types.NumberingStyle
		wantFirst string
	}{
		{name: "prose defaults to roman", sample: "Just a paragraph of prose.", wantStyle: types.StyleRoman, wantFirst: "I. Introduction"},
		{name: "hash anywhere", sample: "notes about #topics", wantStyle: types.StyleHash, wantFirst: "# Introduction"},
		{name: "alpha line without space", sample: "A.Intro", wantStyle: types.StyleAlpha, wantFirst: "A. Introduction"},
		{name: "numeric line without space", sample: "1.Intro", wantStyle: types.StyleNumeric, wantFirst: "1. Introduction"},
		{name: "empty sample", sample: "", wantStyle: types.StyleRoman, wantFirst: "I. Introduction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Generate("Gardening", tt.sample)
			assert.True(t, g.Fallback)
			assert.Equal(t, tt.wantStyle, g.Style)
			require.Len(t, g.Outline.Sections, 6)
			assert.Equal(t, tt.wantFirst, g.Outline.Sections[0].Title)
			assert.Equal(t, "Gardening", g.Outline.Title)
		})
	}
}

func TestGenerateConcurrent(t *testing.T) {
	want := Generate("Cats vs Dogs", docxSample)

	var wg sync.WaitGroup
	results := make([]Generated, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Generate("Cats vs Dogs", docxSample)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestValidateTopic(t *testing.T) {
	assert.NoError(t, ValidateTopic("Cats"))
	assert.NoError(t, ValidateTopic("abc"))
	assert.NoError(t, ValidateTopic(strings.Repeat("x", 200)))

	for _, bad := range []string{"", "ab", "  ab  ", strings.Repeat("x", 201)} {
		err := ValidateTopic(bad)
		require.Error(t, err, "topic %q", bad)
		assert.True(t, errors.Is(err, ErrTopicLength))
	}
}
