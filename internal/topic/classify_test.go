// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/outline-engine/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		topic string
		want  types.TopicType
	}{
		{"How to Bake Bread", types.TopicHowTo},
		{"The Complete Guide to Sourdough", types.TopicHowTo},
		{"HOW TO WIN", types.TopicHowTo},
		{"Cats vs Dogs", types.TopicComparison},
		{"A Comparison of Databases", types.TopicComparison},
		{"iPhone 15 Review", types.TopicReview},
		{"Market Analysis for 2026", types.TopicReview},
		{"10 Productivity Tips", types.TopicListicle},
		{"Kitchen Tricks", types.TopicListicle},
		{"Time Management", types.TopicGeneral},
		{"", types.TopicGeneral},
		// Precedence: earlier rules win.
		{"How to Guide Review of X", types.TopicHowTo},
		{"Guide: Mac vs PC", types.TopicHowTo},
		{"Review of Vue vs React", types.TopicComparison},
		{"Tips for writing an analysis", types.TopicReview},
		// Substring tests match inside words.
		{"Life hacks for canvas tents", types.TopicGeneral},
		{"Elvis Costello", types.TopicGeneral},
		{"Obvs a joke", types.TopicComparison},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.topic))
		})
	}
}

func TestAnalyzeComparison(t *testing.T) {
	tests := []struct {
		topic        string
		wantA, wantB string
		wantCompared bool
	}{
		{"Cats vs Dogs", "Cats", "Dogs", true},
		{"React VS. Vue for Beginners", "React", "Vue for Beginners", true},
		{"  Tea   vs   Coffee  ", "Tea", "Coffee", true},
		{"A Comparison of Databases", "Option A", "Option B", false},
		{"vs code setup", "Option A", "Option B", false},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			a := Analyze(tt.topic)
			assert.Equal(t, types.TopicComparison, a.Type)
			assert.Equal(t, tt.wantA, a.ItemA)
			assert.Equal(t, tt.wantB, a.ItemB)
			assert.Equal(t, tt.wantCompared, a.Compared)
		})
	}
}

func TestAnalyzeBareTopic(t *testing.T) {
	tests := []struct {
		topic     string
		wantType  types.TopicType
		wantBare  string
		wantHowTo string
	}{
		{"How to Bake Bread", types.TopicHowTo, "Bake Bread", "Bake Bread"},
		{"Beginner's Guide", types.TopicHowTo, "Beginner's Guide", "Beginner's Guide"},
		{"Gardening Tips and Tricks", types.TopicListicle, "Gardening  and", "Gardening Tips and Tricks"},
		{"Travel Tips", types.TopicListicle, "Travel", "Travel Tips"},
		{"Time Management", types.TopicGeneral, "Time Management", "Time Management"},
		{"Why learn how to code", types.TopicHowTo, "Why learn  code", "Why learn  code"},
		{"Home Office Setup", types.TopicGeneral, "Home Office Setup", "Home Office Setup"},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			a := Analyze(tt.topic)
			assert.Equal(t, tt.wantType, a.Type)
			assert.Equal(t, tt.wantBare, a.Bare)
			assert.Equal(t, tt.wantHowTo, a.HowToBare)
			assert.Equal(t, tt.topic, a.Topic)
		})
	}
}

func TestAnalyzeReviewProduct(t *testing.T) {
	assert.Equal(t, "iPhone 15", Analyze("iPhone 15 Review").Product)
	assert.Equal(t, "Quarterly Sales", Analyze("Quarterly Sales Analysis").Product)
	assert.Equal(t, "Product", Analyze("Review").Product)
	assert.Equal(t, "Product", Analyze("  analysis REVIEW ").Product)
}

func TestAnalyzeDefaults(t *testing.T) {
	a := Analyze("Time Management")
	assert.Equal(t, "Option A", a.ItemA)
	assert.Equal(t, "Option B", a.ItemB)
	assert.False(t, a.Compared)
	assert.Equal(t, "Product", a.Product)
}
