// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"github.com/pdiddy/outline-engine/internal/topic"
	"github.com/pdiddy/outline-engine/pkg/types"
)

// IntroductionItems returns n introduction items for the analysed topic.
// The three type-specific candidates are truncated to n, or padded with
// "Additional context about {topic}" when n is larger.
func IntroductionItems(a topic.Analysis, n int) []string {
	return fit(introductionCandidates(a), n, "Additional context about "+a.Topic)
}

// ConclusionItems returns n conclusion items for the analysed topic: a
// summary, the practical takeaways, then one type-specific item, padded
// with "Additional reflections on {topic}".
func ConclusionItems(a topic.Analysis, n int) []string {
	candidates := []string{
		"Summary of key points about " + a.Topic,
		"Practical takeaways and next steps",
		conclusionClosers[a.Type](a),
	}
	return fit(candidates, n, "Additional reflections on "+a.Topic)
}

func introductionCandidates(a topic.Analysis) []string {
	t := a.Topic
	switch a.Type {
	case types.TopicHowTo:
		return []string{
			"Why learning to " + a.Bare + " is important",
			"Common challenges when trying to " + a.Bare,
			"Benefits you'll gain from mastering " + a.Bare,
		}
	case types.TopicComparison:
		if !a.Compared {
			return []string{
				"Overview of the options being compared",
				"Importance of making the right choice",
				"Key factors in this comparison",
			}
		}
		return []string{
			"Overview of " + a.ItemA + " and " + a.ItemB,
			"Why comparing " + a.ItemA + " and " + a.ItemB + " matters",
			"Key factors to consider in this comparison",
		}
	case types.TopicReview:
		return []string{
			"Overview of " + t,
			"Why this " + t + " review matters",
			"What to expect from this analysis",
		}
	case types.TopicListicle:
		return []string{
			"Why these " + t + " are game-changers",
			"Common problems these tips will solve",
			"How to get the most from this guide",
		}
	}
	return []string{
		"What is " + t + " - definitions and context",
		"Why understanding " + t + " matters today",
		"Key aspects of " + t + " covered in this article",
	}
}

var conclusionClosers = map[types.TopicType]func(topic.Analysis) string{
	types.TopicHowTo: func(a topic.Analysis) string {
		return "Resources for further learning about " + a.Topic
	},
	types.TopicComparison: func(topic.Analysis) string {
		return "Final recommendation based on your specific needs"
	},
	types.TopicReview: func(a topic.Analysis) string {
		return "Final verdict on " + a.Topic
	},
	types.TopicListicle: func(topic.Analysis) string {
		return "How to combine these tips for maximum results"
	},
	types.TopicGeneral: func(a topic.Analysis) string {
		return "Future trends in " + a.Topic + " to watch"
	},
}

// fit pads candidates with filler up to n items or keeps the first n.
func fit(candidates []string, n int, filler string) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(candidates) {
			out = append(out, candidates[i])
		} else {
			out = append(out, filler)
		}
	}
	return out
}
