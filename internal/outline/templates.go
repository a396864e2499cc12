// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strconv"

	"github.com/pdiddy/outline-engine/internal/topic"
	"github.com/pdiddy/outline-engine/pkg/types"
)

// templates holds the six-section outline synthesised for each topic type
// when a sample has no parseable structure. Titles are unnumbered here.
var templates = map[types.TopicType]func(a topic.Analysis) []types.Section{
	types.TopicHowTo:      howToTemplate,
	types.TopicComparison: comparisonTemplate,
	types.TopicReview:     reviewTemplate,
	types.TopicListicle:   listicleTemplate,
	types.TopicGeneral:    generalTemplate,
}

func howToTemplate(a topic.Analysis) []types.Section {
	return []types.Section{
		{
			Title: "Introduction: Why " + a.Bare + " Matters",
			Items: []string{
				"The importance of " + a.Bare,
				"Common challenges people face",
				"What you'll learn in this guide",
			},
		},
		{
			Title: "What You'll Need",
			Items: []string{
				"Essential tools and resources",
				"Prerequisites and requirements",
				"Preparation steps",
			},
		},
		{
			Title: "Step-by-Step Process",
			Items: []string{
				"First major step with detailed instructions",
				"Second important step with tips for success",
				"Third critical step with troubleshooting guidance",
				"Final steps to complete the process",
			},
		},
		{
			Title: "Common Mistakes to Avoid",
			Items: []string{
				"Mistake #1: Description and solution",
				"Mistake #2: Description and solution",
				"Mistake #3: Description and solution",
			},
		},
		{
			Title: "Advanced Tips for Better Results",
			Items: []string{
				"Pro tip #1 for optimization",
				"Pro tip #2 for efficiency",
				"Pro tip #3 for professional results",
			},
		},
		{
			Title: "Conclusion and Next Steps",
			Items: []string{
				"Summary of key points",
				"Additional resources to explore",
				"What to try next after mastering this process",
			},
		},
	}
}

func comparisonTemplate(a topic.Analysis) []types.Section {
	x, y := a.ItemA, a.ItemB
	return []types.Section{
		{
			Title: "Introduction to " + x + " and " + y,
			Items: []string{
				"What is " + x + "? - Overview and history",
				"What is " + y + "? - Overview and history",
				"Why comparing these options matters",
				"Who should read this comparison",
			},
		},
		{
			Title: "Key Features Comparison",
			Items: []string{
				x + " standout features",
				y + " standout features",
				"Overlapping capabilities",
				"Feature-by-feature detailed breakdown",
			},
		},
		{
			Title: "Performance and Efficiency",
			Items: []string{
				x + " performance metrics",
				y + " performance metrics",
				"Real-world speed and efficiency tests",
				"Resource utilization comparison",
			},
		},
		{
			Title: "Cost Analysis",
			Items: []string{
				x + " pricing structure",
				y + " pricing structure",
				"Hidden costs to consider",
				"Long-term cost projection",
			},
		},
		{
			Title: "Pros and Cons",
			Items: []string{
				x + " advantages and limitations",
				y + " advantages and limitations",
				"Ideal use cases for each option",
			},
		},
		{
			Title: "Verdict and Recommendations",
			Items: []string{
				"Best for beginners",
				"Best for professionals",
				"Best value for money",
				"Final recommendation based on specific needs",
			},
		},
	}
}

func reviewTemplate(a topic.Analysis) []types.Section {
	p := a.Product
	return []types.Section{
		{
			Title: "Introduction to " + p,
			Items: []string{
				"What is " + p + "? - Overview and background",
				"Key specifications and features",
				"Market positioning and target audience",
				"First impressions",
			},
		},
		{
			Title: "Design and Build Quality",
			Items: []string{
				"Aesthetic design analysis",
				"Materials and durability",
				"Ergonomics and usability",
				"Comparison to competitors",
			},
		},
		{
			Title: "Performance Evaluation",
			Items: []string{
				"Testing methodology",
				"Performance metrics and results",
				"Real-world usage scenarios",
				"Stress testing outcomes",
			},
		},
		{
			Title: "Feature Deep Dive",
			Items: []string{
				"Standout feature #1 - Analysis",
				"Standout feature #2 - Analysis",
				"Standout feature #3 - Analysis",
				"Missing features and limitations",
			},
		},
		{
			Title: "Value for Money",
			Items: []string{
				"Pricing analysis",
				"Comparison to alternatives",
				"Long-term value assessment",
				"Additional costs to consider",
			},
		},
		{
			Title: "Final Verdict",
			Items: []string{
				"Scoring breakdown",
				"Who should buy this",
				"Who should avoid this",
				"Final recommendations",
			},
		},
	}
}

func listicleTemplate(a topic.Analysis) []types.Section {
	return []types.Section{
		{
			Title: "Introduction: Why " + a.Bare + " Matter",
			Items: []string{
				"The importance of mastering " + a.Bare,
				"Common challenges people face",
				"How these tips will help you succeed",
			},
		},
		{
			Title: "Essential Tips (#1-5)",
			Items: tipItems(1, 5),
		},
		{
			Title: "Advanced Strategies (#6-10)",
			Items: tipItems(6, 10),
		},
		{
			Title: "Expert-Level Techniques (#11-15)",
			Items: tipItems(11, 15),
		},
		{
			Title: "Tools and Resources",
			Items: []string{
				"Recommended tool/resource #1",
				"Recommended tool/resource #2",
				"Recommended tool/resource #3",
				"How to combine these resources for best results",
			},
		},
		{
			Title: "Implementation Plan",
			Items: []string{
				"Getting started: First steps",
				"Building momentum: Week 1 plan",
				"Mastering the process: Long-term strategy",
				"Measuring your success",
			},
		},
	}
}

func generalTemplate(a topic.Analysis) []types.Section {
	return []types.Section{
		{
			Title: "Introduction",
			Items: []string{
				"What is " + a.Topic + "? - Definitions and context",
				"Why this topic matters",
				"Overview of key points",
			},
		},
		{
			Title: "Background and Context",
			Items: []string{
				"Historical development",
				"Current landscape",
				"Future trends and predictions",
			},
		},
		{
			Title: "Key Components",
			Items: []string{
				"First major component - Explanation and analysis",
				"Second major component - Explanation and analysis",
				"Third major component - Explanation and analysis",
				"How these components interact",
			},
		},
		{
			Title: "Practical Applications",
			Items: []string{
				"Real-world application #1",
				"Real-world application #2",
				"Real-world application #3",
				"Implementation strategies",
			},
		},
		{
			Title: "Challenges and Solutions",
			Items: []string{
				"Common challenge #1 and how to overcome it",
				"Common challenge #2 and how to overcome it",
				"Common challenge #3 and how to overcome it",
				"Preventative measures",
			},
		},
		{
			Title: "Conclusion and Future Directions",
			Items: []string{
				"Summary of key points",
				"Actionable takeaways",
				"Future developments to watch",
				"Final thoughts",
			},
		},
	}
}

// tipItems returns "Tip #n: Specific actionable advice" for n in [from, to].
func tipItems(from, to int) []string {
	items := make([]string, 0, to-from+1)
	for n := from; n <= to; n++ {
		items = append(items, "Tip #"+strconv.Itoa(n)+": Specific actionable advice")
	}
	return items
}
