// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"regexp"
	"strings"

	"github.com/pdiddy/outline-engine/internal/topic"
)

// listPrefix matches a leading numbered-list marker such as "3. ".
var listPrefix = regexp.MustCompile(`^\d+\.\s+`)

// rewriteRule replaces an item whose body contains one of keywords.
type rewriteRule struct {
	keywords []string
	render   func(a topic.Analysis) string
}

// rewriteRules is checked in order against the lower-cased item body.
var rewriteRules = []rewriteRule{
	{
		keywords: []string{"example", "case stud"},
		render:   func(a topic.Analysis) string { return "Real-world example of " + a.Topic + " in action" },
	},
	{
		keywords: []string{"benefit", "advantage"},
		render:   func(a topic.Analysis) string { return "Key benefit: improved " + a.HowToBare + " outcomes" },
	},
	{
		keywords: []string{"step", "process"},
		render:   func(a topic.Analysis) string { return "Essential step in mastering " + a.Topic },
	},
	{
		keywords: []string{"tool", "resource"},
		render:   func(a topic.Analysis) string { return "Recommended tools and resources for " + a.Topic },
	},
	{
		keywords: []string{"challenge", "problem"},
		render: func(a topic.Analysis) string {
			return "Common challenge when working with " + a.Topic + " and its solution"
		},
	},
}

// RewriteItem rewords a single item toward the analysed topic. A leading
// "N. " marker is kept verbatim in front of the result. Items matching no
// rule keep their body and gain a " related to {topic}" suffix.
func RewriteItem(item string, a topic.Analysis) string {
	prefix := listPrefix.FindString(item)
	body := item[len(prefix):]
	lower := strings.ToLower(body)

	for _, r := range rewriteRules {
		if containsAny(lower, r.keywords) {
			return prefix + r.render(a)
		}
	}
	return prefix + body + " related to " + a.Topic
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
