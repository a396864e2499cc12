// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topic classifies a topic string by rhetorical form and derives the
// substrings the outline templates refer to.
package topic

import (
	"regexp"
	"strings"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// rule maps a set of case-insensitive keywords to a topic type.
type rule struct {
	keywords []string
	kind     types.TopicType
}

// rules is checked in order; the first rule with a matching keyword wins.
// "How to Guide Review of X" is therefore a howto, not a review.
var rules = []rule{
	{keywords: []string{"how to", "guide"}, kind: types.TopicHowTo},
	{keywords: []string{"vs", "comparison"}, kind: types.TopicComparison},
	{keywords: []string{"review", "analysis"}, kind: types.TopicReview},
	{keywords: []string{"tips", "tricks"}, kind: types.TopicListicle},
}

// Classify returns the topic type of s. It never fails; topics matching no
// rule are general.
func Classify(s string) types.TopicType {
	lower := strings.ToLower(s)
	for _, r := range rules {
		if containsAny(lower, r.keywords) {
			return r.kind
		}
	}
	return types.TopicGeneral
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var (
	howToWord     = regexp.MustCompile(`(?i)how to`)
	listicleWords = regexp.MustCompile(`(?i)tips|tricks|hacks`)
	reviewWords   = regexp.MustCompile(`(?i)review|analysis`)
	versusSplit   = regexp.MustCompile(`(?i)^(.*?)\s+vs\.?\s+(.*)$`)
)

const (
	defaultItemA   = "Option A"
	defaultItemB   = "Option B"
	defaultProduct = "Product"
)

// Analysis is a classified topic with the strings derived from it.
type Analysis struct {
	// Topic is the raw topic string.
	Topic string

	Type types.TopicType

	// Bare is the topic without its type marker: "how to" removed for
	// howto, "tips"/"tricks"/"hacks" removed for listicle. Other types
	// leave it equal to the trimmed topic.
	Bare string

	// HowToBare is the topic with "how to" removed whatever the type.
	HowToBare string

	// ItemA and ItemB are the two sides of a comparison, or the
	// placeholders "Option A" and "Option B" when the topic has no
	// "vs" separator. Compared reports which case applied.
	ItemA    string
	ItemB    string
	Compared bool

	// Product is the reviewed subject with "review"/"analysis" removed,
	// or "Product" when nothing is left.
	Product string
}

// Analyze classifies s and derives the strings used by outline templates.
func Analyze(s string) Analysis {
	a := Analysis{
		Topic:     s,
		Type:      Classify(s),
		Bare:      strings.TrimSpace(s),
		HowToBare: strip(howToWord, s),
		ItemA:     defaultItemA,
		ItemB:     defaultItemB,
		Product:   defaultProduct,
	}

	switch a.Type {
	case types.TopicHowTo:
		a.Bare = a.HowToBare
	case types.TopicListicle:
		a.Bare = strip(listicleWords, s)
	case types.TopicComparison:
		if m := versusSplit.FindStringSubmatch(s); m != nil {
			a.ItemA = strings.TrimSpace(m[1])
			a.ItemB = strings.TrimSpace(m[2])
			a.Compared = true
		}
	case types.TopicReview:
		if p := strip(reviewWords, s); p != "" {
			a.Product = p
		}
	}
	return a
}

// strip removes every match of re from s and trims the result.
func strip(re *regexp.Regexp, s string) string {
	return strings.TrimSpace(re.ReplaceAllString(s, ""))
}
