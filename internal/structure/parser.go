// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structure infers the section and bullet layout of a sample outline.
// Parsing never fails: text with no recognisable headings yields an empty
// result with StyleNone, which tells the caller to synthesise an outline
// instead of adapting one.
package structure

import (
	"regexp"
	"strings"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// headingPattern matches a section heading: a Roman numeral, a single
// capital letter, or an integer followed by a period, or a literal '#',
// then whitespace and the heading text.
var headingPattern = regexp.MustCompile(`^\s*([IVX]+\.|[A-Z]\.|[0-9]+\.|#)\s+(.+)$`)

// bulletPattern matches a bullet item introduced by '-', '*' or '•'.
var bulletPattern = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)

var (
	romanPrefix   = regexp.MustCompile(`^[IVX]+\.$`)
	alphaPrefix   = regexp.MustCompile(`^[A-Z]\.$`)
	numericPrefix = regexp.MustCompile(`^[0-9]+\.$`)
)

// Result holds the sections found in a sample and the numbering style of
// its first heading.
type Result struct {
	Sections []types.Section
	Style    types.NumberingStyle
}

// Empty reports whether no sections were found.
func (r Result) Empty() bool {
	return len(r.Sections) == 0
}

// ItemCount returns the total number of items across all sections.
func (r Result) ItemCount() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.Items)
	}
	return n
}

// Parse splits text into headed sections of bullet items.
//
// Bullets before the first heading are dropped. A non-blank line that is
// neither a heading nor a bullet is appended to the previous item of the
// open section, which joins soft-wrapped bullets back together; it is
// dropped when the section has no items yet.
func Parse(text string) Result {
	res := Result{Style: types.StyleNone}

	var current *types.Section
	closeSection := func() {
		if current != nil {
			res.Sections = append(res.Sections, *current)
			current = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			closeSection()
			if res.Style == types.StyleNone {
				res.Style = styleOf(m[1])
			}
			current = &types.Section{Title: line, Items: []string{}}
			continue
		}

		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				current.Items = append(current.Items, m[1])
			}
			continue
		}

		// Continuation of a wrapped bullet.
		if current != nil && len(current.Items) > 0 {
			last := len(current.Items) - 1
			current.Items[last] += " " + line
		}
	}
	closeSection()

	return res
}

// styleOf maps a matched heading prefix to its numbering style. Roman
// numerals are checked before single letters so "I." and "V." count as
// roman, matching the alternation order of headingPattern.
func styleOf(prefix string) types.NumberingStyle {
	switch {
	case prefix == "#":
		return types.StyleHash
	case romanPrefix.MatchString(prefix):
		return types.StyleRoman
	case alphaPrefix.MatchString(prefix):
		return types.StyleAlpha
	case numericPrefix.MatchString(prefix):
		return types.StyleNumeric
	}
	return types.StyleNone
}
