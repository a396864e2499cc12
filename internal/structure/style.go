// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structure

import (
	"regexp"
	"strings"

	"github.com/pdiddy/outline-engine/pkg/types"
)

var (
	alphaLine   = regexp.MustCompile(`(?m)^[A-Z]\.`)
	numericLine = regexp.MustCompile(`(?m)^[0-9]+\.`)
)

// DetectFallbackStyle picks the heading style for a synthesised outline by
// scanning the raw sample text: any '#' selects hash, then a line starting
// with a capital letter and a period selects alpha, then a line starting
// with digits and a period selects numeric. Roman is the default.
//
// This scan is independent of Parse and may disagree with it; for example a
// '#' inside an item forces hash even when the sample has no hash headings.
func DetectFallbackStyle(text string) types.NumberingStyle {
	switch {
	case strings.Contains(text, "#"):
		return types.StyleHash
	case alphaLine.MatchString(text):
		return types.StyleAlpha
	case numericLine.MatchString(text):
		return types.StyleNumeric
	}
	return types.StyleRoman
}
