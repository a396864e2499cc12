// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"io"

	"github.com/fatih/color"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// Terminal writes o to w in the text layout with the topic and headings
// emphasised. When useColor is false the output is identical to Text.
// When it is true colour still follows fatih/color's terminal and NO_COLOR
// detection.
func Terminal(w io.Writer, o types.Outline, useColor bool) error {
	title := color.New(color.Bold, color.Underline)
	heading := color.New(color.FgCyan, color.Bold)
	if !useColor {
		title.DisableColor()
		heading.DisableColor()
	}

	if _, err := title.Fprintln(w, o.Title); err != nil {
		return err
	}
	for _, s := range o.Sections {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if _, err := heading.Fprintln(w, s.Title); err != nil {
			return err
		}
		for _, item := range s.Items {
			if _, err := io.WriteString(w, "- "+item+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
