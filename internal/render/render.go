// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats outlines as plain outline text, Markdown, HTML,
// YAML, or JSON, and loads and saves outline files.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// Text renders o in the sample format the structure parser reads: the topic
// on the first line, then each heading followed by "- item" lines. Parsing
// the result yields o's sections again.
func Text(o types.Outline) string {
	var b strings.Builder
	b.WriteString(o.Title)
	b.WriteString("\n")
	for _, s := range o.Sections {
		b.WriteString("\n")
		b.WriteString(s.Title)
		b.WriteString("\n")
		for _, item := range s.Items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return b.String()
}

// Markdown renders o with the topic as a level-one heading and each section
// as a level-two heading over a bullet list.
func Markdown(o types.Outline) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", o.Title)
	for _, s := range o.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", headingText(s.Title))
		for _, item := range s.Items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return b.String()
}

// HTML renders the Markdown form of o to HTML.
func HTML(o types.Outline) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(o)), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// YAML marshals o to YAML.
func YAML(o types.Outline) ([]byte, error) {
	data, err := yaml.Marshal(&o)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}

// JSON marshals o to indented JSON.
func JSON(o types.Outline) ([]byte, error) {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Write renders o to w in the given format.
func Write(w io.Writer, o types.Outline, format types.OutputFormat) error {
	var out string
	switch format {
	case types.FormatText, "":
		out = Text(o)
	case types.FormatMarkdown:
		out = Markdown(o)
	case types.FormatHTML:
		html, err := HTML(o)
		if err != nil {
			return err
		}
		out = html
	case types.FormatYAML:
		data, err := YAML(o)
		if err != nil {
			return err
		}
		out = string(data)
	case types.FormatJSON:
		data, err := JSON(o)
		if err != nil {
			return err
		}
		out = string(data)
	default:
		return fmt.Errorf("unsupported format %q: use text, markdown, html, yaml, or json", format)
	}
	_, err := io.WriteString(w, out)
	return err
}

// headingText drops a leading "# " so hash-numbered titles do not nest
// inside the Markdown heading marker.
func headingText(title string) string {
	return strings.TrimPrefix(title, "# ")
}
