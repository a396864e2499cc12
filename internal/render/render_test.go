// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outline-engine/internal/structure"
	"github.com/pdiddy/outline-engine/pkg/types"
)

func testOutline() types.Outline {
	return types.Outline{
		Title: "Cats vs Dogs",
		Sections: []types.Section{
			{Title: "I. Intro", Items: []string{"Overview of Cats and Dogs", "Why comparing Cats and Dogs matters"}},
			{Title: "II. Body", Items: []string{"point three related to Cats vs Dogs"}},
		},
	}
}

func TestText(t *testing.T) {
	want := `Cats vs Dogs

I. Intro
- Overview of Cats and Dogs
- Why comparing Cats and Dogs matters

II. Body
- point three related to Cats vs Dogs
`
	assert.Equal(t, want, Text(testOutline()))
}

func TestTextParsesBack(t *testing.T) {
	o := testOutline()
	got := structure.Parse(Text(o))
	assert.Equal(t, types.StyleRoman, got.Style)
	assert.Equal(t, o.Sections, got.Sections)
}

func TestMarkdown(t *testing.T) {
	o := types.Outline{
		Title: "Gardening",
		Sections: []types.Section{
			{Title: "# Introduction", Items: []string{"Why it matters"}},
			{Title: "B. Soil", Items: []string{"Compost", "Drainage"}},
		},
	}
	want := `# Gardening

## Introduction

- Why it matters

## B. Soil

- Compost
- Drainage
`
	assert.Equal(t, want, Markdown(o))
}

func TestHTML(t *testing.T) {
	html, err := HTML(testOutline())
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Cats vs Dogs</h1>")
	assert.Contains(t, html, "<h2>I. Intro</h2>")
	assert.Contains(t, html, "<li>Overview of Cats and Dogs</li>")
	assert.Equal(t, 2, strings.Count(html, "<ul>"))
}

func TestWrite(t *testing.T) {
	o := testOutline()
	tests := []struct {
		format types.OutputFormat
		want   string
	}{
		{types.FormatText, "- Overview of Cats and Dogs\n"},
		{"", "II. Body\n"},
		{types.FormatMarkdown, "## II. Body\n"},
		{types.FormatHTML, "<h2>II. Body</h2>"},
		{types.FormatYAML, "title: Cats vs Dogs\n"},
		{types.FormatJSON, `"title": "Cats vs Dogs"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, o, tt.format))
			assert.Contains(t, buf.String(), tt.want)
		})
	}

	var buf bytes.Buffer
	err := Write(&buf, o, "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestTerminalWithoutColorMatchesText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Terminal(&buf, testOutline(), false))
	assert.Equal(t, Text(testOutline()), buf.String())
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, types.FormatMarkdown, FormatForPath("out/outline.md"))
	assert.Equal(t, types.FormatHTML, FormatForPath("outline.HTML"))
	assert.Equal(t, types.FormatYAML, FormatForPath("outline.yml"))
	assert.Equal(t, types.FormatJSON, FormatForPath("outline.json"))
	assert.Equal(t, types.FormatText, FormatForPath("outline.txt"))
	assert.Equal(t, types.FormatText, FormatForPath("outline"))
}

func TestSaveAndLoadOutline(t *testing.T) {
	for _, name := range []string{"outline.yaml", "outline.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, SaveOutline(path, testOutline()))

			got, err := LoadOutline(path)
			require.NoError(t, err)
			assert.Equal(t, testOutline(), *got)
		})
	}
}

func TestLoadOutlineErrors(t *testing.T) {
	_, err := LoadOutline(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading outline")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":::bad\n"), 0o644))
	_, err = LoadOutline(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing outline")
}
