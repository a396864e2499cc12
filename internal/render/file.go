// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// FormatForPath picks an output format from a file extension, defaulting to
// text for unknown extensions.
func FormatForPath(path string) types.OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return types.FormatMarkdown
	case ".html", ".htm":
		return types.FormatHTML
	case ".yaml", ".yml":
		return types.FormatYAML
	case ".json":
		return types.FormatJSON
	}
	return types.FormatText
}

// SaveOutline writes o to path in the format implied by its extension.
func SaveOutline(path string, o types.Outline) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	if err := Write(f, o, FormatForPath(path)); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// LoadOutline reads an outline saved as YAML or JSON.
func LoadOutline(path string) (*types.Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline: %w", err)
	}
	var o types.Outline
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing outline: %w", err)
	}
	return &o, nil
}
