// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/outline-engine/pkg/types"
)

const exportLimit = 100000

// ExportEntry is one generated outline in an export file, with the name of
// the sample it came from when that sample still exists.
type ExportEntry struct {
	types.GeneratedOutline `yaml:",inline"`
	SampleName             string `json:"sample_name,omitempty" yaml:"sample_name,omitempty"`
}

// ExportYAML writes the generation history to <dir>/export.yaml and returns
// the path written. It supports the same filters as ListGenerated.
func (s *Store) ExportYAML(ctx context.Context, opts HistoryOptions) (string, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dir, "export.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the generation history to <dir>/export.json and returns
// the path written. It supports the same filters as ListGenerated.
func (s *Store) ExportJSON(ctx context.Context, opts HistoryOptions) (string, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dir, "export.json")
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts HistoryOptions) ([]ExportEntry, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	history, err := s.ListGenerated(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	names := make(map[string]string)
	entries := make([]ExportEntry, len(history))
	for i, g := range history {
		entries[i] = ExportEntry{GeneratedOutline: g}
		if g.SampleID == "" {
			continue
		}
		name, ok := names[g.SampleID]
		if !ok {
			if sm, err := s.GetSample(ctx, g.SampleID); err == nil {
				name = sm.Name
			}
			names[g.SampleID] = name
		}
		entries[i].SampleName = name
	}
	return entries, nil
}
