// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sample loads the plain text of sample outline files.
// Binary document formats (DOCX, PDF) are not extracted here; only files
// whose extension maps to a registered Extractor are accepted.
package sample

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/outline-engine/pkg/types"
)

var (
	// ErrUnsupportedType is returned for files whose extension is not accepted.
	ErrUnsupportedType = errors.New("unsupported sample file type")

	// ErrTooLarge is returned for files over the configured size limit.
	ErrTooLarge = errors.New("sample file too large")

	// ErrNotText is returned for files that are not valid UTF-8 text.
	ErrNotText = errors.New("sample file is not UTF-8 text")
)

// Extractor turns the bytes of a sample file into plain text.
type Extractor interface {
	Extract(r io.Reader) (string, error)
}

// PlainText passes UTF-8 text through, normalising CRLF line endings.
type PlainText struct{}

// Extract reads r fully and returns it as text.
func (PlainText) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// extractors maps a lower-case extension to its extractor.
var extractors = map[string]Extractor{
	".txt":      PlainText{},
	".md":       PlainText{},
	".markdown": PlainText{},
}

// Loader reads sample files within the limits of a SampleConfig.
type Loader struct {
	maxBytes   int64
	extensions []string
}

// NewLoader returns a Loader for cfg. Zero values fall back to DefaultConfig.
func NewLoader(cfg types.SampleConfig) *Loader {
	def := types.DefaultConfig().Sample
	l := &Loader{maxBytes: cfg.MaxBytes, extensions: cfg.Extensions}
	if l.maxBytes <= 0 {
		l.maxBytes = def.MaxBytes
	}
	if len(l.extensions) == 0 {
		l.extensions = def.Extensions
	}
	return l
}

// Load reads the sample at path and returns its name (the base file name)
// and extracted text.
func (l *Loader) Load(path string) (name, content string, err error) {
	name = filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))
	extractor, ok := extractors[ext]
	if !ok || !slices.Contains(l.extensions, ext) {
		return "", "", fmt.Errorf("%w: %s (accepted: %s)", ErrUnsupportedType, name, strings.Join(l.extensions, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("reading sample: %w", err)
	}
	if info.Size() > l.maxBytes {
		return "", "", fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, name, info.Size(), l.maxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("reading sample: %w", err)
	}
	defer f.Close()

	content, err = extractor.Extract(io.LimitReader(f, l.maxBytes))
	if err != nil {
		return "", "", fmt.Errorf("extracting %s: %w", name, err)
	}
	return name, content, nil
}

const previewLength = 200

// Preview returns the first 200 characters of content, with "..." appended
// when it was cut.
func Preview(content string) string {
	if utf8.RuneCountInString(content) <= previewLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:previewLength]) + "..."
}
