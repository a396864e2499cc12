// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LibraryConfig holds settings for the SQLite sample library.
type LibraryConfig struct {
	// Dir is the directory holding the library database (contains library.db).
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default number of rows returned by list queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// SampleConfig holds settings for loading sample files.
type SampleConfig struct {
	// MaxBytes caps the size of a sample file (default 5 MiB).
	MaxBytes int64 `json:"max_bytes" yaml:"max_bytes" mapstructure:"max_bytes"`

	// Extensions lists the accepted file extensions, lower case with the dot.
	Extensions []string `json:"extensions" yaml:"extensions" mapstructure:"extensions"`
}

// OutputFormat selects how an outline is rendered.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatYAML     OutputFormat = "yaml"
	FormatJSON     OutputFormat = "json"
)

// RenderConfig holds settings for outline output.
type RenderConfig struct {
	// Format selects the output format: text, markdown, html, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Color enables ANSI emphasis for text output on a terminal.
	Color bool `json:"color" yaml:"color" mapstructure:"color"`
}

// Config groups all outline-engine settings.
type Config struct {
	Library LibraryConfig `json:"library" yaml:"library" mapstructure:"library"`
	Sample  SampleConfig  `json:"sample" yaml:"sample" mapstructure:"sample"`
	Render  RenderConfig  `json:"render" yaml:"render" mapstructure:"render"`
}

// DefaultConfig returns the settings used when no config file or flag
// overrides them.
func DefaultConfig() Config {
	return Config{
		Library: LibraryConfig{
			Dir:        "library",
			MaxResults: 20,
		},
		Sample: SampleConfig{
			MaxBytes:   5 * 1024 * 1024,
			Extensions: []string{".txt", ".md", ".markdown"},
		},
		Render: RenderConfig{
			Format: FormatText,
			Color:  true,
		},
	}
}
