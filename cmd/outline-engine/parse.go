// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outline-engine/internal/render"
	"github.com/pdiddy/outline-engine/internal/sample"
	"github.com/pdiddy/outline-engine/internal/structure"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <sample-file>",
	Short: "Show the section structure detected in a sample outline",
	Long: `Parse reads a sample outline file and prints the sections and bullet items
found in it, together with the heading numbering style. A sample with no
recognisable headings reports style "none"; generate would fall back to a
fixed template for such a sample.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// parseReport is the JSON form of a parse result.
type parseReport struct {
	Style         types.NumberingStyle `json:"style"`
	FallbackStyle types.NumberingStyle `json:"fallback_style,omitempty"`
	ItemCount     int                  `json:"item_count"`
	Sections      []types.Section      `json:"sections"`
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, content, err := sample.NewLoader(cfg.Sample).Load(args[0])
	if err != nil {
		return err
	}

	res := structure.Parse(content)
	report := parseReport{
		Style:     res.Style,
		ItemCount: res.ItemCount(),
		Sections:  res.Sections,
	}
	if res.Empty() {
		report.FallbackStyle = structure.DetectFallbackStyle(content)
		report.Sections = []types.Section{}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if res.Empty() {
		fmt.Printf("No headings found (style: none). Fallback style: %s\n", report.FallbackStyle)
		return nil
	}
	if err := render.Terminal(os.Stdout, types.Outline{Title: args[0], Sections: res.Sections}, cfg.Render.Color); err != nil {
		return err
	}
	fmt.Printf("\n%d sections, %d items, style: %s\n", len(res.Sections), report.ItemCount, res.Style)
	return nil
}

func init() {
	parseCmd.Flags().Bool("json", false, "output the parse result as JSON")

	rootCmd.AddCommand(parseCmd)
}
