// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pdiddy/outline-engine/internal/library"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and export generated outlines (list, show, export)",
	Long: `History gives access to the outlines recorded by generate. Use subcommands
to list them, print one again in any output format, or export the history.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated outlines, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	_, store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	history, err := store.ListGenerated(context.Background(), historyOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(history)
	}
	return formatHistoryTable(os.Stdout, history)
}

func formatHistoryTable(w io.Writer, history []types.GeneratedOutline) error {
	if len(history) == 0 {
		fmt.Fprintln(w, "No generated outlines.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Topic", "Type", "Style", "Sections", "Source", "Created"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, g := range history {
		source := "sample " + shortID(g.SampleID)
		switch {
		case g.Fallback:
			source = "fallback"
		case g.SampleID == "":
			source = "file"
		}
		table.Append([]string{
			shortID(g.ID),
			truncate(g.Topic, 40),
			string(g.TopicType),
			string(g.Style),
			fmt.Sprint(len(g.Outline.Sections)),
			source,
			g.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a generated outline again",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	g, err := store.GetGenerated(context.Background(), args[0])
	if err != nil {
		return err
	}

	rc := cfg.Render
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		rc.Format = types.OutputFormat(format)
	}
	return writeOutline(os.Stdout, g.Outline, rc)
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the generation history to YAML or JSON",
	Long: `Export writes the generation history (or a filtered subset) to
export.yaml or export.json in the library directory.`,
	Args: cobra.NoArgs,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	_, store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := historyOptsFromFlags(cmd)
	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func historyOptsFromFlags(cmd *cobra.Command) library.HistoryOptions {
	sampleID, _ := cmd.Flags().GetString("sample")
	topicType, _ := cmd.Flags().GetString("type")
	limit, _ := cmd.Flags().GetInt("limit")
	return library.HistoryOptions{
		SampleID:   sampleID,
		TopicType:  types.TopicType(topicType),
		MaxResults: limit,
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().String("sample", "", "filter by full sample ID")
		c.Flags().String("type", "", "filter by topic type: howto, comparison, review, listicle, general")
		c.Flags().Int("limit", 0, "maximum outlines (0 = default)")
	}
	historyListCmd.Flags().Bool("json", false, "output history as JSON")
	historyShowCmd.Flags().String("format", "", "output format: text, markdown, html, yaml, or json")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
