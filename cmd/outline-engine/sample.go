// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pdiddy/outline-engine/internal/library"
	"github.com/pdiddy/outline-engine/internal/sample"
	"github.com/pdiddy/outline-engine/internal/structure"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Manage the sample outline library (add, list, show, remove)",
	Long: `Sample manages the local library of sample outlines. Generate uses the most
recently added sample unless another one is named.`,
}

// --- add subcommand ---

var sampleAddCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Add sample outline files to the library",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSampleAdd,
}

func runSampleAdd(cmd *cobra.Command, args []string) error {
	cfg, store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	w := statusWriter(cmd)
	loader := sample.NewLoader(cfg.Sample)
	failed := 0
	for _, path := range args {
		name, content, err := loader.Load(path)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			failed++
			continue
		}
		sm, err := store.AddSample(context.Background(), name, content)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			failed++
			continue
		}
		res := structure.Parse(content)
		fmt.Fprintf(w, "added: %s %s (%d sections, style %s)\n", shortID(sm.ID), sm.Name, len(res.Sections), res.Style)
		fmt.Fprintln(os.Stdout, sm.ID)
	}
	if failed > 0 {
		return fmt.Errorf("%d sample(s) failed to load", failed)
	}
	return nil
}

// --- list subcommand ---

var sampleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library samples, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runSampleList,
}

func runSampleList(cmd *cobra.Command, args []string) error {
	_, store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	samples, err := store.ListSamples(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(samples)
	}
	return formatSampleTable(os.Stdout, samples)
}

func formatSampleTable(w io.Writer, samples []types.Sample) error {
	if len(samples) == 0 {
		fmt.Fprintln(w, "No samples in the library.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Sections", "Style", "Added"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, sm := range samples {
		res := structure.Parse(sm.Content)
		table.Append([]string{
			shortID(sm.ID),
			sm.Name,
			fmt.Sprint(len(res.Sections)),
			string(res.Style),
			sm.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()
	return nil
}

// --- show subcommand ---

var sampleShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a library sample",
	Args:  cobra.ExactArgs(1),
	RunE:  runSampleShow,
}

func runSampleShow(cmd *cobra.Command, args []string) error {
	_, store, err := openLibrary()
	if err != nil {
		return err
	}
	defer store.Close()

	sm, err := store.GetSample(context.Background(), args[0])
	if err != nil {
		return err
	}

	if preview, _ := cmd.Flags().GetBool("preview"); preview {
		fmt.Println(sample.Preview(sm.Content))
		return nil
	}
	fmt.Print(sm.Content)
	if !strings.HasSuffix(sm.Content, "\n") {
		fmt.Println()
	}
	return nil
}

// --- remove subcommand ---

var sampleRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a sample from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		sm, err := store.RemoveSample(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(statusWriter(cmd), "removed: %s %s\n", shortID(sm.ID), sm.Name)
		return nil
	},
}

// --- shared helpers ---

func openLibrary() (types.Config, *library.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	store, err := library.NewStore(cfg.Library)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, store, nil
}

// shortID returns the first eight characters of a UUID, enough to pass back
// as an ID prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	sampleListCmd.Flags().Int("limit", 0, "maximum samples to list (0 = library default)")
	sampleListCmd.Flags().Bool("json", false, "output samples as JSON")
	sampleShowCmd.Flags().Bool("preview", false, "print only the first 200 characters")

	sampleCmd.AddCommand(sampleAddCmd)
	sampleCmd.AddCommand(sampleListCmd)
	sampleCmd.AddCommand(sampleShowCmd)
	sampleCmd.AddCommand(sampleRemoveCmd)

	rootCmd.AddCommand(sampleCmd)
}
