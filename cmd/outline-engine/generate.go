// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/outline-engine/internal/library"
	"github.com/pdiddy/outline-engine/internal/outline"
	"github.com/pdiddy/outline-engine/internal/render"
	"github.com/pdiddy/outline-engine/internal/sample"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate an outline for a topic shaped like a sample outline",
	Long: `Generate produces an outline for the topic using a sample outline as the
template. The sample is read from --sample-file, or taken from the library by
--sample ID; with neither flag the most recently added library sample is used.

Sections found in the sample keep their headings and item counts while their
items are reworded for the topic. A sample with no recognisable headings
yields a fixed six-section outline for the topic's type instead.

Every generated outline is recorded in the library history unless
--no-history is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

// sampleSource is the sample text chosen for a generation run.
type sampleSource struct {
	id      string
	name    string
	content string
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topicText := strings.Join(args, " ")
	if err := outline.ValidateTopic(topicText); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := statusWriter(cmd)
	ctx := context.Background()

	sampleFile, _ := cmd.Flags().GetString("sample-file")
	sampleID, _ := cmd.Flags().GetString("sample")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	var store *library.Store
	if sampleFile == "" || !noHistory {
		store, err = library.NewStore(cfg.Library)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	src, err := resolveSample(ctx, cfg, store, sampleFile, sampleID)
	if err != nil {
		return err
	}

	g := outline.Generate(topicText, src.content)
	reportGenerated(w, src, g)

	if !noHistory {
		rec := &types.GeneratedOutline{
			SampleID:  src.id,
			Topic:     topicText,
			TopicType: g.TopicType,
			Style:     g.Style,
			Fallback:  g.Fallback,
			Outline:   g.Outline,
		}
		if err := store.SaveGenerated(ctx, rec); err != nil {
			return err
		}
		fmt.Fprintf(w, "recorded: %s\n", rec.ID)
	}

	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		if err := render.SaveOutline(outPath, g.Outline); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote: %s\n", outPath)
		return nil
	}
	return writeOutline(os.Stdout, g.Outline, cfg.Render)
}

// resolveSample picks the sample text from a file, a library ID, or the
// latest library sample, in that order.
func resolveSample(ctx context.Context, cfg types.Config, store *library.Store, file, id string) (sampleSource, error) {
	if file != "" {
		name, content, err := sample.NewLoader(cfg.Sample).Load(file)
		if err != nil {
			return sampleSource{}, err
		}
		return sampleSource{name: name, content: content}, nil
	}

	var (
		sm  *types.Sample
		err error
	)
	if id != "" {
		sm, err = store.GetSample(ctx, id)
	} else {
		sm, err = store.LatestSample(ctx)
		if errors.Is(err, library.ErrNotFound) {
			return sampleSource{}, fmt.Errorf("no sample outline found: add one with 'outline-engine sample add <file>' or pass --sample-file")
		}
	}
	if err != nil {
		return sampleSource{}, err
	}
	return sampleSource{id: sm.ID, name: sm.Name, content: sm.Content}, nil
}

func reportGenerated(w io.Writer, src sampleSource, g outline.Generated) {
	if g.Fallback {
		fmt.Fprintf(w, "generated: %q from %s (%s, fallback template, %s headings)\n",
			g.Outline.Title, src.name, g.TopicType, g.Style)
		return
	}
	fmt.Fprintf(w, "generated: %q from %s (%s, %d sections, %s headings)\n",
		g.Outline.Title, src.name, g.TopicType, len(g.Outline.Sections), g.Style)
}

// writeOutline prints o in the configured format, using coloured terminal
// output for the text format.
func writeOutline(w io.Writer, o types.Outline, rc types.RenderConfig) error {
	if rc.Format == types.FormatText || rc.Format == "" {
		return render.Terminal(w, o, rc.Color)
	}
	return render.Write(w, o, rc.Format)
}

func init() {
	generateCmd.Flags().String("sample-file", "", "path to a sample outline file (.txt, .md)")
	generateCmd.Flags().String("sample", "", "library sample ID or ID prefix (default: most recent sample)")
	generateCmd.Flags().String("format", "text", "output format: text, markdown, html, yaml, or json")
	generateCmd.Flags().String("output", "", "write the outline to a file; the format follows the extension")
	generateCmd.Flags().Bool("no-history", false, "do not record the outline in the library history")

	viper.BindPFlag("render.format", generateCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(generateCmd)
}
