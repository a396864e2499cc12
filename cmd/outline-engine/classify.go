// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outline-engine/internal/topic"
	"github.com/pdiddy/outline-engine/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <topic>",
	Short: "Show how a topic is classified",
	Long: `Classify prints the topic type (howto, comparison, review, listicle, or
general) and the derived strings the outline templates use: the bare topic,
the two sides of a comparison, or the reviewed product.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

// classifyReport is the JSON form of a topic analysis.
type classifyReport struct {
	Topic   string          `json:"topic"`
	Type    types.TopicType `json:"type"`
	Bare    string          `json:"bare,omitempty"`
	ItemA   string          `json:"item_a,omitempty"`
	ItemB   string          `json:"item_b,omitempty"`
	Product string          `json:"product,omitempty"`
}

func newClassifyReport(a topic.Analysis) classifyReport {
	r := classifyReport{Topic: a.Topic, Type: a.Type}
	switch a.Type {
	case types.TopicHowTo, types.TopicListicle:
		r.Bare = a.Bare
	case types.TopicComparison:
		r.ItemA, r.ItemB = a.ItemA, a.ItemB
	case types.TopicReview:
		r.Product = a.Product
	}
	return r
}

func runClassify(cmd *cobra.Command, args []string) error {
	report := newClassifyReport(topic.Analyze(strings.Join(args, " ")))

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Topic:   %s\n", report.Topic)
	fmt.Printf("Type:    %s\n", report.Type)
	switch {
	case report.Bare != "":
		fmt.Printf("Bare:    %s\n", report.Bare)
	case report.ItemA != "":
		fmt.Printf("Item A:  %s\n", report.ItemA)
		fmt.Printf("Item B:  %s\n", report.ItemB)
	case report.Product != "":
		fmt.Printf("Product: %s\n", report.Product)
	}
	return nil
}

func init() {
	classifyCmd.Flags().Bool("json", false, "output the classification as JSON")

	rootCmd.AddCommand(classifyCmd)
}
