//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// demoSample is a roman-numbered outline used by the Demo target.
const demoSample = `I. Introduction
- Understanding the importance of a well-structured document
- Key benefits of professional outlines
- Overview of outline methodologies

II. Content Planning Strategies
- Mapping your ideas effectively
- Research organization techniques
- Balancing depth and breadth

III. Tools and Resources
- Software recommendations
- Learning resources

IV. Conclusion
- Implementing what you've learned
- Next steps in your document journey
`

// Demo builds the CLI and generates outlines for a few topics from a
// bundled sample, writing Markdown files into output/.
func Demo() error {
	mg.Deps(Init, Build)

	samplePath := filepath.Join("samples", "demo.txt")
	if err := os.WriteFile(samplePath, []byte(demoSample), 0o644); err != nil {
		return fmt.Errorf("writing demo sample: %w", err)
	}

	bin := filepath.Join(binDir, binName)
	topics := map[string]string{
		"howto.md":      "How to Train a Puppy",
		"comparison.md": "Cats vs Dogs",
		"review.md":     "Pixel 9 Review",
		"listicle.md":   "Travel Tips and Tricks",
		"general.md":    "Time Management",
	}
	for file, topic := range topics {
		out := filepath.Join("output", file)
		if err := sh.RunV(bin, "generate", topic, "--sample-file", samplePath, "--no-history", "--output", out); err != nil {
			return fmt.Errorf("generating %q: %w", topic, err)
		}
	}
	return nil
}
