package split

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/docweave/internal/analysis"
	"github.com/leefowlercu/docweave/internal/cmdutil"
	"github.com/leefowlercu/docweave/internal/config"
	"github.com/leefowlercu/docweave/internal/document"
)

// Flag variables
var (
	splitOutput    string
	splitMinTopics int
	splitMaxTopics int
	splitQuiet     bool
)

// SplitCmd splits a markdown document into topic files.
var SplitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Split a markdown document into topic-based files",
	Long: `Split a markdown document into topic-based files with semantic backlinks.

The document is analyzed with the configured AI provider to detect topics.
Each topic becomes its own markdown file carrying frontmatter, the topic's
content, and wiki-style links to related topics ranked by embedding
similarity. An index file ties the set together.

Oversized documents are chunked along their header structure first; each
chunk produces its own topic subdirectory plus a top-level summary. When
the AI provider is unavailable, topics fall back to the document's
header structure.`,
	Example: `  # Split into ./report_topics/
  docweave split report.md --output report_topics

  # Ask for more topics
  docweave split report.md -o out --max-topics 15`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateSplit,
	RunE:    runSplit,
}

func init() {
	SplitCmd.Flags().StringVarP(&splitOutput, "output", "o", "", "Output directory (default: <file>_topics)")
	SplitCmd.Flags().IntVar(&splitMinTopics, "min-topics", 0, "Minimum number of topics (default from config)")
	SplitCmd.Flags().IntVar(&splitMaxTopics, "max-topics", 0, "Maximum number of topics (default from config)")
	SplitCmd.Flags().BoolVarP(&splitQuiet, "quiet", "q", false, "Suppress progress output")
}

func validateSplit(cmd *cobra.Command, args []string) error {
	if splitMinTopics < 0 || splitMaxTopics < 0 {
		return fmt.Errorf("topic counts must not be negative")
	}
	if splitMinTopics > 0 && splitMaxTopics > 0 && splitMaxTopics < splitMinTopics {
		return fmt.Errorf("--max-topics must be at least --min-topics")
	}

	cmd.SilenceUsage = true
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	if splitMinTopics > 0 {
		cfg.Topics.MinTopics = splitMinTopics
	}
	if splitMaxTopics > 0 {
		cfg.Topics.MaxTopics = splitMaxTopics
	}

	path, err := cmdutil.ResolvePath(args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document; %w", err)
	}
	doc := document.New(path, string(data))

	outputDir := splitOutput
	if outputDir == "" {
		outputDir = strings.TrimSuffix(path, ".md") + "_topics"
	}
	outputDir, err = cmdutil.ResolvePath(outputDir)
	if err != nil {
		return err
	}

	reporter := analysis.NopReporter
	if !splitQuiet {
		reporter = analysis.ReporterFunc(func(msg string) {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		})
	}

	rt, err := cmdutil.NewRuntime(cfg, slog.Default(), reporter, false)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	result, err := rt.Pipeline.SplitByTopics(ctx, doc, outputDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nCreated %d files in %s (%d topics, %d chunks)\n",
		len(result.Files), outputDir, result.Topics, result.Chunks)
	return nil
}
