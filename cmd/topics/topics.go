package topics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/docweave/internal/analysis"
	"github.com/leefowlercu/docweave/internal/cmdutil"
	"github.com/leefowlercu/docweave/internal/config"
)

// Flag variables
var (
	topicsOutput    string
	topicsThreshold float64
	topicsQuiet     bool
)

// TopicsCmd regenerates topic files from the vector store.
var TopicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Regenerate topic files from the vector store",
	Long: `Regenerate topic files from the embeddings already in the vector store.

Every embedded chunk across every indexed document is clustered by
cosine similarity, each cluster is named through the configured AI
provider, and one markdown file per cluster is written to the output
directory. Naming failures degrade to deterministic names; the flow
never depends on the AI provider succeeding.`,
	Example: `  # Regenerate topics into ./topics/
  docweave topics --output topics

  # Use a looser clustering threshold
  docweave topics -o topics --threshold 0.5`,
	PreRunE: validateTopics,
	RunE:    runTopics,
}

func init() {
	TopicsCmd.Flags().StringVarP(&topicsOutput, "output", "o", "topics", "Output directory")
	TopicsCmd.Flags().Float64VarP(&topicsThreshold, "threshold", "t", 0, "Cluster similarity threshold (default from config)")
	TopicsCmd.Flags().BoolVarP(&topicsQuiet, "quiet", "q", false, "Suppress progress output")
}

func validateTopics(cmd *cobra.Command, args []string) error {
	if topicsThreshold < 0 || topicsThreshold > 1 {
		return fmt.Errorf("--threshold must be between 0 and 1")
	}

	cmd.SilenceUsage = true
	return nil
}

func runTopics(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	if topicsThreshold > 0 {
		cfg.Similarity.ClusterThreshold = topicsThreshold
	}

	outputDir, err := cmdutil.ResolvePath(topicsOutput)
	if err != nil {
		return err
	}

	reporter := analysis.NopReporter
	if !topicsQuiet {
		reporter = analysis.ReporterFunc(func(msg string) {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		})
	}

	rt, err := cmdutil.NewRuntime(cfg, slog.Default(), reporter, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	result, err := rt.Pipeline.GenerateTopics(ctx, outputDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nCreated %d topic files from %d clusters (%d chunks) in %s\n",
		len(result.Files), result.Clusters, result.Chunks, outputDir)
	return nil
}
