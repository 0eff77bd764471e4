package related

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/docweave/internal/analysis"
	"github.com/leefowlercu/docweave/internal/cmdutil"
	"github.com/leefowlercu/docweave/internal/config"
)

// Flag variables
var (
	relatedLimit int
)

// RelatedCmd searches the vector store for similar chunks.
var RelatedCmd = &cobra.Command{
	Use:   "related <query>",
	Short: "Find indexed content related to a query",
	Long: `Find indexed content related to a free-text query.

The query is embedded with the configured embeddings provider and
compared against every embedded chunk in the vector store. Results are
ranked by cosine similarity.`,
	Example: `  # Top 5 related chunks
  docweave related "error handling strategies"

  # More results
  docweave related "deployment" --limit 10`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateRelated,
	RunE:    runRelated,
}

func init() {
	RelatedCmd.Flags().IntVarP(&relatedLimit, "limit", "n", 5, "Maximum number of results")
}

func validateRelated(cmd *cobra.Command, args []string) error {
	if relatedLimit < 1 {
		return fmt.Errorf("--limit must be at least 1")
	}

	cmd.SilenceUsage = true
	return nil
}

func runRelated(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()
	query := strings.Join(args, " ")

	rt, err := cmdutil.NewRuntime(cfg, slog.Default(), analysis.NopReporter, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	results, err := rt.Pipeline.Related(ctx, query, relatedLimit)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No related content found")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (similarity: %.0f%%)\n", i+1, r.Document, r.Similarity*100)
		fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", r.Chunk.Header)
	}
	return nil
}
