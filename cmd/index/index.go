package index

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
	indexAnnotate bool
	indexOutput   string
	indexQuiet    bool
)

// IndexCmd indexes a document into the vector store.
var IndexCmd = &cobra.Command{
	Use:   "index <file>",
	Short: "Index a markdown document into the vector store",
	Long: `Index a markdown document into the local vector store.

The document is split into fixed-size chunks that carry their recent
header context, each chunk is embedded with the configured embeddings
provider, and everything is persisted in the SQLite-backed store.
Re-indexing a document replaces its previous chunks.

With --annotate the document's key concepts are extracted and an
annotated copy carrying processing metadata and a backlinks section is
written next to the original.`,
	Example: `  # Index a document
  docweave index notes.md

  # Index and write an annotated copy
  docweave index notes.md --annotate`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateIndex,
	RunE:    runIndex,
}

func init() {
	IndexCmd.Flags().BoolVarP(&indexAnnotate, "annotate", "a", false, "Write an annotated copy with key concepts")
	IndexCmd.Flags().StringVarP(&indexOutput, "output", "o", "", "Annotated copy path (default: <file>_linked.md)")
	IndexCmd.Flags().BoolVarP(&indexQuiet, "quiet", "q", false, "Suppress progress output")
}

func validateIndex(cmd *cobra.Command, args []string) error {
	if indexOutput != "" && !indexAnnotate {
		return fmt.Errorf("--output requires --annotate")
	}

	cmd.SilenceUsage = true
	return nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	path, err := cmdutil.ResolvePath(args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document; %w", err)
	}
	doc := document.New(path, string(data))

	reporter := analysis.NopReporter
	if !indexQuiet {
		reporter = analysis.ReporterFunc(func(msg string) {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		})
	}

	rt, err := cmdutil.NewRuntime(cfg, slog.Default(), reporter, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	result, err := rt.Pipeline.IndexDocument(ctx, doc, indexAnnotate)
	if err != nil {
		return err
	}

	if indexAnnotate {
		out := indexOutput
		if out == "" {
			out = strings.TrimSuffix(path, ".md") + "_linked.md"
		}
		if err := os.WriteFile(out, []byte(result.Annotated), 0644); err != nil {
			return fmt.Errorf("failed to write annotated copy; %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Annotated copy: %s\n", out)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %s: %d chunks (document %s)\n", path, result.Chunks, result.DocumentID)
	return nil
}
