package inspect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/docweave/internal/analysis"
	"github.com/leefowlercu/docweave/internal/chunkers"
	"github.com/leefowlercu/docweave/internal/cmdutil"
	"github.com/leefowlercu/docweave/internal/config"
	"github.com/leefowlercu/docweave/internal/document"
	"github.com/leefowlercu/docweave/internal/store"
)

// Flag variables
var (
	inspectStore bool
)

// InspectCmd previews how a document would be chunked, or reports store
// contents.
var InspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Preview document chunking or show store contents",
	Long: `Preview how a document would be chunked without calling any provider.

Shows the section and chunk breakdown the splitting pipeline would
produce, with word counts per chunk. With --store it instead lists the
indexed documents and row counts of the vector store.`,
	Example: `  # Preview chunking
  docweave inspect large_report.md

  # Show what is indexed
  docweave inspect --store`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateInspect,
	RunE:    runInspect,
}

func init() {
	InspectCmd.Flags().BoolVarP(&inspectStore, "store", "s", false, "Inspect the vector store instead of a document")
}

func validateInspect(cmd *cobra.Command, args []string) error {
	if inspectStore && len(args) > 0 {
		return fmt.Errorf("--store takes no file argument")
	}
	if !inspectStore && len(args) == 0 {
		return fmt.Errorf("a file argument is required unless --store is set")
	}

	cmd.SilenceUsage = true
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectStore {
		return runInspectStore(cmd)
	}
	return runInspectDocument(cmd, args[0])
}

func runInspectDocument(cmd *cobra.Command, arg string) error {
	cfg := config.Get()

	path, err := cmdutil.ResolvePath(arg)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document; %w", err)
	}
	doc := document.New(path, string(data))

	pipeline := chunkers.NewPipeline(chunkers.Options{
		MinSectionWords:   cfg.Chunking.MinSectionWords,
		MaxSectionWords:   cfg.Chunking.MaxSectionWords,
		OverlapLines:      cfg.Chunking.OverlapLines,
		ContextChunkChars: cfg.Chunking.ChunkSizeChars,
	}, chunkers.WithLogger(slog.Default()))

	chunks, stats := pipeline.Process(doc)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Document: %s\n", path)
	fmt.Fprintf(out, "Lines: %d  Words: %d  Headers: %d  Est. tokens: %d\n\n",
		doc.LineCount(), doc.WordCount, len(doc.Headers()), document.EstimateTokens(doc.Text))
	fmt.Fprintf(out, "Chunks: %d (avg %d words, min %d, max %d)\n\n",
		stats.TotalChunks, stats.AvgWords, stats.MinWords, stats.MaxWords)

	for i, c := range chunks {
		fmt.Fprintf(out, "%2d. %-50s %8d words  ~%d tokens", i+1, c.Header, c.WordCount, document.EstimateTokens(c.Content()))
		if c.Overlap > 0 {
			fmt.Fprintf(out, "  (+%d overlap lines)", c.Overlap)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runInspectStore(cmd *cobra.Command) error {
	ctx := context.Background()
	cfg := config.Get()

	rt, err := cmdutil.NewRuntime(cfg, slog.Default(), analysis.NopReporter, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	stats, err := rt.Store.Stats(ctx)
	if err != nil {
		return err
	}
	docs, err := rt.Store.Documents(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Store: %s\n", cfg.Store.Path)
	fmt.Fprintf(out, "Documents: %d  Chunks: %d  Embeddings: %d\n", stats.Documents, stats.Chunks, stats.Embeddings)

	if len(docs) > 0 {
		fmt.Fprintln(out)
		for _, d := range docs {
			printDocument(out, d)
		}
	}
	return nil
}

func printDocument(out io.Writer, d store.Document) {
	fmt.Fprintf(out, "- %s: %d words, %d chunks, indexed %s\n",
		d.Source, d.WordCount, d.ChunkCount, d.IndexedAt.Format("2006-01-02 15:04"))
}
