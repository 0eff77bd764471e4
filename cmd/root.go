package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	indexcmd "github.com/leefowlercu/docweave/cmd/index"
	"github.com/leefowlercu/docweave/cmd/inspect"
	"github.com/leefowlercu/docweave/cmd/related"
	"github.com/leefowlercu/docweave/cmd/split"
	topicscmd "github.com/leefowlercu/docweave/cmd/topics"
	versioncmd "github.com/leefowlercu/docweave/cmd/version"
	"github.com/leefowlercu/docweave/internal/config"
	"github.com/leefowlercu/docweave/internal/logging"
)

// logManager is the global logging manager, created in init() and
// upgraded after config loads.
var logManager *logging.Manager

var docweaveCmd = &cobra.Command{
	Use:   "docweave",
	Short: "Topic-based document splitting with semantic backlinks",
	Long: "Docweave decomposes markdown documents into topic-based files connected by " +
		"semantic backlinks.\n\n" +
		"Documents are split along their header structure, merged and bounded into " +
		"processable chunks, and analyzed with an AI provider to detect topics. Each " +
		"topic becomes its own markdown file with wiki-style links to related topics, " +
		"plus an index tying the set together. Documents can also be indexed into a " +
		"local vector store for similarity search and corpus-wide topic regeneration.",
	PersistentPreRunE: runInitialize,
}

func init() {
	logManager = logging.NewManager()
	slog.SetDefault(logManager.Logger())

	docweaveCmd.AddCommand(split.SplitCmd)
	docweaveCmd.AddCommand(indexcmd.IndexCmd)
	docweaveCmd.AddCommand(topicscmd.TopicsCmd)
	docweaveCmd.AddCommand(related.RelatedCmd)
	docweaveCmd.AddCommand(inspect.InspectCmd)
	docweaveCmd.AddCommand(versioncmd.VersionCmd)
}

func runInitialize(cmd *cobra.Command, args []string) error {
	logger := logManager.Logger()

	if err := config.Init(); err != nil {
		return err
	}

	cfg := config.Get()
	level, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok {
		level = logging.DefaultLevel
		if cfg.LogLevel != "" {
			logger.Warn("invalid log level configured, using default", "configured", cfg.LogLevel, "default", "info")
		}
	}

	if err := logManager.Upgrade(cfg.LogFile, level); err != nil {
		// Bootstrap mode keeps working; file logging is best effort.
		logger.Warn("failed to enable file logging, continuing with stderr only", "error", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	docweaveCmd.SilenceErrors = true
	docweaveCmd.SilenceUsage = true

	defer func() { _ = logManager.Close() }()

	err := docweaveCmd.Execute()

	if err != nil {
		cmd, _, _ := docweaveCmd.Find(os.Args[1:])
		if cmd == nil {
			cmd = docweaveCmd
		}

		fmt.Printf("Error: %v\n", err)
		if !cmd.SilenceUsage {
			fmt.Printf("\n")
			cmd.SetOut(os.Stdout)
			_ = cmd.Usage()
		}

		return err
	}

	return nil
}
