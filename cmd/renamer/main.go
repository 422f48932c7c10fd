// Command renamer renames batches of media files into the structured
// project naming scheme and can revert the last applied batch.
//
// Subcommands: plan (preview only), apply (rename), tags (show vocabulary),
// version.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/logging"
	"github.com/backmassage/renamer/internal/pipeline"
	"github.com/backmassage/renamer/internal/tags"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Config first: flag defaults come from the environment, so the config
	// must exist before the commands are built. Errors here predate the
	// logger and go straight to stderr.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "renamer: %v\n", err)
		return 1
	}

	var log zerolog.Logger

	root := &cobra.Command{
		Use:           "renamer",
		Short:         "Batch media file renamer driven by project number, tags and dates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags are in; validate the merged config and build the logger.
			if err := config.Validate(cfg); err != nil {
				return err
			}
			log, err = logging.New(cfg.LogLevel, cfg.LogFormat)
			return err
		},
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug | info | warn | error")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text | json")
	root.PersistentFlags().StringVar(&cfg.TagsFile, "tags-file", cfg.TagsFile, "YAML tag vocabulary path")

	root.AddCommand(
		newPlanCmd(cfg, &log),
		newApplyCmd(cfg, &log),
		newTagsCmd(cfg),
		newVersionCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "renamer: %v\n", err)
		return 1
	}
	return 0
}

// batchFlags registers the flags shared by plan and apply.
func batchFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVarP(&cfg.Project, "project", "p", cfg.Project, "Project number (e.g. C123456)")
	cmd.Flags().StringVarP(&cfg.Mode, "mode", "m", cfg.Mode, "Naming mode: normal | position | pa_mat")
	cmd.Flags().StringSliceVarP(&cfg.Tags, "tags", "t", cfg.Tags, "Tag short-codes applied to every file")
	cmd.Flags().StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "Optional name suffix")
	cmd.Flags().StringVar(&cfg.Position, "position", cfg.Position, "Position label (position mode)")
	cmd.Flags().StringVar(&cfg.Date, "date", cfg.Date, "Date override, YYYY-MM-DD (default: filename or mtime)")
	cmd.Flags().StringVar(&cfg.AssignmentsFile, "assignments", cfg.AssignmentsFile, "YAML per-file attribute overrides")
	cmd.Flags().BoolVarP(&cfg.Recursive, "recursive", "r", cfg.Recursive, "Recurse into subdirectories")
}

func newPlanCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <path>...",
		Short: "Preview the renames for a batch without touching any file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := pipeline.NewRunner(cfg, *log, cmd.OutOrStdout())
			return r.Preview(args)
		},
	}
	batchFlags(cmd, cfg)
	return cmd
}

func newApplyCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <path>...",
		Short: "Rename a batch (preview first, then execute)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := pipeline.NewRunner(cfg, *log, cmd.OutOrStdout())
			stats, err := r.Apply(cmd.Context(), args)
			if err != nil {
				return err
			}
			if stats.Failed > 0 && stats.Reverted == 0 {
				return fmt.Errorf("%d rename(s) failed", stats.Failed)
			}
			return nil
		},
	}
	batchFlags(cmd, cfg)
	cmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "d", cfg.DryRun, "Preview only; do not rename")
	cmd.Flags().BoolVar(&cfg.RevertOnFailure, "revert-on-failure", cfg.RevertOnFailure, "Undo the successful renames when any operation fails")
	return cmd
}

func newTagsCmd(cfg *config.Config) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tag vocabulary in canonical order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.TagsFile == "" {
				return fmt.Errorf("no tag vocabulary configured (set --tags-file or RENAMER_TAGS_FILE)")
			}
			vocab, err := tags.Load(cfg.TagsFile)
			if err != nil {
				return err
			}
			for _, e := range vocab.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", e.Code, vocab.Label(e.Code, lang))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "Label language")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "renamer v%s (%s)\n", version, commit)
		},
	}
}
