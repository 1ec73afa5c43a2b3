// Package cli implements the driving adapter for the prherald command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	heralderrors "github.com/prherald/prherald/internal/errors"
)

var version = "dev"

// New builds the root command with all subcommands attached.
func New() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "prherald",
		Short: "Chase pull requests that are waiting on review",
		Long: `prherald keeps enterprise GitHub pull requests moving: it finds PRs whose
reviewers have gone quiet and emails them, manages PR assignees, posts
comments from CI builds, and installs shared git hook templates.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newCheckCommand(),
		newAssignCommand(),
		newCommentCommand(),
		newDocsLinkCommand(),
		newDiffCommand(),
		newHooksCommand(),
	)

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return mapErrorToExitCode(err)
	}
	return 0
}

// setupLogging routes structured logs to stderr so command output on stdout
// stays clean. Every run carries a fresh run_id for correlating CI logs.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("run_id", uuid.NewString()))
}

// mapErrorToExitCode maps internal errors to appropriate exit codes.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, heralderrors.ErrNoToken) ||
		errors.Is(err, heralderrors.ErrNoBuildContext) {
		return 2 // Missing credentials or build environment
	}

	if errors.Is(err, heralderrors.ErrContactNotFound) {
		return 3 // Incomplete directory data
	}

	return 1 // General error
}
