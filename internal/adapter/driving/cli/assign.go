package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prherald/prherald/internal/adapter/driven/github"
	"github.com/prherald/prherald/internal/application"
	"github.com/prherald/prherald/internal/config"
)

func newAssignCommand() *cobra.Command {
	var (
		token        string
		githubURL    string
		clearCurrent bool
	)

	cmd := &cobra.Command{
		Use:   "assign <owner> <repo> <pr-number> <user>...",
		Short: "Assign users to a pull request",
		Long: `Add the given users to a pull request's assignee list. Existing assignees
are kept unless --clear-current is set.`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			prNumber, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid PR number %q: %w", args[2], err)
			}
			repoFullName := args[0] + "/" + args[1]
			return runAssign(cmd.Context(), repoFullName, prNumber, args[3:], token, githubURL, clearCurrent)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (overrides "+config.TokenEnvVar+")")
	cmd.Flags().StringVar(&githubURL, "github-url", "", "GitHub Enterprise base URL (overrides configuration)")
	cmd.Flags().BoolVar(&clearCurrent, "clear-current", false, "replace the current assignees instead of adding to them")

	return cmd
}

func runAssign(ctx context.Context, repoFullName string, prNumber int, users []string, tokenFlag, githubURLFlag string, clearCurrent bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if githubURLFlag != "" {
		cfg.GitHubURL = githubURLFlag
	}

	token, err := config.ResolveToken(tokenFlag)
	if err != nil {
		return err
	}

	ghClient, err := github.NewClient(token, cfg.GitHubURL)
	if err != nil {
		return err
	}

	svc := application.NewAssignService(ghClient, ghClient)
	return svc.Assign(ctx, repoFullName, prNumber, users, !clearCurrent)
}
