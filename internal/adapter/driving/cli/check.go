package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/prherald/prherald/internal/adapter/driven/directory"
	"github.com/prherald/prherald/internal/adapter/driven/github"
	"github.com/prherald/prherald/internal/adapter/driven/mail"
	"github.com/prherald/prherald/internal/application"
	"github.com/prherald/prherald/internal/config"
	"github.com/prherald/prherald/internal/domain/model"
)

// defaultPRAge is how long a pull request may sit without updates before its
// assignees are nudged.
const defaultPRAge = 20 * time.Hour

func newCheckCommand() *cobra.Command {
	var (
		token      string
		githubURL  string
		nameFilter string
		prAge      time.Duration
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "check <organization>",
		Short: "Find pull requests awaiting review and email their assignees",
		Long: `Walk the organization's teams, collect open pull requests whose assignees
have not acted within the age threshold, and send each assignee one email
listing everything waiting on them.

Authentication is required via GitHub token:
  - Use --token to provide the token directly
  - Or set the ` + config.TokenEnvVar + ` environment variable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), args[0], token, githubURL, nameFilter, prAge, dryRun)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (overrides "+config.TokenEnvVar+")")
	cmd.Flags().StringVar(&githubURL, "github-url", "", "GitHub Enterprise base URL (overrides configuration)")
	cmd.Flags().StringVar(&nameFilter, "name-filter", "", "only consider teams whose name starts with this prefix")
	cmd.Flags().DurationVar(&prAge, "pr-age", defaultPRAge, "minimum time since the last PR update")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the notices instead of emailing them")

	return cmd
}

func runCheck(ctx context.Context, out io.Writer, org, tokenFlag, githubURLFlag, nameFilter string, prAge time.Duration, dryRun bool) error {
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

	reviews, err := application.NewReviewService(ghClient).CollectReviews(ctx, org, prAge, nameFilter)
	if err != nil {
		return err
	}

	if dryRun {
		printReviews(out, reviews)
		return nil
	}

	if cfg.DirectoryURL == "" {
		return fmt.Errorf("no directory URL configured, set PRHERALD_DIRECTORY_URL or use --dry-run")
	}

	mailer, err := mail.NewMailer(cfg.SMTPAddr, cfg.MailFrom)
	if err != nil {
		return err
	}

	notify := application.NewNotifyService(directory.NewClient(cfg.DirectoryURL), mailer)
	return notify.NotifyAll(ctx, reviews)
}

// printReviews writes the would-be notices to out, one block per assignee.
func printReviews(out io.Writer, reviews model.ReviewMap) {
	for _, assignee := range reviews.Assignees() {
		fmt.Fprintf(out, "%s:\n", assignee)
		for _, item := range reviews.Items(assignee) {
			fmt.Fprintf(out, "  %s - %s\n", item.Title, item.URL)
		}
	}
}
