package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prherald/prherald/internal/application"
	"github.com/prherald/prherald/internal/config"
)

func newDiffCommand() *cobra.Command {
	var (
		token       string
		base        string
		files       []string
		onlyChanged bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Print the diff between the PR checkout and its base branch",
		Long: `Print the diff between the locally checked-out pull request head and the
current tip of its base branch. The base SHA is resolved through the GitHub
API; the diff itself comes from the local checkout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _, err := openPRSession(cmd.Context(), token)
			if err != nil {
				return err
			}

			text, err := session.GetDiff(cmd.Context(), application.DiffOptions{
				BaseBranch:  base,
				Files:       files,
				OnlyChanged: onlyChanged,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (overrides "+config.TokenEnvVar+")")
	cmd.Flags().StringVar(&base, "base", application.DefaultBaseBranch, "base branch the PR targets")
	cmd.Flags().StringSliceVar(&files, "files", nil, "restrict the diff to these paths")
	cmd.Flags().BoolVar(&onlyChanged, "only-changed", false, "print only added and removed lines")

	return cmd
}
