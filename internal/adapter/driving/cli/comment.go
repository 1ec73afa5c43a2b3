package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prherald/prherald/internal/config"
)

func newCommentCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "comment <body>",
		Short: "Post a comment on the pull request of the current CI build",
		Long: `Post a comment on the pull request identified by the Jenkins GHPRB
environment (ghprbGhRepository, ghprbPullId, ghprbPullLink). A body of "-"
reads the comment text from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			session, _, err := openPRSession(cmd.Context(), token)
			if err != nil {
				return err
			}
			return session.PostComment(cmd.Context(), body)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (overrides "+config.TokenEnvVar+")")

	return cmd
}

// readBody returns arg, or the full stdin contents when arg is "-".
func readBody(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading comment body from stdin: %w", err)
	}

	body := strings.TrimRight(string(data), "\n")
	if body == "" {
		return "", fmt.Errorf("empty comment body")
	}
	return body, nil
}
