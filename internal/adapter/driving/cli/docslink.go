package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prherald/prherald/internal/config"
	heralderrors "github.com/prherald/prherald/internal/errors"
)

func newDocsLinkCommand() *cobra.Command {
	var (
		token    string
		docsPath string
	)

	cmd := &cobra.Command{
		Use:   "docs-link",
		Short: "Post a link to this build's generated documentation on the PR",
		Long: `Post a comment linking to the documentation artifact of the current
Jenkins build. The link is built from BUILD_URL and the docs output path
relative to the archived artifacts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, info, err := openPRSession(cmd.Context(), token)
			if err != nil {
				return err
			}

			body, err := docsLinkComment(info.BuildURL, docsPath)
			if err != nil {
				return err
			}
			return session.PostComment(cmd.Context(), body)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (overrides "+config.TokenEnvVar+")")
	cmd.Flags().StringVar(&docsPath, "docs-path", "docs", "build-relative path of the generated documentation")

	return cmd
}

// docsLinkComment renders the comment body pointing at the build's archived
// documentation, which Jenkins serves under the build's artifact root.
func docsLinkComment(buildURL, docsPath string) (string, error) {
	if buildURL == "" {
		return "", fmt.Errorf("BUILD_URL not set: %w", heralderrors.ErrNoBuildContext)
	}

	link := strings.TrimRight(buildURL, "/") + "/artifact/" + strings.Trim(docsPath, "/") + "/"
	return "Documentation for this change is available at: " + link, nil
}
