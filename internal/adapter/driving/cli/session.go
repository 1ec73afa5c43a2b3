package cli

import (
	"context"

	"github.com/prherald/prherald/internal/adapter/driven/gitdiff"
	"github.com/prherald/prherald/internal/adapter/driven/github"
	"github.com/prherald/prherald/internal/application"
	"github.com/prherald/prherald/internal/config"
)

// openPRSession builds a session for the pull request named by the Jenkins
// build environment. The GitHub endpoint is taken from the PR link's host
// when present, falling back to the configured base URL.
func openPRSession(ctx context.Context, tokenFlag string) (*application.PRSession, *config.BuildInfo, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	token, err := config.ResolveToken(tokenFlag)
	if err != nil {
		return nil, nil, err
	}

	info, err := config.LoadBuildInfo()
	if err != nil {
		return nil, nil, err
	}

	baseURL := cfg.GitHubURL
	if info.Domain != "" {
		baseURL = "https://" + info.Domain
	}

	ghClient, err := github.NewClient(token, baseURL)
	if err != nil {
		return nil, nil, err
	}

	session, err := application.NewPRSession(ctx, ghClient, ghClient, gitdiff.NewProvider(""), info.RepoFullName, info.Number)
	if err != nil {
		return nil, nil, err
	}

	return session, info, nil
}
