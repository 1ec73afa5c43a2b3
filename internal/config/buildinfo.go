package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	heralderrors "github.com/prherald/prherald/internal/errors"
)

// Environment variables exported by the Jenkins pull request builder plugin.
const (
	envPRBRepository = "ghprbGhRepository"
	envPRBPullID     = "ghprbPullId"
	envPRBPullLink   = "ghprbPullLink"
	envBuildURL      = "BUILD_URL"
)

// BuildInfo carries the pull request context a CI build runs against,
// resolved once from the Jenkins pull request builder environment.
type BuildInfo struct {
	// RepoFullName is the "owner/repo" the build belongs to.
	RepoFullName string
	// Number is the pull request number under review.
	Number int
	// Domain is the GitHub host the PR lives on, taken from the PR link.
	// Empty when the link variable is not exported.
	Domain string
	// BuildURL is the Jenkins build page, when exported.
	BuildURL string
}

// LoadBuildInfo resolves BuildInfo from the environment.
// Returns ErrNoBuildContext when the builder variables are absent.
func LoadBuildInfo() (*BuildInfo, error) {
	repo := os.Getenv(envPRBRepository)
	pullID := os.Getenv(envPRBPullID)
	if repo == "" || pullID == "" {
		return nil, fmt.Errorf("%s and %s must be set: %w",
			envPRBRepository, envPRBPullID, heralderrors.ErrNoBuildContext)
	}

	number, err := strconv.Atoi(pullID)
	if err != nil {
		return nil, fmt.Errorf("%s has invalid value %q: %w", envPRBPullID, pullID, err)
	}

	info := &BuildInfo{
		RepoFullName: repo,
		Number:       number,
		BuildURL:     os.Getenv(envBuildURL),
	}

	if link := os.Getenv(envPRBPullLink); link != "" {
		u, err := url.Parse(link)
		if err != nil {
			return nil, fmt.Errorf("%s has invalid value %q: %w", envPRBPullLink, link, err)
		}
		info.Domain = u.Host
	}

	return info, nil
}
