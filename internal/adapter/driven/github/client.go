// Package github implements the GitHubReader and GitHubWriter ports using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/prherald/prherald/internal/domain/model"
	"github.com/prherald/prherald/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubReader = (*Client)(nil)

// Client implements the driven.GitHubReader and driven.GitHubWriter ports
// using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github (GitHub REST API client with PAT auth)
//
// baseURL selects a GitHub Enterprise deployment; the empty string means the
// public github.com API.
func NewClient(token, baseURL string) (*Client, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	client := gh.NewClient(cacheTransport.Client()).WithAuthToken(token)

	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configuring enterprise URLs from %q: %w", baseURL, err)
		}
	}

	return &Client{gh: client}, nil
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// ListTeams retrieves all teams of the given organization.
// It handles pagination automatically and maps go-github types to domain model types.
func (c *Client) ListTeams(ctx context.Context, org string) ([]model.Team, error) {
	opts := &gh.ListOptions{PerPage: 100}

	var allTeams []model.Team

	for {
		teams, resp, err := c.gh.Teams.ListTeams(ctx, org, opts)
		if err != nil {
			return nil, fmt.Errorf("listing teams for %s (page %d): %w", org, opts.Page, err)
		}

		logRateLimit(resp, org+"/teams", opts.Page, len(teams))

		for _, t := range teams {
			allTeams = append(allTeams, model.Team{
				Slug: t.GetSlug(),
				Name: t.GetName(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allTeams, nil
}

// ListTeamRepos retrieves all repositories the given team grants access to.
// It handles pagination automatically and maps go-github types to domain model types.
func (c *Client) ListTeamRepos(ctx context.Context, org, teamSlug string) ([]model.Repository, error) {
	opts := &gh.ListOptions{PerPage: 100}

	var allRepos []model.Repository

	for {
		repos, resp, err := c.gh.Teams.ListTeamReposBySlug(ctx, org, teamSlug, opts)
		if err != nil {
			return nil, fmt.Errorf("listing repos for team %s/%s (page %d): %w", org, teamSlug, opts.Page, err)
		}

		logRateLimit(resp, org+"/"+teamSlug+"/repos", opts.Page, len(repos))

		for _, r := range repos {
			allRepos = append(allRepos, model.Repository{
				ID:       r.GetID(),
				FullName: r.GetFullName(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}

// ListOpenPullRequests retrieves all open pull requests for the given repository.
// It handles pagination automatically and maps go-github types to domain model types.
func (c *Client) ListOpenPullRequests(ctx context.Context, repoFullName string) ([]model.PullRequest, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	opts := &gh.PullRequestListOptions{
		State:     "open",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var allPRs []model.PullRequest

	for {
		prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing pull requests for %s (page %d): %w", repoFullName, opts.Page, err)
		}

		logRateLimit(resp, repoFullName, opts.Page, len(prs))

		for _, pr := range prs {
			allPRs = append(allPRs, mapPullRequest(pr))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if allPRs == nil {
		allPRs = []model.PullRequest{}
	}

	return allPRs, nil
}

// ResolveIssueNumber returns the number of the issue backing a pull request.
// In repos without an active Issues section the issue and PR numbers should
// match, but the issue link is always taken from the PR itself to prevent
// mis-commenting.
func (c *Client) ResolveIssueNumber(ctx context.Context, repoFullName string, prNumber int) (int, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return 0, err
	}

	pr, resp, err := c.gh.PullRequests.Get(ctx, owner, repo, prNumber)
	if err != nil {
		return 0, fmt.Errorf("fetching pull request %s#%d: %w", repoFullName, prNumber, err)
	}

	logRateLimit(resp, repoFullName+"/pr", 0, 1)

	issueURL := strings.TrimRight(pr.GetIssueURL(), "/")
	segment := issueURL[strings.LastIndex(issueURL, "/")+1:]
	number, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("pull request %s#%d has unusable issue link %q: %w", repoFullName, prNumber, pr.GetIssueURL(), err)
	}

	return number, nil
}

// BranchHeadSHA returns the SHA of the latest commit on the given branch.
func (c *Client) BranchHeadSHA(ctx context.Context, repoFullName, branch string) (string, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return "", err
	}

	b, resp, err := c.gh.Repositories.GetBranch(ctx, owner, repo, branch, 0)
	if err != nil {
		return "", fmt.Errorf("fetching branch %s@%s: %w", repoFullName, branch, err)
	}

	logRateLimit(resp, repoFullName+"/branch", 0, 1)

	sha := b.GetCommit().GetSHA()
	if sha == "" {
		return "", fmt.Errorf("branch %s@%s has no head commit", repoFullName, branch)
	}

	return sha, nil
}

// IssueAssignees returns the current assignee logins of an issue.
func (c *Client) IssueAssignees(ctx context.Context, repoFullName string, issueNumber int) ([]string, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	issue, resp, err := c.gh.Issues.Get(ctx, owner, repo, issueNumber)
	if err != nil {
		return nil, fmt.Errorf("fetching issue %s#%d: %w", repoFullName, issueNumber, err)
	}

	logRateLimit(resp, repoFullName+"/issue", 0, 1)

	logins := make([]string, 0, len(issue.Assignees))
	for _, a := range issue.Assignees {
		logins = append(logins, a.GetLogin())
	}

	return logins, nil
}

// mapPullRequest converts a go-github PullRequest to a domain model PullRequest.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func mapPullRequest(pr *gh.PullRequest) model.PullRequest {
	assignees := make([]string, 0, len(pr.Assignees))
	for _, a := range pr.Assignees {
		assignees = append(assignees, a.GetLogin())
	}

	return model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		URL:       pr.GetHTMLURL(),
		Author:    pr.GetUser().GetLogin(),
		Assignees: assignees,
		State:     pr.GetState(),
		UpdatedAt: pr.GetUpdatedAt().Time,
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

// splitRepo splits a "owner/repo" string into its two components.
func splitRepo(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo name %q: expected owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}
