package driven

import (
	"context"

	"github.com/prherald/prherald/internal/domain/model"
)

// GitHubReader defines the driven port for read access to the GitHub API.
// Each method wraps one endpoint and returns exhaustive results; pagination
// is the adapter's concern.
type GitHubReader interface {
	// ListTeams returns all teams of the organization.
	ListTeams(ctx context.Context, org string) ([]model.Team, error)
	// ListTeamRepos returns all repositories a team grants access to.
	ListTeamRepos(ctx context.Context, org, teamSlug string) ([]model.Repository, error)
	// ListOpenPullRequests returns all open pull requests of a repository.
	ListOpenPullRequests(ctx context.Context, repoFullName string) ([]model.PullRequest, error)
	// ResolveIssueNumber returns the number of the issue backing a pull
	// request, taken from the PR's issue link rather than assumed.
	ResolveIssueNumber(ctx context.Context, repoFullName string, prNumber int) (int, error)
	// BranchHeadSHA returns the SHA of the latest commit on a branch.
	BranchHeadSHA(ctx context.Context, repoFullName, branch string) (string, error)
	// IssueAssignees returns the current assignee logins of an issue.
	IssueAssignees(ctx context.Context, repoFullName string, issueNumber int) ([]string, error)
}
