package driven

import "context"

// GitHubWriter defines the driven port for GitHub write operations.
// It is intentionally separate from GitHubReader (read operations) following
// the Interface Segregation Principle.
type GitHubWriter interface {
	// SetIssueAssignees replaces the full assignee set of an issue.
	SetIssueAssignees(ctx context.Context, repoFullName string, issueNumber int, logins []string) error

	// CreateIssueComment creates a top-level comment on an issue or pull request.
	CreateIssueComment(ctx context.Context, repoFullName string, issueNumber int, body string) error
}
