package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v82/github"

	"github.com/prherald/prherald/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubWriter = (*Client)(nil)

// SetIssueAssignees replaces the full assignee set of an issue.
// Pull requests are issues, so this also covers PR assignment.
func (c *Client) SetIssueAssignees(ctx context.Context, repoFullName string, issueNumber int, logins []string) error {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return err
	}

	_, _, err = c.gh.Issues.Edit(ctx, owner, repo, issueNumber, &gh.IssueRequest{
		Assignees: &logins,
	})
	if err != nil {
		return fmt.Errorf("setting assignees on %s#%d: %w", repoFullName, issueNumber, err)
	}

	return nil
}

// CreateIssueComment creates a top-level comment on an issue or pull request.
func (c *Client) CreateIssueComment(ctx context.Context, repoFullName string, issueNumber int, body string) error {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return err
	}

	_, _, err = c.gh.Issues.CreateComment(ctx, owner, repo, issueNumber, &gh.IssueComment{
		Body: gh.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("creating comment on %s#%d: %w", repoFullName, issueNumber, err)
	}

	return nil
}
