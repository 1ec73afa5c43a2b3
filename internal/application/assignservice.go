package application

import (
	"context"
	"log/slog"
	"sort"

	"github.com/prherald/prherald/internal/domain/port/driven"
)

// AssignService manages the assignee list of pull requests.
type AssignService struct {
	reader driven.GitHubReader
	writer driven.GitHubWriter
}

// NewAssignService creates a new AssignService with the required dependencies.
func NewAssignService(reader driven.GitHubReader, writer driven.GitHubWriter) *AssignService {
	return &AssignService{
		reader: reader,
		writer: writer,
	}
}

// Assign puts users on the pull request's assignee list. With keepCurrent the
// existing assignees are preserved and users are merged in; otherwise exactly
// users end up assigned. The resulting list is deduplicated and sorted.
//
// Pull requests are addressed through the issue facet of the PR, whose number
// equals the PR number.
func (s *AssignService) Assign(ctx context.Context, repoFullName string, prNumber int, users []string, keepCurrent bool) error {
	assigned := make(map[string]bool)
	if keepCurrent {
		current, err := s.reader.IssueAssignees(ctx, repoFullName, prNumber)
		if err != nil {
			return err
		}
		for _, login := range current {
			assigned[login] = true
		}
	}
	for _, login := range users {
		assigned[login] = true
	}

	logins := make([]string, 0, len(assigned))
	for login := range assigned {
		logins = append(logins, login)
	}
	sort.Strings(logins)

	if err := s.writer.SetIssueAssignees(ctx, repoFullName, prNumber, logins); err != nil {
		return err
	}

	slog.Info("assignees updated", "repo", repoFullName, "pr", prNumber, "assignees", logins)
	return nil
}
