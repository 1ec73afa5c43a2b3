package model

import "time"

// PullRequest is a read-only view of a GitHub pull request carrying the
// fields the review workflows need.
type PullRequest struct {
	Number    int
	Title     string
	URL       string
	Author    string
	Assignees []string
	State     string
	UpdatedAt time.Time
}

// OlderThan reports whether the PR's last update lies strictly more than
// threshold in the past.
func (pr PullRequest) OlderThan(threshold time.Duration) bool {
	return time.Since(pr.UpdatedAt) > threshold
}

// AssignedOnlyToAuthor reports whether the assignee set is exactly the
// PR's author. Such PRs never need outside attention. When the set holds
// anyone else, the author included, every assignee is alerted.
func (pr PullRequest) AssignedOnlyToAuthor() bool {
	if len(pr.Assignees) == 0 {
		return false
	}
	for _, login := range pr.Assignees {
		if login != pr.Author {
			return false
		}
	}
	return true
}
