// Package application contains use-case orchestration services.
package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/prherald/prherald/internal/domain/model"
	"github.com/prherald/prherald/internal/domain/port/driven"
)

// ReviewService walks an organization's teams and collects the open pull
// requests that are waiting on a reviewer. It depends only on port interfaces.
type ReviewService struct {
	gh driven.GitHubReader
}

// NewReviewService creates a new ReviewService backed by the given reader.
func NewReviewService(gh driven.GitHubReader) *ReviewService {
	return &ReviewService{gh: gh}
}

// CollectReviews gathers the open pull requests needing reviewer attention
// across all repositories reachable through the organization's teams, grouped
// by assignee login.
//
// A pull request needs attention when it has at least one assignee, the
// assignees are not solely its author, and its last update lies more than
// minAge in the past. When nameFilter is non-empty, only teams whose display
// name starts with it contribute repositories. Repositories reachable through
// several teams are visited once.
func (s *ReviewService) CollectReviews(ctx context.Context, org string, minAge time.Duration, nameFilter string) (model.ReviewMap, error) {
	start := time.Now()

	teams, err := s.gh.ListTeams(ctx, org)
	if err != nil {
		return nil, err
	}

	var (
		repos        []model.Repository
		matchedTeams int
	)
	seen := make(map[int64]bool)
	for _, team := range teams {
		if !strings.HasPrefix(team.Name, nameFilter) {
			continue
		}
		matchedTeams++

		teamRepos, err := s.gh.ListTeamRepos(ctx, org, team.Slug)
		if err != nil {
			return nil, err
		}
		for _, repo := range teamRepos {
			if seen[repo.ID] {
				continue
			}
			seen[repo.ID] = true
			repos = append(repos, repo)
		}
	}

	reviews := model.NewReviewMap()
	for _, repo := range repos {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		prs, err := s.gh.ListOpenPullRequests(ctx, repo.FullName)
		if err != nil {
			return nil, err
		}

		var flagged int
		for _, pr := range prs {
			if !needsAttention(pr, minAge) {
				continue
			}
			flagged++
			for _, assignee := range pr.Assignees {
				reviews.Add(assignee, model.ReviewItem{Title: pr.Title, URL: pr.URL})
			}
		}

		slog.Debug("repo checked", "repo", repo.FullName, "open_prs", len(prs), "flagged", flagged)
	}

	slog.Info("review collection complete",
		"org", org,
		"teams", matchedTeams,
		"repos", len(repos),
		"assignees", len(reviews),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return reviews, nil
}

// needsAttention reports whether a single pull request should be surfaced.
// A PR assigned only to its author has nobody else to nudge; any wider
// assignee set notifies everyone on it, the author included.
func needsAttention(pr model.PullRequest, minAge time.Duration) bool {
	if len(pr.Assignees) == 0 {
		return false
	}
	if pr.AssignedOnlyToAuthor() {
		return false
	}
	return pr.OlderThan(minAge)
}
