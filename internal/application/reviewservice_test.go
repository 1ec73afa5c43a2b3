package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prherald/prherald/internal/application"
	"github.com/prherald/prherald/internal/domain/model"
)

// --- Mock implementations ---

type mockGitHubReader struct {
	listTeams      func(ctx context.Context, org string) ([]model.Team, error)
	listTeamRepos  func(ctx context.Context, org, teamSlug string) ([]model.Repository, error)
	listOpenPRs    func(ctx context.Context, repoFullName string) ([]model.PullRequest, error)
	resolveIssue   func(ctx context.Context, repoFullName string, prNumber int) (int, error)
	branchHeadSHA  func(ctx context.Context, repoFullName, branch string) (string, error)
	issueAssignees func(ctx context.Context, repoFullName string, issueNumber int) ([]string, error)

	polledRepos []string
}

func (m *mockGitHubReader) ListTeams(ctx context.Context, org string) ([]model.Team, error) {
	if m.listTeams == nil {
		return nil, nil
	}
	return m.listTeams(ctx, org)
}

func (m *mockGitHubReader) ListTeamRepos(ctx context.Context, org, teamSlug string) ([]model.Repository, error) {
	if m.listTeamRepos == nil {
		return nil, nil
	}
	return m.listTeamRepos(ctx, org, teamSlug)
}

func (m *mockGitHubReader) ListOpenPullRequests(ctx context.Context, repoFullName string) ([]model.PullRequest, error) {
	m.polledRepos = append(m.polledRepos, repoFullName)
	if m.listOpenPRs == nil {
		return nil, nil
	}
	return m.listOpenPRs(ctx, repoFullName)
}

func (m *mockGitHubReader) ResolveIssueNumber(ctx context.Context, repoFullName string, prNumber int) (int, error) {
	if m.resolveIssue == nil {
		return prNumber, nil
	}
	return m.resolveIssue(ctx, repoFullName, prNumber)
}

func (m *mockGitHubReader) BranchHeadSHA(ctx context.Context, repoFullName, branch string) (string, error) {
	if m.branchHeadSHA == nil {
		return "", nil
	}
	return m.branchHeadSHA(ctx, repoFullName, branch)
}

func (m *mockGitHubReader) IssueAssignees(ctx context.Context, repoFullName string, issueNumber int) ([]string, error) {
	if m.issueAssignees == nil {
		return nil, nil
	}
	return m.issueAssignees(ctx, repoFullName, issueNumber)
}

// singleRepoOrg wires a reader exposing one team with one repository whose
// open pull requests are prs.
func singleRepoOrg(prs []model.PullRequest) *mockGitHubReader {
	return &mockGitHubReader{
		listTeams: func(_ context.Context, _ string) ([]model.Team, error) {
			return []model.Team{{Slug: "core", Name: "Core"}}, nil
		},
		listTeamRepos: func(_ context.Context, _, _ string) ([]model.Repository, error) {
			return []model.Repository{{ID: 1, FullName: "acme/widgets"}}, nil
		},
		listOpenPRs: func(_ context.Context, _ string) ([]model.PullRequest, error) {
			return prs, nil
		},
	}
}

// --- Tests ---

func TestCollectReviews_FlagsStalePR(t *testing.T) {
	reader := singleRepoOrg([]model.PullRequest{
		{
			Number:    7,
			Title:     "Fix bug",
			URL:       "https://git.example.com/acme/widgets/pull/7",
			Author:    "alice",
			Assignees: []string{"bob"},
			UpdatedAt: time.Now().Add(-100000 * time.Second),
		},
	})

	svc := application.NewReviewService(reader)
	reviews, err := svc.CollectReviews(context.Background(), "acme", 72000*time.Second, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"bob"}, reviews.Assignees())
	assert.Equal(t, []model.ReviewItem{
		{Title: "Fix bug", URL: "https://git.example.com/acme/widgets/pull/7"},
	}, reviews.Items("bob"))
}

func TestCollectReviews_AuthorAmongOthersIncluded(t *testing.T) {
	reader := singleRepoOrg([]model.PullRequest{
		{
			Number:    8,
			Title:     "Add feature",
			URL:       "https://git.example.com/acme/widgets/pull/8",
			Author:    "alice",
			Assignees: []string{"alice", "bob"},
			UpdatedAt: time.Now().Add(-48 * time.Hour),
		},
	})

	svc := application.NewReviewService(reader)
	reviews, err := svc.CollectReviews(context.Background(), "acme", 20*time.Hour, "")
	require.NoError(t, err)

	// The author is alerted too once anybody else shares the assignee list.
	assert.Equal(t, []string{"alice", "bob"}, reviews.Assignees())
}

func TestCollectReviews_SoleAuthorAssigneeSkipped(t *testing.T) {
	reader := singleRepoOrg([]model.PullRequest{
		{
			Number:    9,
			Title:     "Self-assigned",
			URL:       "https://git.example.com/acme/widgets/pull/9",
			Author:    "alice",
			Assignees: []string{"alice"},
			UpdatedAt: time.Now().Add(-48 * time.Hour),
		},
	})

	svc := application.NewReviewService(reader)
	reviews, err := svc.CollectReviews(context.Background(), "acme", 20*time.Hour, "")
	require.NoError(t, err)

	assert.Empty(t, reviews)
}

func TestCollectReviews_NoAssigneesSkipped(t *testing.T) {
	reader := singleRepoOrg([]model.PullRequest{
		{
			Number:    10,
			Title:     "Unassigned",
			URL:       "https://git.example.com/acme/widgets/pull/10",
			Author:    "alice",
			UpdatedAt: time.Now().Add(-48 * time.Hour),
		},
	})

	svc := application.NewReviewService(reader)
	reviews, err := svc.CollectReviews(context.Background(), "acme", 20*time.Hour, "")
	require.NoError(t, err)

	assert.Empty(t, reviews)
}

func TestCollectReviews_FreshPRSkipped(t *testing.T) {
	reader := singleRepoOrg([]model.PullRequest{
		{
			Number:    11,
			Title:     "Just updated",
			URL:       "https://git.example.com/acme/widgets/pull/11",
			Author:    "alice",
			Assignees: []string{"bob"},
			UpdatedAt: time.Now().Add(-time.Hour),
		},
	})

	svc := application.NewReviewService(reader)
	reviews, err := svc.CollectReviews(context.Background(), "acme", 20*time.Hour, "")
	require.NoError(t, err)

	assert.Empty(t, reviews)
}

func TestCollectReviews_TeamNameFilter(t *testing.T) {
	reader := &mockGitHubReader{
		listTeams: func(_ context.Context, _ string) ([]model.Team, error) {
			return []model.Team{
				{Slug: "core-api", Name: "Core API"},
				{Slug: "core-web", Name: "Core Web"},
				{Slug: "platform", Name: "Platform"},
			}, nil
		},
		listTeamRepos: func(_ context.Context, _, teamSlug string) ([]model.Repository, error) {
			switch teamSlug {
			case "core-api":
				return []model.Repository{{ID: 1, FullName: "acme/api"}}, nil
			case "core-web":
				return []model.Repository{{ID: 2, FullName: "acme/web"}}, nil
			default:
				return []model.Repository{{ID: 3, FullName: "acme/infra"}}, nil
			}
		},
	}

	svc := application.NewReviewService(reader)
	_, err := svc.CollectReviews(context.Background(), "acme", 20*time.Hour, "Core")
	require.NoError(t, err)

	assert.Equal(t, []string{"acme/api", "acme/web"}, reader.polledRepos)
}

func TestCollectReviews_SharedRepoPolledOnce(t *testing.T) {
	reader := &mockGitHubReader{
		listTeams: func(_ context.Context, _ string) ([]model.Team, error) {
			return []model.Team{
				{Slug: "core", Name: "Core"},
				{Slug: "platform", Name: "Platform"},
			}, nil
		},
		listTeamRepos: func(_ context.Context, _, _ string) ([]model.Repository, error) {
			return []model.Repository{{ID: 1, FullName: "acme/widgets"}}, nil
		},
	}

	svc := application.NewReviewService(reader)
	_, err := svc.CollectReviews(context.Background(), "acme", 20*time.Hour, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"acme/widgets"}, reader.polledRepos)
}

func TestCollectReviews_TeamListError(t *testing.T) {
	listErr := errors.New("boom")
	reader := &mockGitHubReader{
		listTeams: func(_ context.Context, _ string) ([]model.Team, error) {
			return nil, listErr
		},
	}

	svc := application.NewReviewService(reader)
	_, err := svc.CollectReviews(context.Background(), "acme", 20*time.Hour, "")
	assert.ErrorIs(t, err, listErr)
}

func TestCollectReviews_PRListErrorAborts(t *testing.T) {
	listErr := errors.New("boom")
	reader := singleRepoOrg(nil)
	reader.listOpenPRs = func(_ context.Context, _ string) ([]model.PullRequest, error) {
		return nil, listErr
	}

	svc := application.NewReviewService(reader)
	_, err := svc.CollectReviews(context.Background(), "acme", 20*time.Hour, "")
	assert.ErrorIs(t, err, listErr)
}
