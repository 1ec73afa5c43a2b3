package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prherald/prherald/internal/application"
)

// --- Mock implementations ---

type diffCall struct {
	Base  string
	Files []string
}

type mockDiffProvider struct {
	diff  func(ctx context.Context, base string, files []string) (string, error)
	calls []diffCall
}

func (m *mockDiffProvider) Diff(ctx context.Context, base string, files []string) (string, error) {
	m.calls = append(m.calls, diffCall{Base: base, Files: files})
	if m.diff == nil {
		return "", nil
	}
	return m.diff(ctx, base, files)
}

// openSession builds a PRSession against acme/widgets PR 7 whose backing
// issue resolves to 55.
func openSession(t *testing.T, reader *mockGitHubReader, writer *mockGitHubWriter, provider *mockDiffProvider) *application.PRSession {
	t.Helper()

	if reader.resolveIssue == nil {
		reader.resolveIssue = func(_ context.Context, _ string, _ int) (int, error) {
			return 55, nil
		}
	}

	session, err := application.NewPRSession(context.Background(), reader, writer, provider, "acme/widgets", 7)
	require.NoError(t, err)
	return session
}

// --- Tests ---

func TestNewPRSession_ResolvesBackingIssue(t *testing.T) {
	var resolvedPR int
	reader := &mockGitHubReader{
		resolveIssue: func(_ context.Context, repoFullName string, prNumber int) (int, error) {
			assert.Equal(t, "acme/widgets", repoFullName)
			resolvedPR = prNumber
			return 55, nil
		},
	}
	writer := &mockGitHubWriter{}

	session := openSession(t, reader, writer, &mockDiffProvider{})

	assert.Equal(t, 7, resolvedPR)
	assert.Equal(t, 55, session.IssueNumber())
}

func TestNewPRSession_ResolveFailure(t *testing.T) {
	resolveErr := errors.New("boom")
	reader := &mockGitHubReader{
		resolveIssue: func(_ context.Context, _ string, _ int) (int, error) {
			return 0, resolveErr
		},
	}

	session, err := application.NewPRSession(context.Background(), reader, &mockGitHubWriter{}, &mockDiffProvider{}, "acme/widgets", 7)

	assert.ErrorIs(t, err, resolveErr)
	assert.Nil(t, session)
}

func TestPostComment_TargetsBackingIssue(t *testing.T) {
	writer := &mockGitHubWriter{}
	session := openSession(t, &mockGitHubReader{}, writer, &mockDiffProvider{})

	err := session.PostComment(context.Background(), "Looks good.")
	require.NoError(t, err)

	require.Len(t, writer.commentCalls, 1)
	call := writer.commentCalls[0]
	assert.Equal(t, "acme/widgets", call.RepoFullName)
	// The issue number came from the PR's issue link, not the PR number.
	assert.Equal(t, 55, call.IssueNumber)
	assert.Equal(t, "Looks good.", call.Body)
}

func TestGetDiff_DefaultsToMaster(t *testing.T) {
	var gotBranch string
	reader := &mockGitHubReader{
		branchHeadSHA: func(_ context.Context, _, branch string) (string, error) {
			gotBranch = branch
			return "abc123", nil
		},
	}
	provider := &mockDiffProvider{}

	session := openSession(t, reader, &mockGitHubWriter{}, provider)
	_, err := session.GetDiff(context.Background(), application.DiffOptions{})
	require.NoError(t, err)

	assert.Equal(t, "master", gotBranch)
	require.Len(t, provider.calls, 1)
	assert.Equal(t, "abc123", provider.calls[0].Base)
	assert.Empty(t, provider.calls[0].Files)
}

func TestGetDiff_CustomBaseBranch(t *testing.T) {
	var gotBranch string
	reader := &mockGitHubReader{
		branchHeadSHA: func(_ context.Context, _, branch string) (string, error) {
			gotBranch = branch
			return "def456", nil
		},
	}
	provider := &mockDiffProvider{}

	session := openSession(t, reader, &mockGitHubWriter{}, provider)
	_, err := session.GetDiff(context.Background(), application.DiffOptions{BaseBranch: "develop"})
	require.NoError(t, err)

	assert.Equal(t, "develop", gotBranch)
	assert.Equal(t, "def456", provider.calls[0].Base)
}

func TestGetDiff_FilesRestricted(t *testing.T) {
	provider := &mockDiffProvider{}
	session := openSession(t, &mockGitHubReader{
		branchHeadSHA: func(_ context.Context, _, _ string) (string, error) {
			return "abc123", nil
		},
	}, &mockGitHubWriter{}, provider)

	_, err := session.GetDiff(context.Background(), application.DiffOptions{Files: []string{"main.go", "util.go"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go", "util.go"}, provider.calls[0].Files)
}

func TestGetDiff_NormalizesEscapedNewlines(t *testing.T) {
	provider := &mockDiffProvider{
		diff: func(_ context.Context, _ string, _ []string) (string, error) {
			return `+first\n+second`, nil
		},
	}
	session := openSession(t, &mockGitHubReader{
		branchHeadSHA: func(_ context.Context, _, _ string) (string, error) {
			return "abc123", nil
		},
	}, &mockGitHubWriter{}, provider)

	diff, err := session.GetDiff(context.Background(), application.DiffOptions{})
	require.NoError(t, err)

	assert.Equal(t, "+first\n+second", diff)
}

func TestGetDiff_OnlyChanged(t *testing.T) {
	full := "diff --git a/main.go b/main.go\n" +
		"index 1234567..89abcde 100644\n" +
		"--- a/main.go\n" +
		"+++ b/main.go\n" +
		"@@ -1,3 +1,3 @@\n" +
		" package main\n" +
		"-old line\n" +
		"+new line\n"
	provider := &mockDiffProvider{
		diff: func(_ context.Context, _ string, _ []string) (string, error) {
			return full, nil
		},
	}
	session := openSession(t, &mockGitHubReader{
		branchHeadSHA: func(_ context.Context, _, _ string) (string, error) {
			return "abc123", nil
		},
	}, &mockGitHubWriter{}, provider)

	diff, err := session.GetDiff(context.Background(), application.DiffOptions{OnlyChanged: true})
	require.NoError(t, err)

	// File headers start with --- and +++ and survive the filter.
	assert.Equal(t, "--- a/main.go\n+++ b/main.go\n-old line\n+new line", diff)
}

func TestGetDiff_BranchLookupError(t *testing.T) {
	lookupErr := errors.New("boom")
	provider := &mockDiffProvider{}
	session := openSession(t, &mockGitHubReader{
		branchHeadSHA: func(_ context.Context, _, _ string) (string, error) {
			return "", lookupErr
		},
	}, &mockGitHubWriter{}, provider)

	_, err := session.GetDiff(context.Background(), application.DiffOptions{})

	assert.ErrorIs(t, err, lookupErr)
	assert.Empty(t, provider.calls)
}
