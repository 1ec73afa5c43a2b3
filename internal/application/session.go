package application

import (
	"context"
	"log/slog"

	"github.com/prherald/prherald/internal/domain/port/driven"
	"github.com/prherald/prherald/internal/unidiff"
)

// DefaultBaseBranch is the branch pull request diffs are taken against when
// no other branch is named.
const DefaultBaseBranch = "master"

// DiffOptions controls what PRSession.GetDiff produces.
type DiffOptions struct {
	// BaseBranch is the branch the pull request targets. Empty means
	// DefaultBaseBranch.
	BaseBranch string
	// Files restricts the diff to the given paths when non-empty.
	Files []string
	// OnlyChanged drops everything but added and removed lines, which also
	// drops file headers and hunk markers.
	OnlyChanged bool
}

// PRSession is a façade scoped to a single pull request. It supports posting
// comments and retrieving the change diff. The issue behind the pull request
// is resolved once when the session opens; its number is not assumed to match
// the PR number.
type PRSession struct {
	reader      driven.GitHubReader
	writer      driven.GitHubWriter
	diff        driven.DiffProvider
	repo        string
	prNumber    int
	issueNumber int
}

// NewPRSession opens a session for the given pull request.
func NewPRSession(ctx context.Context, reader driven.GitHubReader, writer driven.GitHubWriter, diff driven.DiffProvider, repoFullName string, prNumber int) (*PRSession, error) {
	issueNumber, err := reader.ResolveIssueNumber(ctx, repoFullName, prNumber)
	if err != nil {
		return nil, err
	}

	slog.Debug("pull request session opened", "repo", repoFullName, "pr", prNumber, "issue", issueNumber)

	return &PRSession{
		reader:      reader,
		writer:      writer,
		diff:        diff,
		repo:        repoFullName,
		prNumber:    prNumber,
		issueNumber: issueNumber,
	}, nil
}

// IssueNumber returns the number of the issue backing the pull request.
func (s *PRSession) IssueNumber() int {
	return s.issueNumber
}

// PostComment adds body as a comment on the pull request's conversation.
func (s *PRSession) PostComment(ctx context.Context, body string) error {
	return s.writer.CreateIssueComment(ctx, s.repo, s.issueNumber, body)
}

// GetDiff returns the diff between the base branch's current head commit and
// the local checkout, which is expected to sit on the pull request's head.
// Literal backslash-n sequences in the diff text are unescaped before any
// filtering happens.
func (s *PRSession) GetDiff(ctx context.Context, opts DiffOptions) (string, error) {
	baseBranch := opts.BaseBranch
	if baseBranch == "" {
		baseBranch = DefaultBaseBranch
	}

	baseSHA, err := s.reader.BranchHeadSHA(ctx, s.repo, baseBranch)
	if err != nil {
		return "", err
	}

	text, err := s.diff.Diff(ctx, baseSHA, opts.Files)
	if err != nil {
		return "", err
	}

	text = unidiff.NormalizeEscapes(text)
	if opts.OnlyChanged {
		text = unidiff.ChangedOnly(text)
	}

	return text, nil
}
