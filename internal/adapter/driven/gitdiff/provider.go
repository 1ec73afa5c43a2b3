// Package gitdiff implements the DiffProvider port by shelling out to git.
package gitdiff

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/prherald/prherald/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DiffProvider = (*Provider)(nil)

// Provider implements driven.DiffProvider using the local git binary.
// It assumes the working tree is checked out to the PR head commit.
type Provider struct {
	dir string
}

// NewProvider creates a Provider running git in dir. An empty dir means the
// process working directory.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

// Diff returns the diff from base to HEAD, restricted to files when
// non-empty. The ACMRT filter keeps added, copied, modified, renamed, and
// type-changed files, leaving deletions out.
func (p *Provider) Diff(ctx context.Context, base string, files []string) (string, error) {
	args := buildArgs(base, files)

	out, err := p.gitOutput(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return out, nil
}

func buildArgs(base string, files []string) []string {
	args := []string{"diff", "--diff-filter=ACMRT", base, "HEAD"}
	if len(files) > 0 {
		args = append(args, "--")
		args = append(args, files...)
	}
	return args
}

func (p *Provider) gitOutput(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = p.dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
