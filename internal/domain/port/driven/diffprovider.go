package driven

import "context"

// DiffProvider produces a diff between a base commit and the checked-out HEAD.
type DiffProvider interface {
	// Diff returns the textual diff from base to HEAD, restricted to the
	// given files when files is non-empty.
	Diff(ctx context.Context, base string, files []string) (string, error)
}
