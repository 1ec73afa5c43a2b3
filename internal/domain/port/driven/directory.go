package driven

import (
	"context"

	"github.com/prherald/prherald/internal/domain/model"
)

// Directory resolves GitHub logins to directory contacts.
type Directory interface {
	// Lookup returns the contact registered for the given login.
	// Returns errors.ErrContactNotFound when no entry matches.
	Lookup(ctx context.Context, login string) (model.Contact, error)
}
