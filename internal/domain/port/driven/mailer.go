package driven

import (
	"context"

	"github.com/prherald/prherald/internal/domain/model"
)

// Mailer sends review notification mail.
type Mailer interface {
	// SendReviewNotice emails the contact their pending review items.
	SendReviewNotice(ctx context.Context, to model.Contact, items []model.ReviewItem) error
}
