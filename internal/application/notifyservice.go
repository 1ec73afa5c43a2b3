package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prherald/prherald/internal/domain/model"
	"github.com/prherald/prherald/internal/domain/port/driven"
)

// NotifyService turns a collected review map into one email per assignee.
type NotifyService struct {
	directory driven.Directory
	mailer    driven.Mailer
}

// NewNotifyService creates a new NotifyService with the required dependencies.
func NewNotifyService(directory driven.Directory, mailer driven.Mailer) *NotifyService {
	return &NotifyService{
		directory: directory,
		mailer:    mailer,
	}
}

// NotifyAll resolves each assignee in reviews through the directory and sends
// them their pending items. Assignees are processed in sorted login order, and
// the first lookup or delivery failure aborts the remainder of the run.
func (s *NotifyService) NotifyAll(ctx context.Context, reviews model.ReviewMap) error {
	for _, assignee := range reviews.Assignees() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		contact, err := s.directory.Lookup(ctx, assignee)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", assignee, err)
		}

		items := reviews.Items(assignee)
		if err := s.mailer.SendReviewNotice(ctx, contact, items); err != nil {
			return fmt.Errorf("notifying %s: %w", assignee, err)
		}

		slog.Info("review notice sent", "assignee", assignee, "email", contact.Email, "items", len(items))
	}

	return nil
}
