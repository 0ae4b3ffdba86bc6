package service

import (
	"context"

	"github.com/omkarinteriors/backend/internal/model"
)

// ContactService runs the submission pipeline for a validated inquiry:
// deliver the notification email, then append to the ledger.
type ContactService interface {
	// Submit delivers the inquiry. A returned error means the
	// notification email failed; ledger failures never surface here.
	Submit(ctx context.Context, inq model.Inquiry) error
}
