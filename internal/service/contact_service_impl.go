package service

import (
	"context"
	"log/slog"

	"github.com/omkarinteriors/backend/internal/ledger"
	"github.com/omkarinteriors/backend/internal/mailer"
	"github.com/omkarinteriors/backend/internal/model"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	sender mailer.Sender
	writer ledger.Writer
}

// NewContactService wires the pipeline from its two collaborators.
func NewContactService(sender mailer.Sender, writer ledger.Writer) ContactService {
	return &contactServiceImpl{sender: sender, writer: writer}
}

// Submit sends the notification email, then appends the inquiry to the
// ledger. The ledger is a secondary audit trail: its failures are
// logged and discarded as a matter of policy, never returned.
func (s *contactServiceImpl) Submit(ctx context.Context, inq model.Inquiry) error {
	if err := s.sender.Send(ctx, inq); err != nil {
		return err
	}

	res, err := s.writer.Append(ctx, inq)
	switch {
	case err != nil:
		slog.Error("ledger append failed", "error", err, "email", inq.Email)
	case !res.Appended:
		slog.Debug("ledger append skipped", "reason", res.Reason)
	}
	return nil
}
