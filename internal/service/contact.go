package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/mail"
)

// ContactService validates contact-form submissions and forwards them as
// email. Nothing is persisted; a failed delivery is logged and surfaced as
// a delivery error, never retried.
type ContactService struct {
	sender mail.ContactSender
	logger *slog.Logger
}

func NewContactService(sender mail.ContactSender, logger *slog.Logger) *ContactService {
	return &ContactService{sender: sender, logger: logger}
}

// Submit checks that every field is non-blank and dispatches the message.
// Delivery is synchronous; ctx only bounds the caller's wait.
func (s *ContactService) Submit(ctx context.Context, name, email, subject, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(subject) == "" ||
		strings.TrimSpace(message) == "" {
		return apperror.ValidationFailed("contact", "all fields are required")
	}

	if err := s.sender.SendContact(name, email, subject, message); err != nil {
		s.logger.Error("contact message delivery failed",
			slog.String("from", email),
			slog.String("error", err.Error()),
		)
		return apperror.Delivery("failed to send message", err)
	}

	s.logger.Info("contact message sent", slog.String("from", email))
	return nil
}
