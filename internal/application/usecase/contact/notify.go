package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rahulladumor/portfolio-api/adapters/event"
	"github.com/rahulladumor/portfolio-api/internal/application/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/contact"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

// NotifyUseCase turns a consumed contact event into an admin notification
// mail. Runs in the worker, not in the request path.
type NotifyUseCase struct {
	repo       contact.Repository
	mailer     service.Mailer
	adminEmail string
	logger     logger.Logger
}

func NewNotifyUseCase(repo contact.Repository, mailer service.Mailer, adminEmail string, log logger.Logger) *NotifyUseCase {
	return &NotifyUseCase{
		repo:       repo,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     log,
	}
}

func (uc *NotifyUseCase) Execute(ctx context.Context, payload event.ContactEventPayload) error {
	msg, err := uc.repo.FindByID(ctx, payload.MessageID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New portfolio enquiry: %s", msg.Subject)
	if msg.Subject == "" {
		subject = "New portfolio enquiry"
	}

	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nContact method: %s\nSubject: %s\nOther subject: %s\n\n%s\n",
		msg.Name, msg.Email, msg.ContactMethod, msg.Subject, msg.OtherSubject, msg.Message,
	)

	if err := uc.mailer.Send(ctx, []string{uc.adminEmail}, subject, body); err != nil {
		return err
	}

	uc.logger.Info("Contact notification sent", zap.String("message_id", msg.ID.String()))
	return nil
}
