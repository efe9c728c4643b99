package contact

import (
	"context"

	"go.uber.org/zap"

	"github.com/rahulladumor/portfolio-api/adapters/event"
	"github.com/rahulladumor/portfolio-api/internal/domain/contact"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

// SubmitUseCase stores an inbound enquiry and hands notification delivery
// off to the contact events topic. The message is persisted first: a Kafka
// outage delays the mail but never loses the enquiry.
type SubmitUseCase struct {
	repo        contact.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewSubmitUseCase(repo contact.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *SubmitUseCase {
	return &SubmitUseCase{repo: repo, kafkaClient: kClient, logger: log}
}

type SubmitInput struct {
	Name          string
	Email         string
	Subject       string
	Message       string
	ContactMethod string
	OtherSubject  string
}

func (uc *SubmitUseCase) Execute(ctx context.Context, input SubmitInput) (*contact.Message, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, apperror.NewInvalidInput("Name, email and message are required", "missing required contact fields")
	}

	msg := &contact.Message{
		Name:          input.Name,
		Email:         input.Email,
		Subject:       input.Subject,
		Message:       input.Message,
		ContactMethod: input.ContactMethod,
		OtherSubject:  input.OtherSubject,
	}

	if err := uc.repo.Save(ctx, msg); err != nil {
		return nil, err
	}

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishContactEvent(context.Background(), event.ContactEventPayload{
				MessageID: msg.ID,
				Name:      msg.Name,
				Email:     msg.Email,
				Subject:   msg.Subject,
			})
			if err != nil {
				uc.logger.Error("Failed to publish contact event", err, zap.String("message_id", msg.ID.String()))
			}
		}()
	}

	return msg, nil
}
