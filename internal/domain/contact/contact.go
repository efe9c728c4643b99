package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is an inbound contact-form submission. Messages are persisted
// before the notification event is published so mail delivery can fail
// without losing the enquiry.
type Message struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	ContactMethod string    `json:"contactMethod"`
	OtherSubject  string    `json:"otherSubject,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Repository interface {
	Save(ctx context.Context, m *Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	FindAll(ctx context.Context) ([]Message, error)
}
