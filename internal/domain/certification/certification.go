package certification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Issuer       string    `json:"issuer"`
	Year         string    `json:"year"`
	CredentialID string    `json:"credentialId"`
	Level        string    `json:"level"`
	Icon         string    `json:"icon,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Repository interface {
	FindAll(ctx context.Context) ([]Certification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Certification, error)
	Create(ctx context.Context, c *Certification) error
	InsertMany(ctx context.Context, items []Certification) error
	Update(ctx context.Context, c *Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
