package testimonial

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	Testimonial string    `json:"testimonial"`
	Image       string    `json:"image"`
	LinkedIn    string    `json:"linkedin"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repository interface {
	FindAll(ctx context.Context) ([]Testimonial, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	Create(ctx context.Context, t *Testimonial) error
	InsertMany(ctx context.Context, items []Testimonial) error
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
