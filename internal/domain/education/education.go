package education

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID          uuid.UUID `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Duration    string    `json:"duration"`
	Location    string    `json:"location"`
	GPA         string    `json:"gpa,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repository interface {
	FindAll(ctx context.Context) ([]Education, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	Create(ctx context.Context, e *Education) error
	InsertMany(ctx context.Context, items []Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
