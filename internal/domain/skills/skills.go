package skills

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Skills holds the three tiers of the skills matrix. Singleton by
// convention, latest row wins.
type Skills struct {
	ID        uuid.UUID `json:"id"`
	Primary   []string  `json:"primary"`
	Secondary []string  `json:"secondary"`
	Tools     []string  `json:"tools"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	FindCurrent(ctx context.Context) (*Skills, error)
	FindAll(ctx context.Context) ([]Skills, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Skills, error)
	Create(ctx context.Context, s *Skills) error
	Update(ctx context.Context, s *Skills) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
