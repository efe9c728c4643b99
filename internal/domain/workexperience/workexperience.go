package workexperience

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type WorkExperience struct {
	ID           uuid.UUID `json:"id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Duration     string    `json:"duration"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Repository interface {
	FindAll(ctx context.Context) ([]WorkExperience, error)
	FindByID(ctx context.Context, id uuid.UUID) (*WorkExperience, error)
	Create(ctx context.Context, w *WorkExperience) error
	InsertMany(ctx context.Context, items []WorkExperience) error
	Update(ctx context.Context, w *WorkExperience) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
