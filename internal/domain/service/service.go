package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service is a consulting offering listed on the site.
type Service struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Duration     string    `json:"duration"`
	Deliverables []string  `json:"deliverables"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Repository interface {
	FindAll(ctx context.Context) ([]Service, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)
	Create(ctx context.Context, s *Service) error
	InsertMany(ctx context.Context, items []Service) error
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
