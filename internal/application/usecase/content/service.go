package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type ServiceUseCase struct {
	repo     service.Repository
	notifier *ChangeNotifier
}

func NewServiceUseCase(repo service.Repository, notifier *ChangeNotifier) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, notifier: notifier}
}

func (uc *ServiceUseCase) List(ctx context.Context) ([]service.Service, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *ServiceUseCase) Get(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ServiceUseCase) Create(ctx context.Context, s *service.Service) (*service.Service, error) {
	if s.Name == "" {
		return nil, apperror.NewInvalidInput("Name is required", "missing service name")
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "services")
	return s, nil
}

func (uc *ServiceUseCase) Update(ctx context.Context, s *service.Service) (*service.Service, error) {
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "services")
	return s, nil
}

func (uc *ServiceUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "services")
	return nil
}
