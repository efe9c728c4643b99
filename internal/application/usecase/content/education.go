package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/education"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type EducationUseCase struct {
	repo     education.Repository
	notifier *ChangeNotifier
}

func NewEducationUseCase(repo education.Repository, notifier *ChangeNotifier) *EducationUseCase {
	return &EducationUseCase{repo: repo, notifier: notifier}
}

func (uc *EducationUseCase) List(ctx context.Context) ([]education.Education, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *EducationUseCase) Get(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *EducationUseCase) Create(ctx context.Context, e *education.Education) (*education.Education, error) {
	if e.Institution == "" || e.Degree == "" {
		return nil, apperror.NewInvalidInput("Institution and degree are required", "missing required education fields")
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "education")
	return e, nil
}

func (uc *EducationUseCase) Update(ctx context.Context, e *education.Education) (*education.Education, error) {
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "education")
	return e, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "education")
	return nil
}
