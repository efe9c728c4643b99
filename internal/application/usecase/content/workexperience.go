package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/workexperience"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type WorkExperienceUseCase struct {
	repo     workexperience.Repository
	notifier *ChangeNotifier
}

func NewWorkExperienceUseCase(repo workexperience.Repository, notifier *ChangeNotifier) *WorkExperienceUseCase {
	return &WorkExperienceUseCase{repo: repo, notifier: notifier}
}

func (uc *WorkExperienceUseCase) List(ctx context.Context) ([]workexperience.WorkExperience, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *WorkExperienceUseCase) Get(ctx context.Context, id uuid.UUID) (*workexperience.WorkExperience, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *WorkExperienceUseCase) Create(ctx context.Context, w *workexperience.WorkExperience) (*workexperience.WorkExperience, error) {
	if w.Company == "" || w.Position == "" {
		return nil, apperror.NewInvalidInput("Company and position are required", "missing required work experience fields")
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "workExperience")
	return w, nil
}

func (uc *WorkExperienceUseCase) Update(ctx context.Context, w *workexperience.WorkExperience) (*workexperience.WorkExperience, error) {
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "workExperience")
	return w, nil
}

func (uc *WorkExperienceUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "workExperience")
	return nil
}
