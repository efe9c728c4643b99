package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/skills"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type SkillsUseCase struct {
	repo     skills.Repository
	notifier *ChangeNotifier
}

func NewSkillsUseCase(repo skills.Repository, notifier *ChangeNotifier) *SkillsUseCase {
	return &SkillsUseCase{repo: repo, notifier: notifier}
}

func (uc *SkillsUseCase) Current(ctx context.Context) (*skills.Skills, error) {
	s, err := uc.repo.FindCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.NewNotFound("skills", "current")
	}
	return s, nil
}

func (uc *SkillsUseCase) List(ctx context.Context) ([]skills.Skills, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *SkillsUseCase) Get(ctx context.Context, id uuid.UUID) (*skills.Skills, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *SkillsUseCase) Create(ctx context.Context, s *skills.Skills) (*skills.Skills, error) {
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "skills")
	return s, nil
}

func (uc *SkillsUseCase) Update(ctx context.Context, s *skills.Skills) (*skills.Skills, error) {
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "skills")
	return s, nil
}

func (uc *SkillsUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "skills")
	return nil
}
