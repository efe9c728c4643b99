package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type PersonalInfoUseCase struct {
	repo     personalinfo.Repository
	notifier *ChangeNotifier
}

func NewPersonalInfoUseCase(repo personalinfo.Repository, notifier *ChangeNotifier) *PersonalInfoUseCase {
	return &PersonalInfoUseCase{repo: repo, notifier: notifier}
}

// Current returns the live record; not found when the collection is empty.
func (uc *PersonalInfoUseCase) Current(ctx context.Context) (*personalinfo.PersonalInfo, error) {
	p, err := uc.repo.FindCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("personal info", "current")
	}
	return p, nil
}

func (uc *PersonalInfoUseCase) List(ctx context.Context) ([]personalinfo.PersonalInfo, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *PersonalInfoUseCase) Get(ctx context.Context, id uuid.UUID) (*personalinfo.PersonalInfo, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *PersonalInfoUseCase) Create(ctx context.Context, p *personalinfo.PersonalInfo) (*personalinfo.PersonalInfo, error) {
	if p.Name == "" && p.Title == "" && p.Email == "" {
		return nil, apperror.NewInvalidInput("At least one of name, title or email is required", "empty personal info")
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "personalInfo")
	return p, nil
}

func (uc *PersonalInfoUseCase) Update(ctx context.Context, p *personalinfo.PersonalInfo) (*personalinfo.PersonalInfo, error) {
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "personalInfo")
	return p, nil
}

func (uc *PersonalInfoUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "personalInfo")
	return nil
}
