package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type AdditionalInfoUseCase struct {
	repo     additionalinfo.Repository
	notifier *ChangeNotifier
}

func NewAdditionalInfoUseCase(repo additionalinfo.Repository, notifier *ChangeNotifier) *AdditionalInfoUseCase {
	return &AdditionalInfoUseCase{repo: repo, notifier: notifier}
}

func (uc *AdditionalInfoUseCase) Current(ctx context.Context) (*additionalinfo.AdditionalInfo, error) {
	a, err := uc.repo.FindCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NewNotFound("additional info", "current")
	}
	return a, nil
}

func (uc *AdditionalInfoUseCase) List(ctx context.Context) ([]additionalinfo.AdditionalInfo, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *AdditionalInfoUseCase) Get(ctx context.Context, id uuid.UUID) (*additionalinfo.AdditionalInfo, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *AdditionalInfoUseCase) Create(ctx context.Context, a *additionalinfo.AdditionalInfo) (*additionalinfo.AdditionalInfo, error) {
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "additionalInfo")
	return a, nil
}

func (uc *AdditionalInfoUseCase) Update(ctx context.Context, a *additionalinfo.AdditionalInfo) (*additionalinfo.AdditionalInfo, error) {
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "additionalInfo")
	return a, nil
}

func (uc *AdditionalInfoUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "additionalInfo")
	return nil
}
