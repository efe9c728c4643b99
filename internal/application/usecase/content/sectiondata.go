package content

import (
	"context"

	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

// SectionDataUseCase is keyed by section type rather than id; writes are
// upserts since at most one document exists per type.
type SectionDataUseCase struct {
	repo     sectiondata.Repository
	notifier *ChangeNotifier
}

func NewSectionDataUseCase(repo sectiondata.Repository, notifier *ChangeNotifier) *SectionDataUseCase {
	return &SectionDataUseCase{repo: repo, notifier: notifier}
}

func (uc *SectionDataUseCase) List(ctx context.Context) ([]sectiondata.SectionData, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *SectionDataUseCase) Get(ctx context.Context, t sectiondata.SectionType) (*sectiondata.SectionData, error) {
	if !t.Valid() {
		return nil, apperror.NewInvalidInput("Invalid section type", string(t))
	}
	s, err := uc.repo.FindByType(ctx, t)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.NewNotFound("section data", string(t))
	}
	return s, nil
}

func (uc *SectionDataUseCase) Upsert(ctx context.Context, t sectiondata.SectionType, data map[string]any) (*sectiondata.SectionData, error) {
	if !t.Valid() {
		return nil, apperror.NewInvalidInput("Invalid section type", string(t))
	}
	if data == nil {
		return nil, apperror.NewInvalidInput("Section data is required", "empty section body")
	}
	s := &sectiondata.SectionData{SectionType: t, Data: data}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "sectionData")
	return s, nil
}

func (uc *SectionDataUseCase) Delete(ctx context.Context, t sectiondata.SectionType) error {
	if !t.Valid() {
		return apperror.NewInvalidInput("Invalid section type", string(t))
	}
	if err := uc.repo.DeleteByType(ctx, t); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "sectionData")
	return nil
}
