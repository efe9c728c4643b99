package content

import (
	"context"
	"errors"
	"strconv"

	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

// CaseStudyUseCase keys all lookups by the externally-supplied numeric id,
// never by the surrogate row key.
type CaseStudyUseCase struct {
	repo     casestudy.Repository
	notifier *ChangeNotifier
}

func NewCaseStudyUseCase(repo casestudy.Repository, notifier *ChangeNotifier) *CaseStudyUseCase {
	return &CaseStudyUseCase{repo: repo, notifier: notifier}
}

func (uc *CaseStudyUseCase) List(ctx context.Context) ([]casestudy.CaseStudy, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *CaseStudyUseCase) Get(ctx context.Context, id int) (*casestudy.CaseStudy, error) {
	return uc.repo.FindByExternalID(ctx, id)
}

func (uc *CaseStudyUseCase) Create(ctx context.Context, c *casestudy.CaseStudy) (*casestudy.CaseStudy, error) {
	if c.ID <= 0 {
		return nil, apperror.NewInvalidInput("Field 'id' must be a positive number", "invalid case study id")
	}
	if c.Title == "" {
		return nil, apperror.NewInvalidInput("Title is required", "missing case study title")
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		if errors.Is(err, casestudy.ErrDuplicateID) {
			return nil, apperror.NewConflict("case study", "id", strconv.Itoa(c.ID))
		}
		return nil, err
	}
	uc.notifier.Changed(ctx, "caseStudies")
	return c, nil
}

func (uc *CaseStudyUseCase) Update(ctx context.Context, c *casestudy.CaseStudy) (*casestudy.CaseStudy, error) {
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "caseStudies")
	return c, nil
}

func (uc *CaseStudyUseCase) Delete(ctx context.Context, id int) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "caseStudies")
	return nil
}
