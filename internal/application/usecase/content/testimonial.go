package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type TestimonialUseCase struct {
	repo     testimonial.Repository
	notifier *ChangeNotifier
}

func NewTestimonialUseCase(repo testimonial.Repository, notifier *ChangeNotifier) *TestimonialUseCase {
	return &TestimonialUseCase{repo: repo, notifier: notifier}
}

func (uc *TestimonialUseCase) List(ctx context.Context) ([]testimonial.Testimonial, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *TestimonialUseCase) Get(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *TestimonialUseCase) Create(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	if t.Name == "" || t.Testimonial == "" {
		return nil, apperror.NewInvalidInput("Name and testimonial are required", "missing required testimonial fields")
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "testimonials")
	return t, nil
}

func (uc *TestimonialUseCase) Update(ctx context.Context, t *testimonial.Testimonial) (*testimonial.Testimonial, error) {
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "testimonials")
	return t, nil
}

func (uc *TestimonialUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "testimonials")
	return nil
}
