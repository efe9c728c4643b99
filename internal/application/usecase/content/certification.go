package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type CertificationUseCase struct {
	repo     certification.Repository
	notifier *ChangeNotifier
}

func NewCertificationUseCase(repo certification.Repository, notifier *ChangeNotifier) *CertificationUseCase {
	return &CertificationUseCase{repo: repo, notifier: notifier}
}

func (uc *CertificationUseCase) List(ctx context.Context) ([]certification.Certification, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *CertificationUseCase) Get(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *CertificationUseCase) Create(ctx context.Context, c *certification.Certification) (*certification.Certification, error) {
	if c.Name == "" || c.Issuer == "" {
		return nil, apperror.NewInvalidInput("Name and issuer are required", "missing required certification fields")
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "certifications")
	return c, nil
}

func (uc *CertificationUseCase) Update(ctx context.Context, c *certification.Certification) (*certification.Certification, error) {
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, "certifications")
	return c, nil
}

func (uc *CertificationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, "certifications")
	return nil
}
