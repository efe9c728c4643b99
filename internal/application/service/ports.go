package service

import (
	"context"
	"io"

	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
)

// Uploader abstracts the media storage backend used for portfolio snapshots.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// Mailer delivers outbound notification mail.
type Mailer interface {
	Send(ctx context.Context, to []string, subject string, body string) error
}

// ProfileCache fronts the assembled profile document. Implementations must
// treat backend failures as cache misses, never as request errors.
type ProfileCache interface {
	Get(ctx context.Context) (*portfolio.Profile, bool)
	Set(ctx context.Context, p *portfolio.Profile)
	Invalidate(ctx context.Context)
}
