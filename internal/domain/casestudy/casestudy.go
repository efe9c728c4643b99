package casestudy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrDuplicateID = errors.New("case study id already exists")

// CaseStudy carries an externally-supplied numeric id that is unique across
// the collection and doubles as the public lookup key. The surrogate row key
// stays internal.
type CaseStudy struct {
	UID          uuid.UUID         `json:"-"`
	ID           int               `json:"id"`
	Title        string            `json:"title"`
	Company      string            `json:"company"`
	Industry     string            `json:"industry"`
	Challenge    string            `json:"challenge"`
	Image        string            `json:"image,omitempty"`
	Timeline     string            `json:"timeline,omitempty"`
	TeamSize     string            `json:"teamSize,omitempty"`
	Metrics      map[string]string `json:"metrics,omitempty"`
	BeforeStats  map[string]string `json:"beforeStats,omitempty"`
	AfterStats   map[string]string `json:"afterStats,omitempty"`
	Solution     string            `json:"solution"`
	Results      []string          `json:"results"`
	Technologies []string          `json:"technologies"`
	ClientQuote  string            `json:"clientQuote"`
	CreatedAt    time.Time         `json:"createdAt"`
}

type Repository interface {
	FindAll(ctx context.Context) ([]CaseStudy, error)
	FindByExternalID(ctx context.Context, id int) (*CaseStudy, error)
	Create(ctx context.Context, c *CaseStudy) error
	InsertMany(ctx context.Context, items []CaseStudy) error
	Update(ctx context.Context, c *CaseStudy) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
