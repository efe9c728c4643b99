package additionalinfo

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SpeakingEngagement struct {
	Event    string `json:"event"`
	Topic    string `json:"topic"`
	Date     string `json:"date"`
	Audience string `json:"audience"`
}

type Publication struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Date     string `json:"date"`
	URL      string `json:"url"`
	Views    string `json:"views"`
}

type CommunityInvolvement struct {
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Duration     string   `json:"duration"`
	Activities   []string `json:"activities"`
}

type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// AdditionalInfo is the grab-bag of career extras. Singleton by convention,
// latest row wins.
type AdditionalInfo struct {
	ID                   uuid.UUID              `json:"id"`
	SpeakingEngagements  []SpeakingEngagement   `json:"speakingEngagements"`
	Publications         []Publication          `json:"publications"`
	CommunityInvolvement []CommunityInvolvement `json:"communityInvolvement"`
	Awards               []Award                `json:"awards"`
	SubjectOptions       []string               `json:"subjectOptions"`
	CreatedAt            time.Time              `json:"createdAt"`
}

type Repository interface {
	FindCurrent(ctx context.Context) (*AdditionalInfo, error)
	FindAll(ctx context.Context) ([]AdditionalInfo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AdditionalInfo, error)
	Create(ctx context.Context, a *AdditionalInfo) error
	Update(ctx context.Context, a *AdditionalInfo) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
