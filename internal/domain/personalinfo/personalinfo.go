package personalinfo

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Metric struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Social struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
}

type Experience struct {
	Years     string `json:"years"`
	Companies string `json:"companies"`
	Projects  string `json:"projects"`
}

type Availability struct {
	Status         string   `json:"status"`
	Types          []string `json:"types"`
	Remote         bool     `json:"remote"`
	Relocation     bool     `json:"relocation"`
	PreferredRoles []string `json:"preferredRoles"`
}

// PersonalInfo is the identity block of the portfolio. The collection is a
// singleton by convention: the most recently created row is the live one.
type PersonalInfo struct {
	ID                uuid.UUID     `json:"id"`
	Name              string        `json:"name"`
	Title             string        `json:"title"`
	Tagline           string        `json:"tagline"`
	Location          string        `json:"location"`
	Timezone          string        `json:"timezone"`
	Image             string        `json:"image"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Website           string        `json:"website"`
	Social            *Social       `json:"social,omitempty"`
	Metrics           []Metric      `json:"metrics,omitempty"`
	Bio               string        `json:"bio"`
	Experience        *Experience   `json:"experience,omitempty"`
	ValuePropositions []string      `json:"valuePropositions,omitempty"`
	Languages         []string      `json:"languages,omitempty"`
	Availability      *Availability `json:"availability,omitempty"`
	Achievements      []string      `json:"achievements,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
}

type Repository interface {
	// FindCurrent returns the latest record, or (nil, nil) when the
	// collection is empty.
	FindCurrent(ctx context.Context) (*PersonalInfo, error)
	FindAll(ctx context.Context) ([]PersonalInfo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PersonalInfo, error)
	Create(ctx context.Context, p *PersonalInfo) error
	Update(ctx context.Context, p *PersonalInfo) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
