package sectiondata

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SectionType identifies one of the seven narrative page sections. Exactly
// one document may exist per type.
type SectionType string

const (
	ProblemSection      SectionType = "problemSection"
	SolutionSection     SectionType = "solutionSection"
	CredentialsSection  SectionType = "credentialsSection"
	ServicesSection     SectionType = "servicesSection"
	TestimonialsSection SectionType = "testimonialsSection"
	CaseStudiesSection  SectionType = "caseStudiesSection"
	AboutSection        SectionType = "aboutSection"
)

// AllSectionTypes lists the valid section types in their page order.
var AllSectionTypes = []SectionType{
	ProblemSection,
	SolutionSection,
	CredentialsSection,
	ServicesSection,
	TestimonialsSection,
	CaseStudiesSection,
	AboutSection,
}

func (t SectionType) Valid() bool {
	for _, s := range AllSectionTypes {
		if s == t {
			return true
		}
	}
	return false
}

// SectionData stores a section's content as an opaque JSON blob.
type SectionData struct {
	ID          uuid.UUID      `json:"id"`
	SectionType SectionType    `json:"sectionType"`
	Data        map[string]any `json:"data"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type Repository interface {
	FindAll(ctx context.Context) ([]SectionData, error)
	// FindByType returns (nil, nil) when no document exists for the type.
	FindByType(ctx context.Context, t SectionType) (*SectionData, error)
	Create(ctx context.Context, s *SectionData) error
	Upsert(ctx context.Context, s *SectionData) error
	DeleteByType(ctx context.Context, t SectionType) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
