package portfolio

import (
	"encoding/json"
	"fmt"

	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/skills"
	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/internal/domain/workexperience"
)

// Document is the flat representation of the whole portfolio: one nested
// JSON object matching the legacy static-config shape. PersonalInfo fields
// sit at the top level, testimonials and case studies live nested inside
// their respective section blobs, and the seven section blobs appear as
// top-level keys.
//
// The mapping between Document fields and the backing collections is fixed
// here, field by field, rather than assembled by runtime key spreading, so
// schema drift surfaces as a compile error instead of a silently dropped
// key.
type Document struct {
	// PersonalInfo
	Name              string                     `json:"name,omitempty"`
	Title             string                     `json:"title,omitempty"`
	Tagline           string                     `json:"tagline,omitempty"`
	Location          string                     `json:"location,omitempty"`
	Timezone          string                     `json:"timezone,omitempty"`
	Image             string                     `json:"image,omitempty"`
	Email             string                     `json:"email,omitempty"`
	Phone             string                     `json:"phone,omitempty"`
	Website           string                     `json:"website,omitempty"`
	Social            *personalinfo.Social       `json:"social,omitempty"`
	Metrics           []personalinfo.Metric      `json:"metrics,omitempty"`
	Bio               string                     `json:"bio,omitempty"`
	Experience        *personalinfo.Experience   `json:"experience,omitempty"`
	ValuePropositions []string                   `json:"valuePropositions,omitempty"`
	Languages         []string                   `json:"languages,omitempty"`
	Availability      *personalinfo.Availability `json:"availability,omitempty"`
	Achievements      []string                   `json:"achievements,omitempty"`

	// Skills
	Skills *skills.Skills `json:"skills,omitempty"`

	// Collection-backed arrays. Always present on export (empty, not null).
	Certifications []certification.Certification   `json:"certifications"`
	Services       []service.Service               `json:"services"`
	WorkExperience []workexperience.WorkExperience `json:"workExperience"`

	// Section blobs. testimonialsSection/caseStudiesSection additionally
	// carry their nested collections under "testimonials"/"caseStudies".
	ProblemSection      map[string]any `json:"problemSection,omitempty"`
	SolutionSection     map[string]any `json:"solutionSection,omitempty"`
	CredentialsSection  map[string]any `json:"credentialsSection,omitempty"`
	ServicesSection     map[string]any `json:"servicesSection,omitempty"`
	TestimonialsSection map[string]any `json:"testimonialsSection,omitempty"`
	CaseStudiesSection  map[string]any `json:"caseStudiesSection,omitempty"`
	AboutSection        map[string]any `json:"aboutSection,omitempty"`

	AdditionalInfo *additionalinfo.AdditionalInfo `json:"additionalInfo,omitempty"`
}

// Section returns the blob stored under the given section type.
func (d *Document) Section(t sectiondata.SectionType) map[string]any {
	switch t {
	case sectiondata.ProblemSection:
		return d.ProblemSection
	case sectiondata.SolutionSection:
		return d.SolutionSection
	case sectiondata.CredentialsSection:
		return d.CredentialsSection
	case sectiondata.ServicesSection:
		return d.ServicesSection
	case sectiondata.TestimonialsSection:
		return d.TestimonialsSection
	case sectiondata.CaseStudiesSection:
		return d.CaseStudiesSection
	case sectiondata.AboutSection:
		return d.AboutSection
	}
	return nil
}

// SetSection installs a blob under the given section type.
func (d *Document) SetSection(t sectiondata.SectionType, data map[string]any) {
	switch t {
	case sectiondata.ProblemSection:
		d.ProblemSection = data
	case sectiondata.SolutionSection:
		d.SolutionSection = data
	case sectiondata.CredentialsSection:
		d.CredentialsSection = data
	case sectiondata.ServicesSection:
		d.ServicesSection = data
	case sectiondata.TestimonialsSection:
		d.TestimonialsSection = data
	case sectiondata.CaseStudiesSection:
		d.CaseStudiesSection = data
	case sectiondata.AboutSection:
		d.AboutSection = data
	}
}

// HasPersonalInfo reports whether the document carries enough identity to
// create a PersonalInfo record.
func (d *Document) HasPersonalInfo() bool {
	return d.Name != "" || d.Title != "" || d.Email != ""
}

// ToPersonalInfo materializes the top-level identity fields as a record.
func (d *Document) ToPersonalInfo() *personalinfo.PersonalInfo {
	return &personalinfo.PersonalInfo{
		Name:              d.Name,
		Title:             d.Title,
		Tagline:           d.Tagline,
		Location:          d.Location,
		Timezone:          d.Timezone,
		Image:             d.Image,
		Email:             d.Email,
		Phone:             d.Phone,
		Website:           d.Website,
		Social:            d.Social,
		Metrics:           d.Metrics,
		Bio:               d.Bio,
		Experience:        d.Experience,
		ValuePropositions: d.ValuePropositions,
		Languages:         d.Languages,
		Availability:      d.Availability,
		Achievements:      d.Achievements,
	}
}

// NestedTestimonials decodes testimonialsSection.testimonials, if present.
func (d *Document) NestedTestimonials() ([]testimonial.Testimonial, error) {
	var out []testimonial.Testimonial
	if err := decodeSectionSlice(d.TestimonialsSection, "testimonials", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NestedCaseStudies decodes caseStudiesSection.caseStudies, if present.
func (d *Document) NestedCaseStudies() ([]casestudy.CaseStudy, error) {
	var out []casestudy.CaseStudy
	if err := decodeSectionSlice(d.CaseStudiesSection, "caseStudies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeSectionSlice re-marshals an untyped nested array from a section blob
// into the typed destination slice. Leaves dst untouched when the key is
// absent or null.
func decodeSectionSlice(section map[string]any, key string, dst any) error {
	if section == nil {
		return nil
	}
	raw, ok := section[key]
	if !ok || raw == nil {
		return nil
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := json.Unmarshal(buf, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Summary counts what a bulk import wrote, per entity. Keys are emitted only
// for entities actually written.
type Summary struct {
	PersonalInfo   int `json:"personalInfo,omitempty"`
	Skills         int `json:"skills,omitempty"`
	Certifications int `json:"certifications,omitempty"`
	Services       int `json:"services,omitempty"`
	WorkExperience int `json:"workExperience,omitempty"`
	Testimonials   int `json:"testimonials,omitempty"`
	CaseStudies    int `json:"caseStudies,omitempty"`
	SectionData    int `json:"sectionData,omitempty"`
	AdditionalInfo int `json:"additionalInfo,omitempty"`
}
