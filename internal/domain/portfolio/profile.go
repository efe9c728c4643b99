package portfolio

import (
	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/internal/domain/education"
	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/skills"
	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/internal/domain/workexperience"
)

// Profile is the read-path composition served to the website. Unlike
// Document, testimonials and caseStudies surface as sibling top-level
// arrays, education is included, and every group falls back to the
// compiled-in static defaults when its collection is empty.
type Profile struct {
	Name              string                     `json:"name"`
	Title             string                     `json:"title"`
	Tagline           string                     `json:"tagline"`
	Location          string                     `json:"location"`
	Timezone          string                     `json:"timezone"`
	Image             string                     `json:"image"`
	Email             string                     `json:"email"`
	Phone             string                     `json:"phone"`
	Website           string                     `json:"website"`
	Social            *personalinfo.Social       `json:"social"`
	Metrics           []personalinfo.Metric      `json:"metrics"`
	Bio               string                     `json:"bio"`
	Experience        *personalinfo.Experience   `json:"experience"`
	ValuePropositions []string                   `json:"valuePropositions"`
	Languages         []string                   `json:"languages"`
	Availability      *personalinfo.Availability `json:"availability"`
	Achievements      []string                   `json:"achievements"`

	Skills *skills.Skills `json:"skills"`

	Certifications []certification.Certification   `json:"certifications"`
	Education      []education.Education           `json:"education"`
	Services       []service.Service               `json:"services"`
	WorkExperience []workexperience.WorkExperience `json:"workExperience"`
	Testimonials   []testimonial.Testimonial       `json:"testimonials"`
	CaseStudies    []casestudy.CaseStudy           `json:"caseStudies"`

	ProblemSection      map[string]any `json:"problemSection"`
	SolutionSection     map[string]any `json:"solutionSection"`
	CredentialsSection  map[string]any `json:"credentialsSection"`
	ServicesSection     map[string]any `json:"servicesSection"`
	TestimonialsSection map[string]any `json:"testimonialsSection"`
	CaseStudiesSection  map[string]any `json:"caseStudiesSection"`
	AboutSection        map[string]any `json:"aboutSection"`

	AdditionalInfo *additionalinfo.AdditionalInfo `json:"additionalInfo"`
}

// ApplyPersonalInfo copies an identity record onto the profile top level.
func (p *Profile) ApplyPersonalInfo(pi *personalinfo.PersonalInfo) {
	p.Name = pi.Name
	p.Title = pi.Title
	p.Tagline = pi.Tagline
	p.Location = pi.Location
	p.Timezone = pi.Timezone
	p.Image = pi.Image
	p.Email = pi.Email
	p.Phone = pi.Phone
	p.Website = pi.Website
	p.Social = pi.Social
	p.Metrics = pi.Metrics
	p.Bio = pi.Bio
	p.Experience = pi.Experience
	p.ValuePropositions = pi.ValuePropositions
	p.Languages = pi.Languages
	p.Availability = pi.Availability
	p.Achievements = pi.Achievements
}
