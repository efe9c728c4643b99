package portfolio

import (
	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/internal/domain/education"
	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/skills"
	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/internal/domain/workexperience"
)

// Repositories bundles the collection accessors the assembler fans out
// over. Education is read-path only: bulk import and export never touch it.
type Repositories struct {
	PersonalInfo   personalinfo.Repository
	Skills         skills.Repository
	Certifications certification.Repository
	Education      education.Repository
	Services       service.Repository
	WorkExperience workexperience.Repository
	Testimonials   testimonial.Repository
	CaseStudies    casestudy.Repository
	SectionData    sectiondata.Repository
	AdditionalInfo additionalinfo.Repository
}
