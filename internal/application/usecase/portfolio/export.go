package portfolio

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/skills"
	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/internal/domain/workexperience"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

// ExportUseCase folds the nine collections back into one flat document.
type ExportUseCase struct {
	repos  Repositories
	logger logger.Logger
}

func NewExportUseCase(repos Repositories, log logger.Logger) *ExportUseCase {
	return &ExportUseCase{repos: repos, logger: log}
}

// snapshotData is one concurrent read of everything the flat document needs.
type snapshotData struct {
	personalInfo   *personalinfo.PersonalInfo
	skills         *skills.Skills
	certifications []certification.Certification
	services       []service.Service
	workExperience []workexperience.WorkExperience
	testimonials   []testimonial.Testimonial
	caseStudies    []casestudy.CaseStudy
	sections       []sectiondata.SectionData
	additionalInfo *additionalinfo.AdditionalInfo
}

func (uc *ExportUseCase) readAll(ctx context.Context) (*snapshotData, error) {
	snap := &snapshotData{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { snap.personalInfo, err = uc.repos.PersonalInfo.FindCurrent(gctx); return })
	g.Go(func() (err error) { snap.skills, err = uc.repos.Skills.FindCurrent(gctx); return })
	g.Go(func() (err error) { snap.certifications, err = uc.repos.Certifications.FindAll(gctx); return })
	g.Go(func() (err error) { snap.services, err = uc.repos.Services.FindAll(gctx); return })
	g.Go(func() (err error) { snap.workExperience, err = uc.repos.WorkExperience.FindAll(gctx); return })
	g.Go(func() (err error) { snap.testimonials, err = uc.repos.Testimonials.FindAll(gctx); return })
	g.Go(func() (err error) { snap.caseStudies, err = uc.repos.CaseStudies.FindAll(gctx); return })
	g.Go(func() (err error) { snap.sections, err = uc.repos.SectionData.FindAll(gctx); return })
	g.Go(func() (err error) { snap.additionalInfo, err = uc.repos.AdditionalInfo.FindCurrent(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (uc *ExportUseCase) Execute(ctx context.Context) (*portfolio.Document, error) {
	ctx, span := tracer.Start(ctx, "ExportExecute")
	defer span.End()

	snap, err := uc.readAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to read collections for export", err)
	}

	return fold(snap), nil
}

// fold assembles the flat document. Collection-backed arrays come out as
// empty arrays rather than null; absent singletons leave their keys off
// entirely.
func fold(snap *snapshotData) *portfolio.Document {
	doc := &portfolio.Document{
		Certifications: snap.certifications,
		Services:       snap.services,
		WorkExperience: snap.workExperience,
	}
	if doc.Certifications == nil {
		doc.Certifications = []certification.Certification{}
	}
	if doc.Services == nil {
		doc.Services = []service.Service{}
	}
	if doc.WorkExperience == nil {
		doc.WorkExperience = []workexperience.WorkExperience{}
	}

	if pi := snap.personalInfo; pi != nil {
		doc.Name = pi.Name
		doc.Title = pi.Title
		doc.Tagline = pi.Tagline
		doc.Location = pi.Location
		doc.Timezone = pi.Timezone
		doc.Image = pi.Image
		doc.Email = pi.Email
		doc.Phone = pi.Phone
		doc.Website = pi.Website
		doc.Social = pi.Social
		doc.Metrics = pi.Metrics
		doc.Bio = pi.Bio
		doc.Experience = pi.Experience
		doc.ValuePropositions = pi.ValuePropositions
		doc.Languages = pi.Languages
		doc.Availability = pi.Availability
		doc.Achievements = pi.Achievements
	}

	doc.Skills = snap.skills
	doc.AdditionalInfo = snap.additionalInfo

	for _, s := range snap.sections {
		doc.SetSection(s.SectionType, s.Data)
	}

	// testimonials/caseStudies ride inside their section blobs. The stored
	// blob keeps its own keys; the nested array is always rebuilt from the
	// live collection.
	doc.TestimonialsSection = injectSlice(doc.TestimonialsSection, "testimonials", toAny(snap.testimonials))
	doc.CaseStudiesSection = injectSlice(doc.CaseStudiesSection, "caseStudies", toAny(snap.caseStudies))

	return doc
}

func injectSlice(section map[string]any, key string, items []any) map[string]any {
	out := make(map[string]any, len(section)+1)
	for k, v := range section {
		out[k] = v
	}
	out[key] = items
	return out
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}
