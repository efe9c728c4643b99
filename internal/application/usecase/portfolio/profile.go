package portfolio

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rahulladumor/portfolio-api/internal/application/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/education"
	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/internal/staticdata"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

// GetProfileUseCase serves the public read path. Live collection data is
// merged onto compiled-in static defaults group by group, and a total
// storage failure degrades to the full static document instead of an error.
// The endpoint never returns anything but 200.
type GetProfileUseCase struct {
	repos  Repositories
	cache  service.ProfileCache
	logger logger.Logger
}

func NewGetProfileUseCase(repos Repositories, cache service.ProfileCache, log logger.Logger) *GetProfileUseCase {
	return &GetProfileUseCase{repos: repos, cache: cache, logger: log}
}

type GetProfileOutput struct {
	Profile *portfolio.Profile
	// Notice is set when the whole response degraded to static data.
	Notice string
}

func (uc *GetProfileUseCase) Execute(ctx context.Context) *GetProfileOutput {
	ctx, span := tracer.Start(ctx, "GetProfileExecute")
	defer span.End()

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx); ok {
			return &GetProfileOutput{Profile: cached}
		}
	}

	snap, edu, err := uc.readAllWithEducation(ctx)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Profile read failed, serving static data", err)
		return &GetProfileOutput{
			Profile: staticdata.Profile(),
			Notice:  staticdata.StaticNotice,
		}
	}

	p := mergeProfile(snap, edu)

	if uc.cache != nil {
		uc.cache.Set(ctx, p)
	}
	return &GetProfileOutput{Profile: p}
}

func (uc *GetProfileUseCase) readAllWithEducation(ctx context.Context) (*snapshotData, []education.Education, error) {
	snap := &snapshotData{}
	var edu []education.Education

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { snap.personalInfo, err = uc.repos.PersonalInfo.FindCurrent(gctx); return })
	g.Go(func() (err error) { snap.skills, err = uc.repos.Skills.FindCurrent(gctx); return })
	g.Go(func() (err error) { snap.certifications, err = uc.repos.Certifications.FindAll(gctx); return })
	g.Go(func() (err error) { edu, err = uc.repos.Education.FindAll(gctx); return })
	g.Go(func() (err error) { snap.services, err = uc.repos.Services.FindAll(gctx); return })
	g.Go(func() (err error) { snap.workExperience, err = uc.repos.WorkExperience.FindAll(gctx); return })
	g.Go(func() (err error) { snap.testimonials, err = uc.repos.Testimonials.FindAll(gctx); return })
	g.Go(func() (err error) { snap.caseStudies, err = uc.repos.CaseStudies.FindAll(gctx); return })
	g.Go(func() (err error) { snap.sections, err = uc.repos.SectionData.FindAll(gctx); return })
	g.Go(func() (err error) { snap.additionalInfo, err = uc.repos.AdditionalInfo.FindCurrent(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return snap, edu, nil
}

// mergeProfile starts from the static defaults and overlays every group
// that has live data. Empty collections keep their static counterpart.
func mergeProfile(snap *snapshotData, edu []education.Education) *portfolio.Profile {
	p := staticdata.Profile()

	if snap.personalInfo != nil {
		p.ApplyPersonalInfo(snap.personalInfo)
	}
	if snap.skills != nil {
		p.Skills = snap.skills
	}
	if len(snap.certifications) > 0 {
		p.Certifications = snap.certifications
	}
	if len(edu) > 0 {
		p.Education = edu
	}
	if len(snap.services) > 0 {
		p.Services = snap.services
	}
	if len(snap.workExperience) > 0 {
		p.WorkExperience = snap.workExperience
	}
	if len(snap.testimonials) > 0 {
		p.Testimonials = snap.testimonials
	}
	if len(snap.caseStudies) > 0 {
		p.CaseStudies = snap.caseStudies
	}
	if snap.additionalInfo != nil {
		p.AdditionalInfo = snap.additionalInfo
	}

	for _, s := range snap.sections {
		if s.Data == nil {
			continue
		}
		switch s.SectionType {
		case sectiondata.ProblemSection:
			p.ProblemSection = s.Data
		case sectiondata.SolutionSection:
			p.SolutionSection = s.Data
		case sectiondata.CredentialsSection:
			p.CredentialsSection = s.Data
		case sectiondata.ServicesSection:
			p.ServicesSection = s.Data
		case sectiondata.TestimonialsSection:
			p.TestimonialsSection = s.Data
		case sectiondata.CaseStudiesSection:
			p.CaseStudiesSection = s.Data
		case sectiondata.AboutSection:
			p.AboutSection = s.Data
		}
	}

	return p
}
