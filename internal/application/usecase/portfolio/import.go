package portfolio

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rahulladumor/portfolio-api/adapters/event"
	"github.com/rahulladumor/portfolio-api/internal/application/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("portfolio_usecase")

// ImportUseCase performs the destructive full replace: clear all nine
// collections, then rebuild them from one flat document.
//
// The clear-then-rebuild sequence is not wrapped in a storage transaction.
// If a write step fails, the deletes from step one persist and the caller
// sees a plain failure. A process-wide mutex serializes imports so two
// overlapping calls cannot interleave their delete and insert phases, but
// crash-recovery is still "re-run the import".
type ImportUseCase struct {
	repos       Repositories
	cache       service.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger

	mu sync.Mutex
}

func NewImportUseCase(repos Repositories, cache service.ProfileCache, kClient *event.KafkaProducerClient, log logger.Logger) *ImportUseCase {
	return &ImportUseCase{
		repos:       repos,
		cache:       cache,
		kafkaClient: kClient,
		logger:      log,
	}
}

func (uc *ImportUseCase) Execute(ctx context.Context, doc *portfolio.Document) (*portfolio.Summary, error) {
	ctx, span := tracer.Start(ctx, "ImportExecute")
	defer span.End()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.clearAll(ctx); err != nil {
		span.RecordError(err)
		return nil, err
	}

	summary, err := uc.writeAll(ctx, doc)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishPortfolioEvent(context.Background(), event.PortfolioEventPayload{
				EventType: event.PortfolioEventTypeImported,
				Entity:    "portfolio",
			})
			if err != nil {
				uc.logger.Error("Failed to publish portfolio imported event", err)
			}
		}()
	}

	return summary, nil
}

// clearAll fires the nine deletes concurrently and waits for all of them.
func (uc *ImportUseCase) clearAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return uc.repos.PersonalInfo.DeleteAll(gctx) })
	g.Go(func() error { return uc.repos.Skills.DeleteAll(gctx) })
	g.Go(func() error { return uc.repos.Certifications.DeleteAll(gctx) })
	g.Go(func() error { return uc.repos.Services.DeleteAll(gctx) })
	g.Go(func() error { return uc.repos.WorkExperience.DeleteAll(gctx) })
	g.Go(func() error { return uc.repos.Testimonials.DeleteAll(gctx) })
	g.Go(func() error { return uc.repos.CaseStudies.DeleteAll(gctx) })
	g.Go(func() error { return uc.repos.SectionData.DeleteAll(gctx) })
	g.Go(func() error { return uc.repos.AdditionalInfo.DeleteAll(gctx) })

	if err := g.Wait(); err != nil {
		return apperror.NewInternal("failed to clear collections", err)
	}
	return nil
}

// writeAll repopulates the collections from the document, one entity group
// at a time. The first failing write aborts the remainder; the summary only
// counts what was actually written.
func (uc *ImportUseCase) writeAll(ctx context.Context, doc *portfolio.Document) (*portfolio.Summary, error) {
	summary := &portfolio.Summary{}

	if doc.HasPersonalInfo() {
		if err := uc.repos.PersonalInfo.Create(ctx, doc.ToPersonalInfo()); err != nil {
			return nil, err
		}
		summary.PersonalInfo = 1
	}

	if doc.Skills != nil {
		if err := uc.repos.Skills.Create(ctx, doc.Skills); err != nil {
			return nil, err
		}
		summary.Skills = 1
	}

	if len(doc.Certifications) > 0 {
		if err := uc.repos.Certifications.InsertMany(ctx, doc.Certifications); err != nil {
			return nil, err
		}
		summary.Certifications = len(doc.Certifications)
	}

	if len(doc.Services) > 0 {
		if err := uc.repos.Services.InsertMany(ctx, doc.Services); err != nil {
			return nil, err
		}
		summary.Services = len(doc.Services)
	}

	if len(doc.WorkExperience) > 0 {
		if err := uc.repos.WorkExperience.InsertMany(ctx, doc.WorkExperience); err != nil {
			return nil, err
		}
		summary.WorkExperience = len(doc.WorkExperience)
	}

	testimonials, err := doc.NestedTestimonials()
	if err != nil {
		return nil, apperror.NewInvalidInput("Field 'testimonialsSection.testimonials' is malformed", err.Error())
	}
	if len(testimonials) > 0 {
		if err := uc.repos.Testimonials.InsertMany(ctx, testimonials); err != nil {
			return nil, err
		}
		summary.Testimonials = len(testimonials)
	}

	caseStudies, err := doc.NestedCaseStudies()
	if err != nil {
		return nil, apperror.NewInvalidInput("Field 'caseStudiesSection.caseStudies' is malformed", err.Error())
	}
	if len(caseStudies) > 0 {
		if err := uc.repos.CaseStudies.InsertMany(ctx, caseStudies); err != nil {
			return nil, err
		}
		summary.CaseStudies = len(caseStudies)
	}

	for _, t := range sectiondata.AllSectionTypes {
		data := doc.Section(t)
		if data == nil {
			continue
		}
		sd := &sectiondata.SectionData{SectionType: t, Data: data}
		if err := uc.repos.SectionData.Create(ctx, sd); err != nil {
			return nil, err
		}
		summary.SectionData++
	}

	if doc.AdditionalInfo != nil {
		if err := uc.repos.AdditionalInfo.Create(ctx, doc.AdditionalInfo); err != nil {
			return nil, err
		}
		summary.AdditionalInfo = 1
	}

	uc.logger.Info("Bulk import completed",
		zap.Int("certifications", summary.Certifications),
		zap.Int("services", summary.Services),
		zap.Int("workExperience", summary.WorkExperience),
		zap.Int("testimonials", summary.Testimonials),
		zap.Int("caseStudies", summary.CaseStudies),
		zap.Int("sectionData", summary.SectionData),
	)

	return summary, nil
}
