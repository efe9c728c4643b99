package main

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/rahulladumor/portfolio-api/adapters/event"
	"github.com/rahulladumor/portfolio-api/adapters/mailer"
	"github.com/rahulladumor/portfolio-api/adapters/media_storage"
	"github.com/rahulladumor/portfolio-api/adapters/persistence"
	contactUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/contact"
	portfolioUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/config"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := logger.NewZapLogger(cfg.App.Env)
	log.Info("Starting Portfolio worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatal("Failed to initialize uploader", err)
	}

	smtpMailer, err := mailer.NewSMTPMailer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize mailer", err)
	}

	contactRepo := persistence.NewPostgresContactRepo(dbPool, log)
	repos := portfolioUC.Repositories{
		PersonalInfo:   persistence.NewPostgresPersonalInfoRepo(dbPool, log),
		Skills:         persistence.NewPostgresSkillsRepo(dbPool, log),
		Certifications: persistence.NewPostgresCertificationRepo(dbPool, log),
		Education:      persistence.NewPostgresEducationRepo(dbPool, log),
		Services:       persistence.NewPostgresServiceRepo(dbPool, log),
		WorkExperience: persistence.NewPostgresWorkExperienceRepo(dbPool, log),
		Testimonials:   persistence.NewPostgresTestimonialRepo(dbPool, log),
		CaseStudies:    persistence.NewPostgresCaseStudyRepo(dbPool, log),
		SectionData:    persistence.NewPostgresSectionDataRepo(dbPool, log),
		AdditionalInfo: persistence.NewPostgresAdditionalInfoRepo(dbPool, log),
	}

	notifyUC := contactUC.NewNotifyUseCase(contactRepo, smtpMailer, cfg.Email.AdminEmail, log)
	exportUC := portfolioUC.NewExportUseCase(repos, log)
	snapshotUC := portfolioUC.NewSnapshotUseCase(exportUC, uploader, log)

	ctx := context.Background()
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		consumeContactEvents(ctx, cfg, notifyUC, log)
	}()
	go func() {
		defer wg.Done()
		consumePortfolioEvents(ctx, cfg, snapshotUC, log)
	}()

	wg.Wait()
}

func consumeContactEvents(ctx context.Context, cfg config.Config, notifyUC *contactUC.NotifyUseCase, log logger.Logger) {
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContactEvents,
		GroupID:  "contact-notifier-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Info("Worker listening", zap.String("topic", event.TopicContactEvents))

	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Error("Failed to read message from Kafka", err, zap.String("topic", event.TopicContactEvents))
			continue
		}

		var payload event.ContactEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("Failed to unmarshal contact event, skipping", err)
			commitMessage(consumer, msg, log)
			continue
		}

		if err := notifyUC.Execute(ctx, payload); err != nil {
			log.Error("Failed to process contact event", err, zap.String("message_id", payload.MessageID.String()))
			continue
		}

		commitMessage(consumer, msg, log)
	}
}

func consumePortfolioEvents(ctx context.Context, cfg config.Config, snapshotUC *portfolioUC.SnapshotUseCase, log logger.Logger) {
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "portfolio-snapshot-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Info("Worker listening", zap.String("topic", event.TopicPortfolioEvents))

	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Error("Failed to read message from Kafka", err, zap.String("topic", event.TopicPortfolioEvents))
			continue
		}

		var payload event.PortfolioEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("Failed to unmarshal portfolio event, skipping", err)
			commitMessage(consumer, msg, log)
			continue
		}

		if _, err := snapshotUC.Execute(ctx); err != nil {
			log.Error("Failed to snapshot portfolio", err, zap.String("entity", payload.Entity))
			continue
		}

		commitMessage(consumer, msg, log)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
