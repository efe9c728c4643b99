package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rahulladumor/portfolio-api/adapters/event"
	httpAdapter "github.com/rahulladumor/portfolio-api/adapters/http"
	"github.com/rahulladumor/portfolio-api/adapters/media_storage"
	"github.com/rahulladumor/portfolio-api/adapters/persistence"
	authUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/auth"
	contactUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/contact"
	"github.com/rahulladumor/portfolio-api/internal/application/usecase/content"
	portfolioUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/config"
	"github.com/rahulladumor/portfolio-api/pkg/auth"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
	"github.com/rahulladumor/portfolio-api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := logger.NewZapLogger(cfg.App.Env)
	log.Info("Starting Portfolio API server...")

	tp, err := tracing.NewTracerProvider(cfg, log, "portfolio-api")
	if err != nil {
		log.Warn("Tracing disabled", zap.Error(err))
	} else {
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, log)
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

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatal("Failed to initialize uploader", err)
	}
	profileCache := persistence.NewRedisProfileCache(redisClient, cfg.Redis.ProfileTTL, log)
	notifier := content.NewChangeNotifier(profileCache, kafkaClient, log)

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, log)
	meUseCase := authUC.NewMeUseCase(userRepo)
	submitContactUseCase := contactUC.NewSubmitUseCase(contactRepo, kafkaClient, log)

	importUseCase := portfolioUC.NewImportUseCase(repos, profileCache, kafkaClient, log)
	exportUseCase := portfolioUC.NewExportUseCase(repos, log)
	snapshotUseCase := portfolioUC.NewSnapshotUseCase(exportUseCase, uploader, log)
	getProfileUseCase := portfolioUC.NewGetProfileUseCase(repos, profileCache, log)

	personalInfoUseCase := content.NewPersonalInfoUseCase(repos.PersonalInfo, notifier)
	skillsUseCase := content.NewSkillsUseCase(repos.Skills, notifier)
	certificationUseCase := content.NewCertificationUseCase(repos.Certifications, notifier)
	educationUseCase := content.NewEducationUseCase(repos.Education, notifier)
	serviceUseCase := content.NewServiceUseCase(repos.Services, notifier)
	workExperienceUseCase := content.NewWorkExperienceUseCase(repos.WorkExperience, notifier)
	testimonialUseCase := content.NewTestimonialUseCase(repos.Testimonials, notifier)
	caseStudyUseCase := content.NewCaseStudyUseCase(repos.CaseStudies, notifier)
	sectionDataUseCase := content.NewSectionDataUseCase(repos.SectionData, notifier)
	additionalInfoUseCase := content.NewAdditionalInfoUseCase(repos.AdditionalInfo, notifier)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, meUseCase)
	profileHandler := httpAdapter.NewProfileHandler(getProfileUseCase)
	contactHandler := httpAdapter.NewContactHandler(submitContactUseCase)
	bulkHandler := httpAdapter.NewBulkHandler(importUseCase, exportUseCase, snapshotUseCase)

	personalInfoHandler := httpAdapter.NewPersonalInfoHandler(personalInfoUseCase)
	skillsHandler := httpAdapter.NewSkillsHandler(skillsUseCase)
	certificationHandler := httpAdapter.NewCertificationHandler(certificationUseCase)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase)
	serviceHandler := httpAdapter.NewServiceHandler(serviceUseCase)
	workExperienceHandler := httpAdapter.NewWorkExperienceHandler(workExperienceUseCase)
	testimonialHandler := httpAdapter.NewTestimonialHandler(testimonialUseCase)
	caseStudyHandler := httpAdapter.NewCaseStudyHandler(caseStudyUseCase)
	sectionDataHandler := httpAdapter.NewSectionDataHandler(sectionDataUseCase)
	additionalInfoHandler := httpAdapter.NewAdditionalInfoHandler(additionalInfoUseCase)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Portfolio API",
			"status":  "running",
			"profile": "/profile",
			"health":  "/health",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	router.GET("/profile", profileHandler.GetProfile)
	router.POST("/contact", contactHandler.Submit)

	api := router.Group("/api")
	{
		apiAuth := api.Group("/auth")
		apiAuth.POST("/login", authHandler.Login)
		apiAuth.GET("/me", authMiddleware, authHandler.Me)

		registerEntityRoutes(api, authMiddleware,
			entityRoutes{"personal-info", personalInfoHandler.List, personalInfoHandler.Get, personalInfoHandler.Create, personalInfoHandler.Update, personalInfoHandler.Delete, personalInfoHandler.Current},
			entityRoutes{"skills", skillsHandler.List, skillsHandler.Get, skillsHandler.Create, skillsHandler.Update, skillsHandler.Delete, skillsHandler.Current},
			entityRoutes{"certifications", certificationHandler.List, certificationHandler.Get, certificationHandler.Create, certificationHandler.Update, certificationHandler.Delete, nil},
			entityRoutes{"education", educationHandler.List, educationHandler.Get, educationHandler.Create, educationHandler.Update, educationHandler.Delete, nil},
			entityRoutes{"services", serviceHandler.List, serviceHandler.Get, serviceHandler.Create, serviceHandler.Update, serviceHandler.Delete, nil},
			entityRoutes{"work-experience", workExperienceHandler.List, workExperienceHandler.Get, workExperienceHandler.Create, workExperienceHandler.Update, workExperienceHandler.Delete, nil},
			entityRoutes{"testimonials", testimonialHandler.List, testimonialHandler.Get, testimonialHandler.Create, testimonialHandler.Update, testimonialHandler.Delete, nil},
			entityRoutes{"case-studies", caseStudyHandler.List, caseStudyHandler.Get, caseStudyHandler.Create, caseStudyHandler.Update, caseStudyHandler.Delete, nil},
			entityRoutes{"additional-info", additionalInfoHandler.List, additionalInfoHandler.Get, additionalInfoHandler.Create, additionalInfoHandler.Update, additionalInfoHandler.Delete, additionalInfoHandler.Current},
		)

		sections := api.Group("/section-data")
		{
			sections.GET("", sectionDataHandler.List)
			sections.GET("/:sectionType", sectionDataHandler.Get)
			sections.PUT("/:sectionType", authMiddleware, sectionDataHandler.Upsert)
			sections.DELETE("/:sectionType", authMiddleware, sectionDataHandler.Delete)
		}

		bulk := api.Group("/bulk-update")
		{
			bulk.GET("/export", bulkHandler.Export)
			bulk.PUT("", authMiddleware, bulkHandler.Update)
			bulk.POST("/snapshot", authMiddleware, bulkHandler.Snapshot)
		}
	}

	log.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("Cannot run server", err)
	}
}

type entityRoutes struct {
	path    string
	list    gin.HandlerFunc
	get     gin.HandlerFunc
	create  gin.HandlerFunc
	update  gin.HandlerFunc
	delete  gin.HandlerFunc
	current gin.HandlerFunc
}

// registerEntityRoutes mounts the uniform CRUD surface: reads public, writes
// behind the auth middleware. Singleton entities expose an extra /current.
func registerEntityRoutes(api *gin.RouterGroup, authMiddleware gin.HandlerFunc, routes ...entityRoutes) {
	for _, r := range routes {
		group := api.Group("/" + r.path)
		group.GET("", r.list)
		if r.current != nil {
			group.GET("/current", r.current)
		}
		group.GET("/:id", r.get)
		group.POST("", authMiddleware, r.create)
		group.PUT("/:id", authMiddleware, r.update)
		group.DELETE("/:id", authMiddleware, r.delete)
	}
}
