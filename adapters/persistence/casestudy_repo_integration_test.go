package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type CaseStudyRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool          *pgxpool.Pool
	pgContainer     *postgres.PostgresContainer
	testLogger      logger.Logger
	caseStudyRepo   casestudy.Repository
	sectionDataRepo sectiondata.Repository
}

func (s *CaseStudyRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewZapLogger("development")
	s.caseStudyRepo = NewPostgresCaseStudyRepo(s.dbPool, s.testLogger)
	s.sectionDataRepo = NewPostgresSectionDataRepo(s.dbPool, s.testLogger)
}

func (s *CaseStudyRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func (s *CaseStudyRepoIntegrationTestSuite) SetupTest() {
	s.NoError(s.caseStudyRepo.DeleteAll(context.Background()))
	s.NoError(s.sectionDataRepo.DeleteAll(context.Background()))
}

func TestCaseStudyRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(CaseStudyRepoIntegrationTestSuite))
}

func (s *CaseStudyRepoIntegrationTestSuite) Test_Create_And_FindByExternalID() {
	ctx := context.Background()

	cs := &casestudy.CaseStudy{
		ID:           101,
		Title:        "Zero-downtime migration",
		Company:      "Acme Corp",
		Industry:     "E-commerce",
		Challenge:    "Legacy monolith could not scale",
		Solution:     "Strangler-fig rollout onto serverless",
		Results:      []string{"5M orders/mo", "<200ms p99"},
		Technologies: []string{"Go", "AWS Lambda"},
		Metrics:      map[string]string{"costSavings": "60%"},
	}

	s.NoError(s.caseStudyRepo.Create(ctx, cs))

	found, err := s.caseStudyRepo.FindByExternalID(ctx, 101)
	s.NoError(err)
	s.NotNil(found)
	s.Equal("Zero-downtime migration", found.Title)
	s.Equal([]string{"5M orders/mo", "<200ms p99"}, found.Results)
	s.Equal("60%", found.Metrics["costSavings"])
}

func (s *CaseStudyRepoIntegrationTestSuite) Test_Create_DuplicateExternalID() {
	ctx := context.Background()

	s.NoError(s.caseStudyRepo.Create(ctx, &casestudy.CaseStudy{ID: 7, Title: "First"}))

	err := s.caseStudyRepo.Create(ctx, &casestudy.CaseStudy{ID: 7, Title: "Second"})
	s.ErrorIs(err, casestudy.ErrDuplicateID)
}

func (s *CaseStudyRepoIntegrationTestSuite) Test_InsertMany_DuplicateFailsAtomically() {
	ctx := context.Background()

	err := s.caseStudyRepo.InsertMany(ctx, []casestudy.CaseStudy{
		{ID: 1, Title: "One"},
		{ID: 1, Title: "One again"},
	})
	s.ErrorIs(err, casestudy.ErrDuplicateID)

	all, err := s.caseStudyRepo.FindAll(ctx)
	s.NoError(err)
	s.Empty(all)
}

func (s *CaseStudyRepoIntegrationTestSuite) Test_FindAll_OrdersByExternalID() {
	ctx := context.Background()

	s.NoError(s.caseStudyRepo.InsertMany(ctx, []casestudy.CaseStudy{
		{ID: 30, Title: "Third"},
		{ID: 10, Title: "First"},
		{ID: 20, Title: "Second"},
	}))

	all, err := s.caseStudyRepo.FindAll(ctx)
	s.NoError(err)
	s.Len(all, 3)
	s.Equal(10, all[0].ID)
	s.Equal(20, all[1].ID)
	s.Equal(30, all[2].ID)
}

func (s *CaseStudyRepoIntegrationTestSuite) Test_SectionData_UpsertKeepsOneRowPerType() {
	ctx := context.Background()

	first := &sectiondata.SectionData{
		SectionType: sectiondata.AboutSection,
		Data:        map[string]any{"headline": "v1"},
	}
	s.NoError(s.sectionDataRepo.Upsert(ctx, first))

	second := &sectiondata.SectionData{
		SectionType: sectiondata.AboutSection,
		Data:        map[string]any{"headline": "v2"},
	}
	s.NoError(s.sectionDataRepo.Upsert(ctx, second))

	all, err := s.sectionDataRepo.FindAll(ctx)
	s.NoError(err)
	s.Len(all, 1)
	s.Equal("v2", all[0].Data["headline"])
}
