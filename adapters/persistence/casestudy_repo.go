package persistence

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresCaseStudyRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCaseStudyRepo(db *pgxpool.Pool, logger logger.Logger) casestudy.Repository {
	return &postgresCaseStudyRepo{db: db, logger: logger}
}

const caseStudyColumns = `uid, external_id, title, company, industry, challenge, image, timeline,
	team_size, metrics, before_stats, after_stats, solution, results, technologies, client_quote, created_at`

func (r *postgresCaseStudyRepo) scan(row pgx.Row) (*casestudy.CaseStudy, error) {
	c := &casestudy.CaseStudy{}
	var metrics, beforeStats, afterStats, results, technologies []byte
	err := row.Scan(&c.UID, &c.ID, &c.Title, &c.Company, &c.Industry, &c.Challenge, &c.Image,
		&c.Timeline, &c.TeamSize, &metrics, &beforeStats, &afterStats, &c.Solution,
		&results, &technologies, &c.ClientQuote, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	unmarshalField(r.logger, "case_studies.metrics", metrics, &c.Metrics)
	unmarshalField(r.logger, "case_studies.before_stats", beforeStats, &c.BeforeStats)
	unmarshalField(r.logger, "case_studies.after_stats", afterStats, &c.AfterStats)
	unmarshalField(r.logger, "case_studies.results", results, &c.Results)
	unmarshalField(r.logger, "case_studies.technologies", technologies, &c.Technologies)
	return c, nil
}

func (r *postgresCaseStudyRepo) FindAll(ctx context.Context) ([]casestudy.CaseStudy, error) {
	builder := psql.Select("uid", "external_id", "title", "company", "industry", "challenge",
		"image", "timeline", "team_size", "metrics", "before_stats", "after_stats",
		"solution", "results", "technologies", "client_quote", "created_at").
		From("case_studies").
		OrderBy("external_id ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build case studies list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query case studies", err)
	}
	defer rows.Close()

	items := make([]casestudy.CaseStudy, 0)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan case study row", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating case study rows", err)
	}
	return items, nil
}

func (r *postgresCaseStudyRepo) FindByExternalID(ctx context.Context, id int) (*casestudy.CaseStudy, error) {
	query := `SELECT ` + caseStudyColumns + ` FROM case_studies WHERE external_id = $1`
	c, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("case study", strconv.Itoa(id))
		}
		return nil, apperror.NewInternal("failed to query case study by id", err)
	}
	return c, nil
}

func (r *postgresCaseStudyRepo) Create(ctx context.Context, c *casestudy.CaseStudy) error {
	if c.UID == uuid.Nil {
		c.UID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	metrics, beforeStats, afterStats, results, technologies, err := r.marshalBlobs(c)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO case_studies (` + caseStudyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err = r.db.Exec(ctx, query, c.UID, c.ID, c.Title, c.Company, c.Industry, c.Challenge,
		c.Image, c.Timeline, c.TeamSize, metrics, beforeStats, afterStats, c.Solution,
		results, technologies, c.ClientQuote, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return casestudy.ErrDuplicateID
		}
		return apperror.NewInternal("failed to create case study", err)
	}
	return nil
}

func (r *postgresCaseStudyRepo) InsertMany(ctx context.Context, items []casestudy.CaseStudy) error {
	if len(items) == 0 {
		return nil
	}
	builder := psql.Insert("case_studies").
		Columns("uid", "external_id", "title", "company", "industry", "challenge", "image",
			"timeline", "team_size", "metrics", "before_stats", "after_stats", "solution",
			"results", "technologies", "client_quote", "created_at")

	now := time.Now().UTC()
	for i := range items {
		if items[i].UID == uuid.Nil {
			items[i].UID = uuid.New()
		}
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		c := items[i]
		metrics, beforeStats, afterStats, results, technologies, err := r.marshalBlobs(&c)
		if err != nil {
			return err
		}
		builder = builder.Values(c.UID, c.ID, c.Title, c.Company, c.Industry, c.Challenge,
			c.Image, c.Timeline, c.TeamSize, metrics, beforeStats, afterStats, c.Solution,
			results, technologies, c.ClientQuote, c.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build case studies bulk insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return casestudy.ErrDuplicateID
		}
		return apperror.NewInternal("failed to bulk insert case studies", err)
	}
	return nil
}

func (r *postgresCaseStudyRepo) Update(ctx context.Context, c *casestudy.CaseStudy) error {
	metrics, beforeStats, afterStats, results, technologies, err := r.marshalBlobs(c)
	if err != nil {
		return err
	}
	query := `
		UPDATE case_studies
		SET title = $2, company = $3, industry = $4, challenge = $5, image = $6, timeline = $7,
		    team_size = $8, metrics = $9, before_stats = $10, after_stats = $11, solution = $12,
		    results = $13, technologies = $14, client_quote = $15
		WHERE external_id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, c.ID, c.Title, c.Company, c.Industry, c.Challenge,
		c.Image, c.Timeline, c.TeamSize, metrics, beforeStats, afterStats, c.Solution,
		results, technologies, c.ClientQuote)
	if err != nil {
		return apperror.NewInternal("failed to update case study", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("case study", strconv.Itoa(c.ID))
	}
	return nil
}

func (r *postgresCaseStudyRepo) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM case_studies WHERE external_id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete case study", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("case study", strconv.Itoa(id))
	}
	return nil
}

func (r *postgresCaseStudyRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM case_studies`); err != nil {
		return apperror.NewInternal("failed to clear case studies", err)
	}
	return nil
}

func (r *postgresCaseStudyRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM case_studies`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count case studies", err)
	}
	return n, nil
}

func (r *postgresCaseStudyRepo) marshalBlobs(c *casestudy.CaseStudy) (metrics, beforeStats, afterStats, results, technologies []byte, err error) {
	if metrics, err = marshalField(c.Metrics); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal metrics", err)
	}
	if beforeStats, err = marshalField(c.BeforeStats); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal before stats", err)
	}
	if afterStats, err = marshalField(c.AfterStats); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal after stats", err)
	}
	if results, err = marshalField(c.Results); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal results", err)
	}
	if technologies, err = marshalField(c.Technologies); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal technologies", err)
	}
	return metrics, beforeStats, afterStats, results, technologies, nil
}
