package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/workexperience"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresWorkExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresWorkExperienceRepo(db *pgxpool.Pool, logger logger.Logger) workexperience.Repository {
	return &postgresWorkExperienceRepo{db: db, logger: logger}
}

func (r *postgresWorkExperienceRepo) scan(row pgx.Row) (*workexperience.WorkExperience, error) {
	w := &workexperience.WorkExperience{}
	var technologies, achievements []byte
	err := row.Scan(&w.ID, &w.Company, &w.Position, &w.Duration, &w.Location, &w.Description,
		&technologies, &achievements, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	unmarshalField(r.logger, "work_experience.technologies", technologies, &w.Technologies)
	unmarshalField(r.logger, "work_experience.achievements", achievements, &w.Achievements)
	return w, nil
}

func (r *postgresWorkExperienceRepo) FindAll(ctx context.Context) ([]workexperience.WorkExperience, error) {
	builder := psql.Select("id", "company", "position", "duration", "location", "description",
		"technologies", "achievements", "created_at").
		From("work_experience").
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build work experience list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work experience", err)
	}
	defer rows.Close()

	items := make([]workexperience.WorkExperience, 0)
	for rows.Next() {
		w, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan work experience row", err)
		}
		items = append(items, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work experience rows", err)
	}
	return items, nil
}

func (r *postgresWorkExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*workexperience.WorkExperience, error) {
	query := `
		SELECT id, company, position, duration, location, description, technologies, achievements, created_at
		FROM work_experience WHERE id = $1
	`
	w, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("work experience", id.String())
		}
		return nil, apperror.NewInternal("failed to query work experience by id", err)
	}
	return w, nil
}

func (r *postgresWorkExperienceRepo) Create(ctx context.Context, w *workexperience.WorkExperience) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	technologies, err := marshalField(w.Technologies)
	if err != nil {
		return apperror.NewInternal("failed to marshal technologies", err)
	}
	achievements, err := marshalField(w.Achievements)
	if err != nil {
		return apperror.NewInternal("failed to marshal achievements", err)
	}
	query := `
		INSERT INTO work_experience (id, company, position, duration, location, description, technologies, achievements, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := r.db.Exec(ctx, query, w.ID, w.Company, w.Position, w.Duration, w.Location,
		w.Description, technologies, achievements, w.CreatedAt); err != nil {
		return apperror.NewInternal("failed to create work experience", err)
	}
	return nil
}

func (r *postgresWorkExperienceRepo) InsertMany(ctx context.Context, items []workexperience.WorkExperience) error {
	if len(items) == 0 {
		return nil
	}
	builder := psql.Insert("work_experience").
		Columns("id", "company", "position", "duration", "location", "description",
			"technologies", "achievements", "created_at")

	now := time.Now().UTC()
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		w := items[i]
		technologies, err := marshalField(w.Technologies)
		if err != nil {
			return apperror.NewInternal("failed to marshal technologies", err)
		}
		achievements, err := marshalField(w.Achievements)
		if err != nil {
			return apperror.NewInternal("failed to marshal achievements", err)
		}
		builder = builder.Values(w.ID, w.Company, w.Position, w.Duration, w.Location,
			w.Description, technologies, achievements, w.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build work experience bulk insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to bulk insert work experience", err)
	}
	return nil
}

func (r *postgresWorkExperienceRepo) Update(ctx context.Context, w *workexperience.WorkExperience) error {
	technologies, err := marshalField(w.Technologies)
	if err != nil {
		return apperror.NewInternal("failed to marshal technologies", err)
	}
	achievements, err := marshalField(w.Achievements)
	if err != nil {
		return apperror.NewInternal("failed to marshal achievements", err)
	}
	query := `
		UPDATE work_experience
		SET company = $2, position = $3, duration = $4, location = $5, description = $6,
		    technologies = $7, achievements = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, w.ID, w.Company, w.Position, w.Duration, w.Location,
		w.Description, technologies, achievements)
	if err != nil {
		return apperror.NewInternal("failed to update work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", w.ID.String())
	}
	return nil
}

func (r *postgresWorkExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM work_experience WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", id.String())
	}
	return nil
}

func (r *postgresWorkExperienceRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM work_experience`); err != nil {
		return apperror.NewInternal("failed to clear work experience", err)
	}
	return nil
}

func (r *postgresWorkExperienceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM work_experience`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count work experience", err)
	}
	return n, nil
}
