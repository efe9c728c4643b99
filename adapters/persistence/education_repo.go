package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/education"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(&e.ID, &e.Institution, &e.Degree, &e.Duration, &e.Location, &e.GPA, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresEducationRepo) FindAll(ctx context.Context) ([]education.Education, error) {
	builder := psql.Select("id", "institution", "degree", "duration", "location", "gpa", "created_at").
		From("education").
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build education list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	defer rows.Close()

	items := make([]education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan education row", err)
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return items, nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	query := `SELECT id, institution, degree, duration, location, gpa, created_at FROM education WHERE id = $1`
	e, err := scanEducation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", id.String())
		}
		return nil, apperror.NewInternal("failed to query education by id", err)
	}
	return e, nil
}

func (r *postgresEducationRepo) Create(ctx context.Context, e *education.Education) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO education (id, institution, degree, duration, location, gpa, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, e.ID, e.Institution, e.Degree, e.Duration, e.Location, e.GPA, e.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to create education", err)
	}
	return nil
}

func (r *postgresEducationRepo) InsertMany(ctx context.Context, items []education.Education) error {
	if len(items) == 0 {
		return nil
	}
	builder := psql.Insert("education").
		Columns("id", "institution", "degree", "duration", "location", "gpa", "created_at")

	now := time.Now().UTC()
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		e := items[i]
		builder = builder.Values(e.ID, e.Institution, e.Degree, e.Duration, e.Location, e.GPA, e.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build education bulk insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to bulk insert education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			institution = $2, degree = $3, duration = $4, location = $5, gpa = $6
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, e.ID, e.Institution, e.Degree, e.Duration, e.Location, e.GPA)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM education`); err != nil {
		return apperror.NewInternal("failed to clear education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM education`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count education", err)
	}
	return n, nil
}
