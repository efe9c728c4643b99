package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresTestimonialRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTestimonialRepo(db *pgxpool.Pool, logger logger.Logger) testimonial.Repository {
	return &postgresTestimonialRepo{db: db, logger: logger}
}

func (r *postgresTestimonialRepo) scan(row pgx.Row) (*testimonial.Testimonial, error) {
	t := &testimonial.Testimonial{}
	err := row.Scan(&t.ID, &t.Name, &t.Position, &t.Company, &t.Testimonial, &t.Image, &t.LinkedIn, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *postgresTestimonialRepo) FindAll(ctx context.Context) ([]testimonial.Testimonial, error) {
	builder := psql.Select("id", "name", "position", "company", "testimonial", "image", "linkedin", "created_at").
		From("testimonials").
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build testimonials list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query testimonials", err)
	}
	defer rows.Close()

	items := make([]testimonial.Testimonial, 0)
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan testimonial row", err)
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating testimonial rows", err)
	}
	return items, nil
}

func (r *postgresTestimonialRepo) FindByID(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error) {
	query := `
		SELECT id, name, position, company, testimonial, image, linkedin, created_at
		FROM testimonials WHERE id = $1
	`
	t, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("testimonial", id.String())
		}
		return nil, apperror.NewInternal("failed to query testimonial by id", err)
	}
	return t, nil
}

func (r *postgresTestimonialRepo) Create(ctx context.Context, t *testimonial.Testimonial) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO testimonials (id, name, position, company, testimonial, image, linkedin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.db.Exec(ctx, query, t.ID, t.Name, t.Position, t.Company, t.Testimonial,
		t.Image, t.LinkedIn, t.CreatedAt); err != nil {
		return apperror.NewInternal("failed to create testimonial", err)
	}
	return nil
}

func (r *postgresTestimonialRepo) InsertMany(ctx context.Context, items []testimonial.Testimonial) error {
	if len(items) == 0 {
		return nil
	}
	builder := psql.Insert("testimonials").
		Columns("id", "name", "position", "company", "testimonial", "image", "linkedin", "created_at")

	now := time.Now().UTC()
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		t := items[i]
		builder = builder.Values(t.ID, t.Name, t.Position, t.Company, t.Testimonial, t.Image, t.LinkedIn, t.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build testimonials bulk insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to bulk insert testimonials", err)
	}
	return nil
}

func (r *postgresTestimonialRepo) Update(ctx context.Context, t *testimonial.Testimonial) error {
	query := `
		UPDATE testimonials
		SET name = $2, position = $3, company = $4, testimonial = $5, image = $6, linkedin = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, t.ID, t.Name, t.Position, t.Company, t.Testimonial, t.Image, t.LinkedIn)
	if err != nil {
		return apperror.NewInternal("failed to update testimonial", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("testimonial", t.ID.String())
	}
	return nil
}

func (r *postgresTestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete testimonial", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("testimonial", id.String())
	}
	return nil
}

func (r *postgresTestimonialRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM testimonials`); err != nil {
		return apperror.NewInternal("failed to clear testimonials", err)
	}
	return nil
}

func (r *postgresTestimonialRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count testimonials", err)
	}
	return n, nil
}
