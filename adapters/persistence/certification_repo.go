package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	c := &certification.Certification{}
	err := row.Scan(&c.ID, &c.Name, &c.Issuer, &c.Year, &c.CredentialID, &c.Level, &c.Icon, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresCertificationRepo) FindAll(ctx context.Context) ([]certification.Certification, error) {
	builder := psql.Select("id", "name", "issuer", "year", "credential_id", "level", "icon", "created_at").
		From("certifications").
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build certifications list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}
	defer rows.Close()

	items := make([]certification.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan certification row", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return items, nil
}

func (r *postgresCertificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	query := `SELECT id, name, issuer, year, credential_id, level, icon, created_at FROM certifications WHERE id = $1`
	c, err := scanCertification(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("certification", id.String())
		}
		return nil, apperror.NewInternal("failed to query certification by id", err)
	}
	return c, nil
}

func (r *postgresCertificationRepo) Create(ctx context.Context, c *certification.Certification) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO certifications (id, name, issuer, year, credential_id, level, icon, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Issuer, c.Year, c.CredentialID, c.Level, c.Icon, c.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to create certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) InsertMany(ctx context.Context, items []certification.Certification) error {
	if len(items) == 0 {
		return nil
	}
	builder := psql.Insert("certifications").
		Columns("id", "name", "issuer", "year", "credential_id", "level", "icon", "created_at")

	now := time.Now().UTC()
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		c := items[i]
		builder = builder.Values(c.ID, c.Name, c.Issuer, c.Year, c.CredentialID, c.Level, c.Icon, c.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build certifications bulk insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to bulk insert certifications", err)
	}
	return nil
}

func (r *postgresCertificationRepo) Update(ctx context.Context, c *certification.Certification) error {
	query := `
		UPDATE certifications SET
			name = $2, issuer = $3, year = $4, credential_id = $5, level = $6, icon = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Issuer, c.Year, c.CredentialID, c.Level, c.Icon)
	if err != nil {
		return apperror.NewInternal("failed to update certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", c.ID.String())
	}
	return nil
}

func (r *postgresCertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", id.String())
	}
	return nil
}

func (r *postgresCertificationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM certifications`); err != nil {
		return apperror.NewInternal("failed to clear certifications", err)
	}
	return nil
}

func (r *postgresCertificationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM certifications`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count certifications", err)
	}
	return n, nil
}
