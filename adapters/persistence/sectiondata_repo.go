package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresSectionDataRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSectionDataRepo(db *pgxpool.Pool, logger logger.Logger) sectiondata.Repository {
	return &postgresSectionDataRepo{db: db, logger: logger}
}

func (r *postgresSectionDataRepo) scan(row pgx.Row) (*sectiondata.SectionData, error) {
	s := &sectiondata.SectionData{}
	var data []byte
	err := row.Scan(&s.ID, &s.SectionType, &data, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	unmarshalField(r.logger, "section_data.data", data, &s.Data)
	return s, nil
}

func (r *postgresSectionDataRepo) FindAll(ctx context.Context) ([]sectiondata.SectionData, error) {
	builder := psql.Select("id", "section_type", "data", "created_at", "updated_at").
		From("section_data").
		OrderBy("section_type ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build section data list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query section data", err)
	}
	defer rows.Close()

	items := make([]sectiondata.SectionData, 0)
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan section data row", err)
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating section data rows", err)
	}
	return items, nil
}

func (r *postgresSectionDataRepo) FindByType(ctx context.Context, t sectiondata.SectionType) (*sectiondata.SectionData, error) {
	query := `SELECT id, section_type, data, created_at, updated_at FROM section_data WHERE section_type = $1`
	s, err := r.scan(r.db.QueryRow(ctx, query, t))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query section data by type", err)
	}
	return s, nil
}

func (r *postgresSectionDataRepo) Create(ctx context.Context, s *sectiondata.SectionData) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	data, err := marshalField(s.Data)
	if err != nil {
		return apperror.NewInternal("failed to marshal section data", err)
	}
	query := `
		INSERT INTO section_data (id, section_type, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, s.ID, s.SectionType, data, s.CreatedAt, s.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("section data", "sectionType", string(s.SectionType))
		}
		return apperror.NewInternal("failed to create section data", err)
	}
	return nil
}

func (r *postgresSectionDataRepo) Upsert(ctx context.Context, s *sectiondata.SectionData) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	data, err := marshalField(s.Data)
	if err != nil {
		return apperror.NewInternal("failed to marshal section data", err)
	}
	query := `
		INSERT INTO section_data (id, section_type, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (section_type) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.Exec(ctx, query, s.ID, s.SectionType, data, s.CreatedAt, s.UpdatedAt); err != nil {
		return apperror.NewInternal("failed to upsert section data", err)
	}
	return nil
}

func (r *postgresSectionDataRepo) DeleteByType(ctx context.Context, t sectiondata.SectionType) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM section_data WHERE section_type = $1`, t)
	if err != nil {
		return apperror.NewInternal("failed to delete section data", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("section data", string(t))
	}
	return nil
}

func (r *postgresSectionDataRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM section_data`); err != nil {
		return apperror.NewInternal("failed to clear section data", err)
	}
	return nil
}

func (r *postgresSectionDataRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM section_data`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count section data", err)
	}
	return n, nil
}
