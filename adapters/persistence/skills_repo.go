package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/skills"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresSkillsRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillsRepo(db *pgxpool.Pool, logger logger.Logger) skills.Repository {
	return &postgresSkillsRepo{db: db, logger: logger}
}

func (r *postgresSkillsRepo) scan(row pgx.Row) (*skills.Skills, error) {
	s := &skills.Skills{}
	var primary, secondary, tools []byte

	if err := row.Scan(&s.ID, &primary, &secondary, &tools, &s.CreatedAt); err != nil {
		return nil, err
	}

	unmarshalField(r.logger, "skills.primary", primary, &s.Primary)
	unmarshalField(r.logger, "skills.secondary", secondary, &s.Secondary)
	unmarshalField(r.logger, "skills.tools", tools, &s.Tools)
	return s, nil
}

func (r *postgresSkillsRepo) FindCurrent(ctx context.Context) (*skills.Skills, error) {
	query := `SELECT id, primary_skills, secondary_skills, tools, created_at FROM skills ORDER BY created_at DESC LIMIT 1`
	s, err := r.scan(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query current skills", err)
	}
	return s, nil
}

func (r *postgresSkillsRepo) FindAll(ctx context.Context) ([]skills.Skills, error) {
	query := `SELECT id, primary_skills, secondary_skills, tools, created_at FROM skills ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	defer rows.Close()

	items := make([]skills.Skills, 0)
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan skills row", err)
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skills rows", err)
	}
	return items, nil
}

func (r *postgresSkillsRepo) FindByID(ctx context.Context, id uuid.UUID) (*skills.Skills, error) {
	query := `SELECT id, primary_skills, secondary_skills, tools, created_at FROM skills WHERE id = $1`
	s, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skills", id.String())
		}
		return nil, apperror.NewInternal("failed to query skills by id", err)
	}
	return s, nil
}

func (r *postgresSkillsRepo) Create(ctx context.Context, s *skills.Skills) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	primary, err := marshalField(s.Primary)
	if err != nil {
		return apperror.NewInternal("failed to marshal primary skills", err)
	}
	secondary, _ := marshalField(s.Secondary)
	tools, _ := marshalField(s.Tools)

	query := `
		INSERT INTO skills (id, primary_skills, secondary_skills, tools, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, s.ID, primary, secondary, tools, s.CreatedAt); err != nil {
		return apperror.NewInternal("failed to create skills", err)
	}
	return nil
}

func (r *postgresSkillsRepo) Update(ctx context.Context, s *skills.Skills) error {
	primary, err := marshalField(s.Primary)
	if err != nil {
		return apperror.NewInternal("failed to marshal primary skills", err)
	}
	secondary, _ := marshalField(s.Secondary)
	tools, _ := marshalField(s.Tools)

	query := `
		UPDATE skills SET primary_skills = $2, secondary_skills = $3, tools = $4
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, primary, secondary, tools)
	if err != nil {
		return apperror.NewInternal("failed to update skills", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skills", s.ID.String())
	}
	return nil
}

func (r *postgresSkillsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skills", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skills", id.String())
	}
	return nil
}

func (r *postgresSkillsRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM skills`); err != nil {
		return apperror.NewInternal("failed to clear skills", err)
	}
	return nil
}

func (r *postgresSkillsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count skills", err)
	}
	return n, nil
}
