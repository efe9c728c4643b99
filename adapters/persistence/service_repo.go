package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresServiceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresServiceRepo(db *pgxpool.Pool, logger logger.Logger) service.Repository {
	return &postgresServiceRepo{db: db, logger: logger}
}

func (r *postgresServiceRepo) scan(row pgx.Row) (*service.Service, error) {
	s := &service.Service{}
	var deliverables []byte
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Duration, &deliverables, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	unmarshalField(r.logger, "services.deliverables", deliverables, &s.Deliverables)
	return s, nil
}

func (r *postgresServiceRepo) FindAll(ctx context.Context) ([]service.Service, error) {
	builder := psql.Select("id", "name", "description", "duration", "deliverables", "created_at").
		From("services").
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build services list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query services", err)
	}
	defer rows.Close()

	items := make([]service.Service, 0)
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan service row", err)
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating service rows", err)
	}
	return items, nil
}

func (r *postgresServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	query := `SELECT id, name, description, duration, deliverables, created_at FROM services WHERE id = $1`
	s, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("service", id.String())
		}
		return nil, apperror.NewInternal("failed to query service by id", err)
	}
	return s, nil
}

func (r *postgresServiceRepo) Create(ctx context.Context, s *service.Service) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	deliverables, err := marshalField(s.Deliverables)
	if err != nil {
		return apperror.NewInternal("failed to marshal deliverables", err)
	}
	query := `
		INSERT INTO services (id, name, description, duration, deliverables, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Description, s.Duration, deliverables, s.CreatedAt); err != nil {
		return apperror.NewInternal("failed to create service", err)
	}
	return nil
}

func (r *postgresServiceRepo) InsertMany(ctx context.Context, items []service.Service) error {
	if len(items) == 0 {
		return nil
	}
	builder := psql.Insert("services").
		Columns("id", "name", "description", "duration", "deliverables", "created_at")

	now := time.Now().UTC()
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		s := items[i]
		deliverables, err := marshalField(s.Deliverables)
		if err != nil {
			return apperror.NewInternal("failed to marshal deliverables", err)
		}
		builder = builder.Values(s.ID, s.Name, s.Description, s.Duration, deliverables, s.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build services bulk insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to bulk insert services", err)
	}
	return nil
}

func (r *postgresServiceRepo) Update(ctx context.Context, s *service.Service) error {
	deliverables, err := marshalField(s.Deliverables)
	if err != nil {
		return apperror.NewInternal("failed to marshal deliverables", err)
	}
	query := `
		UPDATE services SET name = $2, description = $3, duration = $4, deliverables = $5
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Description, s.Duration, deliverables)
	if err != nil {
		return apperror.NewInternal("failed to update service", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("service", s.ID.String())
	}
	return nil
}

func (r *postgresServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete service", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("service", id.String())
	}
	return nil
}

func (r *postgresServiceRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM services`); err != nil {
		return apperror.NewInternal("failed to clear services", err)
	}
	return nil
}

func (r *postgresServiceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count services", err)
	}
	return n, nil
}
