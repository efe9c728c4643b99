package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/contact"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

func (r *postgresContactRepo) scan(row pgx.Row) (*contact.Message, error) {
	m := &contact.Message{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.ContactMethod, &m.OtherSubject, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresContactRepo) Save(ctx context.Context, m *contact.Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, contact_method, other_subject, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Message,
		m.ContactMethod, m.OtherSubject, m.CreatedAt); err != nil {
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}

func (r *postgresContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	query := `
		SELECT id, name, email, subject, message, contact_method, other_subject, created_at
		FROM contact_messages WHERE id = $1
	`
	m, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("contact message", id.String())
		}
		return nil, apperror.NewInternal("failed to query contact message", err)
	}
	return m, nil
}

func (r *postgresContactRepo) FindAll(ctx context.Context) ([]contact.Message, error) {
	builder := psql.Select("id", "name", "email", "subject", "message", "contact_method", "other_subject", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build contact messages list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contact messages", err)
	}
	defer rows.Close()

	items := make([]contact.Message, 0)
	for rows.Next() {
		m, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan contact message row", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact message rows", err)
	}
	return items, nil
}
