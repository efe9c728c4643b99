package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresPersonalInfoRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPersonalInfoRepo(db *pgxpool.Pool, logger logger.Logger) personalinfo.Repository {
	return &postgresPersonalInfoRepo{db: db, logger: logger}
}

const personalInfoColumns = `
	id, name, title, tagline, location, timezone, image, email, phone, website,
	social, metrics, bio, experience, value_propositions, languages,
	availability, achievements, created_at
`

func (r *postgresPersonalInfoRepo) scan(row pgx.Row) (*personalinfo.PersonalInfo, error) {
	p := &personalinfo.PersonalInfo{}
	var social, metrics, experience, valueProps, languages, availability, achievements []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Tagline, &p.Location, &p.Timezone,
		&p.Image, &p.Email, &p.Phone, &p.Website,
		&social, &metrics, &p.Bio, &experience, &valueProps, &languages,
		&availability, &achievements, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	unmarshalField(r.logger, "personal_info.social", social, &p.Social)
	unmarshalField(r.logger, "personal_info.metrics", metrics, &p.Metrics)
	unmarshalField(r.logger, "personal_info.experience", experience, &p.Experience)
	unmarshalField(r.logger, "personal_info.value_propositions", valueProps, &p.ValuePropositions)
	unmarshalField(r.logger, "personal_info.languages", languages, &p.Languages)
	unmarshalField(r.logger, "personal_info.availability", availability, &p.Availability)
	unmarshalField(r.logger, "personal_info.achievements", achievements, &p.Achievements)

	return p, nil
}

// unmarshalField decodes a nullable JSONB column, leaving the destination
// zero-valued on NULL or corrupt payloads.
func unmarshalField(l logger.Logger, column string, raw []byte, dst any) {
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		l.Warn("Failed to unmarshal JSONB column", zap.String("column", column), zap.Error(err))
	}
}

func marshalField(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (r *postgresPersonalInfoRepo) FindCurrent(ctx context.Context) (*personalinfo.PersonalInfo, error) {
	query := `SELECT ` + personalInfoColumns + ` FROM personal_info ORDER BY created_at DESC LIMIT 1`
	p, err := r.scan(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query current personal info", err)
	}
	return p, nil
}

func (r *postgresPersonalInfoRepo) FindAll(ctx context.Context) ([]personalinfo.PersonalInfo, error) {
	query := `SELECT ` + personalInfoColumns + ` FROM personal_info ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query personal info", err)
	}
	defer rows.Close()

	items := make([]personalinfo.PersonalInfo, 0)
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan personal info row", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating personal info rows", err)
	}
	return items, nil
}

func (r *postgresPersonalInfoRepo) FindByID(ctx context.Context, id uuid.UUID) (*personalinfo.PersonalInfo, error) {
	query := `SELECT ` + personalInfoColumns + ` FROM personal_info WHERE id = $1`
	p, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("personal info", id.String())
		}
		return nil, apperror.NewInternal("failed to query personal info by id", err)
	}
	return p, nil
}

func (r *postgresPersonalInfoRepo) Create(ctx context.Context, p *personalinfo.PersonalInfo) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	social, err := marshalField(p.Social)
	if err != nil {
		return apperror.NewInternal("failed to marshal social", err)
	}
	metrics, _ := marshalField(p.Metrics)
	experience, _ := marshalField(p.Experience)
	valueProps, _ := marshalField(p.ValuePropositions)
	languages, _ := marshalField(p.Languages)
	availability, _ := marshalField(p.Availability)
	achievements, _ := marshalField(p.Achievements)

	query := `
		INSERT INTO personal_info (
			id, name, title, tagline, location, timezone, image, email, phone, website,
			social, metrics, bio, experience, value_propositions, languages,
			availability, achievements, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Tagline, p.Location, p.Timezone, p.Image,
		p.Email, p.Phone, p.Website, social, metrics, p.Bio, experience,
		valueProps, languages, availability, achievements, p.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to create personal info", err)
	}
	return nil
}

func (r *postgresPersonalInfoRepo) Update(ctx context.Context, p *personalinfo.PersonalInfo) error {
	social, err := marshalField(p.Social)
	if err != nil {
		return apperror.NewInternal("failed to marshal social", err)
	}
	metrics, _ := marshalField(p.Metrics)
	experience, _ := marshalField(p.Experience)
	valueProps, _ := marshalField(p.ValuePropositions)
	languages, _ := marshalField(p.Languages)
	availability, _ := marshalField(p.Availability)
	achievements, _ := marshalField(p.Achievements)

	query := `
		UPDATE personal_info SET
			name = $2, title = $3, tagline = $4, location = $5, timezone = $6,
			image = $7, email = $8, phone = $9, website = $10, social = $11,
			metrics = $12, bio = $13, experience = $14, value_propositions = $15,
			languages = $16, availability = $17, achievements = $18
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Tagline, p.Location, p.Timezone, p.Image,
		p.Email, p.Phone, p.Website, social, metrics, p.Bio, experience,
		valueProps, languages, availability, achievements,
	)
	if err != nil {
		return apperror.NewInternal("failed to update personal info", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("personal info", p.ID.String())
	}
	return nil
}

func (r *postgresPersonalInfoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM personal_info WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete personal info", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("personal info", id.String())
	}
	return nil
}

func (r *postgresPersonalInfoRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM personal_info`); err != nil {
		return apperror.NewInternal("failed to clear personal info", err)
	}
	return nil
}

func (r *postgresPersonalInfoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM personal_info`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count personal info", err)
	}
	return n, nil
}
