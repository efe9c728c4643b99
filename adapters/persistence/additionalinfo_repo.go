package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type postgresAdditionalInfoRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAdditionalInfoRepo(db *pgxpool.Pool, logger logger.Logger) additionalinfo.Repository {
	return &postgresAdditionalInfoRepo{db: db, logger: logger}
}

const additionalInfoColumns = `id, speaking_engagements, publications, community_involvement, awards, subject_options, created_at`

func (r *postgresAdditionalInfoRepo) scan(row pgx.Row) (*additionalinfo.AdditionalInfo, error) {
	a := &additionalinfo.AdditionalInfo{}
	var speaking, publications, community, awards, subjects []byte
	err := row.Scan(&a.ID, &speaking, &publications, &community, &awards, &subjects, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	unmarshalField(r.logger, "additional_info.speaking_engagements", speaking, &a.SpeakingEngagements)
	unmarshalField(r.logger, "additional_info.publications", publications, &a.Publications)
	unmarshalField(r.logger, "additional_info.community_involvement", community, &a.CommunityInvolvement)
	unmarshalField(r.logger, "additional_info.awards", awards, &a.Awards)
	unmarshalField(r.logger, "additional_info.subject_options", subjects, &a.SubjectOptions)
	return a, nil
}

func (r *postgresAdditionalInfoRepo) FindCurrent(ctx context.Context) (*additionalinfo.AdditionalInfo, error) {
	query := `SELECT ` + additionalInfoColumns + ` FROM additional_info ORDER BY created_at DESC LIMIT 1`
	a, err := r.scan(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query current additional info", err)
	}
	return a, nil
}

func (r *postgresAdditionalInfoRepo) FindAll(ctx context.Context) ([]additionalinfo.AdditionalInfo, error) {
	builder := psql.Select("id", "speaking_engagements", "publications", "community_involvement",
		"awards", "subject_options", "created_at").
		From("additional_info").
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build additional info list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query additional info", err)
	}
	defer rows.Close()

	items := make([]additionalinfo.AdditionalInfo, 0)
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan additional info row", err)
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating additional info rows", err)
	}
	return items, nil
}

func (r *postgresAdditionalInfoRepo) FindByID(ctx context.Context, id uuid.UUID) (*additionalinfo.AdditionalInfo, error) {
	query := `SELECT ` + additionalInfoColumns + ` FROM additional_info WHERE id = $1`
	a, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("additional info", id.String())
		}
		return nil, apperror.NewInternal("failed to query additional info by id", err)
	}
	return a, nil
}

func (r *postgresAdditionalInfoRepo) Create(ctx context.Context, a *additionalinfo.AdditionalInfo) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	speaking, publications, community, awards, subjects, err := r.marshalBlobs(a)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO additional_info (` + additionalInfoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.Exec(ctx, query, a.ID, speaking, publications, community, awards, subjects, a.CreatedAt); err != nil {
		return apperror.NewInternal("failed to create additional info", err)
	}
	return nil
}

func (r *postgresAdditionalInfoRepo) Update(ctx context.Context, a *additionalinfo.AdditionalInfo) error {
	speaking, publications, community, awards, subjects, err := r.marshalBlobs(a)
	if err != nil {
		return err
	}
	query := `
		UPDATE additional_info
		SET speaking_engagements = $2, publications = $3, community_involvement = $4,
		    awards = $5, subject_options = $6
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, a.ID, speaking, publications, community, awards, subjects)
	if err != nil {
		return apperror.NewInternal("failed to update additional info", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("additional info", a.ID.String())
	}
	return nil
}

func (r *postgresAdditionalInfoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM additional_info WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete additional info", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("additional info", id.String())
	}
	return nil
}

func (r *postgresAdditionalInfoRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM additional_info`); err != nil {
		return apperror.NewInternal("failed to clear additional info", err)
	}
	return nil
}

func (r *postgresAdditionalInfoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM additional_info`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count additional info", err)
	}
	return n, nil
}

func (r *postgresAdditionalInfoRepo) marshalBlobs(a *additionalinfo.AdditionalInfo) (speaking, publications, community, awards, subjects []byte, err error) {
	if speaking, err = marshalField(a.SpeakingEngagements); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal speaking engagements", err)
	}
	if publications, err = marshalField(a.Publications); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal publications", err)
	}
	if community, err = marshalField(a.CommunityInvolvement); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal community involvement", err)
	}
	if awards, err = marshalField(a.Awards); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal awards", err)
	}
	if subjects, err = marshalField(a.SubjectOptions); err != nil {
		return nil, nil, nil, nil, nil, apperror.NewInternal("failed to marshal subject options", err)
	}
	return speaking, publications, community, awards, subjects, nil
}
