package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-admin/internal/domain/personal"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

type postgresPersonalRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPersonalRepo(db *pgxpool.Pool, logger logger.Logger) personal.Repository {
	return &postgresPersonalRepo{db: db, logger: logger}
}

func (r *postgresPersonalRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*personal.PersonalData, error) {
	query := `
		SELECT owner_id, name, title, bio, location, email, phone, socials,
		       profile_image_url, cover_image_url, about_me, who_am_i, updated_at
		FROM personal_data
		WHERE owner_id = $1
	`
	p := &personal.PersonalData{}
	var socialsBytes []byte

	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&p.OwnerID,
		&p.Name,
		&p.Title,
		&p.Bio,
		&p.Location,
		&p.Email,
		&p.Phone,
		&socialsBytes,
		&p.ProfileImageURL,
		&p.CoverImageURL,
		&p.AboutMe,
		&p.WhoAmI,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query personal data", err)
	}

	// the document key is the owner id
	p.ID = p.OwnerID

	if err := json.Unmarshal(socialsBytes, &p.Socials); err != nil {
		r.logger.Warn("failed to unmarshal socials", zap.String("owner_id", ownerID.String()), zap.Error(err))
		p.Socials = []personal.Social{}
	}

	return p, nil
}

func (r *postgresPersonalRepo) Upsert(ctx context.Context, p *personal.PersonalData) error {
	socialsBytes, err := json.Marshal(p.Socials)
	if err != nil {
		return apperror.NewInternal("failed to marshal socials", err)
	}

	query := `
		INSERT INTO personal_data (owner_id, name, title, bio, location, email, phone, socials,
		                           profile_image_url, cover_image_url, about_me, who_am_i, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (owner_id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			socials = EXCLUDED.socials,
			profile_image_url = EXCLUDED.profile_image_url,
			cover_image_url = EXCLUDED.cover_image_url,
			about_me = EXCLUDED.about_me,
			who_am_i = EXCLUDED.who_am_i,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		p.OwnerID, p.Name, p.Title, p.Bio, p.Location, p.Email, p.Phone, socialsBytes,
		p.ProfileImageURL, p.CoverImageURL, p.AboutMe, p.WhoAmI, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert personal data", err)
	}
	return nil
}
