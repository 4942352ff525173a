package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-admin/internal/domain/testimonial"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

type postgresTestimonialRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTestimonialRepo(db *pgxpool.Pool, logger logger.Logger) testimonial.Repository {
	return &postgresTestimonialRepo{db: db, logger: logger}
}

const testimonialColumns = "id, owner_id, name, position, company, avatar, text, created_at, updated_at"

func scanTestimonial(row pgx.Row) (*testimonial.Testimonial, error) {
	t := &testimonial.Testimonial{}
	err := row.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Name,
		&t.Position,
		&t.Company,
		&t.Avatar,
		&t.Text,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("testimonial", "")
		}
		return nil, apperror.NewInternal("failed to scan testimonial row", err)
	}
	return t, nil
}

func (r *postgresTestimonialRepo) Save(ctx context.Context, t *testimonial.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, owner_id, name, position, company, avatar, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.OwnerID, t.Name, t.Position, t.Company, t.Avatar, t.Text, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save testimonial", err)
	}
	return nil
}

func (r *postgresTestimonialRepo) Update(ctx context.Context, t *testimonial.Testimonial) error {
	query := `
		UPDATE testimonials SET name = $2, position = $3, company = $4, avatar = $5, text = $6, updated_at = $7
		WHERE id = $1 AND owner_id = $8
	`
	cmdTag, err := r.db.Exec(ctx, query,
		t.ID, t.Name, t.Position, t.Company, t.Avatar, t.Text, t.UpdatedAt, t.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update testimonial", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("testimonial", t.ID.String())
	}
	return nil
}

func (r *postgresTestimonialRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM testimonials WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete testimonial", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("testimonial", id.String())
	}
	return nil
}

func (r *postgresTestimonialRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*testimonial.Testimonial, error) {
	query := `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE id = $1 AND owner_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanTestimonial(row)
}

func (r *postgresTestimonialRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*testimonial.Testimonial, error) {
	builder := psql.Select(testimonialColumns).
		From("testimonials").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list testimonials query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query testimonials by owner", err)
	}
	defer rows.Close()

	testimonials := make([]*testimonial.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating testimonial rows", err)
	}
	return testimonials, nil
}
