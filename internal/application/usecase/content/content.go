// Package content is the single gateway through which the many-per-user
// record kinds (projects, skills, testimonials) reach the store. One
// generic implementation keeps the ownership checks identical across
// kinds instead of drifting in three copies.
package content

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-admin/internal/application/service"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

type Repository[T any] interface {
	Save(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*T, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*T, error)
}

// CRUD is an ownership-scoped create/read/update/delete gateway for one
// record kind. Decoding, field merging and timestamping are the only
// kind-specific parts.
type CRUD[T any] struct {
	kind   string
	repo   Repository[T]
	decode func(ownerID uuid.UUID, form map[string]string) (*T, apperror.FieldErrors)
	merge  func(existing, incoming *T)
	touch  func(rec *T, now time.Time, created bool)
	id     func(rec *T) uuid.UUID
	events service.ContentEventPublisher
	logger logger.Logger
}

// Add validates the raw form and inserts a new record owned by ownerID.
func (c *CRUD[T]) Add(ctx context.Context, ownerID uuid.UUID, form map[string]string) (*T, error) {
	rec, fe := c.decode(ownerID, form)
	if fe != nil {
		return nil, apperror.NewValidationFailed(fe)
	}
	c.touch(rec, time.Now().UTC(), true)

	if err := c.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	c.publish(ctx, ownerID, "created", c.id(rec))
	return rec, nil
}

// Update validates first, then re-fetches the target through the
// owner-scoped lookup before touching it. A record owned by someone
// else fails exactly like a missing one.
func (c *CRUD[T]) Update(ctx context.Context, ownerID, id uuid.UUID, form map[string]string) (*T, error) {
	incoming, fe := c.decode(ownerID, form)
	if fe != nil {
		return nil, apperror.NewValidationFailed(fe)
	}

	existing, err := c.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	c.merge(existing, incoming)
	c.touch(existing, time.Now().UTC(), false)

	if err := c.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	c.publish(ctx, ownerID, "updated", id)
	return existing, nil
}

// Delete re-checks ownership the same way Update does before removing
// the record.
func (c *CRUD[T]) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := c.repo.FindByID(ctx, id, ownerID); err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	c.publish(ctx, ownerID, "deleted", id)
	return nil
}

func (c *CRUD[T]) Get(ctx context.Context, ownerID, id uuid.UUID) (*T, error) {
	return c.repo.FindByID(ctx, id, ownerID)
}

// List fails open: a store/query failure is logged and surfaces as an
// empty list so the admin views keep rendering.
func (c *CRUD[T]) List(ctx context.Context, ownerID uuid.UUID) ([]*T, error) {
	recs, err := c.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		c.logger.Warn("list query failed, returning empty list",
			zap.String("kind", c.kind),
			zap.String("owner_id", ownerID.String()),
			zap.Error(err),
		)
		return []*T{}, nil
	}
	return recs, nil
}

func (c *CRUD[T]) publish(ctx context.Context, ownerID uuid.UUID, action string, id uuid.UUID) {
	if c.events == nil {
		return
	}
	if err := c.events.PublishContentChanged(ctx, ownerID, c.kind, action, id.String()); err != nil {
		c.logger.Warn("failed to publish content event",
			zap.String("kind", c.kind),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
