package service

import (
	"context"

	"github.com/google/uuid"
)

// ContentEventPublisher announces successful mutations so downstream
// consumers (brochure cache invalidation) can react. Publishing is
// fire-and-forget: a failed publish never fails the mutation.
type ContentEventPublisher interface {
	PublishContentChanged(ctx context.Context, ownerID uuid.UUID, kind, action, recordID string) error
}
