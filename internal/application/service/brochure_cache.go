package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrCacheMiss = errors.New("cache miss")

// BrochureCache holds the last generated brochure text per owner so
// repeated views do not re-bill the generation service. Entries are
// invalidated by the worker when content changes.
type BrochureCache interface {
	Get(ctx context.Context, ownerID uuid.UUID) ([]byte, error)
	Set(ctx context.Context, ownerID uuid.UUID, payload []byte) error
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}
