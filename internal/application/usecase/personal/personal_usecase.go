package personal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-admin/internal/application/service"
	"portfolio-admin/internal/domain/personal"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

type UseCase struct {
	repo   personal.Repository
	events service.ContentEventPublisher
	logger logger.Logger
}

func NewUseCase(repo personal.Repository, events service.ContentEventPublisher, log logger.Logger) *UseCase {
	return &UseCase{repo: repo, events: events, logger: log}
}

// Get returns (nil, nil) when the owner has no record yet; absence is
// not an error.
func (uc *UseCase) Get(ctx context.Context, ownerID uuid.UUID) (*personal.PersonalData, error) {
	return uc.repo.GetByOwner(ctx, ownerID)
}

// Upsert validates the form and writes the owner's single record. The
// record's ID and OwnerID must both equal the caller; a mismatch is a
// hard failure and the store is never touched.
func (uc *UseCase) Upsert(ctx context.Context, ownerID uuid.UUID, form map[string]string) (*personal.PersonalData, error) {
	data, fe := personal.FromForm(ownerID, form)
	if fe != nil {
		return nil, apperror.NewValidationFailed(fe)
	}
	return uc.UpsertValidated(ctx, ownerID, data)
}

// UpsertValidated writes an already-validated record after the identity
// check. Split out so the tamper guard can be exercised directly.
func (uc *UseCase) UpsertValidated(ctx context.Context, ownerID uuid.UUID, data *personal.PersonalData) (*personal.PersonalData, error) {
	if data.ID != ownerID || data.OwnerID != ownerID {
		uc.logger.Error("personal data identity mismatch", nil,
			zap.String("caller", ownerID.String()),
			zap.String("record_id", data.ID.String()),
			zap.String("record_owner", data.OwnerID.String()),
		)
		return nil, apperror.New(
			apperror.ErrInternal,
			"Erreur critique d'association des données utilisateur.",
			"validated record id/owner does not match the caller",
			nil,
		)
	}

	data.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Upsert(ctx, data); err != nil {
		return nil, err
	}

	if uc.events != nil {
		if err := uc.events.PublishContentChanged(ctx, ownerID, "personal_data", "upserted", ownerID.String()); err != nil {
			uc.logger.Warn("failed to publish content event", zap.Error(err))
		}
	}
	return data, nil
}
