package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-admin/internal/application/service"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

// Image kinds name the upload folder under the owner's namespace.
const (
	KindProfile = "profile"
	KindCover   = "cover"
	KindProject = "project"
)

type UploadImageUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadImageUseCase(uploader service.Uploader, log logger.Logger) *UploadImageUseCase {
	return &UploadImageUseCase{uploader: uploader, logger: log}
}

type UploadImageInput struct {
	OwnerID uuid.UUID
	File    io.Reader
	Kind    string
}

// Execute pushes the image to the blob store and returns its public
// URL. The caller writes that URL into a record afterwards; if it never
// does, the blob is orphaned and not cleaned up.
func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (string, error) {
	switch input.Kind {
	case KindProfile, KindCover, KindProject:
	default:
		return "", apperror.NewInvalidInput(fmt.Sprintf("unknown image kind '%s'", input.Kind), nil)
	}

	folder := fmt.Sprintf("portfolio/%s/%s", input.OwnerID, input.Kind)
	publicID := uuid.NewString()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		uc.logger.Error("image upload failed", err,
			zap.String("owner_id", input.OwnerID.String()),
			zap.String("kind", input.Kind),
		)
		return "", apperror.NewInternal("image upload failed", err)
	}
	return url, nil
}
