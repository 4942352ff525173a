package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "portfolio-admin/internal/application/usecase/media"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

type MediaHandler struct {
	uploadUseCase *mediaUC.UploadImageUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadImageUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadUseCase: uploadUC, logger: log}
}

func (h *MediaHandler) UploadImage(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("missing file upload", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read file upload", err))
		return
	}
	defer file.Close()

	input := mediaUC.UploadImageInput{
		OwnerID: ownerID,
		File:    file,
		Kind:    c.PostForm("kind"),
	}
	url, err := h.uploadUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Image téléchargée avec succès.", gin.H{"url": url})
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.UploadImage)
}
