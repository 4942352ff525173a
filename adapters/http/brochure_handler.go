package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	brochureUC "portfolio-admin/internal/application/usecase/brochure"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

type BrochureHandler struct {
	useCase *brochureUC.UseCase
	logger  logger.Logger
}

func NewBrochureHandler(uc *brochureUC.UseCase, log logger.Logger) *BrochureHandler {
	return &BrochureHandler{useCase: uc, logger: log}
}

func (h *BrochureHandler) Generate(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}

	text, err := h.useCase.Generate(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, text)
}

type reformulateRequest struct {
	OriginalText string `json:"original_text"`
	FieldLabel   string `json:"field_label" binding:"required"`
}

func (h *BrochureHandler) Reformulate(c *gin.Context) {
	if _, ok := GetOwnerIDFromGinContext(c); !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}
	var req reformulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	text := h.useCase.Reformulate(c.Request.Context(), req.OriginalText, req.FieldLabel)
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *BrochureHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/brochure", h.Generate)
	rg.POST("/ai/reformulate", h.Reformulate)
}
