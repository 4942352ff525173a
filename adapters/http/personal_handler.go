package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	personalUC "portfolio-admin/internal/application/usecase/personal"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

type PersonalHandler struct {
	useCase *personalUC.UseCase
	logger  logger.Logger
}

func NewPersonalHandler(uc *personalUC.UseCase, log logger.Logger) *PersonalHandler {
	return &PersonalHandler{useCase: uc, logger: log}
}

// Get answers null when the owner has no record yet; the form treats
// that as a blank slate, not an error.
func (h *PersonalHandler) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}

	data, err := h.useCase.Get(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *PersonalHandler) Upsert(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}
	form, err := formMap(c)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid form data", err))
		return
	}

	data, err := h.useCase.Upsert(c.Request.Context(), ownerID, form)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, "Données personnelles mises à jour avec succès.", data)
}

func (h *PersonalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/personal-data", h.Get)
	rg.PUT("/personal-data", h.Upsert)
}
