package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/application/usecase/content"
	"portfolio-admin/internal/domain/testimonial"
	"portfolio-admin/pkg/logger"
)

type TestimonialHandler struct {
	*ContentHandler[testimonial.Testimonial]
}

func NewTestimonialHandler(crud *content.CRUD[testimonial.Testimonial], log logger.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		ContentHandler: newContentHandler(crud, resourceMessages{
			added:   "Témoignage ajouté avec succès.",
			updated: "Témoignage mis à jour avec succès.",
			deleted: "Témoignage supprimé avec succès.",
		}, log),
	}
}

// ListAvatars serves the fixed avatar catalog the testimonial form
// picks from.
func (h *TestimonialHandler) ListAvatars(c *gin.Context) {
	c.JSON(http.StatusOK, testimonial.AvatarOptions)
}

func (h *TestimonialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/testimonials", h.List)
	rg.POST("/testimonials", h.Add)
	rg.GET("/testimonials/:id", h.Get)
	rg.PUT("/testimonials/:id", h.Update)
	rg.DELETE("/testimonials/:id", h.Delete)
	rg.GET("/avatars", h.ListAvatars)
}
