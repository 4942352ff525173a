package http

import (
	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/application/usecase/content"
	"portfolio-admin/internal/domain/skill"
	"portfolio-admin/pkg/logger"
)

type SkillHandler struct {
	*ContentHandler[skill.Skill]
}

func NewSkillHandler(crud *content.CRUD[skill.Skill], log logger.Logger) *SkillHandler {
	return &SkillHandler{
		ContentHandler: newContentHandler(crud, resourceMessages{
			added:   "Compétence ajoutée avec succès.",
			updated: "Compétence mise à jour avec succès.",
			deleted: "Compétence supprimée avec succès.",
		}, log),
	}
}

// Skills have no single-record view in the admin, so no GET by id.
func (h *SkillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills", h.List)
	rg.POST("/skills", h.Add)
	rg.PUT("/skills/:id", h.Update)
	rg.DELETE("/skills/:id", h.Delete)
}
