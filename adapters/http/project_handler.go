package http

import (
	"github.com/gin-gonic/gin"

	"portfolio-admin/internal/application/usecase/content"
	"portfolio-admin/internal/domain/project"
	"portfolio-admin/pkg/logger"
)

type ProjectHandler struct {
	*ContentHandler[project.Project]
}

func NewProjectHandler(crud *content.CRUD[project.Project], log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		ContentHandler: newContentHandler(crud, resourceMessages{
			added:   "Projet ajouté avec succès.",
			updated: "Projet mis à jour avec succès.",
			deleted: "Projet supprimé avec succès.",
		}, log),
	}
}

func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.List)
	rg.POST("/projects", h.Add)
	rg.GET("/projects/:id", h.Get)
	rg.PUT("/projects/:id", h.Update)
	rg.DELETE("/projects/:id", h.Delete)
}
