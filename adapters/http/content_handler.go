package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-admin/internal/application/usecase/content"
	"portfolio-admin/pkg/apperror"
	"portfolio-admin/pkg/logger"
)

// resourceMessages carries the per-kind French success strings.
type resourceMessages struct {
	added   string
	updated string
	deleted string
}

// ContentHandler serves one owner-scoped record kind through the
// generic content gateway. The three concrete handlers differ only in
// their messages and registered routes.
type ContentHandler[T any] struct {
	crud     *content.CRUD[T]
	messages resourceMessages
	logger   logger.Logger
}

func newContentHandler[T any](crud *content.CRUD[T], messages resourceMessages, log logger.Logger) *ContentHandler[T] {
	return &ContentHandler[T]{crud: crud, messages: messages, logger: log}
}

func (h *ContentHandler[T]) Add(c *gin.Context) {
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

	rec, err := h.crud.Add(c.Request.Context(), ownerID, form)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusCreated, h.messages.added, rec)
}

func (h *ContentHandler[T]) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}
	form, err := formMap(c)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid form data", err))
		return
	}

	rec, err := h.crud.Update(c.Request.Context(), ownerID, id, form)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, h.messages.updated, rec)
}

func (h *ContentHandler[T]) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}

	if err := h.crud.Delete(c.Request.Context(), ownerID, id); err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, h.messages.deleted, nil)
}

func (h *ContentHandler[T]) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}

	rec, err := h.crud.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ContentHandler[T]) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("ownerID not found in context", nil))
		return
	}

	recs, err := h.crud.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
