package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/services"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List serves the public listing. A fetch failure degrades to an empty
// list; the section simply renders with no data.
func (h *ProjectHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.Project{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) Featured(c *gin.Context) {
	out, err := h.svc.ListFeatured(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.Project{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Create", "invalid request body", err))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var patch models.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Update", "invalid request body", err))
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
