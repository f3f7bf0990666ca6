package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/services"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type ExperienceHandler struct {
	svc services.ExperienceService
}

func NewExperienceHandler(svc services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.Experience{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var e models.Experience
	if err := c.ShouldBindJSON(&e); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Create", "invalid request body", err))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &e)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var patch models.ExperiencePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Update", "invalid request body", err))
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
