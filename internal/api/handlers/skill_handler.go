package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/services"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

func (h *SkillHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.Skill{})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Grouped serves the skills section layout: one bucket per category, in
// display order, empty categories omitted.
func (h *SkillHandler) Grouped(c *gin.Context) {
	out, err := h.svc.Grouped(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.SkillGroup{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var s models.Skill
	if err := c.ShouldBindJSON(&s); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Create", "invalid request body", err))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &s)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SkillHandler) Update(c *gin.Context) {
	var patch models.SkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Update", "invalid request body", err))
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
