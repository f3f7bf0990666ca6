package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/services"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

// SectionHandler exposes the landing-page blocks (services, interests,
// competencies). Public listings hide inactive records; admin listings pass
// ?all=true to see everything.
type SectionHandler struct {
	svc services.SectionService
}

func NewSectionHandler(svc services.SectionService) *SectionHandler {
	return &SectionHandler{svc: svc}
}

func listAll(c *gin.Context) bool {
	return c.Query("all") == "true"
}

func (h *SectionHandler) ListServices(c *gin.Context) {
	out, err := h.svc.ListServices(c.Request.Context(), listAll(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.Service{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SectionHandler) CreateService(c *gin.Context) {
	var v models.Service
	if err := c.ShouldBindJSON(&v); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SectionHandler.CreateService", "invalid request body", err))
		return
	}
	created, err := h.svc.CreateService(c.Request.Context(), &v)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SectionHandler) UpdateService(c *gin.Context) {
	var patch models.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SectionHandler.UpdateService", "invalid request body", err))
		return
	}
	if err := h.svc.UpdateService(c.Request.Context(), c.Param("id"), patch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *SectionHandler) DeleteService(c *gin.Context) {
	if err := h.svc.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SectionHandler) ListInterests(c *gin.Context) {
	out, err := h.svc.ListInterests(c.Request.Context(), listAll(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.Interest{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SectionHandler) CreateInterest(c *gin.Context) {
	var v models.Interest
	if err := c.ShouldBindJSON(&v); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SectionHandler.CreateInterest", "invalid request body", err))
		return
	}
	created, err := h.svc.CreateInterest(c.Request.Context(), &v)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SectionHandler) UpdateInterest(c *gin.Context) {
	var patch models.InterestPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SectionHandler.UpdateInterest", "invalid request body", err))
		return
	}
	if err := h.svc.UpdateInterest(c.Request.Context(), c.Param("id"), patch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *SectionHandler) DeleteInterest(c *gin.Context) {
	if err := h.svc.DeleteInterest(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SectionHandler) ListCompetencies(c *gin.Context) {
	out, err := h.svc.ListCompetencies(c.Request.Context(), listAll(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.Competency{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SectionHandler) CreateCompetency(c *gin.Context) {
	var v models.Competency
	if err := c.ShouldBindJSON(&v); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SectionHandler.CreateCompetency", "invalid request body", err))
		return
	}
	created, err := h.svc.CreateCompetency(c.Request.Context(), &v)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SectionHandler) UpdateCompetency(c *gin.Context) {
	var patch models.CompetencyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SectionHandler.UpdateCompetency", "invalid request body", err))
		return
	}
	if err := h.svc.UpdateCompetency(c.Request.Context(), c.Param("id"), patch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *SectionHandler) DeleteCompetency(c *gin.Context) {
	if err := h.svc.DeleteCompetency(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
