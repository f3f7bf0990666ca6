package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/services"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type CVHandler struct {
	svc  services.CVService
	seed services.SeedService
}

func NewCVHandler(svc services.CVService, seed services.SeedService) *CVHandler {
	return &CVHandler{svc: svc, seed: seed}
}

// Data returns the merged CV document with both languages embedded; the
// frontend resolves the one it needs.
func (h *CVHandler) Data(c *gin.Context) {
	cv, err := h.svc.Build(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cv)
}

// Export streams the rendered PDF. ?lang=en switches the layout language;
// anything else falls back to Spanish.
func (h *CVHandler) Export(c *gin.Context) {
	lang := models.ParseLang(c.Query("lang"))

	pdf, err := h.svc.ExportPDF(c.Request.Context(), lang)
	if err != nil {
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("cv-%s-%s.pdf", lang, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Publish renders the CV, uploads it to the public bucket and stores the
// URL on the profile.
func (h *CVHandler) Publish(c *gin.Context) {
	lang := models.ParseLang(c.Query("lang"))

	url, err := h.svc.Publish(c.Request.Context(), lang)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *CVHandler) Seed(c *gin.Context) {
	seeded, err := h.seed.SeedCV(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seeded": seeded})
}

func (h *CVHandler) ListEducation(c *gin.Context) {
	out, err := h.svc.ListEducation(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.CVEducation{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CVHandler) CreateEducation(c *gin.Context) {
	var e models.CVEducation
	if err := c.ShouldBindJSON(&e); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CVHandler.CreateEducation", "invalid request body", err))
		return
	}
	created, err := h.svc.CreateEducation(c.Request.Context(), &e)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CVHandler) UpdateEducation(c *gin.Context) {
	var patch models.CVEducationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CVHandler.UpdateEducation", "invalid request body", err))
		return
	}
	if err := h.svc.UpdateEducation(c.Request.Context(), c.Param("id"), patch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *CVHandler) DeleteEducation(c *gin.Context) {
	if err := h.svc.DeleteEducation(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CVHandler) ListLanguages(c *gin.Context) {
	out, err := h.svc.ListLanguages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, []models.CVLanguage{})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CVHandler) CreateLanguage(c *gin.Context) {
	var l models.CVLanguage
	if err := c.ShouldBindJSON(&l); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CVHandler.CreateLanguage", "invalid request body", err))
		return
	}
	created, err := h.svc.CreateLanguage(c.Request.Context(), &l)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CVHandler) UpdateLanguage(c *gin.Context) {
	var patch models.CVLanguagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CVHandler.UpdateLanguage", "invalid request body", err))
		return
	}
	if err := h.svc.UpdateLanguage(c.Request.Context(), c.Param("id"), patch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *CVHandler) DeleteLanguage(c *gin.Context) {
	if err := h.svc.DeleteLanguage(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
