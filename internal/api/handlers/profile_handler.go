package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
	"github.com/gepres/portafolio-2025-sub000/internal/services"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.svc.GetProfile(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.UpdateProfile", "invalid request body", err))
		return
	}
	p, err := h.svc.UpsertProfile(c.Request.Context(), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) GetContact(c *gin.Context) {
	info, err := h.svc.GetContact(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *ProfileHandler) UpdateContact(c *gin.Context) {
	var patch models.ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.UpdateContact", "invalid request body", err))
		return
	}
	info, err := h.svc.UpsertContact(c.Request.Context(), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
