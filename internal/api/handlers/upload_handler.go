package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gepres/portafolio-2025-sub000/internal/services"
	"github.com/gepres/portafolio-2025-sub000/internal/utils"
)

// 10 MB per upload.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	svc services.UploadService
}

func NewUploadHandler(svc services.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// ProjectImage accepts a multipart "file" field plus an optional "index"
// form value used to build the object name.
func (h *UploadHandler) ProjectImage(c *gin.Context) {
	const op = "UploadHandler.ProjectImage"

	header, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file is required", err))
		return
	}
	if header.Size > maxUploadBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file exceeds the 10MB limit", nil))
		return
	}

	index, _ := strconv.Atoi(c.PostForm("index"))

	f, err := header.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read upload", err))
		return
	}
	defer f.Close()

	url, err := h.svc.ProjectImage(c.Request.Context(), c.Param("id"), index, header.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ExperienceLogo accepts a multipart "file" field plus a "companyName"
// form value used to slug the object name.
func (h *UploadHandler) ExperienceLogo(c *gin.Context) {
	const op = "UploadHandler.ExperienceLogo"

	header, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file is required", err))
		return
	}
	if header.Size > maxUploadBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file exceeds the 10MB limit", nil))
		return
	}

	f, err := header.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read upload", err))
		return
	}
	defer f.Close()

	url, err := h.svc.ExperienceLogo(c.Request.Context(), c.Param("id"), c.PostForm("companyName"), header.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
