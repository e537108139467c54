package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppgarage/backoffice/internal/application/services"
	"github.com/ppgarage/backoffice/internal/domain/models"
	"github.com/ppgarage/backoffice/internal/infrastructure/assets"
	"github.com/ppgarage/backoffice/pkg/errors"
)

type BrandingHandler struct {
	svcMgr *services.ServiceManager
}

func NewBrandingHandler(svcMgr *services.ServiceManager) *BrandingHandler {
	return &BrandingHandler{svcMgr: svcMgr}
}

// Get handles GET /api/configuracion-pdf. Returns the defaults when the
// singleton has never been written.
func (h *BrandingHandler) Get(c *gin.Context) {
	branding, err := h.svcMgr.Branding.Get(c.Request.Context())
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, branding)
}

// Upsert handles PUT /api/configuracion-pdf: a full-row PUT that creates the
// singleton when missing.
func (h *BrandingHandler) Upsert(c *gin.Context) {
	var branding models.QuoteBranding
	if !BindJSON(c, &branding) {
		return
	}
	if err := h.svcMgr.Branding.Upsert(c.Request.Context(), &branding); err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "configuracion": branding})
}

// UploadLogo handles POST /api/upload-logo (multipart field "logo").
func (h *BrandingHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		RespondAppError(c, errors.NewValidationError("logo", "no file uploaded"))
		return
	}
	if file.Size > assets.MaxUploadBytes {
		RespondAppError(c, errors.NewValidationError("logo", "file exceeds the 5 MB limit"))
		return
	}

	src, err := file.Open()
	if err != nil {
		RespondAppError(c, errors.NewInternalError("failed to read upload", err))
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		RespondAppError(c, errors.NewInternalError("failed to read upload", err))
		return
	}

	url, err := h.svcMgr.Branding.UploadLogo(c.Request.Context(), content, file.Filename)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logo_url": url})
}

// DeleteLogo handles DELETE /api/delete-logo.
func (h *BrandingHandler) DeleteLogo(c *gin.Context) {
	if err := h.svcMgr.Branding.DeleteLogo(c.Request.Context()); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c)
}
