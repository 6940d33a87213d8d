package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/auth/delivery"
	"estate-backend/pkg/apperror"
	"estate-backend/pkg/storage"
)

// UploadHandler hands out presigned PUT URLs so clients push listing
// photos straight to object storage.
type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

type presignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required,startswith=image/"`
}

func (h *UploadHandler) Presign(c *gin.Context) {
	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		delivery.Fail(c, apperror.BadRequest(err.Error()))
		return
	}

	upload, err := h.uploader.PresignPhotoUpload(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		delivery.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, upload)
}
