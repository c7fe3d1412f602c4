package api

import (
	"errors"
	"net/http"

	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// MediaHandler hands out presigned URLs for direct-to-S3 uploads and
// downloads. File bytes never pass through the API server.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

type RequestUploadRequest struct {
	Kind        service.MediaKind `json:"kind" binding:"required,oneof=exercise-image progress-photo testimonial-image client-image"`
	FileName    string            `json:"fileName" binding:"required"`
	ContentType string            `json:"contentType" binding:"required"`
}

// RequestUpload returns a presigned PUT URL and the object key to persist
// once the upload succeeds.
func (h *MediaHandler) RequestUpload(c *gin.Context) {
	var req RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	target, err := h.mediaService.RequestUpload(c.Request.Context(), coachID, req.Kind, req.FileName, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMediaKind) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create upload URL.")
		}
		return
	}

	c.JSON(http.StatusOK, target)
}

// GetDownloadURL returns a presigned GET URL for an object the coach owns.
func (h *MediaHandler) GetDownloadURL(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	objectKey := c.Query("key")
	url, err := h.mediaService.GetDownloadURL(c.Request.Context(), coachID, objectKey)
	if err != nil {
		if errors.Is(err, service.ErrInvalidObjectKey) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create download URL.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}

// DeleteObject removes an object the coach owns.
func (h *MediaHandler) DeleteObject(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	objectKey := c.Query("key")
	if err := h.mediaService.DeleteObject(c.Request.Context(), coachID, objectKey); err != nil {
		if errors.Is(err, service.ErrInvalidObjectKey) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete object.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
