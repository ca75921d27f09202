package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

type FileService interface {
	Upload(ctx context.Context, in service.UploadInput) (*domain.File, error)
	Get(ctx context.Context, tenantID, fileID string) (*domain.File, error)
	GetURL(ctx context.Context, tenantID, fileID string) (*string, error)
	List(ctx context.Context, filter domain.FileFilter) ([]domain.File, error)
	Delete(ctx context.Context, tenantID, fileID string) error
}

type FileHandler struct {
	*BaseHandler
	service        FileService
	maxUploadBytes int64
}

func NewFileHandler(service FileService, maxUploadBytes int64) *FileHandler {
	return &FileHandler{service: service, maxUploadBytes: maxUploadBytes}
}

func fileErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCrossTenantAccess):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// UploadFile godoc
// @Summary Upload a file
// @Description Stores the file in object storage under the caller's tenant
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File content"
// @Param booking_id formData string false "Booking the file belongs to"
// @Param category formData string false "vehicle_photo, document or other"
// @Success 201 {object} dto.FileResponse
// @Failure 400 {object} dto.Error
// @Failure 413 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/files [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "file is required"})
		return
	}
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, dto.Error{Error: "file exceeds " + utils.FormatFileSize(h.maxUploadBytes)})
		return
	}

	body, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	defer body.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := h.service.Upload(h.RequestCtx(c), service.UploadInput{
		TenantID:    tenantID,
		UploaderID:  userID,
		BookingID:   c.PostForm("booking_id"),
		FileName:    header.Filename,
		ContentType: contentType,
		Category:    c.PostForm("category"),
		Size:        header.Size,
		Body:        body,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromFile(file))
}

// ListFiles godoc
// @Summary List files
// @Tags files
// @Produce json
// @Param booking_id query string false "Only files attached to this booking"
// @Param category query string false "Filter by category"
// @Param limit query int false "Max results" default(50)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.FileResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	files, err := h.service.List(h.RequestCtx(c), domain.FileFilter{
		TenantID:  tenantID,
		BookingID: c.Query("booking_id"),
		Category:  c.Query("category"),
		Limit:     queryInt(c, "limit", 50),
		Offset:    queryInt(c, "offset", 0),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromFiles(files))
}

// GetFile godoc
// @Summary Get file metadata
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} dto.FileResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/files/{id} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	file, err := h.service.Get(h.RequestCtx(c), tenantID, c.Param("id"))
	if err != nil {
		c.JSON(fileErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromFile(file))
}

// GetFileURL godoc
// @Summary Presigned download URL
// @Description Returns a short-lived download URL. An unparsable id yields a null url
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} dto.FileURLResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/files/{id}/url [get]
func (h *FileHandler) GetFileURL(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	url, err := h.service.GetURL(h.RequestCtx(c), tenantID, c.Param("id"))
	if err != nil {
		c.JSON(fileErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FileURLResponse{URL: url})
}

// DeleteFile godoc
// @Summary Delete a file
// @Tags files
// @Param id path string true "File ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/files/{id} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		c.JSON(fileErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
