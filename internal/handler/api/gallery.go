package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"salon-booking/internal/domain/gallery"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	cmds commands.GalleryCommands
	q    queries.GalleryQueries
}

func NewGalleryHandler(cmds commands.GalleryCommands, q queries.GalleryQueries) *GalleryHandler {
	return &GalleryHandler{cmds: cmds, q: q}
}

// @Summary List gallery
// @Tags gallery
// @Produce json
// @Success 200 {array} gallery.Item
// @Router /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load gallery")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Save gallery
// @Description An array replaces the whole gallery; a single object is upserted by id
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body reqdto.GalleryItemRequest true "Item or array of items"
// @Success 200 {object} gallery.Item
// @Success 201 {object} gallery.Item
// @Failure 400 {object} httperr.Response
// @Router /gallery [post]
func (h *GalleryHandler) Save(c *gin.Context) {
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var req []reqdto.GalleryItemRequest
		if err := json.Unmarshal(trimmed, &req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		items, err := h.cmds.ReplaceItems(c.Request.Context(), req)
		if err != nil {
			httperr.AbortWithUsecaseError(c, err, "Failed to save gallery")
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	var req reqdto.GalleryItemRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	item, replaced, err := h.cmds.UpsertItem(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to save gallery item")
		return
	}
	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
	}
	c.JSON(status, item)
}

// @Summary Upload gallery image
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image (jpeg, png, webp, gif)"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Success 201 {object} gallery.Item
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /gallery/upload [post]
func (h *GalleryHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, gallery.ErrFileTooLarge.Error(), nil)
		return
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "no file provided", nil)
		return
	}

	var req reqdto.UploadGalleryItemRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "unreadable file", nil)
		return
	}
	defer file.Close()

	item, err := h.cmds.Upload(c.Request.Context(), commands.UploadFile{Size: fileHeader.Size, Content: file}, req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Upload failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}
