package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/imaging"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

type ImageHandler struct {
	images *ucSalon.Images
}

func NewImageHandler(images *ucSalon.Images) *ImageHandler {
	return &ImageHandler{images: images}
}

type UpdateImageRequest struct {
	ImageAlt     *string `json:"image_alt,omitempty"`
	IsPrimary    *bool   `json:"is_primary,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// Upload takes a multipart form with the picture in "file" and an optional
// "image_alt" text.
func (h *ImageHandler) Upload(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Missing required field: file")
		return
	}
	if fh.Size > imaging.MaxBytes {
		httperr.Respond(c, ucSalon.ErrImageTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, imaging.MaxBytes+1))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	img, err := h.images.Upload(c.Request.Context(), currentUser(c), salonID, raw, c.PostForm("image_alt"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, img)
}

func (h *ImageHandler) Update(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := idParam(c, "image_id")
	if !ok {
		return
	}

	var req UpdateImageRequest
	if !bindJSON(c, &req) {
		return
	}

	img, err := h.images.Update(c.Request.Context(), currentUser(c), salonID, imageID, domain.ImageUpdate{
		ImageAlt:     req.ImageAlt,
		IsPrimary:    req.IsPrimary,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, img)
}

func (h *ImageHandler) Delete(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := idParam(c, "image_id")
	if !ok {
		return
	}

	if err := h.images.Delete(c.Request.Context(), currentUser(c), salonID, imageID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Image deleted successfully")
}
