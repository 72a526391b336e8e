package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Billmike/MR-API/internal/service"
)

// maxImageSize caps uploads at 5 MiB.
const maxImageSize = 5 << 20

// ImageHandler serves image uploads backing the image_url fields.
type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload stores a multipart "image" file and returns its public URL. The
// client sets the URL on a profile or recipe through the respective edit
// endpoint.
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please attach an image file",
		})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Image must be smaller than 5MB",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.imageService.Upload(c.Request.Context(), data, fileHeader.Filename, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Image uploaded successfully",
		"image_url": url,
	})
}
