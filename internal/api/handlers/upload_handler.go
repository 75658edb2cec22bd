package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/storage"
)

type UploadHandler struct {
	Storage storage.Storage
	Log     *zap.Logger
}

// UploadImage stores a product image sent as form field "image".
func (h *UploadHandler) UploadImage(c *gin.Context) {
	h.upload(c, "image", storage.ImagesPrefix)
}

// UploadReceipt stores a payment receipt sent as form field "imageRecipt".
func (h *UploadHandler) UploadReceipt(c *gin.Context) {
	h.upload(c, "imageRecipt", storage.ReceiptsPrefix)
}

func (h *UploadHandler) upload(c *gin.Context, field, prefix string) {
	header, err := c.FormFile(field)
	if err != nil {
		badRequest(c, "File is required in field "+field)
		return
	}

	name := filepath.Base(filepath.Clean("/" + header.Filename))
	if name == "/" || name == "." {
		badRequest(c, "Invalid file name")
		return
	}

	file, err := header.Open()
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Storage.Put(c.Request.Context(), prefix+name, file, contentType)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}

	loggerFor(c, h.Log).Info("file uploaded", zap.String("key", prefix+name), zap.Int64("size", header.Size))
	c.JSON(http.StatusOK, gin.H{"message": "Single file upload success", "url": url})
}
