package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/storage"
)

func multipartRequest(t *testing.T, target, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocal(root, "/uploads")
	require.NoError(t, err)

	h := &UploadHandler{Storage: store, Log: zap.NewNop()}
	r := gin.New()
	r.POST("/single", h.UploadImage)
	r.POST("/singleRecipt", h.UploadReceipt)
	return r, root
}

func TestUploadImage(t *testing.T) {
	r, root := newUploadRouter(t)
	content := []byte("\x89PNG fake image")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/single", "image", "ham.png", content))

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[gin.H](t, w)
	assert.Equal(t, "Single file upload success", got["message"])
	assert.Equal(t, "/uploads/uploadedImages/ham.png", got["url"])

	stored, err := os.ReadFile(filepath.Join(root, "uploadedImages", "ham.png"))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUploadReceipt_StripsDirectories(t *testing.T) {
	r, root := newUploadRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/singleRecipt", "imageRecipt", "../../escape.jpg", []byte("receipt")))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/uploads/uploadedRecipt/escape.jpg", decode[gin.H](t, w)["url"])
	assert.FileExists(t, filepath.Join(root, "uploadedRecipt", "escape.jpg"))
}

func TestUploadImage_WrongField(t *testing.T) {
	r, _ := newUploadRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/single", "file", "ham.png", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
