// Package web serves the upload form and handles multipart audio uploads.
package web

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	apperrors "github.com/viprogramm/audio11eleven/errors"
	"github.com/viprogramm/audio11eleven/logger"
	"github.com/viprogramm/audio11eleven/media"
	"github.com/viprogramm/audio11eleven/server"
	"github.com/viprogramm/audio11eleven/transcription"
)

//go:embed index.html
var indexHTML []byte

// uploadFieldName is the multipart field carrying the audio file.
const uploadFieldName = "audioFile"

// UploadResponse is the success body of POST /upload.
type UploadResponse struct {
	Success       bool                  `json:"success"`
	Filename      string                `json:"filename"`
	Transcription *transcription.Result `json:"transcription"`
}

// Handlers serves the upload page and the upload endpoint.
type Handlers struct {
	provider transcription.Provider
	store    *media.Store
	log      *logger.Logger
}

// NewHandlers creates the web handlers.
func NewHandlers(provider transcription.Provider, store *media.Store, log *logger.Logger) *Handlers {
	return &Handlers{
		provider: provider,
		store:    store,
		log:      log.WithComponent("upload"),
	}
}

// Register mounts the routes on the Gin engine.
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/", h.Index)
	r.POST("/upload", h.Upload)
}

// Index serves the static upload page.
func (h *Handlers) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// Upload accepts a multipart audio file, relays it to the transcription
// provider, and returns the transcription. The temp file created for the
// request is deleted exactly once on every path.
func (h *Handlers) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		server.RespondWithError(c, apperrors.NoFileUploaded())
		return
	}

	if h.provider == nil || !h.provider.IsAvailable(c.Request.Context()) {
		server.RespondWithError(c, apperrors.ProviderUnavailable())
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.log.WithError(err).Error("failed to open uploaded file")
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	defer func() { _ = src.Close() }()

	path, err := h.store.Save(fileHeader.Filename, src)
	if err != nil {
		h.log.WithError(err).Error("failed to persist uploaded file")
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	defer h.store.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		h.log.WithError(err).Error("failed to read uploaded file")
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	mimeType := media.TypeByExtension(fileHeader.Filename)

	h.log.Info("processing audio file", map[string]interface{}{
		logger.FieldFilename: fileHeader.Filename,
		logger.FieldMIMEType: mimeType,
		logger.FieldSize:     len(data),
	})

	result, err := h.provider.Transcribe(c.Request.Context(), transcription.NewRequest(data, mimeType, fileHeader.Filename))
	if err != nil {
		// The provider error is logged, never returned to the caller.
		h.log.WithError(err).Error("transcription failed", map[string]interface{}{
			logger.FieldFilename: fileHeader.Filename,
		})
		server.RespondWithError(c, apperrors.TranscriptionError(err))
		return
	}

	server.RespondOK(c, UploadResponse{
		Success:       true,
		Filename:      fileHeader.Filename,
		Transcription: result,
	})
}
