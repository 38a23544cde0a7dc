package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/logger"
)

// FileStorer defines the interface that the blob storage adapter must implement.
type FileStorer interface {
	Store(ctx context.Context, data []byte, originalName, contentType string) (string, error)
}

// UploadResponse represents a successful upload response
// swagger:model UploadResponse
type UploadResponse struct {
	// default: File uploaded successfully
	Message string `json:"message"`

	// Public URL of the stored audio
	FileURL string `json:"fileURL"`
}

// UploadErrorResponse represents an error response for upload
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	// Error message
	// default: No file uploaded
	Error string `json:"error"`
}

// NewUploadHandler returns an HTTP handler that stores an uploaded audio blob.
// @Summary Upload an audio file
// @Description Stores the raw audio bytes in blob storage under a timestamped key.
// @Tags audio
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Success 200 {object} handlers.UploadResponse "File URL returned"
// @Failure 400 {object} handlers.UploadErrorResponse "No file uploaded"
// @Failure 500 {object} handlers.UploadErrorResponse "Storage failure"
// @Router /upload [post]
func NewUploadHandler(store FileStorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("audio")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: "No file uploaded",
			})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded file", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: err.Error(),
			})
			return
		}

		fileURL, err := store.Store(r.Context(), data, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			logger.Log.Errorw("upload failed", "filename", header.Filename, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: err.Error(),
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadResponse{
			Message: "File uploaded successfully",
			FileURL: fileURL,
		})
	}
}
