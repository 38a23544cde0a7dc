package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/logger"
	"github.com/avdeev-dev/gw-audio-transcriber/internal/models"
	"github.com/google/uuid"
)

// AudioTranscriber defines the interface that the transcription service must implement.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, userID uuid.UUID, audio []byte, mimeType, filename string) (*models.TranscriptionDB, error)
}

// userIDPattern is a format check only: 36 characters of hex digits and
// hyphens. Anything stricter is left to the store.
var userIDPattern = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)

// TranscribeResponse represents a successful transcription response
// swagger:model TranscribeResponse
type TranscribeResponse struct {
	// default: Audio transcribed successfully
	Message string `json:"message"`

	// Transcript text
	Transcript string `json:"transcript"`

	// Persisted transcription record
	SavedTranscription *models.TranscriptionDB `json:"savedTranscription"`
}

// TranscribeErrorResponse represents an error response for transcription
// swagger:model TranscribeErrorResponse
type TranscribeErrorResponse struct {
	// Error message
	// default: No file uploaded
	Error string `json:"error"`
}

// NewTranscribeHandler returns an HTTP handler that transcribes uploaded audio
// and persists the result for the given user.
// @Summary Transcribe an audio file
// @Description Submits the audio to the speech provider and saves the transcript.
// @Tags audio
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Param userId formData string true "User ID (36 hex/hyphen characters)"
// @Success 200 {object} handlers.TranscribeResponse "Transcript and saved record"
// @Failure 400 {object} handlers.TranscribeErrorResponse "Missing file or missing/malformed userId"
// @Failure 500 {object} handlers.TranscribeErrorResponse "Transcription or store failure"
// @Router /transcribe [post]
func NewTranscribeHandler(svc AudioTranscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("audio")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TranscribeErrorResponse{
				Error: "No file uploaded",
			})
			return
		}
		defer file.Close()

		rawUserID := r.FormValue("userId")
		if rawUserID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TranscribeErrorResponse{
				Error: "User ID is required",
			})
			return
		}
		if !userIDPattern.MatchString(rawUserID) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TranscribeErrorResponse{
				Error: "Invalid user ID format",
			})
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded file", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TranscribeErrorResponse{
				Error: err.Error(),
			})
			return
		}

		// The format check above is intentionally loose; ids it admits
		// that are not real UUIDs fail here and surface as a store-level
		// failure, same as an unknown user would.
		userID, err := uuid.Parse(rawUserID)
		if err != nil {
			logger.Log.Errorw("user id is not a valid uuid", "user_id", rawUserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TranscribeErrorResponse{
				Error: err.Error(),
			})
			return
		}

		rec, err := svc.Transcribe(r.Context(), userID, data, header.Header.Get("Content-Type"), header.Filename)
		if err != nil {
			logger.Log.Errorw("transcription failed", "user_id", rawUserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TranscribeErrorResponse{
				Error: err.Error(),
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TranscribeResponse{
			Message:            "Audio transcribed successfully",
			Transcript:         rec.Transcript,
			SavedTranscription: rec,
		})
	}
}
