package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/logger"
	"github.com/avdeev-dev/gw-audio-transcriber/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TranscriptionLister defines the interface that the listing service must implement.
type TranscriptionLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.TranscriptionListItem, error)
}

// TranscriptionsResponse represents the listing response
// swagger:model TranscriptionsResponse
type TranscriptionsResponse struct {
	// default: true
	Success bool `json:"success"`

	// Transcription records, possibly empty
	Transcriptions []models.TranscriptionListItem `json:"transcriptions"`
}

// TranscriptionsErrorResponse represents an error response for listing
// swagger:model TranscriptionsErrorResponse
type TranscriptionsErrorResponse struct {
	// Error message
	// default: User ID is required
	Error string `json:"error"`
}

// NewTranscriptionsHandler returns an HTTP handler listing a user's transcriptions.
// @Summary List transcriptions for a user
// @Description Returns all stored transcription records for the user, newest first.
// @Tags audio
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.TranscriptionsResponse "Transcriptions returned"
// @Failure 400 {object} handlers.TranscriptionsErrorResponse "Missing user ID"
// @Failure 500 {object} handlers.TranscriptionsErrorResponse "Store failure"
// @Router /transcriptions/{userId} [get]
func NewTranscriptionsHandler(svc TranscriptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawUserID := chi.URLParam(r, "userId")
		if rawUserID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TranscriptionsErrorResponse{
				Error: "User ID is required",
			})
			return
		}

		userID, err := uuid.Parse(rawUserID)
		if err != nil {
			logger.Log.Errorw("user id is not a valid uuid", "user_id", rawUserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TranscriptionsErrorResponse{
				Error: err.Error(),
			})
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list transcriptions", "user_id", rawUserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TranscriptionsErrorResponse{
				Error: err.Error(),
			})
			return
		}

		// A user with no records still gets an empty array, never null.
		if items == nil {
			items = []models.TranscriptionListItem{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TranscriptionsResponse{
			Success:        true,
			Transcriptions: items,
		})
	}
}
