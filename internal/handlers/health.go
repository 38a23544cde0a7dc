package handlers

import "net/http"

// NewHealthHandler returns the liveness handler.
// @Summary Liveness probe
// @Produce plain
// @Success 200 {string} string "Audio transcription API is running"
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Audio transcription API is running"))
	}
}
