package models

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptionDB represents a stored transcription record.
// FileURL holds the original upload filename, kept as-is for
// compatibility with existing rows.
type TranscriptionDB struct {
	ID         int64     `json:"id" db:"id"`                 // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Transcript string    `json:"transcript" db:"transcript"` // Extracted transcript text
	FileURL    string    `json:"file_url" db:"file_url"`     // Original filename
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// TranscriptionListItem is the shape returned by the listing endpoint.
type TranscriptionListItem struct {
	Transcript string `json:"transcript" db:"transcript"`
	FileURL    string `json:"file_url" db:"file_url"`
}
