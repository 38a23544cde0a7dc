package repositories

import (
	"context"
	"strings"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/logger"
	"github.com/avdeev-dev/gw-audio-transcriber/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TranscriptionReadRepository struct {
	db *sqlx.DB
}

func NewTranscriptionReadRepository(db *sqlx.DB) *TranscriptionReadRepository {
	return &TranscriptionReadRepository{db: db}
}

// ListByUser returns all transcription records for the given user,
// newest first. A user with no records yields an empty slice, not nil.
func (r *TranscriptionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TranscriptionListItem, error) {
	const query = `
		SELECT transcript, file_url
		FROM transcriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	items := make([]models.TranscriptionListItem, 0)
	err := r.db.SelectContext(ctx, &items, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

type TranscriptionWriteRepository struct {
	db *sqlx.DB
}

func NewTranscriptionWriteRepository(db *sqlx.DB) *TranscriptionWriteRepository {
	return &TranscriptionWriteRepository{db: db}
}

// Save inserts a transcription record and returns the created row.
// fileURL carries the original upload filename.
func (r *TranscriptionWriteRepository) Save(ctx context.Context, userID uuid.UUID, transcript, fileURL string) (*models.TranscriptionDB, error) {
	const query = `
		INSERT INTO transcriptions (user_id, transcript, file_url, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, user_id, transcript, file_url, created_at
	`
	args := []any{userID, transcript, fileURL}

	var rec models.TranscriptionDB
	err := r.db.GetContext(ctx, &rec, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &rec, nil
}
