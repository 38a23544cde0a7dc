package services

import (
	"context"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/logger"
	"github.com/avdeev-dev/gw-audio-transcriber/internal/models"
	"github.com/google/uuid"
)

// SpeechTranscriber defines the speech-to-text provider operation.
type SpeechTranscriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// TranscriptionReader defines read operations for transcription records.
type TranscriptionReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TranscriptionListItem, error)
}

// TranscriptionWriter defines write operations for transcription records.
type TranscriptionWriter interface {
	Save(ctx context.Context, userID uuid.UUID, transcript, fileURL string) (*models.TranscriptionDB, error)
}

// TranscriptionService submits audio to the speech provider and persists results.
type TranscriptionService struct {
	speech SpeechTranscriber
	reader TranscriptionReader
	writer TranscriptionWriter
}

// NewTranscriptionService creates a new TranscriptionService instance.
func NewTranscriptionService(speech SpeechTranscriber, reader TranscriptionReader, writer TranscriptionWriter) *TranscriptionService {
	return &TranscriptionService{
		speech: speech,
		reader: reader,
		writer: writer,
	}
}

// Transcribe sends the audio to the speech provider and saves the resulting
// transcript for the user. The record's file_url field stores the original
// filename, matching what existing clients expect.
func (svc *TranscriptionService) Transcribe(ctx context.Context, userID uuid.UUID, audio []byte, mimeType, filename string) (*models.TranscriptionDB, error) {
	transcript, err := svc.speech.Transcribe(ctx, audio, mimeType)
	if err != nil {
		logger.Log.Errorw("transcription failed", "user_id", userID, "err", err)
		return nil, err
	}

	rec, err := svc.writer.Save(ctx, userID, transcript, filename)
	if err != nil {
		logger.Log.Errorw("failed to save transcription", "user_id", userID, "err", err)
		return nil, err
	}

	return rec, nil
}

// List returns all transcription records for the user.
func (svc *TranscriptionService) List(ctx context.Context, userID uuid.UUID) ([]models.TranscriptionListItem, error) {
	items, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list transcriptions", "user_id", userID, "err", err)
		return nil, err
	}
	return items, nil
}
