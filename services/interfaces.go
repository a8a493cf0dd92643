package services

import (
	"context"
	"notes-api/models"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, content string) (int64, error)
	GetNote(ctx context.Context, id int64) (*models.Note, error)
}
