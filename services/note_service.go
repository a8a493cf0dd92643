package services

import (
	"context"
	"fmt"
	"notes-api/models"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns all notes in storage order
func (ns *NoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := ns.repo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create persists a note and returns the id storage assigned to it
func (ns *NoteService) Create(ctx context.Context, content string) (int64, error) {
	id, err := ns.repo.CreateNote(ctx, content)
	if err != nil {
		return 0, fmt.Errorf("create note: %w", err)
	}
	return id, nil
}

// Get retrieves a note by id, or ErrNoteNotFound
func (ns *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	note, err := ns.repo.GetNote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}
