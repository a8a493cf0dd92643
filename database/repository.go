package database

import (
	"context"
	"database/sql"
	"errors"
	"notes-api/models"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ListNotes returns every note in whatever order storage yields them.
func (r *Repository) ListNotes(ctx context.Context) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, content FROM notes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Content); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// CreateNote inserts a note and returns the id assigned by storage.
func (r *Repository) CreateNote(ctx context.Context, content string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO notes (content) VALUES (?) RETURNING id`,
		content,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetNote returns nil, nil when no row has the given id.
func (r *Repository) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	var note models.Note
	err := r.db.QueryRowContext(ctx,
		`SELECT id, content FROM notes WHERE id = ?`,
		id,
	).Scan(&note.ID, &note.Content)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}
