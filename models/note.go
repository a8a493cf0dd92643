package models

// Note is the single persisted entity. ID is assigned by storage.
type Note struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// CreateNoteRequest uses a pointer so a missing field can be told apart
// from an empty string, which is accepted.
type CreateNoteRequest struct {
	Content *string `json:"content" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateNoteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}
