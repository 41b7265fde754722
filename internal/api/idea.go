package api

// Request DTOs

type CreateIdeaRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateIdeaRequest carries partial updates; only title and
// description are recognized, anything else in the body is ignored.
type UpdateIdeaRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}
