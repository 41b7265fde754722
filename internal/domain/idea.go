package domain

// Idea is the primary tracked entity: a proposal with a vote counter.
// Timestamps are milliseconds since epoch.
type Idea struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	Votes       int    `json:"votes"`
}

// IdeaDetails is an idea merged with its child collections,
// each ordered newest-first. Slices are never nil so the API
// always serializes them as arrays.
type IdeaDetails struct {
	Idea
	Notes       []Note       `json:"notes"`
	Attachments []Attachment `json:"attachments"`
}

// IdeaUpdate carries the recognized updatable fields.
// A nil field is left untouched.
type IdeaUpdate struct {
	Title       *string
	Description *string
}
