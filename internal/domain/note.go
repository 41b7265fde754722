package domain

// Note is a free-text annotation attached to exactly one idea.
type Note struct {
	Id        string `json:"id"`
	IdeaId    string `json:"idea_id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}
