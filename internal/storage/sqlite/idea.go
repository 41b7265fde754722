package sqlite

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/idears-dev/idears/internal/domain"
	internal_errors "github.com/idears-dev/idears/internal/errors"
)

// Saves idea to db. The vote counter always starts at zero regardless
// of what the caller put in the struct.
func (s *Storage) CreateIdea(idea *domain.Idea) error {
	_, err := s.db.Exec(`
	INSERT INTO ideas(id, title, description, created_at, votes)
	VALUES(?, ?, ?, ?, 0)`,
		idea.Id, idea.Title, idea.Description, idea.CreatedAt)
	if err != nil {
		return err
	}
	idea.Votes = 0
	return nil
}

func (s *Storage) GetAllIdeas() ([]domain.Idea, error) {
	rows, err := s.db.Query(`
	SELECT id, title, description, created_at, votes
	FROM ideas
	ORDER BY votes DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ideas := []domain.Idea{}
	for rows.Next() {
		var idea domain.Idea
		if err := rows.Scan(&idea.Id, &idea.Title, &idea.Description, &idea.CreatedAt, &idea.Votes); err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

// GetIdea returns the idea merged with its full note and attachment
// lists, both ordered newest-first.
func (s *Storage) GetIdea(id string) (*domain.IdeaDetails, error) {
	var idea domain.IdeaDetails
	err := s.db.QueryRow(`
	SELECT id, title, description, created_at, votes
	FROM ideas
	WHERE id = ?`, id).Scan(&idea.Id, &idea.Title, &idea.Description, &idea.CreatedAt, &idea.Votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Idea not found", StatusCode: 404}
		}
		return nil, err
	}

	notes, err := s.GetNotesByIdea(id)
	if err != nil {
		return nil, err
	}
	attachments, err := s.GetAttachmentsByIdea(id)
	if err != nil {
		return nil, err
	}

	idea.Notes = notes
	idea.Attachments = attachments
	return &idea, nil
}

// UpdateIdea applies the recognized fields only. Supplying none is
// reported the same way as a missing idea, matching the API contract.
func (s *Storage) UpdateIdea(id string, upd domain.IdeaUpdate) (*domain.IdeaDetails, error) {
	fields := []string{}
	args := []any{}
	if upd.Title != nil {
		fields = append(fields, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		fields = append(fields, "description = ?")
		args = append(args, *upd.Description)
	}
	if len(fields) == 0 {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Idea not found", StatusCode: 404}
	}
	args = append(args, id)

	result, err := s.db.Exec("UPDATE ideas SET "+strings.Join(fields, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, err
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Idea not found", StatusCode: 404}
	}

	return s.GetIdea(id)
}

// UpvoteIdea increments the vote counter inside the store so that
// concurrent upvotes never lose updates.
func (s *Storage) UpvoteIdea(id string) (*domain.IdeaDetails, error) {
	result, err := s.db.Exec(`UPDATE ideas SET votes = votes + 1 WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Idea not found", StatusCode: 404}
	}

	return s.GetIdea(id)
}

// DeleteIdea removes the idea row; notes and attachments go with it
// via the foreign key cascade.
func (s *Storage) DeleteIdea(id string) error {
	result, err := s.db.Exec(`DELETE FROM ideas WHERE id = ?`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Idea not found", StatusCode: 404}
	}
	return nil
}
