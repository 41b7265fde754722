package sqlite

import (
	"github.com/idears-dev/idears/internal/domain"
	internal_errors "github.com/idears-dev/idears/internal/errors"
)

func (s *Storage) CreateNote(note *domain.Note) error {
	_, err := s.db.Exec(`
	INSERT INTO notes(id, idea_id, content, created_at)
	VALUES(?, ?, ?, ?)`,
		note.Id, note.IdeaId, note.Content, note.CreatedAt)
	return err
}

func (s *Storage) GetNotesByIdea(ideaId string) ([]domain.Note, error) {
	rows, err := s.db.Query(`
	SELECT id, idea_id, content, created_at
	FROM notes
	WHERE idea_id = ?
	ORDER BY created_at DESC`, ideaId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.Id, &note.IdeaId, &note.Content, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (s *Storage) DeleteNote(id string) error {
	result, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Note not found", StatusCode: 404}
	}
	return nil
}
