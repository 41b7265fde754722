package sqlite

import (
	"database/sql"
	"errors"

	"github.com/idears-dev/idears/internal/domain"
	internal_errors "github.com/idears-dev/idears/internal/errors"
)

func (s *Storage) CreateAttachment(att *domain.Attachment) error {
	_, err := s.db.Exec(`
	INSERT INTO attachments(id, idea_id, filename, filepath, mimetype, created_at)
	VALUES(?, ?, ?, ?, ?, ?)`,
		att.Id, att.IdeaId, att.Filename, att.Filepath, att.Mimetype, att.CreatedAt)
	return err
}

func (s *Storage) GetAttachmentsByIdea(ideaId string) ([]domain.Attachment, error) {
	rows, err := s.db.Query(`
	SELECT id, idea_id, filename, filepath, mimetype, created_at
	FROM attachments
	WHERE idea_id = ?
	ORDER BY created_at DESC`, ideaId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attachments := []domain.Attachment{}
	for rows.Next() {
		var att domain.Attachment
		if err := rows.Scan(&att.Id, &att.IdeaId, &att.Filename, &att.Filepath, &att.Mimetype, &att.CreatedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}
	return attachments, rows.Err()
}

func (s *Storage) GetAttachment(id string) (*domain.Attachment, error) {
	var att domain.Attachment
	err := s.db.QueryRow(`
	SELECT id, idea_id, filename, filepath, mimetype, created_at
	FROM attachments
	WHERE id = ?`, id).Scan(&att.Id, &att.IdeaId, &att.Filename, &att.Filepath, &att.Mimetype, &att.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Attachment not found", StatusCode: 404}
		}
		return nil, err
	}
	return &att, nil
}

func (s *Storage) DeleteAttachment(id string) error {
	result, err := s.db.Exec(`DELETE FROM attachments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Attachment not found", StatusCode: 404}
	}
	return nil
}
