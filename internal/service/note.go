package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idears-dev/idears/internal/domain"
	internal_errors "github.com/idears-dev/idears/internal/errors"
)

type NoteService interface {
	Create(ideaId, content string) (*domain.Note, error)
	GetByIdea(ideaId string) ([]domain.Note, error)
	Delete(id string) error
}

type Note struct {
	storage NoteStorage
}

type NoteStorage interface {
	GetIdea(id string) (*domain.IdeaDetails, error)
	CreateNote(note *domain.Note) error
	GetNotesByIdea(ideaId string) ([]domain.Note, error)
	DeleteNote(id string) error
}

func NewNote(storage NoteStorage) NoteService {
	return &Note{storage}
}

// Create checks that the owning idea exists before inserting; the
// check and the insert are two store operations, not one transaction.
func (n *Note) Create(ideaId, content string) (*domain.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Note content is required", StatusCode: 400}
	}

	if _, err := n.storage.GetIdea(ideaId); err != nil {
		return nil, err
	}

	note := &domain.Note{
		Id:        uuid.NewString(),
		IdeaId:    ideaId,
		Content:   content,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := n.storage.CreateNote(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (n *Note) GetByIdea(ideaId string) ([]domain.Note, error) {
	if _, err := n.storage.GetIdea(ideaId); err != nil {
		return nil, err
	}
	return n.storage.GetNotesByIdea(ideaId)
}

func (n *Note) Delete(id string) error {
	return n.storage.DeleteNote(id)
}
