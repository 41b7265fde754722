package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idears-dev/idears/internal/domain"
	internal_errors "github.com/idears-dev/idears/internal/errors"
)

// MockNoteStorage mocks the NoteStorage interface.
type MockNoteStorage struct {
	getIdeaFunc        func(id string) (*domain.IdeaDetails, error)
	createNoteFunc     func(note *domain.Note) error
	getNotesByIdeaFunc func(ideaId string) ([]domain.Note, error)
	deleteNoteFunc     func(id string) error
}

func (m *MockNoteStorage) GetIdea(id string) (*domain.IdeaDetails, error) {
	if m.getIdeaFunc != nil {
		return m.getIdeaFunc(id)
	}
	return &domain.IdeaDetails{Idea: domain.Idea{Id: id}}, nil
}

func (m *MockNoteStorage) CreateNote(note *domain.Note) error {
	if m.createNoteFunc != nil {
		return m.createNoteFunc(note)
	}
	return nil
}

func (m *MockNoteStorage) GetNotesByIdea(ideaId string) ([]domain.Note, error) {
	if m.getNotesByIdeaFunc != nil {
		return m.getNotesByIdeaFunc(ideaId)
	}
	return nil, nil
}

func (m *MockNoteStorage) DeleteNote(id string) error {
	if m.deleteNoteFunc != nil {
		return m.deleteNoteFunc(id)
	}
	return nil
}

var ideaNotFound = &internal_errors.ErrorWithStatusCode{Message: "Idea not found", StatusCode: 404}

func existingIdeasOnly(existing ...string) func(id string) (*domain.IdeaDetails, error) {
	return func(id string) (*domain.IdeaDetails, error) {
		for _, e := range existing {
			if e == id {
				return &domain.IdeaDetails{Idea: domain.Idea{Id: id}}, nil
			}
		}
		return nil, ideaNotFound
	}
}

func TestNoteCreate(t *testing.T) {
	t.Run("creates note for existing idea", func(t *testing.T) {
		var created *domain.Note
		mockStorage := &MockNoteStorage{
			getIdeaFunc: existingIdeasOnly("idea-1"),
			createNoteFunc: func(note *domain.Note) error {
				created = note
				return nil
			},
		}

		s := NewNote(mockStorage)
		note, err := s.Create("idea-1", "remember Y")

		require.NoError(t, err)
		assert.Equal(t, created, note)
		assert.NotEmpty(t, note.Id)
		assert.Equal(t, "idea-1", note.IdeaId)
		assert.Equal(t, "remember Y", note.Content)
		assert.NotZero(t, note.CreatedAt)
	})

	t.Run("blank content rejected before any storage call", func(t *testing.T) {
		mockStorage := &MockNoteStorage{
			getIdeaFunc: func(id string) (*domain.IdeaDetails, error) {
				t.Fatal("existence check should not run for invalid input")
				return nil, nil
			},
		}

		s := NewNote(mockStorage)
		_, err := s.Create("idea-1", "   ")

		require.Error(t, err)
		e, ok := err.(*internal_errors.ErrorWithStatusCode)
		require.True(t, ok)
		assert.Equal(t, 400, e.StatusCode)
	})

	t.Run("missing idea means no record is persisted", func(t *testing.T) {
		mockStorage := &MockNoteStorage{
			getIdeaFunc: existingIdeasOnly(),
			createNoteFunc: func(note *domain.Note) error {
				t.Fatal("create should not run for a missing idea")
				return nil
			},
		}

		s := NewNote(mockStorage)
		_, err := s.Create("missing", "content")

		assert.ErrorIs(t, err, ideaNotFound)
	})
}

func TestNoteGetByIdea(t *testing.T) {
	mockStorage := &MockNoteStorage{
		getIdeaFunc: existingIdeasOnly("idea-1"),
		getNotesByIdeaFunc: func(ideaId string) ([]domain.Note, error) {
			return []domain.Note{{Id: "note-1", IdeaId: ideaId}}, nil
		},
	}
	s := NewNote(mockStorage)

	notes, err := s.GetByIdea("idea-1")
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	_, err = s.GetByIdea("missing")
	assert.ErrorIs(t, err, ideaNotFound)
}

func TestNoteDelete(t *testing.T) {
	noteNotFound := &internal_errors.ErrorWithStatusCode{Message: "Note not found", StatusCode: 404}
	mockStorage := &MockNoteStorage{
		deleteNoteFunc: func(id string) error {
			if id == "missing" {
				return noteNotFound
			}
			return nil
		},
	}
	s := NewNote(mockStorage)

	assert.NoError(t, s.Delete("note-1"))
	assert.ErrorIs(t, s.Delete("missing"), noteNotFound)
}
