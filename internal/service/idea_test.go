package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idears-dev/idears/internal/domain"
	internal_errors "github.com/idears-dev/idears/internal/errors"
)

// MockIdeaStorage mocks the IdeaStorage interface.
type MockIdeaStorage struct {
	createIdeaFunc  func(idea *domain.Idea) error
	getAllIdeasFunc func() ([]domain.Idea, error)
	getIdeaFunc     func(id string) (*domain.IdeaDetails, error)
	updateIdeaFunc  func(id string, upd domain.IdeaUpdate) (*domain.IdeaDetails, error)
	upvoteIdeaFunc  func(id string) (*domain.IdeaDetails, error)
	deleteIdeaFunc  func(id string) error
}

func (m *MockIdeaStorage) CreateIdea(idea *domain.Idea) error {
	if m.createIdeaFunc != nil {
		return m.createIdeaFunc(idea)
	}
	return nil
}

func (m *MockIdeaStorage) GetAllIdeas() ([]domain.Idea, error) {
	if m.getAllIdeasFunc != nil {
		return m.getAllIdeasFunc()
	}
	return nil, nil
}

func (m *MockIdeaStorage) GetIdea(id string) (*domain.IdeaDetails, error) {
	if m.getIdeaFunc != nil {
		return m.getIdeaFunc(id)
	}
	return nil, nil
}

func (m *MockIdeaStorage) UpdateIdea(id string, upd domain.IdeaUpdate) (*domain.IdeaDetails, error) {
	if m.updateIdeaFunc != nil {
		return m.updateIdeaFunc(id, upd)
	}
	return nil, nil
}

func (m *MockIdeaStorage) UpvoteIdea(id string) (*domain.IdeaDetails, error) {
	if m.upvoteIdeaFunc != nil {
		return m.upvoteIdeaFunc(id)
	}
	return nil, nil
}

func (m *MockIdeaStorage) DeleteIdea(id string) error {
	if m.deleteIdeaFunc != nil {
		return m.deleteIdeaFunc(id)
	}
	return nil
}

func TestIdeaCreate(t *testing.T) {
	testCases := []struct {
		name         string
		title        string
		description  string
		storageError error
		wantStatus   int // 0 means success
	}{
		{name: "Successful Creation", title: "Build X", description: "details"},
		{name: "Description Optional", title: "Build Y"},
		{name: "Empty Title", title: "", wantStatus: 400},
		{name: "Blank Title", title: "   ", wantStatus: 400},
		{name: "Storage Error", title: "Build Z", storageError: errors.New("storage error"), wantStatus: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStorage := &MockIdeaStorage{
				createIdeaFunc: func(idea *domain.Idea) error {
					return tc.storageError
				},
			}

			s := NewIdea(mockStorage)
			idea, err := s.Create(tc.title, tc.description)

			if tc.wantStatus == 0 {
				require.NoError(t, err)
				assert.NotEmpty(t, idea.Id)
				assert.Equal(t, tc.title, idea.Title)
				assert.Equal(t, tc.description, idea.Description)
				assert.NotZero(t, idea.CreatedAt)
				return
			}
			require.Error(t, err)
			if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
				assert.Equal(t, tc.wantStatus, e.StatusCode)
			} else {
				assert.Equal(t, 500, tc.wantStatus)
			}
		})
	}
}

func TestIdeaCreate_UniqueIds(t *testing.T) {
	s := NewIdea(&MockIdeaStorage{})

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		idea, err := s.Create("title", "")
		require.NoError(t, err)
		assert.False(t, seen[idea.Id], "duplicate id %s", idea.Id)
		seen[idea.Id] = true
	}
}

func TestIdeaDelegation(t *testing.T) {
	notFound := &internal_errors.ErrorWithStatusCode{Message: "Idea not found", StatusCode: 404}

	mockStorage := &MockIdeaStorage{
		getIdeaFunc: func(id string) (*domain.IdeaDetails, error) {
			if id == "missing" {
				return nil, notFound
			}
			return &domain.IdeaDetails{Idea: domain.Idea{Id: id}}, nil
		},
		upvoteIdeaFunc: func(id string) (*domain.IdeaDetails, error) {
			return &domain.IdeaDetails{Idea: domain.Idea{Id: id, Votes: 1}}, nil
		},
		deleteIdeaFunc: func(id string) error {
			if id == "missing" {
				return notFound
			}
			return nil
		},
	}
	s := NewIdea(mockStorage)

	idea, err := s.Get("idea-1")
	require.NoError(t, err)
	assert.Equal(t, "idea-1", idea.Id)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, notFound)

	upvoted, err := s.Upvote("idea-1")
	require.NoError(t, err)
	assert.Equal(t, 1, upvoted.Votes)

	assert.NoError(t, s.Delete("idea-1"))
	assert.ErrorIs(t, s.Delete("missing"), notFound)
}
