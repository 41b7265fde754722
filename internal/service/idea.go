package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idears-dev/idears/internal/domain"
	internal_errors "github.com/idears-dev/idears/internal/errors"
)

// to mock service in tests
type IdeaService interface {
	Create(title, description string) (*domain.Idea, error)
	GetAll() ([]domain.Idea, error)
	Get(id string) (*domain.IdeaDetails, error)
	Update(id string, upd domain.IdeaUpdate) (*domain.IdeaDetails, error)
	Upvote(id string) (*domain.IdeaDetails, error)
	Delete(id string) error
}

type Idea struct {
	storage IdeaStorage
}

type IdeaStorage interface {
	CreateIdea(idea *domain.Idea) error
	GetAllIdeas() ([]domain.Idea, error)
	GetIdea(id string) (*domain.IdeaDetails, error)
	UpdateIdea(id string, upd domain.IdeaUpdate) (*domain.IdeaDetails, error)
	UpvoteIdea(id string) (*domain.IdeaDetails, error)
	DeleteIdea(id string) error
}

func NewIdea(storage IdeaStorage) IdeaService {
	return &Idea{storage}
}

// Create assigns a fresh id and creation timestamp. A missing
// description stays an empty string, never null.
func (i *Idea) Create(title, description string) (*domain.Idea, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Title is required", StatusCode: 400}
	}

	idea := &domain.Idea{
		Id:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if err := i.storage.CreateIdea(idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (i *Idea) GetAll() ([]domain.Idea, error) {
	return i.storage.GetAllIdeas()
}

func (i *Idea) Get(id string) (*domain.IdeaDetails, error) {
	return i.storage.GetIdea(id)
}

func (i *Idea) Update(id string, upd domain.IdeaUpdate) (*domain.IdeaDetails, error) {
	return i.storage.UpdateIdea(id, upd)
}

func (i *Idea) Upvote(id string) (*domain.IdeaDetails, error) {
	return i.storage.UpvoteIdea(id)
}

func (i *Idea) Delete(id string) error {
	return i.storage.DeleteIdea(id)
}
