package service

import (
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/idears-dev/idears/internal/domain"
	"github.com/idears-dev/idears/internal/logger"
)

type AttachmentService interface {
	Create(ideaId string, file *domain.PendingFile) (*domain.Attachment, error)
	GetByIdea(ideaId string) ([]domain.Attachment, error)
	Delete(id string) error
}

type Attachment struct {
	storage AttachmentStorage
	media   MediaStorage
}

type AttachmentStorage interface {
	GetIdea(id string) (*domain.IdeaDetails, error)
	CreateAttachment(att *domain.Attachment) error
	GetAttachmentsByIdea(ideaId string) ([]domain.Attachment, error)
	GetAttachment(id string) (*domain.Attachment, error)
	DeleteAttachment(id string) error
}

func NewAttachment(storage AttachmentStorage, media MediaStorage) AttachmentService {
	return &Attachment{storage, media}
}

// Create stores the binary first and persists metadata only after the
// write succeeds, so a failed upload never leaves a dangling record.
func (a *Attachment) Create(ideaId string, file *domain.PendingFile) (*domain.Attachment, error) {
	if _, err := a.storage.GetIdea(ideaId); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	storedName, err := a.media.Save(file.Data, id, file.Filename)
	if err != nil {
		return nil, err
	}

	att := &domain.Attachment{
		Id:        id,
		IdeaId:    ideaId,
		Filename:  file.Filename,
		Filepath:  "/uploads/" + storedName,
		Mimetype:  file.Mimetype,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := a.storage.CreateAttachment(att); err != nil {
		if rmErr := a.media.Delete(storedName); rmErr != nil {
			logger.Log.Warn("failed to remove file after metadata insert failure", "file", storedName, "error", rmErr)
		}
		return nil, err
	}
	return att, nil
}

func (a *Attachment) GetByIdea(ideaId string) ([]domain.Attachment, error) {
	if _, err := a.storage.GetIdea(ideaId); err != nil {
		return nil, err
	}
	return a.storage.GetAttachmentsByIdea(ideaId)
}

// Delete removes the stored file best-effort before the metadata row;
// a file that is already gone does not fail the operation.
func (a *Attachment) Delete(id string) error {
	att, err := a.storage.GetAttachment(id)
	if err != nil {
		return err
	}

	if err := a.media.Delete(path.Base(att.Filepath)); err != nil {
		logger.Log.Warn("failed to delete attachment file", "file", att.Filepath, "error", err)
	}

	return a.storage.DeleteAttachment(id)
}
