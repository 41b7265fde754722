package setup

import (
	"github.com/idears-dev/idears/internal/config"
	"github.com/idears-dev/idears/internal/handler"
	"github.com/idears-dev/idears/internal/service"
	"github.com/idears-dev/idears/internal/storage/fs"
	"github.com/idears-dev/idears/internal/storage/sqlite"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *sqlite.Storage
	Media   *fs.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
// The store handle is passed explicitly into each component so tests can
// run against isolated instances.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := sqlite.New(cfg.Db.Path)
	if err != nil {
		return nil, err
	}

	media, err := fs.New(cfg.Uploads.Dir)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	idea := service.NewIdea(storage)
	note := service.NewNote(storage)
	attachment := service.NewAttachment(storage, media)

	h := handler.New(idea, note, attachment, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Media:   media,
		Handler: h,
		Config:  cfg,
	}, nil
}
