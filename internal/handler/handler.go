package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/idears-dev/idears/internal/config"
	"github.com/idears-dev/idears/internal/logger"
	"github.com/idears-dev/idears/internal/service"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	idea       service.IdeaService
	note       service.NoteService
	attachment service.AttachmentService
	health     HealthChecker
	cfg        *config.Config
}

func New(idea service.IdeaService, note service.NoteService, attachment service.AttachmentService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{idea, note, attachment, health, cfg}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
