package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/seventattoolv/intake/internal/config"
	"github.com/seventattoolv/intake/internal/form"
	"github.com/seventattoolv/intake/internal/intake"
	"github.com/seventattoolv/intake/internal/logging"
)

const maxBodyBytes = 1 << 20 // 1 MB

// version is echoed by the GET probe on submit routes so deploys can be
// confirmed from the storefront.
const version = "st-2026-08-go-v1"

// Handlers provides the HTTP handlers for the intake service.
type Handlers struct {
	config   *config.Config
	registry *form.Registry
	intake   *intake.Service
	logger   *slog.Logger
}

type Dependencies struct {
	Config   *config.Config
	Registry *form.Registry
	Intake   *intake.Service
	Logger   *slog.Logger
}

func New(deps Dependencies) (*Handlers, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if deps.Config == nil {
		return nil, fmt.Errorf("handlers dependencies: config is required")
	}
	if deps.Registry == nil {
		return nil, fmt.Errorf("handlers dependencies: registry is required")
	}
	if deps.Intake == nil {
		return nil, fmt.Errorf("handlers dependencies: intake service is required")
	}

	return &Handlers{
		config:   deps.Config,
		registry: deps.Registry,
		intake:   deps.Intake,
		logger:   logger.With("component", "handlers"),
	}, nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r.Context(), http.StatusOK, map[string]any{
		"status": "healthy",
		"forms":  h.registry.Names(),
	})
}

func (h *Handlers) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, h.logger)
}

func writeJSON(w http.ResponseWriter, ctx context.Context, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.FromContext(ctx, nil).Error("failed to encode response", "error", err)
	}
}
