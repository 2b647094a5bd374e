package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/seventattoolv/intake/internal/form"
	"github.com/seventattoolv/intake/internal/intake"
)

// Submit accepts one form submission. POST relays it; GET is a version
// probe the storefront uses to confirm what is deployed; OPTIONS is
// handled by the CORS middleware before reaching here.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	formName := mux.Vars(r)["form"]

	if _, ok := h.registry.Lookup(formName); !ok {
		writeJSON(w, ctx, http.StatusNotFound, map[string]any{
			"ok":    false,
			"error": "Unknown form",
		})
		return
	}

	if r.Method == http.MethodGet {
		writeJSON(w, ctx, http.StatusOK, map[string]any{
			"ok":      true,
			"version": version,
			"form":    formName,
		})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, ctx, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": "Invalid body",
		})
		return
	}

	result, err := h.intake.Process(ctx, formName, body, r.Header.Get("Content-Type"))
	if err != nil {
		h.writeProcessError(w, r, err)
		return
	}

	switch result.Kind {
	case intake.ResultFiltered:
		// Indistinguishable from success on the wire.
		writeJSON(w, ctx, http.StatusOK, map[string]any{"ok": true})
	case intake.ResultRejected:
		writeJSON(w, ctx, http.StatusUnprocessableEntity, map[string]any{
			"ok":      false,
			"error":   "Missing fields",
			"missing": form.MissingFields(result.Fields),
		})
	case intake.ResultSent:
		writeJSON(w, ctx, http.StatusOK, map[string]any{"ok": true})
	default:
		logger.Error("unexpected intake result", "kind", result.Kind)
		writeJSON(w, ctx, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": "Server error",
		})
	}
}

func (h *Handlers) writeProcessError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)

	var configErr *intake.ConfigError
	var deliveryErr *intake.DeliveryError

	switch {
	case errors.Is(err, form.ErrMalformedBody):
		writeJSON(w, ctx, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": "Invalid body",
		})
	case errors.As(err, &configErr):
		logger.Error("submission failed", "error", err)
		writeJSON(w, ctx, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": "Email not configured",
		})
	case errors.As(err, &deliveryErr):
		logger.Error("submission failed", "error", err)
		// Provider-internal detail stays in the logs.
		writeJSON(w, ctx, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": "Email send failed",
		})
	default:
		logger.Error("submission failed", "error", err)
		writeJSON(w, ctx, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": "Server error",
		})
	}
}
