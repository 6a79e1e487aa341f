// Package handlers exposes the services over HTTP. Bodies are flat JSON
// objects; failures are reported as {success:false, message, errors}.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/repository"
	"github.com/AnshRaj112/guildhall-backend/internal/services"
)

const maxBodyBytes = 1 << 20

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *services.Services
	store    Pinger
	log      *slog.Logger
}

func New(svc *services.Services, store Pinger, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{services: svc, store: store, log: logger}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ActionResponse is returned by deletes.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrUploadsDisabled) {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Message: err.Error()})
		return
	}
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError && apperror.Label(err) == "" {
		// Typed failures were logged by the service that produced them.
		h.log.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
	}
	messages := apperror.Messages(err)
	writeJSON(w, status, ErrorResponse{
		Message: strings.Join(messages, ", "),
		Errors:  messages,
	})
}

// decode reads a JSON body into dst. A missing, malformed or trailing-data
// body is a validation failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.NewValidation("request body is required")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperror.NewValidation("request body is too large")
		}
		return apperror.NewValidation("invalid request body: " + err.Error())
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.NewValidation("request body must contain a single JSON object")
	}
	return nil
}

// pathID parses the named chi URL parameter as an entity id.
func pathID(r *http.Request, name string) (uint, error) {
	return repository.ParseID(chi.URLParam(r, name))
}

func deleted(w http.ResponseWriter, entity string) {
	writeJSON(w, http.StatusOK, ActionResponse{Success: true, Message: entity + " deleted successfully"})
}

// Health reports whether the store answers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.log.ErrorContext(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
