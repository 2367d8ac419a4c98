package fakeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

var errInternal = errors.New("internal server error")

// errorBody mirrors the error document a Spring Boot backend returns.
type errorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "fakeapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	status := mapError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = errInternal.Error()
	}
	writeJSON(ctx, w, status, errorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
