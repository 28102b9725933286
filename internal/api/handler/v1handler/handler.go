// Package v1handler implements the v1 HTTP API on top of the checker service.
package v1handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"lifeguard/internal/checker"
	"lifeguard/pkg/logger"
	"lifeguard/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size used when a list request has no limit.
	DefaultLimit = 20
	// MaxLimit bounds the page size of list requests.
	MaxLimit = 100

	maxBodyBytes = 1 << 20
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Checker checker.Checker
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New creates a Handler.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts every v1 route on r behind the bearer authentication of sec.
func (h *Handler) Register(r chi.Router, sec *SecHandler) {
	r.Group(func(r chi.Router) {
		r.Use(sec.Middleware)

		r.Post("/passwords/check", h.CheckPassword)
		r.Post("/passwords/generate", h.GeneratePassword)
		r.Post("/urls/check", h.CheckURL)

		r.Get("/checks", h.ListChecks)
		r.Get("/checks/{id}", h.GetCheck)
		r.Delete("/checks/{id}", h.DeleteCheck)

		r.Get("/activities", h.ListActivities)
	})
}

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an ErrorBody with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// NewError maps err to the response reported to the client. Internal
// errors are logged with their cause and reported without it.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorResponse {
	status, code, msg := serrors.Describe(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response:   ErrorBody{Code: code, Message: msg},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, r, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func parseLimit(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 || limit > MaxLimit {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
	}

	return uint(limit), nil
}
