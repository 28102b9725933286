package v1handler

import (
	"net/http"

	"lifeguard/pkg/domain"
	"lifeguard/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CheckURLRequest is the body of POST /urls/check.
type CheckURLRequest struct {
	URL string `json:"url"`
}

// CheckList is a page of checks.
type CheckList struct {
	Items      []domain.Check `json:"items"`
	NextCursor *string        `json:"nextCursor"`
}

// ActivityList is a page of activities.
type ActivityList struct {
	Items      []domain.Activity `json:"items"`
	NextCursor *string           `json:"nextCursor"`
}

func optCursor(cursor string) *string {
	if cursor == "" {
		return nil
	}

	return &cursor
}

func checkIDParam(r *http.Request) (domain.CheckID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.CheckID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid check id")
	}

	return domain.CheckID(id), nil
}

// CheckURL assesses a URL.
func (h Handler) CheckURL(w http.ResponseWriter, r *http.Request) {
	var req CheckURLRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	check, err := h.deps.Checker.CheckURL(r.Context(), GetUserIDFromContext(r.Context()), req.URL)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, check)
}

// ListChecks returns a paginated list of the user's checks.
func (h Handler) ListChecks(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	q := r.URL.Query()
	checks, next, err := h.deps.Checker.History(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.CheckKind(q.Get("kind")),
		q.Get("cursor"),
		limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if checks == nil {
		checks = []domain.Check{}
	}
	writeJSON(w, r, http.StatusOK, CheckList{Items: checks, NextCursor: optCursor(next)})
}

// GetCheck returns a single check.
func (h Handler) GetCheck(w http.ResponseWriter, r *http.Request) {
	id, err := checkIDParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	check, err := h.deps.Checker.Result(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, check)
}

// DeleteCheck removes a check from the user's history.
func (h Handler) DeleteCheck(w http.ResponseWriter, r *http.Request) {
	id, err := checkIDParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Checker.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListActivities returns a paginated list of the user's activity log.
func (h Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	activities, next, err := h.deps.Checker.Activities(r.Context(),
		GetUserIDFromContext(r.Context()),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if activities == nil {
		activities = []domain.Activity{}
	}
	writeJSON(w, r, http.StatusOK, ActivityList{Items: activities, NextCursor: optCursor(next)})
}
