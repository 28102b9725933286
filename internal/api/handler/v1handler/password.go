package v1handler

import (
	"net/http"

	"lifeguard/pkg/domain"
	"lifeguard/pkg/password"
)

// CheckPasswordRequest is the body of POST /passwords/check.
type CheckPasswordRequest struct {
	Password string `json:"password"`
}

// GeneratePasswordRequest is the body of POST /passwords/generate. A zero
// length uses the default.
type GeneratePasswordRequest struct {
	Length int `json:"length"`
}

// GeneratePasswordResponse returns the password with its own assessment.
type GeneratePasswordResponse struct {
	Password   string                    `json:"password"`
	Assessment domain.PasswordAssessment `json:"assessment"`
}

// CheckPassword scores a password and looks it up in known breaches.
func (h Handler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	var req CheckPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	check, err := h.deps.Checker.CheckPassword(r.Context(), GetUserIDFromContext(r.Context()), req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, check)
}

// GeneratePassword returns a random password.
func (h Handler) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	var req GeneratePasswordRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)

			return
		}
	}

	pw, err := h.deps.Checker.GeneratePassword(r.Context(), GetUserIDFromContext(r.Context()), req.Length)
	if err != nil {
		writeError(w, r, err)

		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, GeneratePasswordResponse{
		Password:   pw,
		Assessment: password.Evaluate(pw),
	})
}
