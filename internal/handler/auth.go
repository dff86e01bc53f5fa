package handler

import (
	"net/http"

	"github.com/clansite/api/internal/domain"
	"github.com/clansite/api/internal/service"
)

// AuthHandler handles the admin auth endpoint.
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Dispatch handles /auth. Only POST is supported.
func (h *AuthHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		RespondError(w, r, domain.ErrUnsupported("method not allowed"))
		return
	}
	h.authenticate(w, r)
}

// authenticate performs exactly one of register or login, selected by the
// action field in the body; login is the default.
func (h *AuthHandler) authenticate(w http.ResponseWriter, r *http.Request) {
	var input service.CredentialsInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, r, domain.ErrValidation("invalid request body"))
		return
	}

	if input.Action == "register" {
		result, err := h.authSvc.Register(r.Context(), input)
		if err != nil {
			RespondError(w, r, err)
			return
		}
		RespondJSON(w, http.StatusCreated, result)
		return
	}

	result, err := h.authSvc.Login(r.Context(), input)
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, result)
}
