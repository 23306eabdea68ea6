package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ngboy11/school/internal/roster/domain"
	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/pkg/httpx"
	"github.com/ngboy11/school/pkg/slogx"
)

type RegisterHandler struct {
	Auth     *service.AuthService
	Sessions *service.SessionService
	Cookie   *httpx.SessionCookie
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	OK   bool        `json:"ok"`
	User UserPayload `json:"user"`
}

// ServeHTTP creates a user account and starts a session for it.
//
//	@Summary		Register a new user
//	@Description	Creates a user with the given role and immediately starts a
//	@Description	session, returned as an HTTP-only cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration details"
//	@Success		200		{object}	RegisterResponse
//	@Failure		400		{object}	ErrorResponse	"Missing fields"
//	@Failure		409		{object}	ErrorResponse	"Email already registered"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/register [post]
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := h.Auth.Register(r.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Missing fields")
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, "Email already registered")
		default:
			slogx.FromContext(r.Context()).Error("register failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	token, err := h.Sessions.Create(r.Context(), user)
	if err != nil {
		slogx.FromContext(r.Context()).Error("session create failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := h.Cookie.Set(w, token); err != nil {
		slogx.FromContext(r.Context()).Error("session cookie encode failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, RegisterResponse{
		OK:   true,
		User: toUserPayload(user),
	})
}
