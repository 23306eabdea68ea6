package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/pkg/httpx"
	"github.com/ngboy11/school/pkg/slogx"
)

type LoginHandler struct {
	Auth     *service.AuthService
	Sessions *service.SessionService
	Cookie   *httpx.SessionCookie
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	OK   bool        `json:"ok"`
	User UserPayload `json:"user"`
}

// ServeHTTP verifies credentials and starts a session.
//
//	@Summary		Log in
//	@Description	Verifies an email/password pair and starts a session,
//	@Description	returned as an HTTP-only cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse	"Missing fields"
//	@Failure		401		{object}	ErrorResponse	"Invalid credentials"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/login [post]
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slogx.FromContext(r.Context()).Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
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

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		OK:   true,
		User: toUserPayload(user),
	})
}
