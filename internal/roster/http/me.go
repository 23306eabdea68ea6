package http

import (
	"net/http"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/pkg/httpx"
	"github.com/ngboy11/school/pkg/slogx"
)

type MeHandler struct {
	Sessions *service.SessionService
	Cookie   *httpx.SessionCookie
}

type MeResponse struct {
	User *UserPayload `json:"user"`
}

// ServeHTTP reports the identity behind the current session. Unlike the
// protected routes it never returns 401; an anonymous caller gets a null
// user so the frontend can branch without an error path.
//
//	@Summary		Current session identity
//	@Description	Returns the user snapshot for the active session, or a null
//	@Description	user when no valid session exists.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	MeResponse
//	@Router			/api/me [get]
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, err := h.Cookie.Read(r)
	if err != nil {
		httpx.WriteJSON(w, http.StatusOK, MeResponse{User: nil})
		return
	}

	session, err := h.Sessions.Resolve(r.Context(), token)
	if err != nil {
		httpx.WriteJSON(w, http.StatusOK, MeResponse{User: nil})
		return
	}

	// Resolve refreshed the server-side expiry; roll the cookie with it.
	if err := h.Cookie.Set(w, token); err != nil {
		slogx.FromContext(r.Context()).Warn("session cookie refresh failed", "err", err)
	}

	httpx.WriteJSON(w, http.StatusOK, MeResponse{User: &UserPayload{
		ID:    session.UserID,
		Name:  session.Name,
		Email: session.Email,
		Role:  session.Role.String(),
	}})
}
