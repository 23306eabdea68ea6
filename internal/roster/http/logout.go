package http

import (
	"net/http"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/pkg/httpx"
	"github.com/ngboy11/school/pkg/slogx"
)

type LogoutHandler struct {
	Sessions *service.SessionService
	Cookie   *httpx.SessionCookie
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}

// ServeHTTP destroys the current session, if any, and clears the cookie.
// Logging out without a session is not an error.
//
//	@Summary		Log out
//	@Description	Destroys the current session and clears the session cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	LogoutResponse
//	@Router			/api/logout [post]
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if token, err := h.Cookie.Read(r); err == nil {
		if err := h.Sessions.Destroy(r.Context(), token); err != nil {
			// The cookie is cleared regardless; the expired row is swept
			// by housekeeping.
			slogx.FromContext(r.Context()).Warn("session destroy failed", "err", err)
		}
	}
	h.Cookie.Clear(w)

	httpx.WriteJSON(w, http.StatusOK, LogoutResponse{OK: true})
}
