package http

import (
	"net/http"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/pkg/httpx"
	"github.com/ngboy11/school/pkg/slogx"
)

type StudentListHandler struct {
	Students *service.StudentService
}

type StudentListResponse struct {
	Students []StudentPayload `json:"students"`
}

// ServeHTTP lists students, optionally filtered. Any authenticated role may
// read the roster.
//
//	@Summary		List and search students
//	@Description	Returns students ordered by class, section, roll. The q
//	@Description	parameter matches name or roll as a substring; class and
//	@Description	section filter exactly.
//	@Tags			Students
//	@Produce		json
//	@Param			q		query		string	false	"Substring match on name or roll"
//	@Param			class	query		string	false	"Exact class filter"
//	@Param			section	query		string	false	"Exact section filter"
//	@Success		200		{object}	StudentListResponse
//	@Failure		401		{object}	ErrorResponse	"Unauthorized"
//	@Failure		500		{object}	ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/students [get]
func (h *StudentListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	students, err := h.Students.Search(r.Context(), q.Get("q"), q.Get("class"), q.Get("section"))
	if err != nil {
		slogx.FromContext(r.Context()).Error("student search failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	payload := make([]StudentPayload, 0, len(students))
	for _, s := range students {
		payload = append(payload, toStudentPayload(s))
	}

	httpx.WriteJSON(w, http.StatusOK, StudentListResponse{Students: payload})
}
