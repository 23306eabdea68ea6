package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/pkg/httpx"
	"github.com/ngboy11/school/pkg/slogx"
)

type StudentCreateHandler struct {
	Students *service.StudentService
}

type StudentRequest struct {
	Name       string `json:"name"`
	Roll       string `json:"roll"`
	Class      string `json:"class"`
	Section    string `json:"section"`
	Notes      string `json:"notes"`
	Attendance int    `json:"attendance"`
}

type StudentCreateResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// ServeHTTP adds a student record. Requires the admin or teacher role.
//
//	@Summary		Create a student
//	@Description	Adds a student record. The (roll, class, section) triple
//	@Description	must be unique across the roster.
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			request	body		StudentRequest	true	"Student details"
//	@Success		200		{object}	StudentCreateResponse
//	@Failure		400		{object}	ErrorResponse	"Missing fields"
//	@Failure		401		{object}	ErrorResponse	"Unauthorized"
//	@Failure		403		{object}	ErrorResponse	"Forbidden"
//	@Failure		409		{object}	ErrorResponse	"Duplicate student"
//	@Failure		500		{object}	ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/students [post]
func (h *StudentCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	id, err := h.Students.Create(r.Context(), service.StudentInput{
		Name:       req.Name,
		Roll:       req.Roll,
		Class:      req.Class,
		Section:    req.Section,
		Notes:      req.Notes,
		Attendance: req.Attendance,
	})
	if err != nil {
		writeStudentError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, StudentCreateResponse{OK: true, ID: id})
}

// writeStudentError maps student service errors onto the shared error body.
func writeStudentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteError(w, http.StatusBadRequest, "Missing fields")
	case errors.Is(err, service.ErrDuplicateStudent):
		httpx.WriteError(w, http.StatusConflict, "Duplicate student (roll + class + section)")
	case errors.Is(err, service.ErrStudentNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	default:
		slogx.FromContext(r.Context()).Error("student operation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
