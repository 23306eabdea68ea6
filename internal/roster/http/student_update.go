package http

import (
	"encoding/json"
	"net/http"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/pkg/httpx"
)

type StudentUpdateHandler struct {
	Students *service.StudentService
}

type StudentUpdateResponse struct {
	OK bool `json:"ok"`
}

// ServeHTTP replaces a student record. Requires the admin or teacher role.
//
//	@Summary		Update a student
//	@Description	Replaces the student record wholesale. Partial updates are
//	@Description	not supported; all required fields must be present.
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Student ID"
//	@Param			request	body		StudentRequest	true	"Replacement details"
//	@Success		200		{object}	StudentUpdateResponse
//	@Failure		400		{object}	ErrorResponse	"Missing fields"
//	@Failure		401		{object}	ErrorResponse	"Unauthorized"
//	@Failure		403		{object}	ErrorResponse	"Forbidden"
//	@Failure		404		{object}	ErrorResponse	"Not found"
//	@Failure		409		{object}	ErrorResponse	"Duplicate student"
//	@Failure		500		{object}	ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/students/{id} [put]
func (h *StudentUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	err := h.Students.Update(r.Context(), r.PathValue("id"), service.StudentInput{
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

	httpx.WriteJSON(w, http.StatusOK, StudentUpdateResponse{OK: true})
}
