package http

import (
	"net/http"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/pkg/httpx"
)

type StudentDeleteHandler struct {
	Students *service.StudentService
}

type StudentDeleteResponse struct {
	OK bool `json:"ok"`
}

// ServeHTTP removes a student record. Requires the admin role.
//
//	@Summary		Delete a student
//	@Tags			Students
//	@Produce		json
//	@Param			id	path		string	true	"Student ID"
//	@Success		200	{object}	StudentDeleteResponse
//	@Failure		401	{object}	ErrorResponse	"Unauthorized"
//	@Failure		403	{object}	ErrorResponse	"Forbidden"
//	@Failure		404	{object}	ErrorResponse	"Not found"
//	@Failure		500	{object}	ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/students/{id} [delete]
func (h *StudentDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Students.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeStudentError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, StudentDeleteResponse{OK: true})
}
