package http

import "github.com/ngboy11/school/internal/roster/domain"

// UserPayload is the wire shape for a user. The password hash never leaves
// the service layer.
type UserPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserPayload(u domain.User) UserPayload {
	return UserPayload{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
	}
}

// StudentPayload is the wire shape for a student record.
type StudentPayload struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Roll       string `json:"roll"`
	Class      string `json:"class"`
	Section    string `json:"section"`
	Notes      string `json:"notes"`
	Attendance int    `json:"attendance"`
}

func toStudentPayload(s domain.Student) StudentPayload {
	return StudentPayload{
		ID:         s.ID,
		Name:       s.Name,
		Roll:       s.Roll,
		Class:      s.Class,
		Section:    s.Section,
		Notes:      s.Notes,
		Attendance: s.Attendance,
	}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
