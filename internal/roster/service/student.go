package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ngboy11/school/internal/roster/domain"
	"github.com/ngboy11/school/internal/roster/store"
	"github.com/ngboy11/school/pkg/idx"
	"github.com/ngboy11/school/pkg/slogx"
)

var (
	ErrDuplicateStudent = errors.New("duplicate student (roll + class + section)")
	ErrStudentNotFound  = errors.New("student not found")
)

// StudentInput carries the full editable field set. Updates are whole-record
// replaces; there are no partial updates.
type StudentInput struct {
	Name       string
	Roll       string
	Class      string
	Section    string
	Notes      string
	Attendance int
}

func (in StudentInput) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Roll) == "" ||
		strings.TrimSpace(in.Class) == "" ||
		strings.TrimSpace(in.Section) == "" {
		return ErrMissingFields
	}
	return nil
}

// normalize clamps invalid attendance back to the default.
func (in StudentInput) normalize() StudentInput {
	if in.Attendance < 0 {
		in.Attendance = 0
	}
	return in
}

type StudentService struct {
	Store store.Store
}

// Create inserts a new student and returns the generated id.
func (s *StudentService) Create(ctx context.Context, in StudentInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	in = in.normalize()

	student := domain.Student{
		ID:         idx.New().String(),
		Name:       in.Name,
		Roll:       in.Roll,
		Class:      in.Class,
		Section:    in.Section,
		Notes:      in.Notes,
		Attendance: in.Attendance,
	}

	if err := s.Store.Students().CreateStudent(ctx, student); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrDuplicateStudent
		}
		return "", err
	}

	slogx.FromContext(ctx).Info("student created",
		slog.String("student_id", student.ID),
		slog.String("class", student.Class),
		slog.String("section", student.Section),
	)
	return student.ID, nil
}

// Search returns the full matching set, ordered by (class, section, roll).
// All filters are optional and AND-combined.
func (s *StudentService) Search(ctx context.Context, query, class, section string) ([]domain.Student, error) {
	return s.Store.Students().SearchStudents(ctx, store.StudentFilter{
		Query:   strings.TrimSpace(query),
		Class:   strings.TrimSpace(class),
		Section: strings.TrimSpace(section),
	})
}

// Update replaces every editable field of the student with the given id.
func (s *StudentService) Update(ctx context.Context, id string, in StudentInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	in = in.normalize()

	err := s.Store.Students().UpdateStudent(ctx, domain.Student{
		ID:         id,
		Name:       in.Name,
		Roll:       in.Roll,
		Class:      in.Class,
		Section:    in.Section,
		Notes:      in.Notes,
		Attendance: in.Attendance,
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrDuplicateStudent
	case errors.Is(err, store.ErrNotFound):
		return ErrStudentNotFound
	}
	return err
}

// Delete removes the student with the given id.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	err := s.Store.Students().DeleteStudent(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrStudentNotFound
	}
	return err
}
