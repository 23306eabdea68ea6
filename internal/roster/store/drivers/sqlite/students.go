package sqlite

import (
	"context"
	"time"

	"github.com/ngboy11/school/internal/roster/domain"
	"github.com/ngboy11/school/internal/roster/store"
)

type studentsRepo struct {
	q queryer
}

func (r *studentsRepo) CreateStudent(ctx context.Context, s domain.Student) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO students (id, name, roll, class, section, notes, attendance, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Roll, s.Class, s.Section, s.Notes, s.Attendance, now, now,
	)
	return mapConflict(err)
}

func (r *studentsRepo) GetStudentByID(ctx context.Context, id string) (domain.Student, error) {
	var s domain.Student
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, roll, class, section, notes, attendance, created_at, updated_at
		FROM students WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &s.Roll, &s.Class, &s.Section, &s.Notes, &s.Attendance, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Student{}, mapNotFound(err)
	}
	return s, nil
}

func (r *studentsRepo) SearchStudents(ctx context.Context, f store.StudentFilter) ([]domain.Student, error) {
	query := `
		SELECT id, name, roll, class, section, notes, attendance, created_at, updated_at
		FROM students WHERE 1=1`
	var args []any

	if f.Query != "" {
		query += ` AND (name LIKE ? OR roll LIKE ?)`
		like := "%" + f.Query + "%"
		args = append(args, like, like)
	}
	if f.Class != "" {
		query += ` AND class = ?`
		args = append(args, f.Class)
	}
	if f.Section != "" {
		query += ` AND section = ?`
		args = append(args, f.Section)
	}
	query += ` ORDER BY class, section, roll`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Roll, &s.Class, &s.Section, &s.Notes, &s.Attendance, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *studentsRepo) UpdateStudent(ctx context.Context, s domain.Student) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE students
		SET name = ?, roll = ?, class = ?, section = ?, notes = ?, attendance = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, s.Roll, s.Class, s.Section, s.Notes, s.Attendance, time.Now().UTC(), s.ID,
	)
	if err != nil {
		return mapConflict(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *studentsRepo) DeleteStudent(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
