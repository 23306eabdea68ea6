package domain

import "time"

// Student is one roster entry. The (Roll, Class, Section) triple is globally
// unique, enforced by the store at insert/update time.
type Student struct {
	ID         string
	Name       string
	Roll       string
	Class      string
	Section    string
	Notes      string
	Attendance int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
