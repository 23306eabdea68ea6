package store

import (
	"context"
	"errors"
	"time"

	"github.com/ngboy11/school/internal/roster/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
//
// Uniqueness (users.email, students roll+class+section) is enforced by the
// storage engine itself: drivers reject violating writes with
// ErrAlreadyExists rather than pre-checking, so racing duplicate inserts
// produce one success and one conflict, never a silent duplicate.
type Store interface {
	Users() Users
	Students() Students
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and rolling
	// back on error. This is the recommended way to run multi-step writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is used during login; email is the login identifier.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// IsEmpty returns true if there are no users. Used by the default-admin
	// bootstrap.
	IsEmpty(ctx context.Context) (bool, error)
}

// StudentFilter narrows a roster search. All fields are optional and
// AND-combined: Query substring-matches name or roll, Class and Section match
// exactly.
type StudentFilter struct {
	Query   string
	Class   string
	Section string
}

type Students interface {
	// CreateStudent inserts a new student. Returns ErrAlreadyExists when the
	// (roll, class, section) triple is taken.
	CreateStudent(ctx context.Context, s domain.Student) error

	// GetStudentByID returns a student by id.
	GetStudentByID(ctx context.Context, id string) (domain.Student, error)

	// SearchStudents returns the full matching set ordered by
	// (class, section, roll) ascending.
	SearchStudents(ctx context.Context, f StudentFilter) ([]domain.Student, error)

	// UpdateStudent replaces all editable fields of the row matching s.ID.
	// Returns ErrNotFound when no row matches and ErrAlreadyExists when the
	// new (roll, class, section) triple collides.
	UpdateStudent(ctx context.Context, s domain.Student) error

	// DeleteStudent removes by id; ErrNotFound when no row matches.
	DeleteStudent(ctx context.Context, id string) error
}

type Sessions interface {
	// CreateSession stores a new session record keyed by token fingerprint.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns a session that has not expired as of now.
	GetSessionByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Session, error)

	// RefreshSession moves the rolling expiry forward.
	RefreshSession(ctx context.Context, hash string, expiresAt time.Time) error

	// DeleteSession removes a session; deleting an absent session is not an
	// error (logout is idempotent).
	DeleteSession(ctx context.Context, hash string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}
