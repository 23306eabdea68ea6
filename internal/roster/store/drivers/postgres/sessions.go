package postgres

import (
	"context"
	"time"

	"github.com/ngboy11/school/internal/roster/domain"
)

type sessionsRepo struct {
	q queryer
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sessions (token_hash, user_id, name, email, role, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.TokenHash, s.UserID, s.Name, s.Email, string(s.Role), s.ExpiresAt.UTC(), time.Now().UTC(),
	)
	return mapConflict(err)
}

func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Session, error) {
	var s domain.Session
	var role string
	err := r.q.QueryRowContext(ctx, `
		SELECT token_hash, user_id, name, email, role, expires_at, created_at
		FROM sessions WHERE token_hash = $1 AND expires_at > $2`,
		hash, now.UTC(),
	).Scan(&s.TokenHash, &s.UserID, &s.Name, &s.Email, &role, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.Role = domain.Role(role)
	return s, nil
}

func (r *sessionsRepo) RefreshSession(ctx context.Context, hash string, expiresAt time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE sessions SET expires_at = $1 WHERE token_hash = $2`,
		expiresAt.UTC(), hash,
	)
	return err
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, hash string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = $1`, hash)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now.UTC())
	return err
}
