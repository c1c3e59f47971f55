package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/pipetrack/pipetrack/internal/entity"
)

const currentUserKey = "current_user"

// SessionRepository persists the one serialized current-user record in
// Postgres. The core only cares about the load/save/clear contract; the
// user identity drives assignment-based filtering.
type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Load returns nil without error when no session exists.
func (r *SessionRepository) Load(ctx context.Context) (*entity.User, error) {
	query := `SELECT payload FROM sessions WHERE key = $1`

	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, currentUserKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *SessionRepository) Save(ctx context.Context, user *entity.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	_, err = r.DB.ExecContext(ctx, query, currentUserKey, payload)
	return err
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE key = $1`, currentUserKey)
	return err
}
