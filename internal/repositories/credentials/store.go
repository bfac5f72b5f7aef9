// Package credentials owns the user registry and the current-session
// pointer. The registry is one JSON array rewritten whole on every change;
// there is no per-user sub-key.
package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"notekeeper/internal/cryptox"
	"notekeeper/internal/kvstore"
	"notekeeper/internal/logging"
	"notekeeper/internal/models"
)

const (
	usersKey       = "users"
	currentUserKey = "current_user"
)

// Store provides account registration, credential verification and the
// persisted session pointer. All failure modes flatten to booleans or empty
// values at this edge; causes are logged.
type Store struct {
	kv  kvstore.Store
	log logging.Logger

	// now is a test seam for CreatedAt stamping.
	now func() time.Time
}

func NewStore(kv kvstore.Store, log logging.Logger) *Store {
	return &Store{kv: kv, log: log, now: time.Now}
}

func (s *Store) allUsers(ctx context.Context) ([]models.User, error) {
	data, err := s.kv.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("loading user registry: %w", err)
	}
	if data == nil {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decoding user registry: %w", err)
	}
	return users, nil
}

// Register appends a new user to the registry. It returns false when the
// username is already taken (exact string match) or when the underlying
// store fails. Never idempotent: a repeat call for the same username fails.
func (s *Store) Register(ctx context.Context, username, password string) bool {
	users, err := s.allUsers(ctx)
	if err != nil {
		s.log.Error(ctx, "register failed", "username", username, "error", err)
		return false
	}

	for _, u := range users {
		if u.Username == username {
			return false
		}
	}

	users = append(users, models.User{
		Username:  username,
		Password:  cryptox.HashPassword(password),
		CreatedAt: s.now().UnixMilli(),
	})

	data, err := json.Marshal(users)
	if err != nil {
		s.log.Error(ctx, "register failed", "username", username, "error", err)
		return false
	}
	if err := s.kv.Set(ctx, usersKey, data); err != nil {
		s.log.Error(ctx, "register failed", "username", username, "error", err)
		return false
	}
	return true
}

// Verify reports whether the username exists and the password matches its
// stored hash. Unknown users and store failures both read as false.
func (s *Store) Verify(ctx context.Context, username, password string) bool {
	users, err := s.allUsers(ctx)
	if err != nil {
		s.log.Error(ctx, "verify failed", "username", username, "error", err)
		return false
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		ok, err := cryptox.VerifyPassword(password, u.Password)
		if err != nil {
			s.log.Error(ctx, "verify failed", "username", username, "error", err)
			return false
		}
		return ok
	}
	return false
}

// SetSession persists the session pointer, or clears it when username is
// empty.
func (s *Store) SetSession(ctx context.Context, username string) error {
	if username == "" {
		if err := s.kv.Delete(ctx, currentUserKey); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		return nil
	}
	if err := s.kv.Set(ctx, currentUserKey, []byte(username)); err != nil {
		return fmt.Errorf("setting session: %w", err)
	}
	return nil
}

// GetSession returns the logged-in username, or "" when logged out or when
// the store fails.
func (s *Store) GetSession(ctx context.Context) string {
	data, err := s.kv.Get(ctx, currentUserKey)
	if err != nil {
		s.log.Error(ctx, "reading session failed", "error", err)
		return ""
	}
	return string(data)
}
