// Package preferences owns the per-user sort-order preference, stored as a
// small JSON object under user_preferences_<username>.
package preferences

import (
	"context"
	"encoding/json"

	"notekeeper/internal/kvstore"
	"notekeeper/internal/logging"
	"notekeeper/internal/models"
)

func prefsKey(username string) string {
	return "user_preferences_" + username
}

type Store struct {
	kv  kvstore.Store
	log logging.Logger
}

func NewStore(kv kvstore.Store, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Get returns the stored preferences, or the defaults when the user has
// never stored any. A failing store also reads as the defaults.
func (s *Store) Get(ctx context.Context, username string) models.UserPreferences {
	data, err := s.kv.Get(ctx, prefsKey(username))
	if err != nil {
		s.log.Error(ctx, "reading preferences failed", "username", username, "error", err)
		return models.DefaultPreferences()
	}
	if data == nil {
		return models.DefaultPreferences()
	}

	var prefs models.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		s.log.Error(ctx, "decoding preferences failed", "username", username, "error", err)
		return models.DefaultPreferences()
	}
	return prefs
}

// Set overwrites the user's preference record.
func (s *Store) Set(ctx context.Context, username string, prefs models.UserPreferences) bool {
	data, err := json.Marshal(prefs)
	if err != nil {
		s.log.Error(ctx, "encoding preferences failed", "username", username, "error", err)
		return false
	}
	if err := s.kv.Set(ctx, prefsKey(username), data); err != nil {
		s.log.Error(ctx, "storing preferences failed", "username", username, "error", err)
		return false
	}
	return true
}
