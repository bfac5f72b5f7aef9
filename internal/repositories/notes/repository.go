// Package notes owns per-user note collections. Each collection is a single
// JSON array under user_<username>_notes; every mutation loads the whole
// array, changes it in memory, and writes it back. The repository performs
// no validation of note content; that duty lies with the editing workflow.
package notes

import (
	"context"
	"encoding/json"
	"fmt"

	"notekeeper/internal/kvstore"
	"notekeeper/internal/logging"
	"notekeeper/internal/models"
)

func notesKey(username string) string {
	return "user_" + username + "_notes"
}

// Repository stores note collections partitioned by username. One user's
// notes are never visible under another user's key.
type Repository struct {
	kv  kvstore.Store
	log logging.Logger
}

func NewRepository(kv kvstore.Store, log logging.Logger) *Repository {
	return &Repository{kv: kv, log: log}
}

func (r *Repository) load(ctx context.Context, username string) ([]models.Note, error) {
	data, err := r.kv.Get(ctx, notesKey(username))
	if err != nil {
		return nil, fmt.Errorf("loading notes for %s: %w", username, err)
	}
	if data == nil {
		return []models.Note{}, nil
	}

	var list []models.Note
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding notes for %s: %w", username, err)
	}
	return list, nil
}

func (r *Repository) store(ctx context.Context, username string, list []models.Note) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding notes for %s: %w", username, err)
	}
	if err := r.kv.Set(ctx, notesKey(username), data); err != nil {
		return fmt.Errorf("storing notes for %s: %w", username, err)
	}
	return nil
}

// List returns the user's notes unordered; ordering is applied by the
// caller. An unknown user or a failing store both read as an empty list,
// never an error.
func (r *Repository) List(ctx context.Context, username string) []models.Note {
	list, err := r.load(ctx, username)
	if err != nil {
		r.log.Error(ctx, "listing notes failed", "username", username, "error", err)
		return []models.Note{}
	}
	return list
}

// Save replaces the note with a matching id in place, keeping collection
// order, or appends it when the id is new. The caller is responsible for id
// assignment and timestamps. Returns false only on a persistence failure.
func (r *Repository) Save(ctx context.Context, username string, note models.Note) bool {
	list, err := r.load(ctx, username)
	if err != nil {
		r.log.Error(ctx, "saving note failed", "username", username, "note_id", note.ID, "error", err)
		return false
	}

	replaced := false
	for i := range list {
		if list[i].ID == note.ID {
			list[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, note)
	}

	if err := r.store(ctx, username, list); err != nil {
		r.log.Error(ctx, "saving note failed", "username", username, "note_id", note.ID, "error", err)
		return false
	}
	return true
}

// Delete filters the note with the given id out of the collection. Deleting
// an id that does not exist is a no-op success, not an error.
func (r *Repository) Delete(ctx context.Context, username, noteID string) bool {
	list, err := r.load(ctx, username)
	if err != nil {
		r.log.Error(ctx, "deleting note failed", "username", username, "note_id", noteID, "error", err)
		return false
	}

	filtered := list[:0]
	for _, n := range list {
		if n.ID != noteID {
			filtered = append(filtered, n)
		}
	}
	if len(filtered) == len(list) {
		r.log.Debug(ctx, "delete matched no note", "username", username, "note_id", noteID)
	}

	if err := r.store(ctx, username, filtered); err != nil {
		r.log.Error(ctx, "deleting note failed", "username", username, "note_id", noteID, "error", err)
		return false
	}
	return true
}
