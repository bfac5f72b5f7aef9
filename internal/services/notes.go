// Package services contains the application-level workflows built on top of
// the repositories: note editing with its validation and image-cleanup
// rules, and list presentation (search + sort).
package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"notekeeper/internal/assets"
	"notekeeper/internal/common"
	"notekeeper/internal/logging"
	"notekeeper/internal/models"
	"notekeeper/internal/repositories/notes"
	"notekeeper/internal/repositories/preferences"
)

// NoteService is the editing workflow the repositories themselves do not
// enforce: id assignment, timestamp handling, empty-note validation, and the
// asset-cleanup ordering contract.
type NoteService struct {
	notes  *notes.Repository
	prefs  *preferences.Store
	assets *assets.Manager
	log    logging.Logger

	// test seams
	now   func() time.Time
	newID func() string
}

func NewNoteService(repo *notes.Repository, prefs *preferences.Store, am *assets.Manager, log logging.Logger) *NoteService {
	return &NoteService{
		notes:  repo,
		prefs:  prefs,
		assets: am,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Save validates and persists a note for the user. A note whose title and
// body are both empty after trimming is rejected with common.ErrEmptyNote.
// New notes (empty id) get a generated id and a creation timestamp; edits
// keep the id and CreatedAt they arrive with. UpdatedAt is stamped on every
// save. The persisted note is returned.
func (s *NoteService) Save(ctx context.Context, username string, note models.Note) (models.Note, error) {
	if strings.TrimSpace(note.Title) == "" && strings.TrimSpace(note.Body) == "" {
		return models.Note{}, common.ErrEmptyNote
	}

	nowMillis := s.now().UnixMilli()
	if note.ID == "" {
		note.ID = s.newID()
		note.CreatedAt = nowMillis
	}
	note.UpdatedAt = nowMillis

	if !s.notes.Save(ctx, username, note) {
		return models.Note{}, fmt.Errorf("saving note %s: %w", note.ID, common.ErrInternal)
	}
	return note, nil
}

// Get finds a note by id in the user's collection.
func (s *NoteService) Get(ctx context.Context, username, noteID string) (models.Note, error) {
	for _, n := range s.notes.List(ctx, username) {
		if n.ID == noteID {
			return n, nil
		}
	}
	return models.Note{}, common.ErrNotFound
}

// Delete removes the note and then cleans up its image asset, if any.
// Asset cleanup is best-effort and does not affect the result.
func (s *NoteService) Delete(ctx context.Context, username string, note models.Note) bool {
	if !s.notes.Delete(ctx, username, note.ID) {
		return false
	}
	if note.ImageURI != "" {
		s.assets.Delete(ctx, note.ImageURI)
	}
	return true
}

// AttachImage imports the image at srcPath and swaps it into the note. The
// previous asset is deleted only after the import succeeded; a failed import
// leaves the note and its old asset untouched and returns an error. The
// caller is responsible for saving the returned note.
func (s *NoteService) AttachImage(ctx context.Context, note models.Note, srcPath string) (models.Note, error) {
	newPath := s.assets.Import(ctx, srcPath)
	if newPath == "" {
		return note, fmt.Errorf("importing image %s: %w", srcPath, common.ErrInternal)
	}

	if old := note.ImageURI; old != "" && old != newPath {
		s.assets.Delete(ctx, old)
	}
	note.ImageURI = newPath
	return note, nil
}

// RemoveImage deletes the note's asset and clears the reference. The caller
// is responsible for saving the returned note.
func (s *NoteService) RemoveImage(ctx context.Context, note models.Note) models.Note {
	if note.ImageURI != "" {
		s.assets.Delete(ctx, note.ImageURI)
		note.ImageURI = ""
	}
	return note
}

// List returns the user's notes filtered by query and ordered by sortOption.
// The query matches case-insensitively against title and body; an empty
// query matches everything.
func (s *NoteService) List(ctx context.Context, username, query string, sortOption models.SortOption) []models.Note {
	list := s.notes.List(ctx, username)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered := make([]models.Note, 0, len(list))
		for _, n := range list {
			if strings.Contains(strings.ToLower(n.Title), q) ||
				strings.Contains(strings.ToLower(n.Body), q) {
				filtered = append(filtered, n)
			}
		}
		list = filtered
	}

	sortNotes(list, sortOption)
	return list
}

// SortOptionFor returns the user's stored sort preference.
func (s *NoteService) SortOptionFor(ctx context.Context, username string) models.SortOption {
	return s.prefs.Get(ctx, username).SortOption
}

// SetSortOption stores the user's sort preference. Unknown options are
// rejected.
func (s *NoteService) SetSortOption(ctx context.Context, username string, opt models.SortOption) bool {
	if !opt.Valid() {
		return false
	}
	return s.prefs.Set(ctx, username, models.UserPreferences{SortOption: opt})
}

func sortNotes(list []models.Note, opt models.SortOption) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch opt {
		case models.SortOldest:
			return a.UpdatedAt < b.UpdatedAt
		case models.SortTitleAsc:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case models.SortTitleDesc:
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		default: // newest
			return a.UpdatedAt > b.UpdatedAt
		}
	})
}
