package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notekeeper/internal/common"
	"notekeeper/internal/models"
)

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return false
	}
	return true
}

func (a *App) List(ctx context.Context, query string) {
	if !a.requireLogin() {
		return
	}

	sortOption := a.notes.SortOptionFor(ctx, a.userName)
	list := a.notes.List(ctx, a.userName, query, sortOption)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notes")
		return
	}

	for _, n := range list {
		marker := " "
		if n.ImageURI != "" {
			marker = "*"
		}
		updated := time.UnixMilli(n.UpdatedAt).Format("2006-01-02 15:04")
		fmt.Fprintf(a.out, "%s  %s%s  %s\n", n.ID, marker, n.Title, updated)
	}
}

func (a *App) Show(ctx context.Context, id string) {
	if !a.requireLogin() {
		return
	}

	note, err := a.notes.Get(ctx, a.userName, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Note not found")
			return
		}
		a.log.Error(ctx, "loading note failed", "note_id", id, "error", err)
		return
	}

	fmt.Fprintf(a.out, "Title: %s\n", note.Title)
	if note.ImageURI != "" {
		fmt.Fprintf(a.out, "Image: %s\n", note.ImageURI)
	}
	fmt.Fprintf(a.out, "Created: %s\n", time.UnixMilli(note.CreatedAt).Format(time.RFC1123))
	fmt.Fprintf(a.out, "Updated: %s\n", time.UnixMilli(note.UpdatedAt).Format(time.RFC1123))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, note.Body)
}

func (a *App) Add(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	title, err := GetSimpleText(a.reader, "- Enter title", a.out)
	if err != nil {
		a.log.Error(ctx, "reading input failed", "error", err)
		return
	}

	body, err := GetMultiline(a.reader, "- Enter note text (empty line to finish):", a.out)
	if err != nil {
		a.log.Error(ctx, "reading input failed", "error", err)
		return
	}

	saved, err := a.notes.Save(ctx, a.userName, models.Note{Title: title, Body: body})
	if err != nil {
		if errors.Is(err, common.ErrEmptyNote) {
			fmt.Fprintln(a.out, "Note cannot be empty")
			return
		}
		a.log.Error(ctx, "saving note failed", "error", err)
		return
	}

	fmt.Fprintf(a.out, "Saved note %s\n", saved.ID)
}

func (a *App) Edit(ctx context.Context, id string) {
	if !a.requireLogin() {
		return
	}

	note, err := a.notes.Get(ctx, a.userName, id)
	if err != nil {
		fmt.Fprintln(a.out, "Note not found")
		return
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("- Enter title (empty keeps %q)", note.Title), a.out)
	if err != nil {
		a.log.Error(ctx, "reading input failed", "error", err)
		return
	}
	if title != "" {
		note.Title = title
	}

	body, err := GetMultiline(a.reader, "- Enter note text (empty line keeps current):", a.out)
	if err != nil {
		a.log.Error(ctx, "reading input failed", "error", err)
		return
	}
	if body != "" {
		note.Body = body
	}

	if _, err := a.notes.Save(ctx, a.userName, note); err != nil {
		a.log.Error(ctx, "saving note failed", "note_id", id, "error", err)
		return
	}
	fmt.Fprintln(a.out, "Saved")
}

func (a *App) Delete(ctx context.Context, id string) {
	if !a.requireLogin() {
		return
	}

	note, err := a.notes.Get(ctx, a.userName, id)
	if err != nil {
		fmt.Fprintln(a.out, "Note not found")
		return
	}

	if !a.notes.Delete(ctx, a.userName, note) {
		fmt.Fprintln(a.out, "Delete failed")
		return
	}
	fmt.Fprintln(a.out, "Deleted")
}

func (a *App) Attach(ctx context.Context, id, path string) {
	if !a.requireLogin() {
		return
	}

	note, err := a.notes.Get(ctx, a.userName, id)
	if err != nil {
		fmt.Fprintln(a.out, "Note not found")
		return
	}

	// import the new image before touching the old one; a failed import
	// must leave the previous asset in place
	note, err = a.notes.AttachImage(ctx, note, path)
	if err != nil {
		fmt.Fprintln(a.out, "Attaching image failed")
		return
	}

	if _, err := a.notes.Save(ctx, a.userName, note); err != nil {
		a.log.Error(ctx, "saving note failed", "note_id", id, "error", err)
		return
	}
	fmt.Fprintf(a.out, "Attached %s\n", note.ImageURI)
}

func (a *App) Detach(ctx context.Context, id string) {
	if !a.requireLogin() {
		return
	}

	note, err := a.notes.Get(ctx, a.userName, id)
	if err != nil {
		fmt.Fprintln(a.out, "Note not found")
		return
	}
	if note.ImageURI == "" {
		fmt.Fprintln(a.out, "Note has no image")
		return
	}

	note = a.notes.RemoveImage(ctx, note)
	if _, err := a.notes.Save(ctx, a.userName, note); err != nil {
		a.log.Error(ctx, "saving note failed", "note_id", id, "error", err)
		return
	}
	fmt.Fprintln(a.out, "Image removed")
}

func (a *App) Sort(ctx context.Context, opt string) {
	if !a.requireLogin() {
		return
	}

	if !a.notes.SetSortOption(ctx, a.userName, models.SortOption(opt)) {
		fmt.Fprintln(a.out, "Unknown sort option (newest, oldest, titleAsc, titleDesc)")
		return
	}
	fmt.Fprintf(a.out, "Sorting by %s\n", opt)
}
