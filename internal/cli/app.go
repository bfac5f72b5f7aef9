package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"notekeeper/internal/assets"
	"notekeeper/internal/auth"
	"notekeeper/internal/config"
	"notekeeper/internal/logging"
	"notekeeper/internal/services"
	"notekeeper/internal/storage"
)

type App struct {
	config *config.Config
	log    logging.Logger
	repos  *storage.Repositories
	auth   *auth.Service
	notes  *services.NoteService

	userName string
	reader   *bufio.Reader
	out      *os.File
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(cfg.LogLevel)

	if err := os.MkdirAll(cfg.DataDir, 0o770); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	repos, err := storage.InitDatabase(ctx, filepath.Join(cfg.DataDir, cfg.DatabaseFile), log)
	if err != nil {
		log.Error(ctx, "initializing database failed", "error", err)
		return nil, err
	}

	am := assets.NewManager(cfg.DataDir, log)
	noteService := services.NewNoteService(repos.Notes, repos.Preferences, am, log)
	authService := auth.NewService(repos.Credentials, log)

	app := &App{
		config: cfg,
		log:    log,
		repos:  repos,
		auth:   authService,
		notes:  noteService,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	// the persisted session decides the initial state
	app.userName = authService.CurrentUser(ctx)

	// keep the prompt in sync with session changes
	authService.Subscribe(func(loggedIn bool) {
		if !loggedIn {
			app.userName = ""
		}
	})

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.repos.Close() }()
	a.Root(ctx)
}
