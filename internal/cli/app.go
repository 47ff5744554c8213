package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"bookfinder/internal/auth"
	"bookfinder/internal/catalog"
	"bookfinder/internal/config"
	"bookfinder/internal/platform/googlebooks"
	"bookfinder/internal/platform/localstore"
	"bookfinder/internal/review"
	"bookfinder/internal/session"
	"bookfinder/internal/state"
)

// App bundles the configured store tree with the resources it owns.
// Commands build one per invocation and close it when done.
type App struct {
	Config  config.Config
	Store   *state.Store
	Books   *googlebooks.Client
	durable *localstore.SQLiteKV
}

func openApp(opts *RootOptions) (*App, error) {
	cfg := config.Load()
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %s: %w", cfg.DataDir, err)
	}
	durable, err := localstore.OpenSQLite(filepath.Join(cfg.DataDir, "bookfinder.db"))
	if err != nil {
		return nil, fmt.Errorf("cannot open local store: %w", err)
	}

	books := googlebooks.NewClient(cfg.APIBaseURL, cfg.APIKey, cfg.SearchRPS, cfg.SearchRetries, cfg.RequestTimeout)

	store := state.New(state.Deps{
		Session: session.NewStore(auth.NewService(), durable, localstore.NewMemory(), cfg.SessionSecret),
		Catalog: catalog.NewStore(books, cfg.PageSize),
		Reviews: review.NewStore(durable),
	})
	store.RestoreSession()

	return &App{
		Config:  cfg,
		Store:   store,
		Books:   books,
		durable: durable,
	}, nil
}

func (a *App) Close() error {
	return a.durable.Close()
}
