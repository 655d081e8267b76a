package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/SeamusWaldron/revenge"
	"github.com/SeamusWaldron/revenge/internal/config"
	"github.com/SeamusWaldron/revenge/internal/statefile"
	"github.com/SeamusWaldron/revenge/internal/storage"
)

// game bundles the resources behind the active game.
type game struct {
	cfg       config.Config
	logger    *log.Logger
	db        *storage.DB
	stateFile *statefile.StateFile
	store     *storage.GameStore
	session   *revenge.Session

	// replaced is the previously active game when a new one was created.
	replaced string
}

// openGame opens the database, resolves the active game and restores it.
// With fresh set, or when no usable active game exists, a new game is created.
func openGame(ctx context.Context, cfg config.Config, logger *log.Logger, fresh bool) (*game, error) {
	sf, err := openStateFile(cfg)
	if err != nil {
		return nil, err
	}

	db, err := openDB(cfg, sf)
	if err != nil {
		return nil, err
	}

	g := &game{cfg: cfg, logger: logger, db: db, stateFile: sf}

	gameID := sf.ActiveGameID()
	if gameID != "" && !fresh {
		saved, err := storage.NewGameRepository(db).Get(ctx, gameID)
		if err != nil {
			db.Close()
			return nil, err
		}
		if saved == nil {
			logger.Printf("active game %s not found, starting a new one", gameID)
			gameID = ""
		}
	}

	if gameID == "" || fresh {
		gameID, err = g.create(ctx)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	g.start(ctx, gameID)
	return g, nil
}

// create adds a new game row and makes it the active game.
func (g *game) create(ctx context.Context) (string, error) {
	id, err := storage.NewGameRepository(g.db).Create(ctx, g.cfg.Size)
	if err != nil {
		return "", err
	}
	g.replaced = g.stateFile.ActiveGameID()
	if err := g.stateFile.SetActiveGame(id); err != nil {
		return "", fmt.Errorf("failed to save state: %w", err)
	}
	return id, nil
}

// start restores or scrambles the game with the given ID.
func (g *game) start(ctx context.Context, gameID string) {
	g.store = storage.NewGameStore(g.db, gameID)
	g.session = revenge.NewSession(ctx,
		revenge.WithStore(g.store),
		revenge.WithLogger(g.logger),
		revenge.WithSize(g.cfg.Size),
		revenge.WithScrambleLength(g.cfg.ScrambleLength),
		revenge.WithSaveDebounce(g.cfg.SaveDebounce),
		revenge.WithSaveAttempts(g.cfg.SaveAttempts),
	)
}

// restart closes the current session and starts a new game in its place,
// so every game keeps its own move log.
func (g *game) restart(ctx context.Context) error {
	if err := g.session.Close(ctx); err != nil {
		g.logger.Printf("closing game %s: %v", g.store.GameID(), err)
	}
	id, err := g.create(ctx)
	if err != nil {
		return err
	}
	g.start(ctx, id)
	return nil
}

// Close flushes the session and closes the database.
func (g *game) Close(ctx context.Context) error {
	err := g.session.Close(ctx)
	if cerr := g.db.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// openStateFile opens the pointer file from the config or the default location.
func openStateFile(cfg config.Config) (*statefile.StateFile, error) {
	path := cfg.StatePath
	if path == "" {
		dir, err := storage.DefaultDir()
		if err != nil {
			return nil, err
		}
		path = statefile.DefaultPath(dir)
	}

	sf, err := statefile.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return sf, nil
}

// openDB opens and migrates the database. The path comes from the config,
// then the state file, then the default location.
func openDB(cfg config.Config, sf *statefile.StateFile) (*storage.DB, error) {
	path := cfg.DBPath
	if path == "" {
		path = sf.State().DBPath
	}

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if sf.State().DBPath != db.Path() {
		if err := sf.SetDBPath(db.Path()); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to save state: %w", err)
		}
	}

	return db, nil
}
