// Package statefile remembers which game is active between runs.
package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppState represents the persistent application state.
type AppState struct {
	DBPath       string `json:"db_path,omitempty"`
	ActiveGameID string `json:"active_game_id,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultPath returns the state file path inside dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, "state.json")
}

// New creates a state file manager, loading the file if it exists.
func New(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	// Try to load existing state
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetDBPath sets the database path.
func (sf *StateFile) SetDBPath(path string) error {
	sf.state.DBPath = path
	return sf.Save()
}

// SetActiveGame sets the active game ID.
func (sf *StateFile) SetActiveGame(gameID string) error {
	sf.state.ActiveGameID = gameID
	return sf.Save()
}

// ClearActiveGame clears the active game ID.
func (sf *StateFile) ClearActiveGame() error {
	sf.state.ActiveGameID = ""
	return sf.Save()
}

// HasActiveGame returns true if there is an active game.
func (sf *StateFile) HasActiveGame() bool {
	return sf.state.ActiveGameID != ""
}

// ActiveGameID returns the active game ID.
func (sf *StateFile) ActiveGameID() string {
	return sf.state.ActiveGameID
}
