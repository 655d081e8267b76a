// Package cli implements the command-line interface for revenge.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/revenge/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	statePath string
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "revenge",
	Short: "4x4 cube simulator",
	Long: `revenge - A terminal simulator for the 4x4x4 cube.

Scramble a cube, apply moves in standard notation (R, U', F2, Rw, ...),
undo them, and pick up where you left off: the active game is saved to a
local SQLite database after every burst of moves.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.revenge/revenge.db)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "State file path (default: ~/.revenge/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if statePath != "" {
		cfg.StatePath = statePath
	}
	return cfg, nil
}

// newLogger returns the logger for persistence failures.
// Without --verbose they are dropped.
func newLogger(w io.Writer) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "[REVENGE] ", log.LstdFlags)
}
