// Package cli implements the command-line interface for cubie.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubie/internal/config"
	"github.com/seamusw/cubie/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubie",
	Short: "Cubie-model Rubik's cube tool",
	Long: `cubie - a piece-based Rubik's cube engine.

Scramble and manipulate a virtual 3x3 cube from the command line, keep a
history of scrambles, or play interactively in the terminal.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubie/cubie.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubie/config.yaml)")
}

// loadConfig loads the YAML config from the flag path or the default
// location.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

// openDB opens the scramble history database, honoring --db, then the
// config file, then the default path.
func openDB(cfg *config.Config) (*storage.DB, error) {
	switch {
	case dbPath != "":
		return storage.Open(dbPath)
	case cfg.Database.Path != "":
		return storage.Open(cfg.Database.Path)
	default:
		return storage.OpenDefault()
	}
}
