// Package main provides the airpower CLI for fighter-power calculations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath   string
	aircraftPath string
	shipsPath    string
	typesPath    string
	verbose      bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "airpower",
	Short: "Air-power calculator for ships and land-based air squadrons",
	Long: `airpower computes the fighter-power (mastery) score of ships and air bases
from the aircraft equipped in their slots, in sortie or air-defense mode.

Aircraft and ship templates are loaded from JSON or YAML files. Settings can be
loaded from a config file using --config; command-line flags override it.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&aircraftPath, "aircraft", "", "Path to the aircraft templates file")
	rootCmd.PersistentFlags().StringVar(&shipsPath, "ships", "", "Path to the ship templates file")
	rootCmd.PersistentFlags().StringVar(&typesPath, "types", "", "Path to an aircraft types file replacing the standard catalog")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

// setupLogger builds the process logger from --verbose. A config file that turns
// verbose on rebuilds it later in loadSettings.
func setupLogger(_ *cobra.Command, _ []string) error {
	built, err := buildLogger(verbose)
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// buildLogger returns a debug-level console logger when verbose, else the
// production logger. Both write to stderr.
func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}

	built, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return built, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
