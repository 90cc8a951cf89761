package main

import (
	"fmt"

	"github.com/jonathan/airpower-calculator/internal/catalog"
	"github.com/jonathan/airpower-calculator/internal/config"
	"github.com/jonathan/airpower-calculator/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadSettings reads the config file named by --config, applies explicitly set
// global flags on top and fills the remaining gaps with defaults.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	flags := cmd.Flags()
	if flags.Changed("aircraft") {
		cfg.Aircraft = aircraftPath
	}
	if flags.Changed("ships") {
		cfg.Ships = shipsPath
	}
	if flags.Changed("types") {
		cfg.Types = typesPath
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cfg.Verbose && !verbose {
		built, err := buildLogger(true)
		if err != nil {
			return config.Config{}, err
		}
		_ = logger.Sync()
		logger = built
	}
	if configPath != "" {
		logger.Debug("loaded config", zap.String("path", configPath))
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadCatalog returns the types file catalog when one is configured, else the
// standard catalog.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Types == "" {
		return catalog.Standard(), nil
	}
	cat, err := catalog.LoadFile(cfg.Types)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded aircraft types", zap.String("path", cfg.Types), zap.Int("count", cat.Len()))
	return cat, nil
}

// loadRegistry builds the template registry from the configured files.
func loadRegistry(cfg config.Config) (*registry.Registry, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	reg, err := registry.Load(cat, cfg.Aircraft, cfg.Ships)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded templates",
		zap.Int("aircraft", len(reg.AircraftNames())),
		zap.Int("ships", len(reg.ShipNames())),
	)
	return reg, nil
}
