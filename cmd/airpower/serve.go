package main

import (
	"fmt"

	"github.com/jonathan/airpower-calculator/internal/config"
	"github.com/jonathan/airpower-calculator/internal/server"
	"github.com/jonathan/airpower-calculator/internal/server/ratelimit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that lists the loaded templates and scores loadouts posted
to /mastery. Setting AIRPOWER_JWT_SECRET (or jwt_secret in the config file) requires
a bearer token on /mastery.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	defaultMode, err := cfg.ParsedMode()
	if err != nil {
		return err
	}

	jwtConfig, err := config.NewJWTConfig(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}
	if !jwtConfig.Enabled() {
		logger.Warn("no JWT secret configured, /mastery is unauthenticated")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		Registry:    reg,
		DefaultMode: defaultMode,
		JWT:         jwtConfig,
		RateLimit:   ratelimit.LoadConfig(cfg.RateLimitPerMinute),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("templates loaded",
		zap.Int("aircraft", len(reg.AircraftNames())),
		zap.Int("ships", len(reg.ShipNames())),
		zap.String("default_mode", string(defaultMode)),
	)
	return srv.Start(cmd.Context())
}
