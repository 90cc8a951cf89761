package main

import (
	"fmt"

	"github.com/jonathan/airpower-calculator/internal/config"
	"github.com/jonathan/airpower-calculator/internal/server"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the REST API",
	Long:  `Signs an HS256 token with the configured JWT secret for use with POST /mastery.`,
	RunE:  runToken,
}

var (
	tokenSubject string
)

func init() {
	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "", "Token subject (required)")

	if err := tokenCmd.MarkFlagRequired("subject"); err != nil {
		panic(fmt.Sprintf("failed to mark subject flag as required: %v", err))
	}

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	jwtConfig, err := config.NewJWTConfig(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}
	if !jwtConfig.Enabled() {
		return fmt.Errorf("no JWT secret configured: set AIRPOWER_JWT_SECRET or jwt_secret in the config file")
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(tokenSubject)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
