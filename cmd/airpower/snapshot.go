package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/airpower-calculator/internal/loadout"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the structure of the fleet built from a loadout",
	Long: `Builds the fleet described by a loadout file and prints one snapshot per ship:
slot capacities, equipped aircraft and skill-bonus flags. Scores are not included.`,
	RunE: runSnapshot,
}

var (
	snapshotLoadout string
	snapshotFormat  string
)

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotLoadout, "loadout", "l", "", "Path to a loadout file (required)")
	snapshotCmd.Flags().StringVarP(&snapshotFormat, "format", "f", "json", "Output format: json or yaml")

	if err := snapshotCmd.MarkFlagRequired("loadout"); err != nil {
		panic(fmt.Sprintf("failed to mark loadout flag as required: %v", err))
	}

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(snapshotFormat)
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format: %s (want json or yaml)", snapshotFormat)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	defaultMode, err := cfg.ParsedMode()
	if err != nil {
		return err
	}

	l, err := loadout.LoadFile(snapshotLoadout)
	if err != nil {
		return err
	}
	plan, err := loadout.Build(reg, l, loadout.Options{DefaultMode: defaultMode})
	if err != nil {
		return err
	}

	for _, w := range plan.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return writeStructured(cmd.OutOrStdout(), format, plan.Fleet.Snapshot())
}
