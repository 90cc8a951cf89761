package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/airpower-calculator/internal/loadout"
	"github.com/jonathan/airpower-calculator/internal/mastery"
	"github.com/jonathan/airpower-calculator/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the fighter power of one or more loadouts",
	Long: `Builds the fleet described by each loadout file and prints its fighter power.

Several loadouts are evaluated concurrently; results are printed in argument order.
--mode and --high-altitude override the values in every loadout.`,
	RunE: runCalc,
}

var (
	calcLoadouts     []string
	calcMode         string
	calcHighAltitude bool
	calcJSON         bool
	calcWorkers      int
)

func init() {
	calcCmd.Flags().StringSliceVarP(&calcLoadouts, "loadout", "l", nil, "Path to a loadout file (repeatable)")
	calcCmd.Flags().StringVarP(&calcMode, "mode", "m", "", "Mastery mode: sortie or airDefense")
	calcCmd.Flags().BoolVar(&calcHighAltitude, "high-altitude", false, "Apply the high-altitude revision")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the evaluations as JSON")
	calcCmd.Flags().IntVar(&calcWorkers, "workers", 4, "Maximum number of loadouts evaluated at once")

	if err := calcCmd.MarkFlagRequired("loadout"); err != nil {
		panic(fmt.Sprintf("failed to mark loadout flag as required: %v", err))
	}

	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, _ []string) error {
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
	var modeOverride string
	if cmd.Flags().Changed("mode") {
		parsed, err := mastery.ParseMode(calcMode)
		if err != nil {
			return err
		}
		modeOverride = string(parsed)
	}

	evaluations := make([]*loadout.Evaluation, len(calcLoadouts))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(calcWorkers, 1))
	for i, path := range calcLoadouts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			l, err := loadout.LoadFile(path)
			if err != nil {
				return err
			}
			if modeOverride != "" {
				l.Mode = modeOverride
			}
			if cmd.Flags().Changed("high-altitude") {
				l.HighAltitude = calcHighAltitude
			} else if cfg.HighAltitude {
				l.HighAltitude = true
			}
			if l.Name == "" {
				l.Name = path
			}

			eval, err := loadout.Evaluate(reg, l, loadout.Options{DefaultMode: defaultMode})
			if err != nil {
				return fmt.Errorf("failed to evaluate %s: %w", path, err)
			}
			logger.Debug("evaluated loadout",
				zap.String("path", path),
				zap.String("id", eval.ID),
				zap.Int("total", eval.Report.Total),
				zap.Int("warnings", len(eval.Warnings)),
			)
			evaluations[i] = eval
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if calcJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(evaluations)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		for _, eval := range evaluations {
			printer.PrintEvaluation(eval)
		}
		return nil
	}

	for _, eval := range evaluations {
		_, _ = fmt.Fprintf(out, "%s\t%s\t%d\n", eval.Name, eval.Report.Mode, eval.Report.Total)
		for _, w := range eval.Warnings {
			_, _ = fmt.Fprintf(out, "  warning: %s\n", w)
		}
	}
	return nil
}
