package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List aircraft types, aircraft templates and ship templates",
	Long: `Prints the names of the loaded templates and aircraft types. Without a
selection flag all three lists are printed.`,
	RunE: runCatalog,
}

var (
	catalogShips    bool
	catalogAircraft bool
	catalogTypes    bool
	catalogFormat   string
)

func init() {
	catalogCmd.Flags().BoolVar(&catalogShips, "list-ships", false, "List ship templates")
	catalogCmd.Flags().BoolVar(&catalogAircraft, "list-aircraft", false, "List aircraft templates")
	catalogCmd.Flags().BoolVar(&catalogTypes, "list-types", false, "List aircraft types")
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(catalogCmd)
}

// catalogListing is the json/yaml shape of the catalog command output.
type catalogListing struct {
	Types    any `json:"types,omitempty" yaml:"types,omitempty"`
	Aircraft any `json:"aircraft,omitempty" yaml:"aircraft,omitempty"`
	Ships    any `json:"ships,omitempty" yaml:"ships,omitempty"`
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	all := !catalogShips && !catalogAircraft && !catalogTypes
	dump := reg.Dump()
	out := cmd.OutOrStdout()

	switch strings.ToLower(catalogFormat) {
	case "json", "yaml":
		var listing catalogListing
		if all || catalogTypes {
			listing.Types = reg.Catalog().Entries()
		}
		if all || catalogAircraft {
			listing.Aircraft = dump.Aircraft
		}
		if all || catalogShips {
			listing.Ships = dump.Ships
		}
		return writeStructured(out, strings.ToLower(catalogFormat), listing)
	case "text":
	default:
		return fmt.Errorf("unsupported format: %s (want text, json or yaml)", catalogFormat)
	}

	if all || catalogTypes {
		_, _ = fmt.Fprintln(out, "Aircraft types:")
		for _, t := range reg.Catalog().Types() {
			_, _ = fmt.Fprintf(out, "  %-4s %-20s %s\n", t.Code, t.ID, t.Name)
		}
	}
	if all || catalogAircraft {
		_, _ = fmt.Fprintln(out, "Aircraft:")
		for _, a := range dump.Aircraft {
			typeID := a.Type
			if t, err := reg.Catalog().Lookup(a.Type); err == nil {
				typeID = t.ID
			}
			_, _ = fmt.Fprintf(out, "  %s (%s)\n", a.Name, typeID)
		}
	}
	if all || catalogShips {
		_, _ = fmt.Fprintln(out, "Ships:")
		for _, s := range dump.Ships {
			kind := "ship"
			if s.AirBase {
				kind = "air base"
			}
			_, _ = fmt.Fprintf(out, "  %s %v (%s)\n", s.Name, s.Slots, kind)
		}
	}
	return nil
}

// writeStructured encodes v as indented JSON or as YAML.
func writeStructured(out io.Writer, format string, v any) error {
	if format == "yaml" {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
