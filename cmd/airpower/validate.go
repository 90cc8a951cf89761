package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/airpower-calculator/internal/catalog"
	"github.com/jonathan/airpower-calculator/internal/config"
	"github.com/jonathan/airpower-calculator/internal/loadout"
	"github.com/jonathan/airpower-calculator/internal/registry"
	"github.com/jonathan/airpower-calculator/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an input file against its schema",
	Long: `Validates an aircraft types, aircraft templates, ship templates or loadout file.
Files are checked against the embedded JSON schema and then loaded, so unknown
aircraft types and duplicate codes are reported too.

With --schema the file is checked against a JSON schema on disk instead. The
schema path is looked up relative to the working directory and its parents.
--kind may be given as well to also load the file as that kind.`,
	RunE: runValidate,
}

var (
	validateKind   string
	validateFile   string
	validateSchema string
)

// validators loads a file of each kind; a nil error means the file is valid.
// Aircraft files resolve their types against the configured catalog.
var validators = map[string]func(cfg config.Config, path string) error{
	"types": func(_ config.Config, path string) error {
		_, err := catalog.LoadFile(path)
		return err
	},
	"aircraft": func(cfg config.Config, path string) error {
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		return registry.New(cat).LoadAircraftFile(path)
	},
	"ships": func(_ config.Config, path string) error {
		return registry.New(catalog.Standard()).LoadShipFile(path)
	},
	"loadout": func(_ config.Config, path string) error {
		_, err := loadout.LoadFile(path)
		return err
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "File kind: "+strings.Join(validatorKinds(), ", "))
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the file to validate (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to a JSON schema file to validate against")

	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateKind == "" && validateSchema == "" {
		return fmt.Errorf("either --kind or --schema is required")
	}

	var validateFn func(cfg config.Config, path string) error
	if validateKind != "" {
		fn, ok := validators[strings.ToLower(validateKind)]
		if !ok {
			return fmt.Errorf("unknown kind %q (want %s)", validateKind, strings.Join(validatorKinds(), ", "))
		}
		validateFn = fn
	}

	if _, err := os.Stat(validateFile); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", validateFile)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	label := validateKind
	out := cmd.OutOrStdout()
	if validateSchema != "" {
		schemaPath := schemas.ResolveSchemaPath(validateSchema)
		if schemaPath == "" {
			schemaPath = validateSchema
		}
		logger.Debug("validating against schema file", zap.String("schema", schemaPath), zap.String("file", validateFile))
		if label == "" {
			label = filepath.Base(schemaPath)
		}
		if err := schemas.ValidateJSON(schemaPath, validateFile); err != nil {
			return reportValidation(out, label, err)
		}
	}
	if validateFn != nil {
		if err := validateFn(cfg, validateFile); err != nil {
			return reportValidation(out, label, err)
		}
	}

	_, _ = fmt.Fprintf(out, "✓ %s is a valid %s file\n", validateFile, label)
	return nil
}

// reportValidation prints schema violations field by field and wraps err.
func reportValidation(out io.Writer, label string, err error) error {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		_, _ = fmt.Fprintf(out, "✗ %s is not a valid %s file:\n", validateFile, label)
		for _, fe := range schemaErr.Errors {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
		}
	}
	return fmt.Errorf("validation failed: %w", err)
}

func validatorKinds() []string {
	kinds := make([]string, 0, len(validators))
	for k := range validators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
