package schemas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of an input document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension; anything that is not
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeFile reads a JSON or YAML file, validates it against the named embedded
// schema and unmarshals it into out.
func DecodeFile(path, schemaName string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Decode(content, FormatFromPath(path), schemaName, out)
}

// Decode validates content against the named embedded schema and unmarshals it into
// out. YAML content is converted to JSON first so both formats share one schema.
func Decode(content []byte, format Format, schemaName string, out any) error {
	jsonContent := content
	if format == FormatYAML {
		converted, err := yamlToJSON(content)
		if err != nil {
			return err
		}
		jsonContent = converted
	}

	if !json.Valid(jsonContent) {
		return fmt.Errorf("failed to parse JSON: invalid syntax")
	}

	if err := ValidateDocument(schemaName, jsonContent); err != nil {
		return err
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonContent))
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}

func yamlToJSON(content []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return out, nil
}
