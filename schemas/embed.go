// Package schemas embeds the JSON Schema documents for every input file format.
package schemas

import "embed"

// FS holds the *.schema.json files of this directory.
//
//go:embed *.schema.json
var FS embed.FS

// File names of the embedded schemas.
const (
	AircraftTypes     = "aircraft_types.schema.json"
	AircraftTemplates = "aircraft_templates.schema.json"
	ShipTemplates     = "ship_templates.schema.json"
	Loadout           = "loadout.schema.json"
)

// Names lists every embedded schema file.
var Names = []string{AircraftTypes, AircraftTemplates, ShipTemplates, Loadout}
