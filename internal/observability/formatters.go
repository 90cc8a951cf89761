// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/airpower-calculator/internal/loadout"
	"github.com/jonathan/airpower-calculator/internal/mastery"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxWarningsToShow is the default number of warnings to display
	maxWarningsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		runes := []rune(s)
		return string(runes[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

// PrintShipReport outputs the slot breakdown of one ship.
func (p *Printer) PrintShipReport(ship mastery.ShipReport) {
	title := ship.Name
	switch {
	case ship.Unassigned:
		title = "(no ship)"
	case ship.AirBase:
		title += " [air base]"
	}

	var sb strings.Builder
	for _, slot := range ship.Slots {
		name := "-"
		if slot.Aircraft != "" {
			name = slot.Aircraft
			if slot.SuppressSkillBonus {
				name += " (no bonus)"
			}
		}
		sb.WriteString(fmt.Sprintf("[%d] %3d  %s → %d\n", slot.SlotNo, slot.Capacity, name, slot.Score))
	}
	if len(ship.Slots) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Slot sum:  %d\n", ship.Raw))
	if ship.AirBase {
		sb.WriteString(fmt.Sprintf("Scouting:  x%.3g\n", ship.ScoutingRevision))
		if ship.HighAltitudeRevision != 1 {
			sb.WriteString(fmt.Sprintf("High alt:  x%.2g (%d rockets)\n", ship.HighAltitudeRevision, ship.RocketCount))
		}
	}
	sb.WriteString(fmt.Sprintf("Score:     %d", ship.Score))

	p.printBox(title, sb.String())
}

// PrintReport outputs every ship followed by the fleet totals.
func (p *Printer) PrintReport(report *mastery.Report) {
	if report == nil {
		return
	}

	for _, ship := range report.Ships {
		p.PrintShipReport(ship)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode:      %s\n", report.Mode))
	sb.WriteString(fmt.Sprintf("Subtotal:  %d\n", report.Subtotal))
	if report.HighAltitude {
		sb.WriteString(fmt.Sprintf("High alt:  x%.2g (%d rockets)\n", report.HighAltitudeRevision, report.RocketCount))
	}
	sb.WriteString(fmt.Sprintf("Total:     %d", report.Total))

	p.printBox("FLEET MASTERY", sb.String())
}

// PrintWarnings outputs the entries skipped while building a loadout.
func (p *Printer) PrintWarnings(warnings []loadout.Warning) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(warnings), maxWarningsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", warnings[i]))
	}
	if len(warnings) > maxWarningsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(warnings)-maxWarningsToShow))
	}

	p.printBox("WARNINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the warnings and report of a loadout evaluation.
func (p *Printer) PrintEvaluation(eval *loadout.Evaluation) {
	if eval == nil {
		return
	}
	p.PrintWarnings(eval.Warnings)
	p.PrintReport(eval.Report)
}
