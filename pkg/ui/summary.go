package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bombuilder/pkg/attach"
	"github.com/arthur-debert/bombuilder/pkg/convergence"
	"github.com/arthur-debert/bombuilder/pkg/core"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// BuildSummary describes a GenerateBom result.
func BuildSummary(result *core.Result) string {
	var b strings.Builder
	m := result.Manifest

	fmt.Fprintf(&b, "# BOM %s\n\n", m.Coordinate())
	if result.DryRun {
		fmt.Fprintf(&b, "Dry run: would write `%s`\n\n", result.OutputPath)
	} else {
		fmt.Fprintf(&b, "Wrote `%s`\n\n", result.OutputPath)
	}

	fmt.Fprintf(&b, "| | count |\n|---|---|\n")
	fmt.Fprintf(&b, "| collected | %d |\n", result.Collected)
	fmt.Fprintf(&b, "| managed | %d |\n", result.Included)
	fmt.Fprintf(&b, "| excluded | %d |\n", result.Excluded)
	fmt.Fprintf(&b, "| not included | %d |\n", result.NotIncluded)
	fmt.Fprintf(&b, "| properties | %d |\n\n", m.Properties.Len())

	if m.Parent != nil {
		fmt.Fprintf(&b, "Parent: `%s:%s:%s`\n\n", m.Parent.GroupID, m.Parent.ArtifactID, m.Parent.Version)
	}
	b.WriteString(attachLine(result.Decision))
	writeConflicts(&b, result.Conflicts)
	return b.String()
}

// InspectSummary describes an InspectGraph result.
func InspectSummary(result *core.InspectResult) string {
	var b strings.Builder

	b.WriteString("# Module graph\n\n")
	current := "none"
	if result.Current != nil {
		current = result.Current.Key()
	}
	fmt.Fprintf(&b, "%d modules, current: `%s`\n\n", result.Modules, current)

	writeCoordinates(&b, "Managed", result.Kept)
	writeCoordinates(&b, "Excluded", result.Excluded)
	writeCoordinates(&b, "Not included", result.NotIncluded)
	writeConflicts(&b, result.Conflicts)
	return b.String()
}

func attachLine(d attach.Decision) string {
	switch d.Mode {
	case attach.ModeClassified:
		return fmt.Sprintf("Attached with classifier `%s`\n\n", d.Classifier)
	case attach.ModeReplace:
		return "Replaces the module POM\n\n"
	default:
		return "Not attached\n\n"
	}
}

func writeCoordinates(b *strings.Builder, title string, coords []types.Coordinate) {
	if len(coords) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s (%d)\n\n", title, len(coords))
	for _, c := range coords {
		fmt.Fprintf(b, "- `%s`\n", c)
	}
	b.WriteString("\n")
}

func writeConflicts(b *strings.Builder, conflicts []convergence.Conflict) {
	if len(conflicts) == 0 {
		return
	}
	fmt.Fprintf(b, "## Version conflicts (%d)\n\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Fprintf(b, "- `%s`: %s\n", c.Key(), strings.Join(c.Versions, ", "))
	}
	b.WriteString("\n")
}
