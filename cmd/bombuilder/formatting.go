package bombuilder

import (
	"os"
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bombuilder/pkg/ui"
)

// styledHelp reports whether help output gets pterm styling. It follows
// the same NO_COLOR and terminal rules as run summaries.
func styledHelp() bool {
	return ui.DetectFormat(os.Stdout) == ui.FormatTerminal
}

func formatBold(s string) string {
	if !styledHelp() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  formatBold,
		"upper": strings.ToUpper,
		"boldUpper": func(s string) string {
			return formatBold(strings.ToUpper(s))
		},
	})
}
