package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/bombuilder/pkg/errors"
)

var (
	// ErrorStyle renders fatal errors.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})

	// DetailStyle renders error details.
	DetailStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(2)
)

// ErrorDetails formats the details of a coded error, one "key: value"
// per line in key order. It returns "" when there are none.
func ErrorDetails(err error) string {
	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, details[k]))
	}
	return DetailStyle.Render(strings.Join(lines, "\n"))
}
