// Package ui renders run summaries. Summaries are built as markdown and
// either printed as-is or rendered for the terminal with glamour.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
)

// Renderer writes markdown documents in one output format.
type Renderer struct {
	format Format
	output io.Writer
	// Style is a glamour style name or path; empty means auto-detect.
	Style string
	// Width wraps terminal output; 0 keeps glamour's default.
	Width int
}

// NewRenderer creates a renderer. FormatAuto is resolved against output
// when it is a file, and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}
	return &Renderer{format: format, output: output}
}

// Format returns the resolved output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes markdown to the output.
func (r *Renderer) Render(markdown string) error {
	content := markdown
	if r.format == FormatTerminal {
		rendered, err := r.renderTerminal(markdown)
		if err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
		content = rendered
	}
	_, err := io.WriteString(r.output, content)
	return err
}

func (r *Renderer) renderTerminal(markdown string) (string, error) {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
