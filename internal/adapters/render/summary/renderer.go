// Package summary prints the session, its line and its inbox for
// non-interactive commands.
package summary

import (
	"fmt"
	"io"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Renderer styles for one output. The color profile is detected on that
// output, so piping the summary yields plain text.
type Renderer struct {
	out    io.Writer
	styles styles
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, styles: newStyles(lipgloss.NewRenderer(out))}
}

func (r *Renderer) Render(session domain.Session, opts RenderOptions) string {
	return renderView(session, opts, r.styles)
}

func (r *Renderer) Write(session domain.Session, opts RenderOptions) error {
	if _, err := fmt.Fprintln(r.out, r.Render(session, opts)); err != nil {
		return fmt.Errorf("write session summary: %w", err)
	}

	return nil
}
