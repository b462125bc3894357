// Package lipgloss colours terminal output using charmbracelet/lipgloss.
package lipgloss

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/rfz"
	"github.com/muesli/termenv"
)

// Ensure Styler implements rfz.Styler at compile time.
var _ rfz.Styler = (*Styler)(nil)

// Palette uses the 16 basic ANSI colours so output stays readable on any
// terminal theme.
var (
	rfcColor   = lipgloss.Color("6") // cyan
	draftColor = lipgloss.Color("4") // blue
	dateColor  = lipgloss.Color("3") // yellow
)

// Styler highlights identifiers and summary labels.
type Styler struct {
	rfc   lipgloss.Style
	draft lipgloss.Style
	date  lipgloss.Style
	path  lipgloss.Style
	label lipgloss.Style
}

// NewStyler creates a Styler rendering for w. The colour profile is forced
// to ANSI: callers decide whether colour is wanted before constructing one.
func NewStyler(w io.Writer) *Styler {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return &Styler{
		rfc:   r.NewStyle().Foreground(rfcColor).Bold(true),
		draft: r.NewStyle().Foreground(draftColor),
		date:  r.NewStyle().Foreground(dateColor),
		path:  r.NewStyle().Faint(true),
		label: r.NewStyle().Bold(true),
	}
}

// Style implements rfz.Styler.
func (s *Styler) Style(field rfz.Field, m *rfz.Metadata, text string) string {
	switch field {
	case rfz.FieldID:
		switch m.Kind {
		case rfz.KindRFC:
			return s.rfc.Render(text)
		case rfz.KindDraft:
			return s.draft.Render(text)
		}
	case rfz.FieldDate:
		return s.date.Render(text)
	case rfz.FieldPath:
		return s.path.Render(text)
	case rfz.FieldLabel:
		return s.label.Render(text)
	}
	return text
}
