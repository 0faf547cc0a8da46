package render

import (
	"io"
	"strings"

	"eca/internal/rule"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Terminal prints each generation as one line of colored glyphs.
type Terminal struct {
	out    io.Writer
	lg     *lipgloss.Renderer
	glyphs []string
	styles map[string]lipgloss.Style
	line   strings.Builder
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithGlyphs sets the glyph drawn for each state; state s uses
// glyphs[s % len(glyphs)].
func WithGlyphs(glyphs ...string) TerminalOption {
	return func(t *Terminal) {
		if len(glyphs) > 0 {
			t.glyphs = glyphs
		}
	}
}

// WithColorProfile overrides the color profile detected from the writer.
func WithColorProfile(p termenv.Profile) TerminalOption {
	return func(t *Terminal) { t.lg.SetColorProfile(p) }
}

// Default glyph sets. Colored output draws solid blocks and lets the palette
// tell states apart; plain output prints each state's digit.
var (
	blockGlyphs = []string{"█"}
	digitGlyphs = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
)

// NewTerminal returns a Terminal writing to out. Without WithGlyphs the
// glyphs follow the color profile: blocks when colors are available, state
// digits otherwise.
func NewTerminal(out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		out:    out,
		lg:     lipgloss.NewRenderer(out),
		styles: map[string]lipgloss.Style{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.glyphs == nil {
		t.glyphs = blockGlyphs
		if t.lg.ColorProfile() == termenv.Ascii {
			t.glyphs = digitGlyphs
		}
	}
	return t
}

// Render writes cells as a single line. Runs of equal states share one
// styled span.
func (t *Terminal) Render(_ int, cells []rule.State, palette Palette) error {
	t.line.Reset()
	for i := 0; i < len(cells); {
		j := i + 1
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		glyph := t.glyphs[int(cells[i])%len(t.glyphs)]
		t.line.WriteString(t.style(palette.Hex(cells[i])).Render(strings.Repeat(glyph, j-i)))
		i = j
	}
	t.line.WriteByte('\n')
	_, err := io.WriteString(t.out, t.line.String())
	return err
}

func (t *Terminal) style(hex string) lipgloss.Style {
	if s, ok := t.styles[hex]; ok {
		return s
	}
	s := t.lg.NewStyle().Foreground(lipgloss.Color(hex))
	t.styles[hex] = s
	return s
}
