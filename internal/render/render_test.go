package render

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"eca/internal/rule"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	require.Len(t, p, rule.MaxStates)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, p.Color(0))
	assert.Equal(t, "#0000ff", p.Hex(1))
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#000000", "#ff8000"})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, A: 0xff}, p.Color(1))
	// Uncovered states clamp to the last color.
	assert.Equal(t, p.Color(1), p.Color(7))

	_, err = ParsePalette([]string{"#000000", "teal"})
	assert.Error(t, err)

	p, err = ParsePalette(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), p)
}

func TestFillRGBA(t *testing.T) {
	p := Palette{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	buf := make([]byte, 12)
	fillRGBA(buf, []uint8{1, 0, 9}, p)
	assert.Equal(t, []byte{5, 6, 7, 8, 1, 2, 3, 4, 5, 6, 7, 8}, buf)

	fillRGBA(buf, []uint8{1, 0, 1}, nil)
	assert.Equal(t, make([]byte, 12), buf)
}

func TestTerminalPlain(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, WithGlyphs(".", "#"), WithColorProfile(termenv.Ascii))

	require.NoError(t, term.Render(0, []rule.State{0, 1, 1, 0, 0}, DefaultPalette()))
	require.NoError(t, term.Render(1, []rule.State{1, 1, 0, 0, 0}, DefaultPalette()))
	assert.Equal(t, ".##..\n##...\n", out.String())
}

func TestTerminalColored(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, WithColorProfile(termenv.TrueColor))

	require.NoError(t, term.Render(0, []rule.State{0, 1}, DefaultPalette()))
	assert.Contains(t, out.String(), "\x1b[")
	assert.Equal(t, 2, strings.Count(out.String(), "█"))
}

func TestTerminalDefaultGlyphsWithoutColor(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, WithColorProfile(termenv.Ascii))

	require.NoError(t, term.Render(0, []rule.State{0, 1, 0, 2, 2}, DefaultPalette()))
	assert.Equal(t, "01022\n", out.String())
}

func TestTerminalDetectsPlainWriter(t *testing.T) {
	// A buffer is not a terminal, so no colors and no blocks.
	var out bytes.Buffer
	term := NewTerminal(&out)

	require.NoError(t, term.Render(0, []rule.State{1, 0, 0}, DefaultPalette()))
	assert.Equal(t, "100\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTerminalPropagatesWriteErrors(t *testing.T) {
	term := NewTerminal(failingWriter{})
	assert.Error(t, term.Render(0, []rule.State{1}, DefaultPalette()))
}

func TestMulti(t *testing.T) {
	var seen []int
	rec := RendererFunc(func(gen int, _ []rule.State, _ Palette) error {
		seen = append(seen, gen)
		return nil
	})
	boom := errors.New("boom")
	fail := RendererFunc(func(int, []rule.State, Palette) error { return boom })

	require.NoError(t, Multi(rec, nil, Discard, rec).Render(3, nil, nil))
	assert.Equal(t, []int{3, 3}, seen)

	assert.ErrorIs(t, Multi(fail, rec).Render(4, nil, nil), boom)
	assert.Equal(t, []int{3, 3}, seen)
}

func TestStats(t *testing.T) {
	s := NewStats()
	assert.Empty(t, s.Plot("density"))

	require.NoError(t, s.Render(0, []rule.State{0, 1, 0, 1}, nil))
	require.NoError(t, s.Render(1, []rule.State{1, 1, 1, 1}, nil))
	require.NoError(t, s.Render(2, []rule.State{0, 2, 0, 0}, nil))
	assert.Equal(t, []float64{0.5, 1, 0.25}, s.Densities())

	plot := s.Plot("density")
	assert.Contains(t, plot, "density")
	assert.Contains(t, plot, "1.00")
}
