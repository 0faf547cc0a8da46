package render

import (
	"fmt"
	"image/color"

	"eca/internal/rule"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// defaultHex colors state 0 white and state 1 blue; further states follow.
var defaultHex = []string{
	"#ffffff", "#0000ff", "#ff0000", "#00aa00", "#ffaa00",
	"#aa00ff", "#00aaaa", "#888888", "#000000", "#ff66cc",
}

// Palette maps each state to a color.
type Palette []color.RGBA

// DefaultPalette returns the palette used when none is configured.
func DefaultPalette() Palette {
	p, err := ParsePalette(defaultHex)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette converts hex colors ("#rgb" or "#rrggbb") into a Palette. An
// empty list yields the default palette.
func ParsePalette(hex []string) (Palette, error) {
	if len(hex) == 0 {
		return DefaultPalette(), nil
	}
	p := make(Palette, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		r, g, b := c.RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p, nil
}

// Color returns the color of s, clamping to the last entry for states the
// palette does not cover.
func (p Palette) Color(s rule.State) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	idx := int(s)
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return p[idx]
}

// Hex returns the color of s as "#rrggbb".
func (p Palette) Hex(s rule.State) string {
	c := p.Color(s)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
