package render

import (
	"eca/internal/rule"

	"github.com/guptarohit/asciigraph"
)

// Stats records the fraction of non-zero cells in every generation it sees.
type Stats struct {
	density []float64
}

// NewStats returns an empty collector.
func NewStats() *Stats { return &Stats{} }

// Render implements Renderer.
func (s *Stats) Render(_ int, cells []rule.State, _ Palette) error {
	if len(cells) == 0 {
		s.density = append(s.density, 0)
		return nil
	}
	live := 0
	for _, c := range cells {
		if c != 0 {
			live++
		}
	}
	s.density = append(s.density, float64(live)/float64(len(cells)))
	return nil
}

// Densities returns the recorded series, one value per generation.
func (s *Stats) Densities() []float64 { return s.density }

// Plot draws the density series. It returns "" with fewer than two points.
func (s *Stats) Plot(caption string) string {
	if len(s.density) < 2 {
		return ""
	}
	return asciigraph.Plot(s.density,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
