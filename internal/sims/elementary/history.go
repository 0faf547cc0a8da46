package elementary

import (
	"fmt"

	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/rule"
)

// History exposes a run through core.Sim: every generation produced so far
// is a row of a grid, generation 0 at the top. Step is a no-op once the run
// is complete.
type History struct {
	sim   Simulation
	total int
	grid  *core.ByteGrid
	row   []uint8
}

// NewHistory validates cfg and seeds generation 0.
func NewHistory(cfg config.Config) (*History, error) {
	sim, err := New(cfg)
	if err != nil {
		return nil, err
	}
	total := cfg.EffectiveGenerations()
	h := &History{
		sim:   sim,
		total: total,
		grid:  core.NewByteGrid(cfg.Cells, total),
		row:   make([]uint8, cfg.Cells),
	}
	h.push()
	return h, nil
}

// Name returns the simulation identifier.
func (h *History) Name() string { return "elementary" }

// Size returns the grid dimensions: one column per cell, one row per
// generation.
func (h *History) Size() core.Size { return core.Size{W: h.grid.W, H: h.grid.H} }

// Cells exposes the render buffer.
func (h *History) Cells() []uint8 { return h.grid.Cells() }

// Simulation returns the current simulation value.
func (h *History) Simulation() Simulation { return h.sim }

// Done reports whether every generation has been produced.
func (h *History) Done() bool { return h.grid.Rows() >= h.total }

// Reset restarts the run from a new generation 0 drawn with seed.
func (h *History) Reset(seed int64) {
	cfg := h.sim.Config()
	cfg.Seed = seed
	h.sim = Simulation{cfg: cfg, table: h.sim.Table(), current: seedGeneration(cfg)}
	h.grid.Clear()
	h.push()
}

// Step appends the next generation.
func (h *History) Step() {
	if h.Done() {
		return
	}
	h.sim = h.sim.Next()
	h.push()
}

func (h *History) push() {
	for i, s := range h.sim.Current() {
		h.row[i] = uint8(s)
	}
	h.grid.Push(h.row)
}

// Caption summarizes the run for a status line.
func (h *History) Caption() string {
	c := fmt.Sprintf("rule %d  gen %d/%d", h.sim.Config().Rule, h.sim.Generation(), h.total-1)
	if h.Done() {
		c += " (done)"
	}
	return c
}

// Row returns generation y as states.
func (h *History) Row(y int) Generation {
	src := h.grid.Row(y)
	out := make(Generation, len(src))
	for i, v := range src {
		out[i] = rule.State(v)
	}
	return out
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		c, err := config.FromMap(cfg)
		if err != nil {
			return nil, err
		}
		h, err := NewHistory(c)
		if err != nil {
			return nil, err
		}
		return h, nil
	})
}
