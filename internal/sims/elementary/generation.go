package elementary

import (
	"fmt"

	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/rule"
)

// Generation is one row of cell states.
type Generation []rule.State

// Clone returns an independent copy of g.
func (g Generation) Clone() Generation {
	return append(Generation(nil), g...)
}

// String renders g as a digit string.
func (g Generation) String() string {
	return string(rule.EncodeKey(g...))
}

// ParseGeneration reads a digit string such as "01000".
func ParseGeneration(s string) (Generation, error) {
	g := make(Generation, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("cell %d: %q is not a state digit", i, s[i])
		}
		g[i] = rule.State(s[i] - '0')
	}
	return g, nil
}

// Random draws every cell independently and uniformly from [0, states).
func Random(cells, states int, seed int64) Generation {
	rng := core.NewRNG(seed)
	g := make(Generation, cells)
	for i := range g {
		g[i] = rule.State(rng.Uint8n(uint8(states)))
	}
	return g
}

// RandomDensity makes each cell non-zero with probability density. Non-zero
// cells draw uniformly from [1, states).
func RandomDensity(cells, states int, density float64, seed int64) Generation {
	rng := core.NewRNG(seed)
	g := make(Generation, cells)
	for i := range g {
		if rng.Float64() < density {
			g[i] = rule.State(1 + rng.Uint8n(uint8(states-1)))
		}
	}
	return g
}

// Center returns a row of zeros with the middle cell set to 1.
func Center(cells int) Generation {
	g := make(Generation, cells)
	if cells > 0 {
		g[cells/2] = 1
	}
	return g
}

func seedGeneration(cfg config.Config) Generation {
	if cfg.Seeding == config.SeedCenter {
		return Center(cfg.Cells)
	}
	if cfg.SeedDensity > 0 {
		return RandomDensity(cfg.Cells, cfg.States, cfg.SeedDensity, cfg.Seed)
	}
	return Random(cfg.Cells, cfg.States, cfg.Seed)
}
