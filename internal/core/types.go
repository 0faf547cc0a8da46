package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation's display grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a display front end drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim from flag-style key/value pairs.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// New constructs the simulation registered under name.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	return f(cfg)
}

// Names lists registered simulations in sorted order.
func Names() []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
