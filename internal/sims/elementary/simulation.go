package elementary

import (
	"fmt"

	"eca/internal/config"
	"eca/internal/rule"
)

// Simulation is the state of a run between two steps: the rule table, the
// current generation and its index. It is a value; Next returns a new
// Simulation and leaves the receiver untouched.
type Simulation struct {
	cfg     config.Config
	table   *rule.Table
	current Generation
	gen     int
}

// New validates cfg, builds the rule table and seeds generation 0 according
// to cfg.Seeding.
func New(cfg config.Config) (Simulation, error) {
	table, err := Build(cfg)
	if err != nil {
		return Simulation{}, err
	}
	return Simulation{cfg: cfg, table: table, current: seedGeneration(cfg)}, nil
}

// NewFromRow is New with an explicit generation 0. row must hold cfg.Cells
// states, each below cfg.States.
func NewFromRow(cfg config.Config, row Generation) (Simulation, error) {
	table, err := Build(cfg)
	if err != nil {
		return Simulation{}, err
	}
	if len(row) != cfg.Cells {
		return Simulation{}, fmt.Errorf("%w: initial row has %d cells, want %d",
			config.ErrInvalidConfiguration, len(row), cfg.Cells)
	}
	for i, s := range row {
		if int(s) >= cfg.States {
			return Simulation{}, fmt.Errorf("%w: initial cell %d has state %d, want < %d",
				config.ErrInvalidConfiguration, i, s, cfg.States)
		}
	}
	return Simulation{cfg: cfg, table: table, current: row.Clone()}, nil
}

// Build validates cfg and derives its rule table. The configured
// neighborhood size is not consulted: elementary rules always look at one
// neighbor on each side.
func Build(cfg config.Config) (*rule.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return rule.Build(cfg.Rule, cfg.States, config.ElementaryNeighborhood)
}

// Config returns the configuration the simulation was built from.
func (s Simulation) Config() config.Config { return s.cfg }

// Table returns the rule table.
func (s Simulation) Table() *rule.Table { return s.table }

// Current returns the current generation. Callers must not modify it.
func (s Simulation) Current() Generation { return s.current }

// Generation returns the index of the current generation.
func (s Simulation) Generation() int { return s.gen }

// Next returns the simulation advanced by one generation.
func (s Simulation) Next() Simulation {
	s.current = Step(s.current, s.table)
	s.gen++
	return s
}

// NextParallel is Next using StepParallel.
func (s Simulation) NextParallel(workers int) Simulation {
	s.current = StepParallel(s.current, s.table, workers)
	s.gen++
	return s
}
