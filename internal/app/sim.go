package app

import (
	"eca/internal/config"
	"eca/internal/core"
)

// newSim validates cfg and builds the registered simulation named by opts.
func newSim(cfg config.Config, opts Options) (core.Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return core.New(opts.Sim, cfg.Map())
}
