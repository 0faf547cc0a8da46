//go:build !ebiten

package app

import (
	"errors"

	"eca/internal/config"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag (go build -tags ebiten ./cmd/eca)")

// Run builds the simulation and reports that no GUI is compiled in.
func Run(cfg config.Config, opts Options) error {
	if _, err := newSim(cfg, opts.withDefaults()); err != nil {
		return err
	}
	return ErrNoGUI
}
