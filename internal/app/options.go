package app

// Options controls the GUI window.
type Options struct {
	// Sim names the registered simulation to play.
	Sim string

	// Scale is the pixel size of one cell.
	Scale int

	// Rate is the number of generations produced per second.
	Rate int
}

// DefaultSim is the simulation played when Options.Sim is empty.
const DefaultSim = "elementary"

func (o Options) withDefaults() Options {
	if o.Sim == "" {
		o.Sim = DefaultSim
	}
	if o.Scale <= 0 {
		o.Scale = 4
	}
	if o.Rate <= 0 {
		o.Rate = 30
	}
	return o
}
