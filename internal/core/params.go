package core

// Parameter describes a single resolved setting.
type Parameter struct {
	Key         string
	Label       string
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures a set of parameters for display.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider exposes a snapshot of its current parameters.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
