package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Generations is the number of rows to produce. Fit means one row per cell.
type Generations int

// Fit requests as many generations as there are cells.
const Fit Generations = -1

const fitName = "fit"

// ParseGenerations accepts a positive integer or "fit".
func ParseGenerations(s string) (Generations, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, fitName) {
		return Fit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("generations %q: want an integer or %q", s, fitName)
	}
	return Generations(n), nil
}

func (g Generations) String() string {
	if g == Fit {
		return fitName
	}
	return strconv.Itoa(int(g))
}

// Set implements pflag.Value.
func (g *Generations) Set(s string) error {
	v, err := ParseGenerations(s)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Type implements pflag.Value.
func (g *Generations) Type() string { return "generations" }

// MarshalYAML writes Fit as the literal "fit".
func (g Generations) MarshalYAML() (any, error) {
	if g == Fit {
		return fitName, nil
	}
	return int(g), nil
}

// UnmarshalYAML reads an integer or "fit".
func (g *Generations) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: generations must be a scalar", node.Line)
	}
	v, err := ParseGenerations(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*g = v
	return nil
}
