package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"eca/internal/core"
	"eca/internal/rule"

	"gopkg.in/yaml.v3"
)

// Seeding selects how generation 0 is populated.
type Seeding string

const (
	// SeedRandom draws every cell independently, uniformly unless a seed
	// density is set.
	SeedRandom Seeding = "random"
	// SeedCenter sets the middle cell to 1 and every other cell to 0.
	SeedCenter Seeding = "center"
)

// ElementaryNeighborhood is the neighborhood size of a radius-1 rule: one
// neighbor on each side of the cell.
const ElementaryNeighborhood = 2

const (
	DefaultCells       = 100
	DefaultGenerations = 220
	DefaultRule        = 110
	DefaultStates      = 2
	DefaultSeed        = 42
)

// Config holds every recognized run option.
type Config struct {
	Cells        int         `yaml:"cells" validate:"gte=1"`
	Generations  Generations `yaml:"generations" validate:"generations"`
	Rule         uint64      `yaml:"rule"`
	States       int         `yaml:"states" validate:"gte=2,lte=10"`
	RuleType     rule.Type   `yaml:"rule_type" validate:"oneof=wolfram custom"`
	Neighborhood int         `yaml:"neighborhood" validate:"gte=1"`
	Seed         int64       `yaml:"seed"`
	Seeding      Seeding     `yaml:"seeding" validate:"oneof=random center"`

	// SeedDensity is the chance that a randomly seeded cell is non-zero.
	// Zero leaves every state equally likely.
	SeedDensity float64  `yaml:"seed_density,omitempty" validate:"gte=0,lte=1"`
	Palette     []string `yaml:"palette,omitempty" validate:"omitempty,dive,hexcolor"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Cells:        DefaultCells,
		Generations:  DefaultGenerations,
		Rule:         DefaultRule,
		States:       DefaultStates,
		RuleType:     rule.Wolfram,
		Neighborhood: ElementaryNeighborhood,
		Seed:         DefaultSeed,
		Seeding:      SeedRandom,
	}
}

// Validate reports every problem with c. The returned error wraps
// ErrInvalidConfiguration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fromValidator(err)
	}
	if c.RuleType != rule.Wolfram {
		return fmt.Errorf("%w: rule_type %q: %w", ErrInvalidConfiguration, c.RuleType, rule.ErrUnsupportedRuleType)
	}
	if n := len(c.Palette); n > 0 && n < c.States {
		return fmt.Errorf("%w: palette has %d colors for %d states", ErrInvalidConfiguration, n, c.States)
	}
	return nil
}

// EffectiveGenerations returns how many generations a run produces, counting
// generation 0. Runs never exceed one generation per cell.
func (c Config) EffectiveGenerations() int {
	g := int(c.Generations)
	if c.Generations == Fit || g > c.Cells {
		return c.Cells
	}
	return g
}

// Capped reports whether the requested generations exceed the cell count.
func (c Config) Capped() bool {
	return c.Generations != Fit && int(c.Generations) > c.Cells
}

// Parameters implements core.ParameterProvider.
func (c Config) Parameters() core.ParameterSnapshot {
	itoa := strconv.Itoa
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Automaton",
			Params: []core.Parameter{
				{Key: "cells", Label: "Cells / generation", Value: itoa(c.Cells)},
				{Key: "generations", Label: "Generations", Value: c.Generations.String()},
				{Key: "effective_generations", Label: "Generations run", Value: itoa(c.EffectiveGenerations()),
					Description: "capped at the cell count"},
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule_type", Label: "Rule type", Value: string(c.RuleType)},
				{Key: "rule", Label: "Rule", Value: strconv.FormatUint(c.Rule, 10)},
				{Key: "states", Label: "Cell states", Value: itoa(c.States)},
				{Key: "neighborhood", Label: "Neighbors", Value: itoa(c.Neighborhood)},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "seeding", Label: "Mode", Value: string(c.Seeding)},
				{Key: "seed", Label: "Seed", Value: strconv.FormatInt(c.Seed, 10)},
				{Key: "seed_density", Label: "Density", Value: c.densityLabel()},
			},
		},
	}}
}

func (c Config) densityLabel() string {
	if c.SeedDensity == 0 {
		return "uniform"
	}
	return strconv.FormatFloat(c.SeedDensity, 'g', -1, 64)
}

// Load reads a YAML file over the defaults. The result is not validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FromMap populates a Config from flag-style key/value pairs over the
// defaults. Malformed values are errors; range checks are left to Validate.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: w=%q", ErrInvalidConfiguration, v)
		}
		c.Cells = parsed
	}
	if v, ok := cfg["gens"]; ok {
		parsed, err := ParseGenerations(v)
		if err != nil {
			return c, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		c.Generations = parsed
	}
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: rule=%q", ErrInvalidConfiguration, v)
		}
		c.Rule = parsed
	}
	if v, ok := cfg["states"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: states=%q", ErrInvalidConfiguration, v)
		}
		c.States = parsed
	}
	if v, ok := cfg["type"]; ok {
		parsed, err := rule.ParseType(v)
		if err != nil {
			return c, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		c.RuleType = parsed
	}
	if v, ok := cfg["neighborhood"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: neighborhood=%q", ErrInvalidConfiguration, v)
		}
		c.Neighborhood = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed=%q", ErrInvalidConfiguration, v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["seeding"]; ok {
		c.Seeding = Seeding(v)
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: density=%q", ErrInvalidConfiguration, v)
		}
		c.SeedDensity = parsed
	}
	if v, ok := cfg["palette"]; ok && v != "" {
		c.Palette = strings.Split(v, ",")
	}
	return c, nil
}

// Map is the inverse of FromMap.
func (c Config) Map() map[string]string {
	m := map[string]string{
		"w":            strconv.Itoa(c.Cells),
		"gens":         c.Generations.String(),
		"rule":         strconv.FormatUint(c.Rule, 10),
		"states":       strconv.Itoa(c.States),
		"type":         string(c.RuleType),
		"neighborhood": strconv.Itoa(c.Neighborhood),
		"seed":         strconv.FormatInt(c.Seed, 10),
		"seeding":      string(c.Seeding),
	}
	if c.SeedDensity != 0 {
		m["density"] = strconv.FormatFloat(c.SeedDensity, 'g', -1, 64)
	}
	if len(c.Palette) > 0 {
		m["palette"] = strings.Join(c.Palette, ",")
	}
	return m
}
