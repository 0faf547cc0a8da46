package config

import (
	"os"
	"path/filepath"
	"testing"

	"eca/internal/rule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Cells)
	assert.Equal(t, Generations(220), cfg.Generations)
	assert.Equal(t, uint64(110), cfg.Rule)
	assert.Equal(t, rule.Wolfram, cfg.RuleType)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Config)
		field string
	}{
		{"states below two", func(c *Config) { c.States = 1 }, "states"},
		{"states beyond digits", func(c *Config) { c.States = 11 }, "states"},
		{"no cells", func(c *Config) { c.Cells = 0 }, "cells"},
		{"zero generations", func(c *Config) { c.Generations = 0 }, "generations"},
		{"negative generations", func(c *Config) { c.Generations = -5 }, "generations"},
		{"unknown rule type", func(c *Config) { c.RuleType = "totalistic" }, "rule_type"},
		{"zero neighborhood", func(c *Config) { c.Neighborhood = 0 }, "neighborhood"},
		{"bad seeding", func(c *Config) { c.Seeding = "gradient" }, "seeding"},
		{"bad color", func(c *Config) { c.Palette = []string{"#fff", "blue"} }, "palette[1]"},
		{"density above one", func(c *Config) { c.SeedDensity = 1.5 }, "seed_density"},
		{"negative density", func(c *Config) { c.SeedDensity = -0.1 }, "seed_density"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfiguration)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateCollectsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cells = 0
	cfg.States = 1

	var verr *ValidationError
	require.ErrorAs(t, cfg.Validate(), &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestValidateRejectsCustomRuleType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RuleType = rule.Custom
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorIs(t, err, rule.ErrUnsupportedRuleType)
}

func TestValidatePaletteLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.States = 3
	cfg.Palette = []string{"#ffffff", "#0000ff"}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)

	cfg.Palette = append(cfg.Palette, "#f00")
	assert.NoError(t, cfg.Validate())
}

func TestEffectiveGenerations(t *testing.T) {
	tests := []struct {
		cells  int
		gens   Generations
		want   int
		capped bool
	}{
		{10, 50, 10, true},
		{10, 10, 10, false},
		{10, 3, 3, false},
		{7, Fit, 7, false},
		{1, 1, 1, false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Cells = tt.cells
		cfg.Generations = tt.gens
		assert.Equalf(t, tt.want, cfg.EffectiveGenerations(), "cells=%d gens=%s", tt.cells, tt.gens)
		assert.Equal(t, tt.capped, cfg.Capped())
	}
}

func TestParseGenerations(t *testing.T) {
	g, err := ParseGenerations("FIT")
	require.NoError(t, err)
	assert.Equal(t, Fit, g)

	g, err = ParseGenerations(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, Generations(12), g)

	_, err = ParseGenerations("many")
	assert.Error(t, err)

	var v Generations
	require.NoError(t, v.Set("fit"))
	assert.Equal(t, "fit", v.String())
	assert.Equal(t, "generations", v.Type())
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eca.yaml")

	cfg := DefaultConfig()
	cfg.Cells = 64
	cfg.Generations = Fit
	cfg.Rule = 30
	cfg.Seeding = SeedCenter
	cfg.Palette = []string{"#000000", "#ffffff"}
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generations: fit")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule: 90\ngenerations: 12\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(90), cfg.Rule)
	assert.Equal(t, Generations(12), cfg.Generations)
	assert.Equal(t, DefaultCells, cfg.Cells)
	assert.Equal(t, SeedRandom, cfg.Seeding)
}

func TestLoadRejectsBadGenerations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generations: forever\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"w": "5", "gens": "fit", "rule": "90", "states": "3",
		"type": "Wolfram", "neighborhood": "7", "seed": "-3", "seeding": "center",
		"density": "0.25", "palette": "#000000,#ffffff,#ff0000",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Cells)
	assert.Equal(t, Fit, cfg.Generations)
	assert.Equal(t, uint64(90), cfg.Rule)
	assert.Equal(t, 3, cfg.States)
	assert.Equal(t, rule.Wolfram, cfg.RuleType)
	assert.Equal(t, 7, cfg.Neighborhood)
	assert.Equal(t, int64(-3), cfg.Seed)
	assert.Equal(t, SeedCenter, cfg.Seeding)
	assert.Equal(t, 0.25, cfg.SeedDensity)
	assert.Equal(t, []string{"#000000", "#ffffff", "#ff0000"}, cfg.Palette)

	cfg, err = FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	for _, bad := range []map[string]string{
		{"w": "wide"}, {"gens": "x"}, {"rule": "-1"}, {"states": "two"},
		{"type": "life"}, {"neighborhood": "n"}, {"seed": "s"}, {"density": "half"},
	} {
		_, err := FromMap(bad)
		assert.ErrorIsf(t, err, ErrInvalidConfiguration, "%v", bad)
	}
}

func TestMapRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	back, err := FromMap(cfg.Map())
	require.NoError(t, err)
	assert.Equal(t, cfg, back)

	cfg.Generations = Fit
	cfg.Seeding = SeedCenter
	cfg.SeedDensity = 0.3
	cfg.Palette = []string{"#000000", "#00ff00"}
	back, err = FromMap(cfg.Map())
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestLoadNormalizesRuleType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule_type: Wolfram\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rule.Wolfram, cfg.RuleType)
	assert.NoError(t, cfg.Validate())

	require.NoError(t, os.WriteFile(path, []byte("rule_type: Life\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
}

func TestParametersSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cells = 10
	cfg.Generations = 50
	snap := cfg.Parameters()
	require.Len(t, snap.Groups, 3)

	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	assert.Equal(t, "10", values["effective_generations"])
	assert.Equal(t, "50", values["generations"])
	assert.Equal(t, "wolfram", values["rule_type"])
	assert.Equal(t, "uniform", values["seed_density"])

	cfg.SeedDensity = 0.5
	for _, p := range cfg.Parameters().Groups[2].Params {
		if p.Key == "seed_density" {
			assert.Equal(t, "0.5", p.Value)
		}
	}
}
