// Package config loads optional calculator settings from TOML or YAML.
//
// Nothing here is required: the model defaults and the built-in particle table
// are compiled into bridgecalc, and a config file only overrides them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/bridgecalc"
	"github.com/alexshd/bridgecalc/internal/logging"
)

// Format is the on-disk encoding of a config file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported config extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

// Config holds the calculator settings.
type Config struct {
	Constants bridgecalc.Overrides       `toml:"constants" yaml:"constants"`
	Reference ReferenceConfig            `toml:"reference" yaml:"reference"`
	Particles []bridgecalc.KnownParticle `toml:"particles" yaml:"particles"`
	Log       LogConfig                  `toml:"log" yaml:"log"`
}

// ReferenceConfig holds the index-0 inputs the front ends start from.
type ReferenceConfig struct {
	Length float64 `toml:"length" yaml:"length"` // m
	Mass   float64 `toml:"mass" yaml:"mass"`     // kg
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the compiled-in settings.
func Default() Config {
	return Config{
		Reference: ReferenceConfig{
			Length: bridgecalc.PlanckLength,
			Mass:   bridgecalc.PlanckMass,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, format, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s config %s: %w", format, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data into cfg; keys absent from data keep their current value.
func Decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys: %v", undecoded)
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %s", format)
	}
}

// Validate checks the settings the engine cannot check per call.
func (c Config) Validate() error {
	if err := c.ModelConstants().Validate(); err != nil {
		return err
	}
	if !(c.Reference.Length > 0) {
		return fmt.Errorf("reference length must be positive, got %v", c.Reference.Length)
	}
	if !(c.Reference.Mass > 0) {
		return fmt.Errorf("reference mass must be positive, got %v", c.Reference.Mass)
	}
	seen := make(map[string]bool, len(c.Particles))
	for i, p := range c.Particles {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("particle %d: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("particle %q listed twice", p.Name)
		}
		seen[p.Name] = true
		if !(p.Mass > 0) || math.IsInf(p.Mass, 0) {
			return fmt.Errorf("particle %q: mass must be positive, got %v", p.Name, p.Mass)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ModelConstants applies the configured overrides to the defaults.
func (c Config) ModelConstants() bridgecalc.ModelConstants {
	return bridgecalc.DefaultConstants().With(c.Constants)
}

// Table returns the configured particles, or the built-in table when none
// are listed.
func (c Config) Table() bridgecalc.ReferenceTable {
	if len(c.Particles) == 0 {
		return bridgecalc.DefaultParticles()
	}
	return bridgecalc.NewReferenceTable(c.Particles)
}
