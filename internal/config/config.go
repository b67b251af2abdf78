package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"

	"property-forecast/internal/forecast"
	"property-forecast/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load base assumptions from a separate YAML file.
	// Inline assumptions override the file field by field.
	AssumptionsFile string           `yaml:"assumptions_file,omitempty"`
	Label           string           `yaml:"label"`
	Overrides       yaml.Node        `yaml:"assumptions"`
	Options         forecast.Options `yaml:"options"`
	Report          ReportConfig     `yaml:"report"`
	Sweeps          []SweepConfig    `yaml:"sweeps,omitempty"`

	// Assumptions is the merged result of AssumptionsFile and Overrides.
	Assumptions model.Assumptions `yaml:"-"`
}

type ReportConfig struct {
	// Currency is an ISO 4217 code used to format money.
	Currency string `yaml:"currency"`
}

type SweepConfig struct {
	Name   string       `yaml:"name" json:"name"`
	Title  string       `yaml:"title" json:"title"`
	Param  string       `yaml:"param" json:"param"`
	Values []float64    `yaml:"values,omitempty" json:"values,omitempty"`
	Range  *RangeConfig `yaml:"range,omitempty" json:"range,omitempty"`
	Label  string       `yaml:"label,omitempty" json:"label,omitempty"`
}

// RangeConfig is a half-open [start, stop) range with a fixed step.
type RangeConfig struct {
	Start float64 `yaml:"start" json:"start"`
	Stop  float64 `yaml:"stop" json:"stop"`
	Step  float64 `yaml:"step" json:"step"`
}

// assumptionsDoc accepts n_years as a shorthand for horizon_months.
type assumptionsDoc struct {
	model.Assumptions `yaml:",inline"`
	NYears            int `yaml:"n_years,omitempty"`
}

type assumptionsFileWrapper struct {
	Assumptions yaml.Node `yaml:"assumptions"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	var a model.Assumptions
	if c.AssumptionsFile != "" {
		assumptionsPath := c.AssumptionsFile
		if !filepath.IsAbs(assumptionsPath) {
			// Relative to the config file first, then the working directory.
			cand := filepath.Join(filepath.Dir(path), assumptionsPath)
			if _, err := os.Stat(cand); err == nil {
				assumptionsPath = cand
			}
		}
		node, err := loadAssumptionsFile(assumptionsPath)
		if err != nil {
			return nil, err
		}
		if err := overlay(&a, node); err != nil {
			return nil, fmt.Errorf("assumptions file %s: %w", assumptionsPath, err)
		}
	}
	if err := overlay(&a, &c.Overrides); err != nil {
		return nil, fmt.Errorf("assumptions in %s: %w", path, err)
	}
	c.Assumptions = a
	c.applyEnv()
	c.applyDefaults()
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := model.NewAssumptionSet(c.Assumptions); err != nil {
		return fmt.Errorf("assumptions invalid: %w", err)
	}
	if money.GetCurrency(c.Report.Currency) == nil {
		return fmt.Errorf("report.currency %q is not a known ISO 4217 code", c.Report.Currency)
	}
	seen := map[string]bool{}
	for i, s := range c.Sweeps {
		if s.Name == "" {
			return fmt.Errorf("sweeps[%d].name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("sweeps[%d]: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true
		if _, err := s.ToSweep(); err != nil {
			return fmt.Errorf("sweeps[%d]: %w", i, err)
		}
		if _, ok := model.LookupParam(s.Param); !ok {
			return fmt.Errorf("sweeps[%d]: unknown param %q", i, s.Param)
		}
	}
	return nil
}

// ToSweep resolves values or range into a forecast.Sweep.
func (s SweepConfig) ToSweep() (forecast.Sweep, error) {
	values := s.Values
	if s.Range != nil {
		if len(values) > 0 {
			return forecast.Sweep{}, fmt.Errorf("sweep %q: set either values or range, not both", s.Name)
		}
		var err error
		values, err = forecast.Arange(s.Range.Start, s.Range.Stop, s.Range.Step)
		if err != nil {
			return forecast.Sweep{}, fmt.Errorf("sweep %q: %w", s.Name, err)
		}
	}
	if len(values) == 0 {
		return forecast.Sweep{}, fmt.Errorf("sweep %q: no values", s.Name)
	}
	title := s.Title
	if title == "" {
		title = s.Name
	}
	return forecast.Sweep{
		Name:   s.Name,
		Title:  title,
		Param:  s.Param,
		Values: values,
		Label:  s.Label,
	}, nil
}

// Sweep returns the named sweep.
func (c *Config) Sweep(name string) (forecast.Sweep, error) {
	for _, s := range c.Sweeps {
		if s.Name == name {
			return s.ToSweep()
		}
	}
	return forecast.Sweep{}, fmt.Errorf("no sweep named %q", name)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FORECAST_CURRENCY"); v != "" {
		c.Report.Currency = v
	}
}

func (c *Config) applyDefaults() {
	if c.Label == "" {
		c.Label = "Baseline"
	}
	if c.Report.Currency == "" {
		c.Report.Currency = DefaultCurrency
	}
}

func loadAssumptionsFile(path string) (*yaml.Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w assumptionsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return &w.Assumptions, nil
}

// overlay decodes node onto a; fields absent from node keep their value.
// A document giving n_years without horizon_months sets the horizon from it.
func overlay(a *model.Assumptions, node *yaml.Node) error {
	if node == nil || node.Kind == 0 {
		return nil
	}
	doc := assumptionsDoc{Assumptions: *a}
	before := doc.HorizonMonths
	if err := node.Decode(&doc); err != nil {
		return err
	}
	if doc.NYears > 0 && doc.HorizonMonths == before {
		doc.HorizonMonths = doc.NYears * 12
	}
	*a = doc.Assumptions
	return nil
}

// Encode writes c as YAML with the merged assumptions inlined.
func (c *Config) Encode(w io.Writer) error {
	out := struct {
		Label       string            `yaml:"label"`
		Assumptions model.Assumptions `yaml:"assumptions"`
		Options     forecast.Options  `yaml:"options"`
		Report      ReportConfig      `yaml:"report"`
		Sweeps      []SweepConfig     `yaml:"sweeps,omitempty"`
	}{c.Label, c.Assumptions, c.Options, c.Report, c.Sweeps}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
