package forecast

import (
	"fmt"

	"property-forecast/internal/model"
)

// LabelPlain formats sweep values with %v.
const LabelPlain = "plain"

// Sweep varies one assumption across a list of values.
type Sweep struct {
	Name   string
	Title  string
	Param  string
	Values []float64
	// Label is a model.ParamKind ("money", "rate", ...) or LabelPlain.
	// Empty means the parameter's own kind.
	Label string
}

// LabelFunc renders one swept value as a variant label.
type LabelFunc func(kind model.ParamKind, v float64) string

// Variants expands the sweep over base, one variant per value, in order.
func (s Sweep) Variants(base model.Assumptions, label LabelFunc) ([]Variant, error) {
	p, ok := model.LookupParam(s.Param)
	if !ok {
		return nil, fmt.Errorf("sweep %q: unknown parameter %q", s.Name, s.Param)
	}
	if len(s.Values) == 0 {
		return nil, fmt.Errorf("sweep %q: no values", s.Name)
	}
	kind := p.Kind
	if s.Label != "" {
		kind = model.ParamKind(s.Label)
	}

	out := make([]Variant, 0, len(s.Values))
	for _, v := range s.Values {
		a, err := base.With(s.Param, v)
		if err != nil {
			return nil, fmt.Errorf("sweep %q: %w", s.Name, err)
		}
		name := fmt.Sprintf("%s=%v", s.Param, v)
		if label != nil && kind != LabelPlain {
			name = label(kind, v)
		}
		out = append(out, Variant{Label: name, Assumptions: a})
	}
	return out, nil
}

// Arange returns start, start+step, ... below stop, like numpy.arange.
func Arange(start, stop, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("range step must be > 0, got %v", step)
	}
	if stop <= start {
		return nil, nil
	}
	n := int((stop - start) / step)
	if start+float64(n)*step < stop {
		n++
	}
	if n > MaxSweepValues {
		return nil, fmt.Errorf("range yields %d values, limit is %d", n, MaxSweepValues)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// MaxSweepValues bounds the variants one sweep may produce.
const MaxSweepValues = 1000
