// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridgen/boundary"
	"github.com/katalvlaran/gridgen/focus"
	"github.com/katalvlaran/gridgen/solver"
)

// SpecPoint is one boundary vertex in a spec document.
type SpecPoint struct {
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	Beta int     `json:"beta" yaml:"beta"`
}

// SpecFocus is one focus point in a spec document. Axis is "row" or "col".
type SpecFocus struct {
	Location float64 `json:"location" yaml:"location"`
	Axis     string  `json:"axis" yaml:"axis"`
	Factor   float64 `json:"factor" yaml:"factor"`
	Extent   float64 `json:"extent" yaml:"extent"`
}

// Spec is the complete generating input of a grid: boundary, anchor, shape,
// focus, tunables and projection. It deliberately carries no derived arrays;
// a grid rebuilt from its spec reproduces them by solving again, which is
// what keeps the document small, diffable and honest.
type Spec struct {
	Points   []SpecPoint     `json:"points" yaml:"points"`
	ULIndex  int             `json:"ul_idx" yaml:"ul_idx"`
	Shape    solver.Shape    `json:"shape" yaml:"shape"`
	Focus    []SpecFocus     `json:"focus,omitempty" yaml:"focus,omitempty"`
	Tunables solver.Tunables `json:"tunables" yaml:"tunables"`
	Proj     string          `json:"proj,omitempty" yaml:"proj,omitempty"`
}

// ToSpec captures the grid's generating inputs.
func (g *Grid) ToSpec() Spec {
	g.mu.Lock()
	defer g.mu.Unlock()

	pts := g.bry.Points()
	sp := Spec{
		Points:   make([]SpecPoint, len(pts)),
		ULIndex:  g.bry.ULIndex(),
		Shape:    g.shape,
		Tunables: g.tun,
		Proj:     g.proj,
	}
	for i, p := range pts {
		sp.Points[i] = SpecPoint{X: p.X, Y: p.Y, Beta: p.Beta}
	}
	for _, fp := range g.foc.Points() {
		sp.Focus = append(sp.Focus, SpecFocus{
			Location: fp.Location,
			Axis:     fp.Axis.String(),
			Factor:   fp.Factor,
			Extent:   fp.Extent,
		})
	}

	return sp
}

// FromSpec rebuilds and solves a grid from its generating inputs. The
// boundary simplicity scan follows the spec's CheckSimplePoly tunable.
func FromSpec(ctx context.Context, s Spec) (*Grid, error) {
	pts := make([]boundary.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = boundary.Point{X: p.X, Y: p.Y, Beta: p.Beta}
	}
	b, err := boundary.New(pts, s.ULIndex,
		boundary.WithSimplePolyCheck(s.Tunables.CheckSimplePoly))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSpec, err)
	}

	opts := []Option{WithTunables(s.Tunables), WithAutoGenerate(false)}
	if len(s.Focus) > 0 {
		f := focus.New()
		for _, sf := range s.Focus {
			axis, err := parseAxis(sf.Axis)
			if err != nil {
				return nil, err
			}
			if err := f.Add(sf.Location, axis, sf.Factor, sf.Extent); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadSpec, err)
			}
		}
		opts = append(opts, WithFocus(f))
	}
	if s.Proj != "" {
		opts = append(opts, WithProjection(s.Proj))
	}

	g, err := New(b, s.Shape, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.Generate(ctx); err != nil {
		return nil, err
	}

	return g, nil
}

// EncodeSpec renders a spec as indented JSON.
func EncodeSpec(s Spec) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// DecodeSpec parses a JSON spec document.
func DecodeSpec(data []byte) (Spec, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("%w: %v", ErrBadSpec, err)
	}

	return s, nil
}

// EncodeSpecYAML renders a spec as YAML.
func EncodeSpecYAML(s Spec) ([]byte, error) {
	return yaml.Marshal(s)
}

// DecodeSpecYAML parses a YAML spec document.
func DecodeSpecYAML(data []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("%w: %v", ErrBadSpec, err)
	}

	return s, nil
}

// parseAxis maps a spec axis name back to a focus axis.
func parseAxis(name string) (focus.Axis, error) {
	switch name {
	case focus.Row.String():
		return focus.Row, nil
	case focus.Col.String():
		return focus.Col, nil
	default:
		return 0, fmt.Errorf("%w: axis %q", ErrBadSpec, name)
	}
}
