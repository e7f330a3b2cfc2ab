// SPDX-License-Identifier: MIT
// Package: qlattice/presets
//
// raw.go: format-neutral preset record and its conversion to tiling.Pattern.

package presets

import (
	"fmt"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/tiling"
	"github.com/katalvlaran/qlattice/vec"
)

const methodDecode = "presets.decode"

// rawPreset is what both file formats decode into. Vectors are plain
// slices of 2 or 3 components.
type rawPreset struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Dimension   int       `yaml:"dimension"`
	A1          []float64 `yaml:"a1"`
	A2          []float64 `yaml:"a2"`
	A3          []float64 `yaml:"a3"`
	Nodes       []rawNode `yaml:"nodes"`
	Edges       []rawEdge `yaml:"edges"`
}

type rawNode struct {
	ID     string    `yaml:"id"`
	Offset []float64 `yaml:"offset"`
	Role   string    `yaml:"role"`
}

type rawEdge struct {
	Source     string `yaml:"source"`
	Target     string `yaml:"target"`
	CellOffset []int  `yaml:"cell_offset"`
}

// preset converts r into a Preset. Vector shape problems are reported as
// lattice violations; structural checks are left to tiling.ValidatePattern.
func (r rawPreset) preset(source string) (Preset, error) {
	vs := lattice.NewViolations(methodDecode)

	p := tiling.Pattern{Dimension: r.Dimension}
	p.Vectors.A1 = floats(vs, "a1", r.A1, true)
	p.Vectors.A2 = floats(vs, "a2", r.A2, true)
	if len(r.A3) > 0 {
		a3 := floats(vs, "a3", r.A3, true)
		p.Vectors.A3 = &a3
	}

	p.Cell.Nodes = make([]tiling.UnitCellNode, 0, len(r.Nodes))
	for i, n := range r.Nodes {
		p.Cell.Nodes = append(p.Cell.Nodes, tiling.UnitCellNode{
			ID:     n.ID,
			Offset: floats(vs, fmt.Sprintf("nodes[%d].offset", i), n.Offset, false),
			Role:   lattice.Role(n.Role),
		})
	}

	p.Cell.Edges = make([]tiling.UnitCellEdge, 0, len(r.Edges))
	for i, e := range r.Edges {
		var d vec.IVec3
		if len(e.CellOffset) > 0 {
			var ok bool
			if d, ok = vec.IntsFromSlice(e.CellOffset); !ok {
				vs.Invalid(fmt.Sprintf("edges[%d].cell_offset", i), "want 2 or 3 components, got %d", len(e.CellOffset))
			}
		}
		p.Cell.Edges = append(p.Cell.Edges, tiling.UnitCellEdge{Source: e.Source, Target: e.Target, CellOffset: d})
	}

	if err := vs.Err(); err != nil {
		return Preset{}, err
	}
	return Preset{Name: r.Name, Description: r.Description, Pattern: p, Source: source}, nil
}

// floats converts s to a Vec3. An empty optional s is the zero vector.
func floats(vs *lattice.Violations, field string, s []float64, required bool) vec.Vec3 {
	if len(s) == 0 && !required {
		return vec.Zero
	}
	v, ok := vec.FromSlice(s)
	if !ok {
		vs.Invalid(field, "want 2 or 3 components, got %d", len(s))
	}
	return v
}
