// SPDX-License-Identifier: MIT
// Package: qlattice/presets
//
// hcl.go: *.hcl preset decoding.
//
// Each preset block is decoded on its own so that one bad block drops only
// that preset. Vector attributes are read as expressions, converted to
// list(number) and then to Go slices.

package presets

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclFile is the top level of a preset file.
type hclFile struct {
	Presets []*hclPresetBlock `hcl:"preset,block"`
}

type hclPresetBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

type hclPreset struct {
	Description string         `hcl:"description,optional"`
	Dimension   int            `hcl:"dimension"`
	A1          hcl.Expression `hcl:"a1"`
	A2          hcl.Expression `hcl:"a2"`
	A3          hcl.Expression `hcl:"a3,optional"`
	Nodes       []*hclNode     `hcl:"node,block"`
	Edges       []*hclEdge     `hcl:"edge,block"`
}

type hclNode struct {
	ID     string         `hcl:"id,label"`
	Offset hcl.Expression `hcl:"offset,optional"`
	Role   string         `hcl:"role,optional"`
}

type hclEdge struct {
	Source     string         `hcl:"source"`
	Target     string         `hcl:"target"`
	CellOffset hcl.Expression `hcl:"cell_offset,optional"`
}

// decodeHCL parses src and hands every preset (or rejection) to the library.
func (l *Library) decodeHCL(src []byte, filename string, parser *hclparse.Parser) {
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		l.reject(Rejection{Source: filename, Err: fmt.Errorf("%w: parse: %w", ErrInvalidPreset, diags)})
		return
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		l.reject(Rejection{Source: filename, Err: fmt.Errorf("%w: decode: %w", ErrInvalidPreset, diags)})
		return
	}

	for _, block := range root.Presets {
		raw, err := block.raw()
		if err != nil {
			l.reject(Rejection{Name: block.Name, Source: filename, Err: fmt.Errorf("%w: %w", ErrInvalidPreset, err)})
			continue
		}
		p, err := raw.preset(filename)
		if err != nil {
			l.reject(Rejection{Name: block.Name, Source: filename, Err: fmt.Errorf("%w: %w", ErrInvalidPreset, err)})
			continue
		}
		l.add(p)
	}
}

// raw decodes the block body into the format-neutral record.
func (b *hclPresetBlock) raw() (rawPreset, error) {
	var body hclPreset
	if diags := gohcl.DecodeBody(b.Body, nil, &body); diags.HasErrors() {
		return rawPreset{}, diags
	}

	r := rawPreset{Name: b.Name, Description: body.Description, Dimension: body.Dimension}
	var err error
	if r.A1, err = exprFloats(body.A1, "a1"); err != nil {
		return rawPreset{}, err
	}
	if r.A2, err = exprFloats(body.A2, "a2"); err != nil {
		return rawPreset{}, err
	}
	if r.A3, err = exprFloats(body.A3, "a3"); err != nil {
		return rawPreset{}, err
	}
	for _, n := range body.Nodes {
		off, err := exprFloats(n.Offset, "node "+n.ID+" offset")
		if err != nil {
			return rawPreset{}, err
		}
		r.Nodes = append(r.Nodes, rawNode{ID: n.ID, Offset: off, Role: n.Role})
	}
	for i, e := range body.Edges {
		d, err := exprInts(e.CellOffset, fmt.Sprintf("edge[%d] cell_offset", i))
		if err != nil {
			return rawPreset{}, err
		}
		r.Edges = append(r.Edges, rawEdge{Source: e.Source, Target: e.Target, CellOffset: d})
	}
	return r, nil
}

// numberList evaluates expr as list(number). A missing optional attribute
// yields a null value and ok == false.
func numberList(expr hcl.Expression, field string) (cty.Value, bool, error) {
	if expr == nil {
		return cty.NilVal, false, nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false, fmt.Errorf("%s: %w", field, diags)
	}
	if v.IsNull() {
		return cty.NilVal, false, nil
	}
	list, err := convert.Convert(v, cty.List(cty.Number))
	if err != nil {
		return cty.NilVal, false, fmt.Errorf("%s: want a list of numbers: %w", field, err)
	}
	return list, true, nil
}

func exprFloats(expr hcl.Expression, field string) ([]float64, error) {
	list, ok, err := numberList(expr, field)
	if err != nil || !ok {
		return nil, err
	}
	var out []float64
	if err := gocty.FromCtyValue(list, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return out, nil
}

func exprInts(expr hcl.Expression, field string) ([]int, error) {
	list, ok, err := numberList(expr, field)
	if err != nil || !ok {
		return nil, err
	}
	var out []int
	if err := gocty.FromCtyValue(list, &out); err != nil {
		return nil, fmt.Errorf("%s: want whole numbers: %w", field, err)
	}
	return out, nil
}
