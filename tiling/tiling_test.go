package tiling_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/tiling"
	"github.com/katalvlaran/qlattice/vec"
)

// requireInvariants checks the structural guarantees shared by all outputs.
func requireInvariants(t *testing.T, g lattice.Graph) {
	t.Helper()
	require.NoError(t, g.Validate())
	for _, e := range g.Edges {
		require.Less(t, e.Source, e.Target)
		require.Equal(t, e.Source+"--"+e.Target, e.ID)
	}
}

func honeycomb() tiling.Pattern {
	return tiling.Pattern{
		Dimension: 2,
		Vectors:   tiling.LatticeVectors{A1: vec.New(1.73, 0, 0), A2: vec.New(0.87, 1.5, 0)},
		Cell: tiling.UnitCell{
			Nodes: []tiling.UnitCellNode{
				{ID: "a", Offset: vec.New(0, 0, 0)},
				{ID: "b", Offset: vec.New(0, 1, 0), Role: lattice.RoleOutput},
			},
			Edges: []tiling.UnitCellEdge{
				{Source: "a", Target: "b"},
				{Source: "a", Target: "b", CellOffset: vec.I(1, -1, 0)},
				{Source: "a", Target: "b", CellOffset: vec.I(0, -1, 0)},
				// mirror of the previous edge and an exact duplicate: both collapse
				{Source: "b", Target: "a", CellOffset: vec.I(0, 1, 0)},
				{Source: "a", Target: "b"},
				// self-loop entry is dropped
				{Source: "a", Target: "a"},
			},
		},
	}
}

func bcc() tiling.Pattern {
	a3 := vec.New(0, 0, 1)
	p := tiling.Pattern{
		Dimension: 3,
		Vectors:   tiling.LatticeVectors{A1: vec.New(1, 0, 0), A2: vec.New(0, 1, 0), A3: &a3},
		Cell: tiling.UnitCell{
			Nodes: []tiling.UnitCellNode{
				{ID: "c"},
				{ID: "m", Offset: vec.New(0.5, 0.5, 0.5)},
			},
		},
	}
	for _, d := range []vec.IVec3{
		vec.I(0, 0, 0), vec.I(1, 0, 0), vec.I(0, 1, 0), vec.I(0, 0, 1),
		vec.I(1, 1, 0), vec.I(1, 0, 1), vec.I(0, 1, 1), vec.I(1, 1, 1),
	} {
		p.Cell.Edges = append(p.Cell.Edges, tiling.UnitCellEdge{Source: "m", Target: "c", CellOffset: d})
	}
	return p
}

func TestCubicGrid_SeedCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		l            int
		nodes, edges int
	}{
		{1, 8, 12},
		{2, 27, 54},
		{3, 64, 144},
	}
	for _, tc := range tests {
		p, r, err := tiling.CubicGrid(tc.l, tc.l, tc.l)
		require.NoError(t, err)

		g, err := tiling.Generate(p, r)
		require.NoError(t, err)
		requireInvariants(t, g)
		assert.Len(t, g.Nodes, tc.nodes, "l=%d", tc.l)
		assert.Len(t, g.Edges, tc.edges, "l=%d", tc.l)
		assert.Equal(t, tc.nodes, tiling.EstimateNodeCount(p, r))
		assert.Equal(t, tc.edges, tiling.EstimateEdgeCount(p, r))
	}

	_, _, err := tiling.CubicGrid(0, 1, -1)
	var ve *lattice.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Violations, 2)
}

func TestEstimate_MatchesGeneration(t *testing.T) {
	t.Parallel()

	square, sqRange, err := tiling.SquareGrid(4, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		p    tiling.Pattern
		r    tiling.CellRange
		opts []tiling.Option
	}{
		{"square", square, sqRange, nil},
		{"square_negative_range", square, tiling.Range2D(-3, -1, 2, 5), nil},
		{"square_single_cell", square, tiling.Range2D(0, 0, 0, 0), nil},
		{"square_z_layer", square, tiling.CellRange{X: tiling.Span{Min: 0, Max: 2}, Y: tiling.Span{Min: 0, Max: 2}, Z: &tiling.Span{Min: 4, Max: 4}}, nil},
		{"honeycomb", honeycomb(), tiling.Range2D(0, 3, 0, 3), nil},
		{"honeycomb_position_ids", honeycomb(), tiling.Range2D(-2, 2, -1, 3), []tiling.Option{tiling.WithIDScheme(lattice.PositionKeyed)}},
		{"bcc", bcc(), tiling.Range3D(0, 2, 0, 2, 0, 2), nil},
		{"bcc_thin", bcc(), tiling.Range3D(0, 4, 0, 0, 0, 3), nil},
		{"bcc_position_ids", bcc(), tiling.Range3D(0, 2, 0, 1, 0, 2), []tiling.Option{tiling.WithIDScheme(lattice.PositionKeyed)}},
		{"cubic_long_offsets", func() tiling.Pattern {
			p := tiling.CubicPattern()
			p.Cell.Edges = append(p.Cell.Edges, tiling.UnitCellEdge{Source: "v", Target: "v", CellOffset: vec.I(5, 0, -1)})
			return p
		}(), tiling.Range3D(0, 3, 0, 3, 0, 3), nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := tiling.Generate(tc.p, tc.r, tc.opts...)
			require.NoError(t, err)
			requireInvariants(t, g)
			assert.Equal(t, tiling.EstimateNodeCount(tc.p, tc.r), len(g.Nodes))
			assert.Equal(t, tiling.EstimateEdgeCount(tc.p, tc.r), len(g.Edges))
		})
	}
}

func TestGenerate_SquareTopology(t *testing.T) {
	t.Parallel()

	p := tiling.SquarePattern()
	g, err := tiling.Generate(p, tiling.Range2D(0, 2, 0, 2))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 9)
	assert.Len(t, g.Edges, 12)

	// Cell-local IDs: "cx_cy_local".
	assert.Equal(t, "0_0_v", g.Nodes[0].ID)
	assert.Equal(t, lattice.RoleIntermediate, g.Nodes[0].Role)

	// Single cell: both bonds leave the range and are truncated.
	g, err = tiling.Generate(p, tiling.Range2D(0, 0, 0, 0))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Edges)
}

func TestGenerate_PositionKeyedIDs(t *testing.T) {
	t.Parallel()

	g, err := tiling.Generate(honeycomb(), tiling.Range2D(1, 1, 0, 0), tiling.WithIDScheme(lattice.PositionKeyed))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "1.73_0_0", g.Nodes[0].ID)
	assert.Equal(t, "1.73_1_0", g.Nodes[1].ID)
	assert.Equal(t, lattice.RoleOutput, g.Nodes[1].Role)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "1.73_0_0--1.73_1_0", g.Edges[0].ID)
}

func TestGenerate_PositionCollision(t *testing.T) {
	t.Parallel()

	p := tiling.SquarePattern()
	p.Cell.Nodes = append(p.Cell.Nodes, tiling.UnitCellNode{ID: "w", Offset: vec.New(1, 0, 0)})

	_, err := tiling.Generate(p, tiling.Range2D(0, 1, 0, 0), tiling.WithIDScheme(lattice.PositionKeyed))
	require.ErrorIs(t, err, lattice.ErrInvalidParameter)

	// Cell-local IDs keep the nodes apart.
	g, err := tiling.Generate(p, tiling.Range2D(0, 1, 0, 0))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 4)
}

func TestGenerate_DegenerateVectorsCollideUnderPositionIDs(t *testing.T) {
	t.Parallel()

	for _, a2 := range []vec.Vec3{vec.New(0, 0, 0), vec.New(2, 0, 0)} {
		p := tiling.SquarePattern()
		p.Vectors.A2 = a2

		_, err := tiling.Generate(p, tiling.Range2D(0, 2, 0, 1), tiling.WithIDScheme(lattice.PositionKeyed))
		require.ErrorIs(t, err, lattice.ErrInvalidParameter, "a2=%v", a2)
	}
}

func TestGenerate_BaseZ(t *testing.T) {
	t.Parallel()

	for k := -3; k <= 3; k++ {
		g, err := tiling.Generate(honeycomb(), tiling.Range2D(0, 2, 0, 2),
			tiling.WithBaseZ(float64(k)), tiling.WithIDScheme(lattice.PositionKeyed))
		require.NoError(t, err)
		requireInvariants(t, g)

		byID := make(map[string]lattice.Node, len(g.Nodes))
		for _, n := range g.Nodes {
			require.Equal(t, float64(k), n.Position.Z, "node %s", n.ID)
			byID[n.ID] = n
		}
		for _, e := range g.Edges {
			assert.Equal(t, float64(k), byID[e.Source].Position.Z)
			assert.Equal(t, float64(k), byID[e.Target].Position.Z)
		}
	}

	// 3D patterns ignore base Z.
	g, err := tiling.Generate(bcc(), tiling.Range3D(0, 0, 0, 0, 1, 1), tiling.WithBaseZ(7))
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Nodes[0].Position.Z)
	assert.Equal(t, 1.5, g.Nodes[1].Position.Z)
}

func TestGenerate_SizeLimit(t *testing.T) {
	t.Parallel()

	p, r, err := tiling.CubicGrid(10, 10, 10) // 1331 nodes
	require.NoError(t, err)

	g, err := tiling.Generate(p, r)
	require.ErrorIs(t, err, lattice.ErrSizeLimit)
	var se *lattice.SizeLimitError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1331, se.Estimated)
	assert.Equal(t, lattice.DefaultMaxNodes, se.Limit)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)

	g, err = tiling.Generate(p, r, tiling.WithMaxNodes(2000))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 1331)
}

func TestEstimate_SaturatesNearIntLimits(t *testing.T) {
	t.Parallel()

	sq := tiling.SquarePattern()
	tests := []struct {
		name string
		r    tiling.CellRange
	}{
		{"full int axis", tiling.Range2D(math.MinInt, math.MaxInt, 0, 0)},
		{"0..MaxInt", tiling.Range2D(0, math.MaxInt, 0, 0)},
		{"2^32 x 2^32", tiling.Range2D(0, 1<<32-1, 0, 1<<32-1)},
		{"2^62 x 2", tiling.Range2D(0, 1<<62-1, 0, 1)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, math.MaxInt, tc.r.CellCount(tiling.Dim2))
			assert.Equal(t, math.MaxInt, tiling.EstimateNodeCount(sq, tc.r))
			assert.Positive(t, tiling.EstimateEdgeCount(sq, tc.r))

			for _, limit := range []int{lattice.DefaultMaxNodes, math.MaxInt} {
				var g lattice.Graph
				var err error
				require.NotPanics(t, func() {
					g, err = tiling.Generate(sq, tc.r, tiling.WithMaxNodes(limit))
				})
				require.ErrorIs(t, err, lattice.ErrSizeLimit)
				assert.Empty(t, g.Nodes)
			}
		})
	}

	assert.Equal(t, math.MaxInt, tiling.EstimateEdgeCount(sq, tiling.Range2D(0, 1<<32-1, 0, 1<<32-1)))
	assert.Equal(t, 0, tiling.EstimateEdgeCount(sq, tiling.Range2D(math.MaxInt, math.MaxInt, 0, 0)))
}

func TestGenerate_RangeAtMaxInt(t *testing.T) {
	t.Parallel()

	r := tiling.Range2D(math.MaxInt-1, math.MaxInt, 0, 0)
	assert.Equal(t, 2, r.X.Len())
	assert.Equal(t, 1, tiling.EstimateEdgeCount(tiling.SquarePattern(), r))

	g, err := tiling.Generate(tiling.SquarePattern(), r)
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "9223372036854775806_0_v--9223372036854775807_0_v", g.Edges[0].ID)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	r := tiling.Range3D(-1, 1, 0, 2, 0, 1)
	g1, err := tiling.Generate(bcc(), r)
	require.NoError(t, err)
	g2, err := tiling.Generate(bcc(), r)
	require.NoError(t, err)
	if diff := cmp.Diff(g1, g2); diff != "" {
		t.Fatalf("non-deterministic output (-first +second):\n%s", diff)
	}
}

func TestGenerate_DegenerateVectors(t *testing.T) {
	t.Parallel()

	p := tiling.SquarePattern()
	p.Vectors.A2 = p.Vectors.A1 // collinear
	g, err := tiling.Generate(p, tiling.Range2D(0, 2, 0, 2))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 9)
	assert.Len(t, g.Edges, 12)
}

func TestValidatePattern_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	a3 := vec.New(0, 0, 1)
	p := tiling.Pattern{
		Dimension: 2,
		Vectors:   tiling.LatticeVectors{A1: vec.New(1, 0, 0.5), A2: vec.New(0, 1, 0), A3: &a3},
		Cell: tiling.UnitCell{
			Nodes: []tiling.UnitCellNode{
				{ID: "a"},
				{ID: "a"},
				{ID: "", Offset: vec.New(0, 0, 1)},
				{ID: "b", Role: "ancilla"},
			},
			Edges: []tiling.UnitCellEdge{
				{Source: "a", Target: "ghost"},
				{Source: "a", Target: "b", CellOffset: vec.I(0, 0, 1)},
			},
		},
	}

	err := tiling.ValidatePattern(p)
	var ve *lattice.ValidationError
	require.ErrorAs(t, err, &ve)

	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{
		"latticeVectors.a3.z",
		"latticeVectors.a1.z",
		"unitCell.nodes[1].id",
		"unitCell.nodes[2].id",
		"unitCell.nodes[2].offset.z",
		"unitCell.nodes[3].role",
		"unitCell.edges[0].target",
		"unitCell.edges[1].cellOffset.z",
	}, fields)
	assert.True(t, errors.Is(err, lattice.ErrInvalidParameter))
}

func TestValidatePattern_MissingA3AndBadDimension(t *testing.T) {
	t.Parallel()

	p := tiling.CubicPattern()
	p.Vectors.A3 = nil
	err := tiling.ValidatePattern(p)
	require.ErrorIs(t, err, lattice.ErrInvalidParameter)
	assert.True(t, strings.Contains(err.Error(), "latticeVectors.a3"))

	p.Dimension = 4
	err = tiling.ValidatePattern(p)
	require.ErrorIs(t, err, lattice.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "dimension")

	empty := tiling.Pattern{Dimension: 2}
	assert.ErrorIs(t, tiling.ValidatePattern(empty), lattice.ErrInvalidParameter)
}

func TestValidatePattern_A3On2D(t *testing.T) {
	t.Parallel()

	flat := vec.New(0, 0, 0)
	p := tiling.SquarePattern()
	p.Vectors.A3 = &flat
	require.NoError(t, tiling.ValidatePattern(p))

	g, err := tiling.Generate(p, tiling.Range2D(0, 1, 0, 1), tiling.WithBaseZ(3))
	require.NoError(t, err)
	want, err := tiling.Generate(tiling.SquarePattern(), tiling.Range2D(0, 1, 0, 1), tiling.WithBaseZ(3))
	require.NoError(t, err)
	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("a3 on a 2D pattern changed the output:\n%s", diff)
	}

	tilted := vec.New(1, 1, 0.5)
	p.Vectors.A3 = &tilted
	err = tiling.ValidatePattern(p)
	var ve *lattice.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Violations, 1)
	assert.Equal(t, "latticeVectors.a3.z", ve.Violations[0].Field)
	assert.ErrorIs(t, err, lattice.ErrInvalidParameter)
}

func TestValidateRange(t *testing.T) {
	t.Parallel()

	cubic := tiling.CubicPattern()
	square := tiling.SquarePattern()

	// 3D without Z: mismatch.
	_, err := tiling.Generate(cubic, tiling.Range2D(0, 1, 0, 1))
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	assert.NotErrorIs(t, err, lattice.ErrSizeLimit)

	// Unordered bounds on two axes and a mismatch, all reported together.
	r := tiling.CellRange{X: tiling.Span{Min: 2, Max: 1}, Y: tiling.Span{Min: 5, Max: 0}, Z: &tiling.Span{Min: 0, Max: 3}}
	err = tiling.ValidateRange(square, r)
	var ve *lattice.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Violations, 3)
	assert.ErrorIs(t, err, lattice.ErrInvalidParameter)
	assert.ErrorIs(t, err, lattice.ErrDimensionMismatch)

	require.NoError(t, tiling.ValidateRange(cubic, tiling.Range3D(0, 0, 0, 0, -2, 2)))
}

func TestRequireDimension(t *testing.T) {
	t.Parallel()

	require.NoError(t, tiling.RequireDimension(tiling.CubicPattern(), 3))
	assert.ErrorIs(t, tiling.RequireDimension(tiling.CubicPattern(), 2), lattice.ErrDimensionMismatch)
	assert.ErrorIs(t, tiling.RequireDimension(tiling.SquarePattern(), 3), lattice.ErrDimensionMismatch)
	assert.ErrorIs(t, tiling.RequireDimension(tiling.SquarePattern(), 1), lattice.ErrInvalidParameter)
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { tiling.WithMaxNodes(0) })
	assert.Panics(t, func() { tiling.WithIDScheme(lattice.IDScheme(9)) })
}

func TestSpan_JSON(t *testing.T) {
	t.Parallel()

	r := tiling.Range3D(-1, 2, 0, 0, 3, 4)
	b, err := r.X.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[-1,2]`, string(b))

	var s tiling.Span
	require.NoError(t, s.UnmarshalJSON([]byte(`[4,9]`)))
	assert.Equal(t, tiling.Span{Min: 4, Max: 9}, s)
	assert.ErrorIs(t, s.UnmarshalJSON([]byte(`[1,2,3]`)), lattice.ErrInvalidParameter)
}

func TestCellRange_Contains(t *testing.T) {
	t.Parallel()
	r3 := tiling.Range3D(0, 2, -1, 1, 3, 4)
	assert.True(t, r3.Contains(vec.IVec3{X: 2, Y: -1, Z: 4}, 3))
	assert.False(t, r3.Contains(vec.IVec3{X: 3, Y: 0, Z: 3}, 3))
	assert.False(t, r3.Contains(vec.IVec3{X: 0, Y: 0, Z: 4}, 2), "2D keeps only the first Z layer")
	assert.True(t, r3.Contains(vec.IVec3{X: 0, Y: 0, Z: 3}, 2))

	r2 := tiling.Range2D(0, 1, 0, 1)
	assert.True(t, r2.Contains(vec.IVec3{X: 1, Y: 1}, 2))
	assert.False(t, r2.Contains(vec.IVec3{X: 1, Y: 1, Z: 1}, 3))
	assert.Equal(t, 18, r3.CellCount(3))
	assert.Equal(t, 9, r3.CellCount(2))
}
