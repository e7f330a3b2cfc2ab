package lattice_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

func TestNewEdge_Canonical(t *testing.T) {
	t.Parallel()

	e := lattice.NewEdge("b", "a")
	assert.Equal(t, lattice.Edge{ID: "a--b", Source: "a", Target: "b"}, e)
	assert.Equal(t, e, lattice.NewEdge("a", "b"))
	assert.Equal(t, "0_0_0--0_1_0", lattice.EdgeKey("0_1_0", "0_0_0"))
	// byte-wise, not numeric: "10" sorts before "9"
	assert.Equal(t, "10_0_0--9_0_0", lattice.EdgeKey("9_0_0", "10_0_0"))
}

func TestEdgeSet(t *testing.T) {
	t.Parallel()

	s := lattice.NewEdgeSet(4)
	require.True(t, s.Add("x", "y"))
	assert.False(t, s.Add("y", "x"), "reverse duplicate")
	assert.False(t, s.Add("x", "y"), "exact duplicate")
	assert.False(t, s.Add("z", "z"), "self-loop")
	require.True(t, s.Add("z", "a"))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("y", "x"))
	assert.False(t, s.Contains("z", "z"))
	assert.Equal(t, []lattice.Edge{
		{ID: "x--y", Source: "x", Target: "y"},
		{ID: "a--z", Source: "a", Target: "z"},
	}, s.Edges())
}

func TestIDSchemes(t *testing.T) {
	t.Parallel()

	cell := vec.I(1, -2, 3)
	pos := vec.New(0.5, -1, 0.1+0.2)

	assert.Equal(t, "1_-2_a", lattice.CellLocalKeyed.NodeID(cell, 2, "a", pos))
	assert.Equal(t, "1_-2_3_a", lattice.CellLocalKeyed.NodeID(cell, 3, "a", pos))
	assert.Equal(t, "0.5_-1_0.3", lattice.PositionKeyed.NodeID(cell, 3, "a", pos))

	s, err := lattice.ParseIDScheme("position")
	require.NoError(t, err)
	assert.Equal(t, lattice.PositionKeyed, s)
	s, err = lattice.ParseIDScheme("cell")
	require.NoError(t, err)
	assert.Equal(t, lattice.CellLocalKeyed, s)
	_, err = lattice.ParseIDScheme("hash")
	assert.ErrorIs(t, err, lattice.ErrInvalidParameter)
	assert.Equal(t, "position", lattice.PositionKeyed.String())
}

func TestRole(t *testing.T) {
	t.Parallel()

	r, err := lattice.ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, lattice.RoleIntermediate, r)
	r, err = lattice.ParseRole("output")
	require.NoError(t, err)
	assert.Equal(t, lattice.RoleOutput, r)
	_, err = lattice.ParseRole("ancilla")
	assert.ErrorIs(t, err, lattice.ErrInvalidParameter)
}

func TestViolations_CollectsAll(t *testing.T) {
	t.Parallel()

	vs := lattice.NewViolations("Test")
	require.NoError(t, vs.Err())

	vs.Invalid("a", "bad %d", 1)
	vs.Mismatch("z", "missing")
	vs.Invalid("b", "bad %d", 2)

	err := vs.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, lattice.ErrInvalidParameter)
	assert.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	assert.NotErrorIs(t, err, lattice.ErrSizeLimit)

	var ve *lattice.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Violations, 3)
	assert.Contains(t, err.Error(), "3 violation(s)")

	other := lattice.NewViolations("Outer")
	assert.True(t, other.Merge(err))
	assert.True(t, other.Merge(nil))
	assert.False(t, other.Merge(errors.New("plain")))
	assert.Equal(t, 3, other.Len())
}

func TestCheckSize(t *testing.T) {
	t.Parallel()

	require.NoError(t, lattice.CheckSize("m", 1000, lattice.DefaultMaxNodes))
	require.NoError(t, lattice.CheckSize("m", 5000, 0))

	err := lattice.CheckSize("m", 1001, lattice.DefaultMaxNodes)
	require.ErrorIs(t, err, lattice.ErrSizeLimit)
	var se *lattice.SizeLimitError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1001, se.Estimated)
	assert.Equal(t, 1000, se.Limit)
}

func TestCheckSize_NegativeAndSaturated(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{0, lattice.DefaultMaxNodes, math.MaxInt} {
		err := lattice.CheckSize("m", -1, limit)
		assert.ErrorIs(t, err, lattice.ErrInvalidParameter, "limit %d", limit)
		assert.ErrorIs(t, lattice.CheckSize("m", math.MinInt, limit), lattice.ErrInvalidParameter)
		assert.ErrorIs(t, lattice.CheckSize("m", math.MaxInt, limit), lattice.ErrSizeLimit, "limit %d", limit)
	}
	require.NoError(t, lattice.CheckSize("m", math.MaxInt-1, math.MaxInt))
}

func TestSatArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"mul small", lattice.SatMul(3, 4, 5), 60},
		{"mul empty", lattice.SatMul(), 1},
		{"mul zero after saturation", lattice.SatMul(math.MaxInt, 2, 0), 0},
		{"mul 2^32 squared", lattice.SatMul(1<<32, 1<<32), math.MaxInt},
		{"mul 2^21 cubed", lattice.SatMul(1<<21, 1<<21, 1<<21), math.MaxInt},
		{"mul negative", lattice.SatMul(4, -1), 0},
		{"add small", lattice.SatAdd(1, 2, 3), 6},
		{"add saturates", lattice.SatAdd(math.MaxInt, 1), math.MaxInt},
		{"add skips negatives", lattice.SatAdd(5, -7), 5},
		{"cap negative", lattice.CapHint(-3), 0},
		{"cap small", lattice.CapHint(12), 12},
		{"cap huge", lattice.CapHint(math.MaxInt), 1 << 16},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestGraph_TranslateAndValidate(t *testing.T) {
	t.Parallel()

	g := lattice.Graph{
		Nodes: []lattice.Node{
			{ID: "a", Position: vec.New(0, 0, 0), Role: lattice.RoleInput},
			{ID: "b", Position: vec.New(1, 0.5, 0), Role: lattice.RoleIntermediate},
		},
		Edges: []lattice.Edge{lattice.NewEdge("b", "a")},
	}
	require.NoError(t, g.Validate())

	moved := g.Translate(vec.New(10, -0.25, 3))
	require.NoError(t, moved.Validate())
	assert.Equal(t, vec.New(10, -0.25, 3), moved.Nodes[0].Position)
	assert.Equal(t, vec.New(11, 0.25, 3), moved.Nodes[1].Position)
	assert.Equal(t, g.Edges, moved.Edges)
	assert.Equal(t, lattice.RoleInput, moved.Nodes[0].Role)
	// original untouched
	assert.Equal(t, vec.New(0, 0, 0), g.Nodes[0].Position)

	bad := g.Clone()
	bad.Edges = append(bad.Edges, lattice.Edge{ID: "b--a", Source: "b", Target: "a"})
	assert.ErrorIs(t, bad.Validate(), lattice.ErrInvalidParameter)

	dangling := g.Clone()
	dangling.Edges = []lattice.Edge{lattice.NewEdge("a", "c")}
	assert.ErrorIs(t, dangling.Validate(), lattice.ErrInvalidParameter)
}

func TestGraph_TranslateQuantisesDelta(t *testing.T) {
	t.Parallel()

	g := lattice.Graph{Nodes: []lattice.Node{{ID: "a", Position: vec.New(1.5, -2, 0), Role: lattice.RoleIntermediate}}}

	assert.Equal(t, vec.New(1.75, -1.5, 0.1), g.Translate(vec.New(0.25, 0.5, 0.1)).Nodes[0].Position)
	assert.Equal(t, vec.New(1.5, -2, 0), g.Translate(vec.New(0.004, 0.001, -0.003)).Nodes[0].Position)
}
