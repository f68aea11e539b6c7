package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/core"
)

func TestFreeze_IsolatedFromLaterMutation(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	cg := g.Freeze()

	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.RemoveEdge(0, 1))

	require.Equal(t, 1, cg.EdgeCount())
	require.True(t, cg.HasEdge(0, 1))
	require.False(t, cg.HasEdge(1, 2))
}

func TestContactGraph_NeighborsClipped(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	cg := g.Freeze()

	row := cg.Neighbors(0)
	require.Equal(t, []int{1}, row)
	require.Equal(t, len(row), cap(row))

	// appending must not clobber the next row
	_ = append(row, 99)
	require.Equal(t, []int{0, 2}, cg.Neighbors(1))
}

func TestContactGraph_OutOfRange(t *testing.T) {
	cg := core.NewGraph(2).Freeze()
	require.Nil(t, cg.Neighbors(-1))
	require.Nil(t, cg.Neighbors(2))
	require.Equal(t, 0, cg.Degree(5))
	require.False(t, cg.HasEdge(0, 7))

	var zero core.ContactGraph
	require.Equal(t, 0, zero.NodeCount())
}

func TestContactGraph_Stats(t *testing.T) {
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))
	cg := g.Freeze()

	st := cg.Stats()
	require.Equal(t, 5, st.Nodes)
	require.Equal(t, 3, st.Edges)
	require.Equal(t, 0, st.MinDegree)
	require.Equal(t, 3, st.MaxDegree)
	require.Equal(t, 1, st.Isolated)
	require.InDelta(t, 1.2, st.MeanDegree, 1e-12)

	require.Equal(t, g.Edges(), cg.Edges())
}
