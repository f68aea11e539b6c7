package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/builder"
)

func TestParseGraphKind(t *testing.T) {
	t.Parallel()

	cases := map[string]builder.GraphKind{
		"small-world":     builder.SmallWorld,
		"watts_strogatz":  builder.SmallWorld,
		" Scale-Free ":    builder.ScaleFree,
		"barabasi_albert": builder.ScaleFree,
		"random":          builder.Random,
		"ERDOS_RENYI":     builder.Random,
	}
	for in, want := range cases {
		got, err := builder.ParseGraphKind(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := builder.ParseGraphKind("lattice")
	require.ErrorIs(t, err, builder.ErrUnknownGraphKind)
	_, err = builder.ParseGraphKind("")
	require.ErrorIs(t, err, builder.ErrUnknownGraphKind)
}

func TestGraphKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "small-world", builder.SmallWorld.String())
	require.Equal(t, "scale-free", builder.ScaleFree.String())
	require.Equal(t, "random", builder.Random.String())
	require.Equal(t, "GraphKind(7)", builder.GraphKind(7).String())
	require.False(t, builder.GraphKind(-1).Valid())

	for _, k := range []builder.GraphKind{builder.SmallWorld, builder.ScaleFree, builder.Random} {
		back, err := builder.ParseGraphKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, back)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	for _, k := range []builder.GraphKind{builder.SmallWorld, builder.ScaleFree, builder.Random} {
		g, err := builder.Generate(k, 200, builder.WithSeed(1))
		require.NoError(t, err, k.String())
		require.Equal(t, 200, g.NodeCount(), k.String())
	}

	_, err := builder.Generate(builder.GraphKind(9), 10, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrUnknownGraphKind)

	_, err = builder.Generate(builder.SmallWorld, 0, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Generate(builder.Random, 10)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestWithRandNilPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
}

func ExampleGenerate() {
	g, err := builder.Generate(builder.SmallWorld, 100, builder.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}
	st := g.Stats()
	fmt.Println(st.Nodes, st.Edges, st.MeanDegree)

	// Output:
	// 100 200 4
}
