package network_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/network"
	"github.com/katalvlaran/epinet/params"
	"github.com/katalvlaran/epinet/rng"
)

func mustParams(t *testing.T, opts ...params.Option) params.ParameterSet {
	t.Helper()
	p, err := params.New(opts...)
	require.NoError(t, err)
	return p
}

func pathGraph(n int) *core.ContactGraph {
	g := core.NewGraph(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(v-1, v)
	}
	return g.Freeze()
}

// SimulatorSuite runs the invariants on a small-world graph.
type SimulatorSuite struct {
	suite.Suite
	p params.ParameterSet
	g *core.ContactGraph
}

func TestSimulatorSuite(t *testing.T) {
	suite.Run(t, new(SimulatorSuite))
}

func (s *SimulatorSuite) SetupTest() {
	p, err := params.New(params.WithNetworkSize(300), params.WithSteps(80), params.WithSeed(17))
	s.Require().NoError(err)
	s.p = p
	g, err := builder.Generate(builder.SmallWorld, p.NetworkSize, builder.WithRand(rng.Derive(p.Seed, rng.StreamGraph)))
	s.Require().NoError(err)
	s.g = g
}

func (s *SimulatorSuite) run(opts ...network.Option) *network.Run {
	sim, err := network.NewSimulator(s.g, s.p, opts...)
	s.Require().NoError(err)
	run, err := sim.Run(rng.Derive(s.p.Seed, rng.StreamContagion))
	s.Require().NoError(err)
	return run
}

func (s *SimulatorSuite) TestHistoryShape() {
	run := s.run()
	h := run.History
	s.Equal(s.p.Steps+1, h.Len())

	first := h.At(0)
	s.Len(first, s.p.NetworkSize)
	s.Equal(1, first.Count(network.Infected))
	s.Equal(network.Infected, first[run.PatientZero])
	s.Equal(s.p.NetworkSize-1, first.Count(network.Susceptible))
}

func (s *SimulatorSuite) TestNoReinfection() {
	h := s.run().History
	for k := 1; k < h.Len(); k++ {
		prev, cur := h.At(k-1), h.At(k)
		for v := range cur {
			switch prev[v] {
			case network.Susceptible:
				s.NotEqual(network.Recovered, cur[v], "S→R at step %d node %d", k, v)
			case network.Infected:
				s.NotEqual(network.Susceptible, cur[v], "I→S at step %d node %d", k, v)
			case network.Recovered:
				s.Equal(network.Recovered, cur[v], "R left at step %d node %d", k, v)
			}
		}
	}
}

func (s *SimulatorSuite) TestDeterministic() {
	a := s.run().History.Snapshots()
	b := s.run().History.Snapshots()
	s.Equal(a, b)
}

func (s *SimulatorSuite) TestWorkerCountIndependent() {
	seq := s.run(network.WithWorkers(1)).History.Snapshots()
	for _, w := range []int{2, 3, 8} {
		par := s.run(network.WithWorkers(w), network.WithParallelThreshold(1)).History.Snapshots()
		s.Equal(seq, par, "workers=%d", w)
	}
}

func (s *SimulatorSuite) TestIdempotentAfterExtinction() {
	h := s.run().History
	extinct := -1
	for k := 0; k < h.Len(); k++ {
		if h.At(k).Count(network.Infected) == 0 {
			extinct = k
			break
		}
	}
	if extinct < 0 {
		s.T().Skip("epidemic still active at the horizon")
	}
	for k := extinct + 1; k < h.Len(); k++ {
		s.Equal(h.At(extinct), h.At(k))
	}
}

func TestSimulator_LongRunReachesExtinction(t *testing.T) {
	p := mustParams(t, params.WithNetworkSize(50), params.WithSteps(400), params.WithGamma(0.5))
	g, err := builder.Generate(builder.ScaleFree, 50, builder.WithSeed(3))
	require.NoError(t, err)
	sim, err := network.NewSimulator(g, p)
	require.NoError(t, err)
	run, err := sim.Run(rng.FromSeed(3))
	require.NoError(t, err)

	h := run.History
	last := h.Last()
	require.Zero(t, last.Count(network.Infected))
	// the final 10 snapshots are all identical to the last one
	for k := h.Len() - 10; k < h.Len(); k++ {
		require.Equal(t, last, h.At(k))
	}
}

func TestSimulator_OneHopPerStep(t *testing.T) {
	const n = 12
	p := mustParams(t, params.WithNetworkSize(n), params.WithSteps(5),
		params.WithBeta(1), params.WithGamma(1e-12))
	sim, err := network.NewSimulator(pathGraph(n), p)
	require.NoError(t, err)
	run, err := sim.Run(rng.FromSeed(99))
	require.NoError(t, err)

	p0 := run.PatientZero
	for k := 0; k < run.History.Len(); k++ {
		snap := run.History.At(k)
		for v := 0; v < n; v++ {
			d := v - p0
			if d < 0 {
				d = -d
			}
			if d <= k {
				require.Equal(t, network.Infected, snap[v], "step %d node %d", k, v)
			} else {
				require.Equal(t, network.Susceptible, snap[v], "step %d node %d", k, v)
			}
		}
	}
}

func TestSimulator_ZeroSteps(t *testing.T) {
	p := mustParams(t, params.WithNetworkSize(10), params.WithSteps(0))
	sim, err := network.NewSimulator(pathGraph(10), p)
	require.NoError(t, err)
	run, err := sim.Run(rng.FromSeed(1))
	require.NoError(t, err)
	require.Equal(t, 1, run.History.Len())
	require.Equal(t, 1, run.History.Last().Count(network.Infected))
}

func TestSimulator_SingleNode(t *testing.T) {
	p := mustParams(t, params.WithNetworkSize(1), params.WithSteps(10))
	sim, err := network.NewSimulator(core.NewGraph(1).Freeze(), p)
	require.NoError(t, err)
	run, err := sim.Run(rng.FromSeed(5))
	require.NoError(t, err)
	require.Equal(t, 11, run.History.Len())

	recoveredAt := -1
	for k, snap := range run.History.Snapshots() {
		_, i, r := snap.Counts()
		require.LessOrEqual(t, i+r, 1)
		require.Equal(t, 1, i+r)
		if r == 1 && recoveredAt < 0 {
			recoveredAt = k
		}
		if recoveredAt >= 0 {
			require.Equal(t, network.Recovered, snap[0])
		}
	}
}

func TestSimulator_IsolatedPatientZero(t *testing.T) {
	const n = 6
	p := mustParams(t, params.WithNetworkSize(n), params.WithSteps(30), params.WithBeta(1))
	sim, err := network.NewSimulator(core.NewGraph(n).Freeze(), p)
	require.NoError(t, err)
	run, err := sim.Run(rng.FromSeed(8))
	require.NoError(t, err)
	for _, snap := range run.History.Snapshots() {
		require.Equal(t, n-1, snap.Count(network.Susceptible))
	}
}

func TestNewSimulator_Validation(t *testing.T) {
	p := mustParams(t, params.WithNetworkSize(10))

	_, err := network.NewSimulator(nil, p)
	require.ErrorIs(t, err, params.ErrInvalidConfig)

	_, err = network.NewSimulator(pathGraph(9), p)
	require.ErrorIs(t, err, params.ErrInvalidConfig)

	bad := p
	bad.Gamma = 2
	_, err = network.NewSimulator(pathGraph(10), bad)
	require.ErrorIs(t, err, params.ErrInvalidConfig)

	sim, err := network.NewSimulator(pathGraph(10), p)
	require.NoError(t, err)
	_, err = sim.Run(nil)
	require.ErrorIs(t, err, network.ErrNeedRandSource)
}

func TestSimulator_ContextCanceled(t *testing.T) {
	p := mustParams(t, params.WithNetworkSize(10), params.WithSteps(20))
	sim, err := network.NewSimulator(pathGraph(10), p)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	run, err := sim.RunContext(ctx, rng.FromSeed(1))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, run.History.Len())
}

func TestSimulator_Logging(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	p := mustParams(t, params.WithNetworkSize(10), params.WithSteps(3))
	sim, err := network.NewSimulator(pathGraph(10), p, network.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	run, err := sim.Run(rng.FromSeed(1))
	require.NoError(t, err)

	require.Equal(t, 3, logs.FilterMessage("network step").Len())
	done := logs.FilterMessage("network run complete").All()
	require.Len(t, done, 1)
	require.Equal(t, run.ID.String(), done[0].ContextMap()["run_id"])
}
