package engine_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/epinet/dtw"
	"github.com/katalvlaran/epinet/engine"
	"github.com/katalvlaran/epinet/params"
	"github.com/katalvlaran/epinet/rng"
	"github.com/katalvlaran/epinet/telemetry"
)

// EngineSuite exercises the engine on a small network scenario.
type EngineSuite struct {
	suite.Suite
	p   params.ParameterSet
	eng *engine.Engine
	rec *telemetry.Recorder
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	p, err := params.New(
		params.WithNetworkSize(150),
		params.WithSteps(40),
		params.WithSeed(11),
		params.WithDays(120),
	)
	s.Require().NoError(err)
	s.p = p
	s.rec = telemetry.NewRecorder(prometheus.NewRegistry())
	s.eng = engine.New(engine.WithRecorder(s.rec))
}

func (s *EngineSuite) TestSIR() {
	res, err := s.eng.SIR(s.p)
	s.Require().NoError(err)
	s.InDelta(3.0, res.R0, 1e-12)
	s.Zero(res.LatentPeriod)
	s.Equal(s.p.Days, res.Trajectory.Len())
	s.Greater(res.Summary.PeakTime, 0.0)
	s.Less(res.Summary.PeakTime, float64(s.p.Days))
	for _, row := range res.Trajectory.Y {
		s.InDelta(float64(s.p.N), row[0]+row[1]+row[2], 1e-6*float64(s.p.N))
	}
	s.Equal(1.0, testutil.ToFloat64(s.rec.RunsTotal.WithLabelValues("sir", telemetry.StatusOK)))
}

func (s *EngineSuite) TestSEIR() {
	res, err := s.eng.SEIR(s.p)
	s.Require().NoError(err)
	s.InDelta(5.0, res.LatentPeriod, 1e-12)
	s.Equal([]string{"S", "E", "I", "R"}, res.Trajectory.Columns)
}

func (s *EngineSuite) TestNetwork() {
	res, err := s.eng.Network(context.Background(), s.p)
	s.Require().NoError(err)
	s.Equal(s.p.NetworkSize, res.Graph.Nodes)
	s.Equal(s.p.NetworkSize*2, res.Graph.Edges) // small-world, k=4
	s.Equal(s.p.Steps+1, res.History.Len())
	s.Equal(s.p.Steps+1, res.Curve.Len())
	s.Equal(s.p.Steps, res.Final.Steps)
	s.LessOrEqual(res.Final.Infected+res.Final.Recovered, res.Reach)
	s.Equal(res.Reach, res.Spread.Reached)
	s.LessOrEqual(res.Spread.InfectedDepth, res.Spread.Eccentricity)
	s.Len(res.Spread.Chain, res.Spread.InfectedDepth+1)
	s.Equal(res.PatientZero, res.Spread.Chain[0])
	s.Equal(1.0, testutil.ToFloat64(s.rec.RunsTotal.WithLabelValues("network", telemetry.StatusOK)))
	s.Equal(float64(res.Graph.Edges), testutil.ToFloat64(s.rec.GraphEdges.WithLabelValues("small-world")))
}

func (s *EngineSuite) TestNetworkDeterministic() {
	a, err := s.eng.Network(context.Background(), s.p)
	s.Require().NoError(err)
	b, err := s.eng.Network(context.Background(), s.p)
	s.Require().NoError(err)
	s.NotEqual(a.RunID, b.RunID)
	s.Equal(a.PatientZero, b.PatientZero)
	s.Equal(a.History.Snapshots(), b.History.Snapshots())

	par := s.p
	par.Workers = 4
	c, err := engine.New(engine.WithParallelThreshold(1)).Network(context.Background(), par)
	s.Require().NoError(err)
	s.Equal(a.History.Snapshots(), c.History.Snapshots())
}

func (s *EngineSuite) TestEnsembleMatchesSequential() {
	const runs = 5
	res, err := s.eng.Ensemble(context.Background(), s.p, runs)
	s.Require().NoError(err)
	s.Require().Len(res.Runs, runs)

	for i, r := range res.Runs {
		member := s.p
		member.Seed = rng.MemberSeed(s.p.Seed, i)
		seq, err := s.eng.Network(context.Background(), member)
		s.Require().NoError(err)
		s.Equal(member.Seed, r.Seed, "member %d", i)
		s.Equal(seq.History.Snapshots(), r.History.Snapshots(), "member %d", i)
		s.GreaterOrEqual(r.Final.AttackRate, res.MinAttackRate)
		s.LessOrEqual(r.Final.AttackRate, res.MaxAttackRate)
	}
	s.Equal(1.0, testutil.ToFloat64(s.rec.RunsTotal.WithLabelValues("ensemble", telemetry.StatusOK)))
	s.Zero(testutil.ToFloat64(s.rec.EnsembleRunsActive))
}

func (s *EngineSuite) TestCompare() {
	res, err := s.eng.Compare(context.Background(), s.p)
	s.Require().NoError(err)
	s.GreaterOrEqual(res.Comparison.Distance, 0.0)
	s.InDelta(res.Comparison.Distance/float64(s.p.Days+s.p.Steps+1), res.Comparison.NormalizedDistance, 1e-12)
	s.Equal(res.Network.Curve.Len(), s.p.Steps+1)
}

func (s *EngineSuite) TestSpreadHops() {
	res, err := engine.New(engine.WithSpreadHops(1)).Network(context.Background(), s.p)
	s.Require().NoError(err)
	s.Equal(1, res.Spread.MaxHops)
	s.Equal(1, res.Spread.Eccentricity)
	s.Require().Len(res.Spread.HopCounts, 2)
	s.Equal(1, res.Spread.HopCounts[0])
	s.Equal(1+res.Spread.HopCounts[1], res.Spread.Reached)
	s.Less(res.Spread.Reached, res.Reach)

	_, err = engine.New(engine.WithSpreadHops(-1)).Network(context.Background(), s.p)
	s.Error(err)
}

func (s *EngineSuite) TestCompareDTWOptions() {
	res, err := s.eng.Compare(context.Background(), s.p)
	s.Require().NoError(err)
	path := res.Comparison.Path
	s.Require().NotEmpty(path)
	s.Equal([2]int{0, 0}, path[0])
	s.Equal([2]int{s.p.Days - 1, s.p.Steps}, path[len(path)-1])

	o := dtw.DefaultOptions()
	o.Window = 5
	o.SlopePenalty = 0.01
	res, err = engine.New(engine.WithDTWOptions(o)).Compare(context.Background(), s.p)
	s.Require().NoError(err)
	s.Equal(5, res.Comparison.Window)
	s.InDelta(0.01, res.Comparison.SlopePenalty, 1e-15)
	s.Nil(res.Comparison.Path)
}

func TestUnknownGraphTypeIsInvalidConfig(t *testing.T) {
	_, err := params.New(params.WithGraphType("hexagonal"))
	require.ErrorIs(t, err, params.ErrInvalidConfig)

	// a ParameterSet assembled without New still fails at the engine boundary
	p := params.Default()
	p.GraphType = "hexagonal"
	eng := engine.New()
	_, err = eng.Graph(p)
	require.ErrorIs(t, err, params.ErrInvalidConfig)
	_, err = eng.Network(context.Background(), p)
	require.ErrorIs(t, err, params.ErrInvalidConfig)
	_, err = eng.Ensemble(context.Background(), p, 2)
	require.ErrorIs(t, err, params.ErrInvalidConfig)
}

func TestGraphAliases(t *testing.T) {
	eng := engine.New()
	for _, kind := range []string{"scale-free", "barabasi_albert", "random", "erdos_renyi", "watts_strogatz"} {
		p, err := params.New(params.WithGraphType(kind), params.WithNetworkSize(60))
		require.NoError(t, err)
		g, err := eng.Graph(p)
		require.NoError(t, err, kind)
		require.Equal(t, 60, g.NodeCount(), kind)
	}
}

func TestEnsemble_Validation(t *testing.T) {
	eng := engine.New()
	_, err := eng.Ensemble(context.Background(), params.Default(), 0)
	require.ErrorIs(t, err, params.ErrInvalidConfig)

	bad := params.Default()
	bad.Beta = 0
	_, err = eng.Ensemble(context.Background(), bad, 1)
	require.ErrorIs(t, err, params.ErrInvalidConfig)
}

func TestEnsemble_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.New().Ensemble(ctx, params.Default(), 3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNetwork_Logging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	eng := engine.New(engine.WithLogger(zap.New(core)))

	p, err := params.New(params.WithNetworkSize(40), params.WithSteps(5))
	require.NoError(t, err)
	_, err = eng.Ensemble(context.Background(), p, 2)
	require.NoError(t, err)

	require.Equal(t, 2, logs.FilterMessage("network run complete").Len())
	entries := logs.FilterMessage("ensemble complete").All()
	require.Len(t, entries, 1)
	require.EqualValues(t, 2, entries[0].ContextMap()["runs"])
}
