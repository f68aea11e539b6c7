package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/bfs"
	"github.com/katalvlaran/epinet/compartment"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/dtw"
	"github.com/katalvlaran/epinet/network"
	"github.com/katalvlaran/epinet/params"
	"github.com/katalvlaran/epinet/report"
)

const (
	S = network.Susceptible
	I = network.Infected
	R = network.Recovered
)

func history(snaps ...network.Snapshot) *network.History {
	h := network.NewHistory(len(snaps))
	for _, s := range snaps {
		h.Append(s)
	}
	return h
}

func TestReproductionNumbers(t *testing.T) {
	p := params.Default()
	require.InDelta(t, 3.0, report.R0(p), 1e-12)
	require.InDelta(t, 5.0, report.LatentPeriod(p), 1e-12)

	p2, err := params.New(params.WithBeta(0.5), params.WithGamma(0.25), params.WithSigma(0.5))
	require.NoError(t, err)
	require.InDelta(t, 2.0, report.R0(p2), 1e-12)
	require.InDelta(t, 2.0, report.LatentPeriod(p2), 1e-12)
}

func TestFinal(t *testing.T) {
	h := history(
		network.Snapshot{S, I, S, S},
		network.Snapshot{I, I, S, S},
		network.Snapshot{R, I, I, S},
	)
	fs, err := report.Final(h)
	require.NoError(t, err)
	require.Equal(t, 2, fs.Steps)
	require.Equal(t, 4, fs.NetworkSize)
	require.Equal(t, 1, fs.Susceptible)
	require.Equal(t, 2, fs.Infected)
	require.Equal(t, 1, fs.Recovered)
	require.InDelta(t, 0.5, fs.InfectedFraction, 1e-12)
	require.InDelta(t, 0.25, fs.RecoveredFraction, 1e-12)
	require.InDelta(t, 0.75, fs.AttackRate, 1e-12)

	i, err := report.FinalInfectedCount(h)
	require.NoError(t, err)
	require.Equal(t, 2, i)
	r, err := report.FinalRecoveredCount(h)
	require.NoError(t, err)
	require.Equal(t, 1, r)
}

func TestEmptyHistory(t *testing.T) {
	for _, h := range []*network.History{nil, network.NewHistory(0)} {
		_, err := report.Final(h)
		require.ErrorIs(t, err, report.ErrEmptyHistory)
		_, err = report.FinalInfectedCount(h)
		require.ErrorIs(t, err, report.ErrEmptyHistory)
		_, err = report.FinalRecoveredCount(h)
		require.ErrorIs(t, err, report.ErrEmptyHistory)
		_, err = report.Curve(h)
		require.ErrorIs(t, err, report.ErrEmptyHistory)
	}
}

func TestCurve(t *testing.T) {
	h := history(
		network.Snapshot{S, I, S},
		network.Snapshot{I, I, S},
		network.Snapshot{R, I, I},
		network.Snapshot{R, R, R},
	)
	c, err := report.Curve(h)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0, 0}, c.Susceptible)
	require.Equal(t, []int{1, 2, 2, 0}, c.Infected)
	require.Equal(t, []int{0, 0, 1, 3}, c.Recovered)

	step, peak := c.Peak()
	require.Equal(t, 1, step)
	require.Equal(t, 2, peak)
}

func TestSummarize_ReferenceScenario(t *testing.T) {
	p := params.Default()
	tr, err := compartment.NewRunner().Run(compartment.KindSIR, p)
	require.NoError(t, err)

	s, err := report.Summarize(tr)
	require.NoError(t, err)
	require.Equal(t, "sir", s.Model)
	require.InDelta(t, 1000, s.Population, 1e-9)
	require.Greater(t, s.PeakInfected, 1.0)
	require.Greater(t, s.PeakTime, 0.0)
	require.Less(t, s.PeakTime, float64(p.Days))
	require.Greater(t, s.AttackRate, 0.5)
	require.LessOrEqual(t, s.AttackRate, 1.0)

	_, err = report.Summarize(nil)
	require.ErrorIs(t, err, report.ErrEmptyTrajectory)
	_, err = report.Summarize(&compartment.Trajectory{})
	require.ErrorIs(t, err, report.ErrEmptyTrajectory)
}

func TestReach(t *testing.T) {
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	cg := g.Freeze()

	n, err := report.Reach(cg, 2)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	n, err = report.Reach(cg, 4)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = report.Reach(cg, 9)
	require.Error(t, err)
}

func compareFixture() *compartment.Trajectory {
	return &compartment.Trajectory{
		Kind:    compartment.KindSIR,
		Columns: []string{"S", "I", "R"},
		T:       []float64{0, 1, 2, 3},
		Y: [][]float64{
			{90, 10, 0},
			{60, 40, 0},
			{40, 20, 40},
			{40, 0, 60},
		},
	}
}

func TestCompare(t *testing.T) {
	tr := compareFixture()
	// Same shape on a 10-node network, one step later.
	curve := report.EpidemicCurve{Infected: []int{1, 1, 4, 2, 0}}

	c, err := report.Compare(tr, curve, 100, 10)
	require.NoError(t, err)
	require.InDelta(t, 0, c.Distance, 1e-12)
	require.InDelta(t, 0.4, c.CompartmentalPeak, 1e-12)
	require.InDelta(t, 1.0, c.CompartmentalPeakTime, 1e-12)
	require.InDelta(t, 0.4, c.NetworkPeak, 1e-12)
	require.Equal(t, 2, c.NetworkPeakStep)

	// The trajectory is not modified by normalisation.
	require.Equal(t, 40.0, tr.Y[1][1])

	flat := report.EpidemicCurve{Infected: []int{0, 0, 0, 0}}
	c, err = report.Compare(tr, flat, 100, 10)
	require.NoError(t, err)
	require.InDelta(t, 0.7, c.Distance, 1e-12)
	require.InDelta(t, 0.7/8, c.NormalizedDistance, 1e-12)

	_, err = report.Compare(tr, report.EpidemicCurve{}, 100, 10)
	require.ErrorIs(t, err, report.ErrEmptyHistory)
	_, err = report.Compare(nil, curve, 100, 10)
	require.ErrorIs(t, err, report.ErrEmptyTrajectory)
	_, err = report.Compare(tr, curve, 0, 10)
	require.Error(t, err)
}

func TestCompare_WarpingPath(t *testing.T) {
	tr := compareFixture()
	curve := report.EpidemicCurve{Infected: []int{1, 1, 4, 2, 0}}

	c, err := report.Compare(tr, curve, 100, 10)
	require.NoError(t, err)
	require.Equal(t, dtw.NoWindow, c.Window)
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 2}, {2, 3}, {3, 4}}, c.Path)
}

func TestCompareWith(t *testing.T) {
	tr := compareFixture()
	curve := report.EpidemicCurve{Infected: []int{1, 1, 4, 2, 0}}

	// the zero-cost alignment stays inside a band of 1
	banded := dtw.DefaultOptions()
	banded.Window = 1
	c, err := report.CompareWith(tr, curve, 100, 10, banded)
	require.NoError(t, err)
	require.InDelta(t, 0, c.Distance, 1e-12)
	require.Equal(t, 1, c.Window)
	require.Nil(t, c.Path)

	// 4 points against 5 need one non-diagonal step
	penalised := dtw.DefaultOptions()
	penalised.SlopePenalty = 0.5
	c, err = report.CompareWith(tr, curve, 100, 10, penalised)
	require.NoError(t, err)
	require.InDelta(t, 0.5, c.Distance, 1e-12)
	require.InDelta(t, 0.5, c.SlopePenalty, 1e-12)

	bad := dtw.DefaultOptions()
	bad.ReturnPath = true
	_, err = report.CompareWith(tr, curve, 100, 10, bad)
	require.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)
}

// spreadGraph is the path 0-1-2-3 with a branch 1-4 and an isolated node 5.
func spreadGraph(t *testing.T) *core.ContactGraph {
	t.Helper()
	g := core.NewGraph(6)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g.Freeze()
}

func TestSpreadOf_HopProfile(t *testing.T) {
	g := spreadGraph(t)

	s, err := report.SpreadOf(g, 0, nil, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 2, 1}, s.HopCounts)
	require.Equal(t, 5, s.Reached)
	require.Equal(t, 3, s.Eccentricity)
	require.Zero(t, s.InfectedDepth)
	require.Nil(t, s.Chain)

	s, err = report.SpreadOf(g, 0, nil, 2)
	require.NoError(t, err)
	require.Equal(t, 2, s.MaxHops)
	require.Equal(t, []int{1, 1, 2}, s.HopCounts)
	require.Equal(t, 4, s.Reached)
	require.Equal(t, 2, s.Eccentricity)

	s, err = report.SpreadOf(g, 5, nil, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1}, s.HopCounts)
	require.Equal(t, 1, s.Reached)
}

func TestSpreadOf_InfectedChain(t *testing.T) {
	g := spreadGraph(t)
	final := network.Snapshot{R, R, I, S, R, S}

	s, err := report.SpreadOf(g, 0, final, 0)
	require.NoError(t, err)
	require.Equal(t, 3, s.Eccentricity)
	require.Equal(t, 2, s.InfectedDepth)
	require.Len(t, s.Chain, 3)
	require.Equal(t, []int{0, 1}, s.Chain[:2])
	require.NotEqual(t, S, final[s.Chain[2]])
}

func TestSpreadOf_Errors(t *testing.T) {
	g := spreadGraph(t)

	_, err := report.SpreadOf(g, 0, network.Snapshot{I, S, S}, 0)
	require.ErrorIs(t, err, report.ErrSnapshotMismatch)

	_, err = report.SpreadOf(g, 0, nil, -1)
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = report.SpreadOf(g, 9, nil, 0)
	require.Error(t, err)
}
