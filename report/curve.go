// SPDX-License-Identifier: MIT
// Package: epinet/report
//
// curve.go - epidemic curves, trajectory summaries, reachability and
// comparison of the network and compartmental model families.

package report

import (
	"fmt"

	"github.com/katalvlaran/epinet/bfs"
	"github.com/katalvlaran/epinet/compartment"
	"github.com/katalvlaran/epinet/dtw"
	"github.com/katalvlaran/epinet/network"
)

// EpidemicCurve holds per-step state counts of a network run. Index k is the
// state after k steps.
type EpidemicCurve struct {
	Susceptible []int `json:"susceptible"`
	Infected    []int `json:"infected"`
	Recovered   []int `json:"recovered"`
}

// Len returns the number of points.
func (c EpidemicCurve) Len() int { return len(c.Infected) }

// Peak returns the step with the most Infected nodes and that count.
// The earliest step wins ties.
func (c EpidemicCurve) Peak() (step, infected int) {
	for k, v := range c.Infected {
		if v > infected {
			step, infected = k, v
		}
	}
	return step, infected
}

// Curve counts S, I and R in every snapshot of h.
func Curve(h *network.History) (EpidemicCurve, error) {
	n := h.Len()
	if n == 0 {
		return EpidemicCurve{}, fmt.Errorf("%s: %w", methodCurve, ErrEmptyHistory)
	}
	c := EpidemicCurve{
		Susceptible: make([]int, n),
		Infected:    make([]int, n),
		Recovered:   make([]int, n),
	}
	for k, snap := range h.Snapshots() {
		c.Susceptible[k], c.Infected[k], c.Recovered[k] = snap.Counts()
	}

	return c, nil
}

// Summary describes one compartmental trajectory.
type Summary struct {
	Model string `json:"model"`
	// Population is the sum of the initial state.
	Population float64 `json:"population"`
	// PeakInfected is the largest I over the grid, reached at PeakTime.
	PeakInfected float64 `json:"peak_infected"`
	PeakTime     float64 `json:"peak_time"`
	// FinalRecovered is R at the last grid point.
	FinalRecovered float64 `json:"final_recovered"`
	// AttackRate is FinalRecovered / Population.
	AttackRate float64 `json:"attack_rate"`
}

// Summarize finds the infection peak and final attack rate of tr.
func Summarize(tr *compartment.Trajectory) (Summary, error) {
	if tr == nil || tr.Len() == 0 {
		return Summary{}, fmt.Errorf("%s: %w", methodSummarize, ErrEmptyTrajectory)
	}
	infected := tr.Column("I")
	recovered := tr.Column("R")
	if infected == nil || recovered == nil {
		return Summary{}, fmt.Errorf("%s: trajectory has no I/R columns: %w", methodSummarize, ErrEmptyTrajectory)
	}

	s := Summary{Model: tr.Kind.String()}
	for _, x := range tr.Y[0] {
		s.Population += x
	}
	for k, v := range infected {
		if k == 0 || v > s.PeakInfected {
			s.PeakInfected, s.PeakTime = v, tr.T[k]
		}
	}
	s.FinalRecovered = recovered[len(recovered)-1]
	if s.Population > 0 {
		s.AttackRate = s.FinalRecovered / s.Population
	}

	return s, nil
}

// Reach returns the size of patient zero's connected component, an upper
// bound on the number of nodes a run can ever infect.
func Reach(g bfs.Graph, patientZero int) (int, error) {
	n, err := bfs.Reach(g, patientZero)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodReach, err)
	}
	return n, nil
}

// Comparison relates the infected fraction of a compartmental trajectory to
// that of a network run.
type Comparison struct {
	// Distance is the DTW distance between the two infected-fraction curves.
	Distance float64 `json:"dtw_distance"`
	// NormalizedDistance is Distance divided by the total number of points.
	NormalizedDistance float64 `json:"dtw_normalized"`

	// Window and SlopePenalty echo the DTW options used.
	Window       int     `json:"dtw_window"`
	SlopePenalty float64 `json:"dtw_slope_penalty"`
	// Path aligns compartmental grid index i with network step j, when requested.
	Path [][2]int `json:"warping_path,omitempty"`

	CompartmentalPeak     float64 `json:"compartmental_peak_fraction"`
	CompartmentalPeakTime float64 `json:"compartmental_peak_time"`
	NetworkPeak           float64 `json:"network_peak_fraction"`
	NetworkPeakStep       int     `json:"network_peak_step"`
}

// DefaultCompareOptions is unconstrained DTW that also returns the warping path.
func DefaultCompareOptions() dtw.Options {
	o := dtw.DefaultOptions()
	o.MemoryMode = dtw.FullMatrix
	o.ReturnPath = true
	return o
}

// Compare is CompareWith using DefaultCompareOptions.
func Compare(tr *compartment.Trajectory, curve EpidemicCurve, population, networkSize int) (Comparison, error) {
	return CompareWith(tr, curve, population, networkSize, DefaultCompareOptions())
}

// CompareWith normalises I(t)/population and infected(k)/networkSize and
// measures their DTW distance under opts. The curves may have different lengths.
func CompareWith(tr *compartment.Trajectory, curve EpidemicCurve, population, networkSize int, opts dtw.Options) (Comparison, error) {
	if tr == nil || tr.Len() == 0 {
		return Comparison{}, fmt.Errorf("%s: %w", methodCompare, ErrEmptyTrajectory)
	}
	if curve.Len() == 0 {
		return Comparison{}, fmt.Errorf("%s: %w", methodCompare, ErrEmptyHistory)
	}
	if population <= 0 || networkSize <= 0 {
		return Comparison{}, fmt.Errorf("%s: population=%d networkSize=%d must be positive: %w",
			methodCompare, population, networkSize, dtw.ErrBadInput)
	}

	meanField := tr.Column("I")
	if meanField == nil {
		return Comparison{}, fmt.Errorf("%s: trajectory has no I column: %w", methodCompare, ErrEmptyTrajectory)
	}
	c := Comparison{Window: opts.Window, SlopePenalty: opts.SlopePenalty}
	for k := range meanField {
		meanField[k] /= float64(population)
		if k == 0 || meanField[k] > c.CompartmentalPeak {
			c.CompartmentalPeak, c.CompartmentalPeakTime = meanField[k], tr.T[k]
		}
	}

	net := make([]float64, curve.Len())
	for k, v := range curve.Infected {
		net[k] = float64(v) / float64(networkSize)
	}
	step, peak := curve.Peak()
	c.NetworkPeakStep = step
	c.NetworkPeak = float64(peak) / float64(networkSize)

	d, path, err := dtw.DTW(meanField, net, &opts)
	if err != nil {
		return Comparison{}, fmt.Errorf("%s: %w", methodCompare, err)
	}
	c.Distance = d
	c.Path = path
	c.NormalizedDistance = d / float64(len(meanField)+len(net))

	return c, nil
}
