// SPDX-License-Identifier: MIT
// Package: epinet/network
//
// simulator.go - the discrete-time S→I→R contagion process.
//
// Step semantics:
//   - Every node reads the frozen current buffer and writes only its own slot
//     of the next buffer; the buffers swap after all nodes are evaluated.
//   - Susceptible v: one Bernoulli(beta) draw per Infected neighbor, all drawn.
//   - Infected v: one Bernoulli(gamma) draw to recover.
//   - Recovered v: absorbing.
//
// Randomness:
//   - Each step takes one uint64 seed from the contagion RNG. Node v draws from
//     a PCG stream seeded with (stepSeed, v), so the outcome is independent of
//     node order and worker count.
//
// Complexity:
//   - Time: O(steps · (V + E)).
//   - Space: O(steps · V) for the history plus two O(V) buffers.

package network

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	randv2 "math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/epinet/params"
	"github.com/katalvlaran/epinet/telemetry"
)

// ErrNeedRandSource reports a nil contagion RNG.
var ErrNeedRandSource = errors.New("network: rng is required")

// DefaultParallelThreshold is the smallest graph stepped in parallel.
const DefaultParallelThreshold = 1024

// Topology is the read-only view of a contact graph the simulator needs.
// Neighbors must be safe for concurrent readers.
type Topology interface {
	NodeCount() int
	Neighbors(v int) []int
}

// Simulator runs the contagion process on a fixed topology.
type Simulator struct {
	g         Topology
	beta      float64
	gamma     float64
	steps     int
	workers   int
	threshold int

	log *zap.Logger
	rec *telemetry.Recorder
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder attaches Prometheus collectors.
func WithRecorder(rec *telemetry.Recorder) Option {
	return func(s *Simulator) { s.rec = rec }
}

// WithWorkers overrides ParameterSet.Workers.
func WithWorkers(n int) Option {
	return func(s *Simulator) { s.workers = n }
}

// WithParallelThreshold sets the node count from which steps run in parallel.
func WithParallelThreshold(n int) Option {
	return func(s *Simulator) { s.threshold = n }
}

// NewSimulator validates p against g and returns a Simulator.
// g must have exactly p.NetworkSize nodes.
func NewSimulator(g Topology, p params.ParameterSet, opts ...Option) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("network: nil topology: %w", params.ErrInvalidConfig)
	}
	if n := g.NodeCount(); n != p.NetworkSize {
		return nil, fmt.Errorf("network: topology has %d nodes, network_size is %d: %w",
			n, p.NetworkSize, params.ErrInvalidConfig)
	}

	s := &Simulator{
		g:         g,
		beta:      p.Beta,
		gamma:     p.Gamma,
		steps:     p.Steps,
		workers:   p.Workers,
		threshold: DefaultParallelThreshold,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run is the result of one simulation.
type Run struct {
	ID          uuid.UUID `json:"run_id"`
	PatientZero int       `json:"patient_zero"`
	History     *History  `json:"-"`
}

// Run executes the configured number of steps. See RunContext.
func (s *Simulator) Run(rng *rand.Rand) (*Run, error) {
	return s.RunContext(context.Background(), rng)
}

// RunContext picks patient zero uniformly from rng, then performs exactly
// the configured number of steps, appending one snapshot per step. There is
// no early stop: once no node is Infected every further snapshot repeats the
// last one. ctx is checked between steps; on cancellation the run so far is
// returned with ctx.Err().
func (s *Simulator) RunContext(ctx context.Context, rng *rand.Rand) (*Run, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	start := time.Now()
	n := s.g.NodeCount()

	run := &Run{
		ID:          uuid.New(),
		PatientZero: rng.Intn(n),
		History:     NewHistory(s.steps + 1),
	}
	log := s.log.With(zap.String("run_id", run.ID.String()))

	var bufs [2]Snapshot
	bufs[0] = make(Snapshot, n)
	bufs[1] = make(Snapshot, n)
	cur := 0
	bufs[cur][run.PatientZero] = Infected
	run.History.Append(bufs[cur])

	log.Debug("network run started",
		zap.Int("nodes", n),
		zap.Int("patient_zero", run.PatientZero),
		zap.Int("steps", s.steps),
	)

	k := newKernel(s, n)
	for step := 1; step <= s.steps; step++ {
		if err := ctx.Err(); err != nil {
			s.rec.ObserveRun("network", time.Since(start), err)
			return run, err
		}

		seed := rng.Uint64()
		if err := k.step(ctx, bufs[cur], bufs[1-cur], seed); err != nil {
			s.rec.ObserveRun("network", time.Since(start), err)
			return run, err
		}
		cur = 1 - cur
		run.History.Append(bufs[cur])

		_, infected, recovered := bufs[cur].Counts()
		s.rec.ObserveStep(infected, recovered)
		log.Debug("network step",
			zap.Int("step", step),
			zap.Int("infected", infected),
			zap.Int("recovered", recovered),
		)
	}

	elapsed := time.Since(start)
	s.rec.ObserveRun("network", elapsed, nil)
	_, infected, recovered := bufs[cur].Counts()
	log.Info("network run complete",
		zap.Int("nodes", n),
		zap.Int("steps", s.steps),
		zap.Int("infected", infected),
		zap.Int("recovered", recovered),
		zap.Duration("elapsed", elapsed),
	)

	return run, nil
}

// kernel evaluates one step, sequentially or in contiguous chunks.
type kernel struct {
	g     Topology
	beta  float64
	gamma float64
	n     int
	// chunks > 1 selects the parallel path
	chunks int
	seq    *nodeRand
}

func newKernel(s *Simulator, n int) *kernel {
	k := &kernel{g: s.g, beta: s.beta, gamma: s.gamma, n: n, chunks: 1}
	if s.workers > 1 && n >= s.threshold {
		k.chunks = s.workers
		if k.chunks > n {
			k.chunks = n
		}
	} else {
		k.seq = newNodeRand()
	}

	return k
}

func (k *kernel) step(ctx context.Context, cur, next Snapshot, seed uint64) error {
	if k.chunks == 1 {
		k.evalRange(cur, next, seed, 0, k.n, k.seq)
		return nil
	}

	eg, _ := errgroup.WithContext(ctx)
	size := (k.n + k.chunks - 1) / k.chunks
	for lo := 0; lo < k.n; lo += size {
		lo, hi := lo, min(lo+size, k.n)
		eg.Go(func() error {
			k.evalRange(cur, next, seed, lo, hi, newNodeRand())
			return nil
		})
	}

	// barrier: every slot of next is written before the swap
	return eg.Wait()
}

// evalRange writes next[v] for v in [lo, hi) from the frozen cur.
func (k *kernel) evalRange(cur, next Snapshot, seed uint64, lo, hi int, nr *nodeRand) {
	for v := lo; v < hi; v++ {
		switch cur[v] {
		case Susceptible:
			nr.reseed(seed, v)
			st := Susceptible
			for _, u := range k.g.Neighbors(v) {
				if cur[u] == Infected && nr.r.Float64() < k.beta {
					st = Infected
				}
			}
			next[v] = st
		case Infected:
			nr.reseed(seed, v)
			if nr.r.Float64() < k.gamma {
				next[v] = Recovered
			} else {
				next[v] = Infected
			}
		default:
			next[v] = Recovered
		}
	}
}

// nodeRand is a reusable per-node PCG stream.
type nodeRand struct {
	src *randv2.PCG
	r   *randv2.Rand
}

func newNodeRand() *nodeRand {
	src := randv2.NewPCG(0, 0)
	return &nodeRand{src: src, r: randv2.New(src)}
}

func (nr *nodeRand) reseed(stepSeed uint64, v int) {
	nr.src.Seed(stepSeed, uint64(v))
}
