// SPDX-License-Identifier: MIT
// Package: epinet/telemetry
//
// Package telemetry exposes Prometheus collectors for simulation runs.
//
// A Recorder registers its collectors on a caller-supplied registry; nothing
// is registered globally. Every method is safe on a nil *Recorder and then
// does nothing, so library code can record unconditionally.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/epinet/ode"
)

// Namespace prefixes every collector name.
const Namespace = "epinet"

// Run status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder holds the simulation collectors.
type Recorder struct {
	RunsTotal          *prometheus.CounterVec
	RunDuration        *prometheus.HistogramVec
	NetworkSteps       prometheus.Counter
	NetworkInfected    prometheus.Gauge
	NetworkRecovered   prometheus.Gauge
	GraphEdges         *prometheus.GaugeVec
	IntegrationSteps   *prometheus.CounterVec
	DerivativeEvals    prometheus.Counter
	NumericalFailures  *prometheus.CounterVec
	EnsembleRunsActive prometheus.Gauge
}

// NewRecorder creates the collectors and registers them on reg.
// reg must not already hold collectors of the same names.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "runs_total",
				Help:      "Total number of simulation runs by mode and status",
			},
			[]string{"mode", "status"},
		),
		RunDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "run_duration_seconds",
				Help:      "Simulation run duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"mode"},
		),
		NetworkSteps: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "network_steps_total",
			Help:      "Total number of completed network contagion steps",
		}),
		NetworkInfected: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_infected_nodes",
			Help:      "Infected nodes after the most recent network step",
		}),
		NetworkRecovered: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_recovered_nodes",
			Help:      "Recovered nodes after the most recent network step",
		}),
		GraphEdges: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "graph_edges",
				Help:      "Edge count of the most recently generated contact graph",
			},
			[]string{"graph_type"},
		),
		IntegrationSteps: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "integration_steps_total",
				Help:      "Adaptive integrator steps by outcome",
			},
			[]string{"outcome"},
		),
		DerivativeEvals: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "derivative_evaluations_total",
			Help:      "Total number of right-hand-side evaluations",
		}),
		NumericalFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "numerical_failures_total",
				Help:      "Integrations aborted by the solver, by model",
			},
			[]string{"mode"},
		),
		EnsembleRunsActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "ensemble_runs_in_flight",
			Help:      "Ensemble member runs currently executing",
		}),
	}
}

// ObserveRun records one finished run of the given mode.
func (r *Recorder) ObserveRun(mode string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.RunsTotal.WithLabelValues(mode, status).Inc()
	r.RunDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// ObserveStep records one completed network step.
func (r *Recorder) ObserveStep(infected, recovered int) {
	if r == nil {
		return
	}
	r.NetworkSteps.Inc()
	r.NetworkInfected.Set(float64(infected))
	r.NetworkRecovered.Set(float64(recovered))
}

// ObserveGraph records the size of a generated contact graph.
func (r *Recorder) ObserveGraph(graphType string, edges int) {
	if r == nil {
		return
	}
	r.GraphEdges.WithLabelValues(graphType).Set(float64(edges))
}

// ObserveIntegration records integrator work and, when failed, one failure.
func (r *Recorder) ObserveIntegration(mode string, st ode.Stats, failed bool) {
	if r == nil {
		return
	}
	r.IntegrationSteps.WithLabelValues("accepted").Add(float64(st.Accepted))
	r.IntegrationSteps.WithLabelValues("rejected").Add(float64(st.Rejected))
	r.DerivativeEvals.Add(float64(st.Evals))
	if failed {
		r.NumericalFailures.WithLabelValues(mode).Inc()
	}
}

// EnsembleRunStarted marks an ensemble member as running and returns the
// matching completion callback.
func (r *Recorder) EnsembleRunStarted() (done func()) {
	if r == nil {
		return func() {}
	}
	r.EnsembleRunsActive.Inc()
	return r.EnsembleRunsActive.Dec
}
