package telemetry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/ode"
	"github.com/katalvlaran/epinet/telemetry"
)

func TestRecorder_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := telemetry.NewRecorder(reg)

	r.ObserveRun("sir", 10*time.Millisecond, nil)
	r.ObserveRun("sir", 20*time.Millisecond, nil)
	r.ObserveRun("network", time.Millisecond, errors.New("boom"))

	require.Equal(t, 2.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("sir", telemetry.StatusOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues("network", telemetry.StatusError)))
	require.Equal(t, 2, testutil.CollectAndCount(r.RunDuration))
}

func TestRecorder_NetworkAndIntegration(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := telemetry.NewRecorder(reg)

	r.ObserveStep(5, 2)
	r.ObserveStep(3, 6)
	require.Equal(t, 2.0, testutil.ToFloat64(r.NetworkSteps))
	require.Equal(t, 3.0, testutil.ToFloat64(r.NetworkInfected))
	require.Equal(t, 6.0, testutil.ToFloat64(r.NetworkRecovered))

	r.ObserveGraph("small-world", 400)
	require.Equal(t, 400.0, testutil.ToFloat64(r.GraphEdges.WithLabelValues("small-world")))

	r.ObserveIntegration("seir", ode.Stats{Accepted: 40, Rejected: 2, Evals: 253}, true)
	require.Equal(t, 40.0, testutil.ToFloat64(r.IntegrationSteps.WithLabelValues("accepted")))
	require.Equal(t, 2.0, testutil.ToFloat64(r.IntegrationSteps.WithLabelValues("rejected")))
	require.Equal(t, 253.0, testutil.ToFloat64(r.DerivativeEvals))
	require.Equal(t, 1.0, testutil.ToFloat64(r.NumericalFailures.WithLabelValues("seir")))

	done := r.EnsembleRunStarted()
	require.Equal(t, 1.0, testutil.ToFloat64(r.EnsembleRunsActive))
	done()
	require.Equal(t, 0.0, testutil.ToFloat64(r.EnsembleRunsActive))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *telemetry.Recorder
	require.NotPanics(t, func() {
		r.ObserveRun("sir", time.Second, nil)
		r.ObserveStep(1, 1)
		r.ObserveGraph("random", 3)
		r.ObserveIntegration("sir", ode.Stats{}, true)
		r.EnsembleRunStarted()()
	})
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	telemetry.NewRecorder(reg)
	require.Panics(t, func() { telemetry.NewRecorder(reg) })
}
