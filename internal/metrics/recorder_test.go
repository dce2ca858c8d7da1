package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	rec := NewPrometheusRecorder(reg)

	rec.IncReloadOutcome(ReloadOutcomeSuccess)
	rec.IncReloadOutcome(ReloadOutcomeSuccess)
	rec.IncReloadOutcome(ReloadOutcomeInvalid)
	rec.ObserveReloadDuration(50 * time.Millisecond)
	rec.IncLinkCheckResult(true)
	rec.IncLinkCheckResult(false)
	rec.ObserveLinkCheckDuration(20 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(rec.reloadOutcomes.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.reloadOutcomes.WithLabelValues("invalid")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.linkCheckResults.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.linkCheckResults.WithLabelValues("broken")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestNilRecorderSafe(t *testing.T) {
	var rec *PrometheusRecorder
	rec.IncReloadOutcome(ReloadOutcomeSuccess)
	rec.ObserveReloadDuration(time.Second)
	rec.IncLinkCheckResult(true)
	rec.ObserveLinkCheckDuration(time.Second)
}

func TestNoopRecorderImplementsInterface(t *testing.T) {
	var _ Recorder = NoopRecorder{}
	var _ Recorder = (*PrometheusRecorder)(nil)
}
