package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once              sync.Once
	reloadOutcomes    *prom.CounterVec
	reloadDuration    prom.Histogram
	linkCheckResults  *prom.CounterVec
	linkCheckDuration prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.reloadOutcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteconf",
			Name:      "config_reloads_total",
			Help:      "Configuration reload attempts by outcome",
		}, []string{"outcome"})
		pr.reloadDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "siteconf",
			Name:      "config_reload_duration_seconds",
			Help:      "Duration of configuration reload attempts",
			Buckets:   prom.DefBuckets,
		})
		pr.linkCheckResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteconf",
			Name:      "link_check_results_total",
			Help:      "Link check results by outcome",
		}, []string{"result"})
		pr.linkCheckDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "siteconf",
			Name:      "link_check_duration_seconds",
			Help:      "Duration of individual link checks",
			Buckets:   prom.DefBuckets,
		})
		reg.MustRegister(pr.reloadOutcomes, pr.reloadDuration, pr.linkCheckResults, pr.linkCheckDuration)
	})
	return pr
}

func (p *PrometheusRecorder) IncReloadOutcome(outcome ReloadOutcome) {
	if p == nil || p.reloadOutcomes == nil {
		return
	}
	p.reloadOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveReloadDuration(d time.Duration) {
	if p == nil || p.reloadDuration == nil {
		return
	}
	p.reloadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLinkCheckResult(ok bool) {
	if p == nil || p.linkCheckResults == nil {
		return
	}
	res := "broken"
	if ok {
		res = "ok"
	}
	p.linkCheckResults.WithLabelValues(res).Inc()
}

func (p *PrometheusRecorder) ObserveLinkCheckDuration(d time.Duration) {
	if p == nil || p.linkCheckDuration == nil {
		return
	}
	p.linkCheckDuration.Observe(d.Seconds())
}
