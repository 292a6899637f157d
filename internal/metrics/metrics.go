package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives pipeline observations
type Recorder interface {
	// Verification records one finished verification
	Verification(pipeline string, verdict model.Label, d time.Duration)

	// Upstream records the outcome of one external collaborator call
	Upstream(collaborator string, err error)
}

// Upstream outcome labels
const (
	OutcomeOK      = "ok"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

// Outcome maps a call error to an outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}

// Prometheus is a Recorder backed by a private prometheus registry
type Prometheus struct {
	registry      *prometheus.Registry
	verifications *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	upstream      *prometheus.CounterVec
}

// New creates the collectors and registers them, plus the Go runtime and
// process collectors, on a fresh registry
func New() *Prometheus {
	p := &Prometheus{registry: prometheus.NewRegistry()}

	p.verifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fakecheck",
		Name:      "verifications_total",
		Help:      "Completed verifications by pipeline and verdict",
	}, []string{"pipeline", "verdict"})
	p.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fakecheck",
		Name:      "verification_duration_seconds",
		Help:      "Time spent producing a verdict",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
	}, []string{"pipeline"})
	p.upstream = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fakecheck",
		Name:      "upstream_calls_total",
		Help:      "External collaborator calls by outcome",
	}, []string{"collaborator", "outcome"})

	p.registry.MustRegister(
		p.verifications, p.duration, p.upstream,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// Verification implements Recorder
func (p *Prometheus) Verification(pipeline string, verdict model.Label, d time.Duration) {
	p.verifications.WithLabelValues(pipeline, string(verdict)).Inc()
	p.duration.WithLabelValues(pipeline).Observe(d.Seconds())
}

// Upstream implements Recorder
func (p *Prometheus) Upstream(collaborator string, err error) {
	p.upstream.WithLabelValues(collaborator, Outcome(err)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

type noop struct{}

func (noop) Verification(string, model.Label, time.Duration) {}
func (noop) Upstream(string, error)                          {}

// Noop returns a Recorder that discards everything
func Noop() Recorder {
	return noop{}
}
