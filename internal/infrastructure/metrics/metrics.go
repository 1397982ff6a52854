package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
)

const namespace = "subdomaind"

// Registry holds the collectors for one process. Tests build their own to
// avoid clashing with the default registerer.
type Registry struct {
	reg        *prometheus.Registry
	requests   *prometheus.CounterVec
	upstream   *prometheus.HistogramVec
	upstreamKO *prometheus.CounterVec
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Provisioning requests by operation and HTTP status.",
		}, []string{"operation", "status"}),
		upstream: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Latency of datastore, DNS and identity calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		upstreamKO: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_failures_total",
			Help:      "Failed datastore, DNS and identity calls.",
		}, []string{"operation"}),
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

func (r *Registry) ObserveRequest(operation string, status int) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(operation, strconv.Itoa(status)).Inc()
}

func (r *Registry) RecordOperation(operation string, err error, duration time.Duration) {
	if r == nil {
		return
	}
	r.upstream.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		r.upstreamKO.WithLabelValues(operation).Inc()
	}
}

// TimedOperation runs fn, records its latency and outcome, and logs it
// through the request logger in ctx.
func (r *Registry) TimedOperation(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	log := logger.FromContext(ctx).With("upstream", operation)
	log.Debug("starting operation")

	err := fn()
	duration := time.Since(start)

	r.RecordOperation(operation, err, duration)

	if err != nil {
		log.Error("operation failed", "error", err, "duration", duration)
	} else {
		log.Debug("operation completed", "duration", duration)
	}

	return err
}
