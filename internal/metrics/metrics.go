// Package metrics records integration outcomes as prometheus series.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "polyquad"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder holds the collectors of one registry. A nil *Recorder records
// nothing.
type Recorder struct {
	integrations *prometheus.CounterVec
	samples      *prometheus.HistogramVec
	duration     *prometheus.HistogramVec
}

// New registers the collectors with reg. A nil reg leaves them unregistered,
// which is useful in tests. Calling New again with the same reg returns a
// Recorder sharing the collectors registered first.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(nil)
	r := &Recorder{
		integrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrations_total",
			Help:      "Integrations by method and outcome.",
		}, []string{"method", "status"}),
		samples: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "integration_samples",
			Help:      "Function samples taken per integration.",
			Buckets:   prometheus.ExponentialBuckets(4, 4, 10), // 4 to ~1M
		}, []string{"method"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "integration_duration_seconds",
			Help:      "Wall time of an integration.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
		}, []string{"method"}),
	}
	if reg == nil {
		return r
	}
	r.integrations = register(reg, r.integrations)
	r.samples = register(reg, r.samples)
	r.duration = register(reg, r.duration)
	return r
}

// register adds c to reg, or returns the equal collector already there.
// Any other registration failure is a programming error and panics, as
// promauto does.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}

// Observe records one integration. samples is ignored on failure.
func (r *Recorder) Observe(method string, samples int, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.integrations.WithLabelValues(method, status).Inc()
	r.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	if err == nil {
		r.samples.WithLabelValues(method).Observe(float64(samples))
	}
}
