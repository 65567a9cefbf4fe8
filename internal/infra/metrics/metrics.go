package metrics

import (
	"time"

	"geogram/config"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// DispatchMetrics tracks dispatcher and matcher throughput.
type DispatchMetrics struct {
	dispatchOutcomes *prometheus.CounterVec
	deliveryDuration *prometheus.HistogramVec
	matchedPairs     prometheus.Counter
}

// Params holds dependencies for DispatchMetrics, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
}

// New registers the dispatch metrics on the default registerer.
func New(params Params) *DispatchMetrics {
	return newDispatchMetrics(prometheus.DefaultRegisterer, params.Config)
}

func newDispatchMetrics(registerer prometheus.Registerer, cfg *config.Config) *DispatchMetrics {
	constLabels := prometheus.Labels{
		"service": cfg.Env.ServiceName,
		"env":     cfg.Env.Env,
	}

	dispatchOutcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "geogram_dispatch_outcomes_total",
			Help:        "Dispatch attempts by resulting task state.",
			ConstLabels: constLabels,
		},
		[]string{"state"}, // pending | retrying | delivered | failed
	)

	deliveryDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "geogram_delivery_duration_seconds",
			Help:        "Wall time of individual channel delivery attempts.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		},
		[]string{"channel"},
	)

	matchedPairs := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "geogram_matched_pairs_total",
			Help:        "Subscription/event pairs produced by the matcher.",
			ConstLabels: constLabels,
		},
	)

	registerer.MustRegister(
		dispatchOutcomes,
		deliveryDuration,
		matchedPairs,
	)

	return &DispatchMetrics{
		dispatchOutcomes: dispatchOutcomes,
		deliveryDuration: deliveryDuration,
		matchedPairs:     matchedPairs,
	}
}

// IncDispatchOutcome records one dispatch attempt result.
func (m *DispatchMetrics) IncDispatchOutcome(state string) {
	if m == nil {
		return
	}
	m.dispatchOutcomes.WithLabelValues(state).Inc()
}

// ObserveDeliveryDuration records the wall time of one delivery attempt.
func (m *DispatchMetrics) ObserveDeliveryDuration(channel string, d time.Duration) {
	if m == nil {
		return
	}
	m.deliveryDuration.WithLabelValues(channel).Observe(d.Seconds())
}

// AddMatchedPairs records pairs produced by one matching pass.
func (m *DispatchMetrics) AddMatchedPairs(n int) {
	if m == nil {
		return
	}
	m.matchedPairs.Add(float64(n))
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
