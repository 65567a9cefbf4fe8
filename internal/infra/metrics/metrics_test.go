package metrics

import (
	"testing"
	"time"

	"geogram/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *DispatchMetrics {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "geogram-test"
	cfg.Env.Env = "test"

	return newDispatchMetrics(prometheus.NewRegistry(), cfg)
}

func TestDispatchMetrics_Counters(t *testing.T) {
	m := newTestMetrics()

	m.IncDispatchOutcome("delivered")
	m.IncDispatchOutcome("delivered")
	m.IncDispatchOutcome("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.dispatchOutcomes.WithLabelValues("delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatchOutcomes.WithLabelValues("failed")))

	m.AddMatchedPairs(3)
	m.AddMatchedPairs(2)
	assert.Equal(t, 5.0, testutil.ToFloat64(m.matchedPairs))
}

func TestDispatchMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *DispatchMetrics

	m.IncDispatchOutcome("delivered")
	m.ObserveDeliveryDuration("webhook", time.Second)
	m.AddMatchedPairs(1)
}
