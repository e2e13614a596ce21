package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGetIsSingleton(t *testing.T) {
	assert.Same(t, Get(), Get())
}

func TestRecordHTTP(t *testing.T) {
	m := Get()
	before := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/test-http", "200"))
	m.RecordHTTP("GET", "/test-http", "200", 0.05)
	after := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/test-http", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordProvider(t *testing.T) {
	m := Get()
	m.RecordProvider("mock", "m1", false, 0.2)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProviderRequests.WithLabelValues("mock", "m1", "error")))

	m.RecordTokens("mock", "m1", 10, 0)
	assert.Equal(t, float64(10), testutil.ToFloat64(m.ProviderTokens.WithLabelValues("mock", "m1", "input")))
}

func TestSetCircuitOpen(t *testing.T) {
	m := Get()
	m.SetCircuitOpen("test-provider", true)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProviderCircuit.WithLabelValues("test-provider")))
	m.SetCircuitOpen("test-provider", false)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ProviderCircuit.WithLabelValues("test-provider")))
}
