package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordEscalation()
	c.RecordEscalation()
	c.RecordLLMCall()
	c.RecordLLMFailure()
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(401)
	c.RecordAuthRejection("session_expired")
	c.RecordRequestLatency(50 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.escalations))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.llmCalls))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.llmFailures))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.httpStatus.WithLabelValues("200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.httpStatus.WithLabelValues("401")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.authRejections.WithLabelValues("session_expired")))
}

func TestHandler_Scrape(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordEscalation()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "solace_crisis_escalations_total 1")
}
