package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveFetch(t *testing.T) {
	m := New("rosterview")

	m.ObserveFetch(OutcomeOK, 120*time.Millisecond, 7)
	m.ObserveFetch(OutcomeStatus, 30*time.Millisecond, 0)
	m.ObserveFetch(OutcomeOK, 80*time.Millisecond, 4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues(OutcomeStatus)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.DutiesLoaded), "gauge tracks the latest successful fetch")
	assert.Equal(t, 1, testutil.CollectAndCount(m.FetchDuration))
}

func TestObserveFetch_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveFetch(OutcomeOK, time.Second, 1) })
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("rosterview")
		New("rosterview")
	})
}

func TestHandler_ServesText(t *testing.T) {
	m := New("rosterview")
	m.ObserveFetch(OutcomeDecode, time.Millisecond, 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(body, `rosterview_fetches_total{outcome="decode"} 1`), body)
}
