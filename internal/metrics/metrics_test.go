package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestCollector_Exposition(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.DispatchOutcome("notified")
	c.DispatchOutcome("notified")
	c.DispatchOutcome("uncovered")
	c.PersistenceFailure("write")
	c.StoreSize(7)
	c.SetSectors(3)

	body := scrape(t, c)
	assert.Contains(t, body, `dispatch_total{outcome="notified"} 2`)
	assert.Contains(t, body, `dispatch_total{outcome="uncovered"} 1`)
	assert.Contains(t, body, `notification_persistence_failures_total{op="write"} 1`)
	assert.Contains(t, body, "notifications_stored 7")
	assert.Contains(t, body, "sectors_loaded 3")
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.DispatchOutcome("notified")
		c.PersistenceFailure("read")
		c.StoreSize(1)
		c.SetSectors(1)
	})
}
