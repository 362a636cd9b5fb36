package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector объединяет метрики диспетчеризации и хранилища уведомлений.
// Реализует service.MetricsRecorder.
type Collector struct {
	gatherer prometheus.Gatherer

	DispatchTotal       *prometheus.CounterVec
	PersistenceFailures *prometheus.CounterVec
	StoredNotifications prometheus.Gauge
	Sectors             prometheus.Gauge
}

// NewCollector регистрирует метрики в reg; nil означает глобальный реестр
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	dispatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_total",
		Help: "Upload dispatches, labeled by outcome (notified, uncovered, invalid).",
	}, []string{"outcome"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_persistence_failures_total",
		Help: "Failed snapshot operations, labeled by operation.",
	}, []string{"op"})
	stored := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "notifications_stored",
		Help: "Current number of notifications held in memory.",
	})
	sectors := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sectors_loaded",
		Help: "Number of sectors in the boundary registry.",
	})

	for name, c := range map[string]prometheus.Collector{
		"dispatch_total":                          dispatch,
		"notification_persistence_failures_total": failures,
		"notifications_stored":                    stored,
		"sectors_loaded":                          sectors,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}

	return &Collector{
		gatherer:            gatherer,
		DispatchTotal:       dispatch,
		PersistenceFailures: failures,
		StoredNotifications: stored,
		Sectors:             sectors,
	}, nil
}

func (c *Collector) DispatchOutcome(status string) {
	if c == nil {
		return
	}
	c.DispatchTotal.WithLabelValues(status).Inc()
}

func (c *Collector) PersistenceFailure(op string) {
	if c == nil {
		return
	}
	c.PersistenceFailures.WithLabelValues(op).Inc()
}

func (c *Collector) StoreSize(n int) {
	if c == nil {
		return
	}
	c.StoredNotifications.Set(float64(n))
}

// SetSectors фиксирует размер загруженного реестра
func (c *Collector) SetSectors(n int) {
	if c == nil {
		return
	}
	c.Sectors.Set(float64(n))
}

// Handler отдаёт /metrics
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
