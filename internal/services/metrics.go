package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the enrollment service.
type Metrics struct {
	IngestsTotal    *prometheus.CounterVec
	RecordsIngested prometheus.Counter
	SnapshotRecords prometheus.Gauge
}

// NewMetrics creates and registers the service metrics on the given
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		IngestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inscripcli",
			Name:      "ingests_total",
			Help:      "Number of document ingestion attempts by outcome.",
		}, []string{"outcome"}),
		RecordsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "inscripcli",
			Name:      "records_ingested_total",
			Help:      "Total classified records produced across all ingestions.",
		}),
		SnapshotRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inscripcli",
			Name:      "snapshot_records",
			Help:      "Number of records in the current snapshot.",
		}),
	}
	reg.MustRegister(m.IngestsTotal, m.RecordsIngested, m.SnapshotRecords)
	return m
}

func (m *Metrics) observeIngest(outcome string, records int) {
	if m == nil {
		return
	}
	m.IngestsTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		m.RecordsIngested.Add(float64(records))
		m.SnapshotRecords.Set(float64(records))
	}
}
