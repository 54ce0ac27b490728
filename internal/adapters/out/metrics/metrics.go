// Package metrics exposes status transition and retention counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "backoffice"

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
)

// Collector implements ports.TransitionObserver and ports.PurgeObserver.
type Collector struct {
	transitions *prometheus.CounterVec
	purged      prometheus.Counter
}

// NewCollector creates the counters and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Status change attempts by entity, source, target and outcome.",
		}, []string{"entity", "from", "to", "result"}),
		purged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_logs_purged_total",
			Help:      "Activity log records removed by the retention job.",
		}),
	}

	for _, col := range []prometheus.Collector{c.transitions, c.purged} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) TransitionAccepted(entityType, from, to string) {
	c.transitions.WithLabelValues(entityType, from, to, resultAccepted).Inc()
}

func (c *Collector) TransitionRejected(entityType, from, to string) {
	c.transitions.WithLabelValues(entityType, from, to, resultRejected).Inc()
}

func (c *Collector) ActivityLogsPurged(count int64) {
	if count > 0 {
		c.purged.Add(float64(count))
	}
}
