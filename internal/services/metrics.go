package services

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "guildhall"

// Collector is a prometheus.Collector for the domain services.
type Collector struct {
	failures            *prometheus.CounterVec
	moderatorTransfers  prometheus.Counter
	cascadedMemberships prometheus.Counter
}

// NewMetricsCollector returns a new Collector.
func NewMetricsCollector() *Collector {
	return &Collector{
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "operation_failures_total",
				Help:      "Failed service operations by entity, operation and error kind.",
			}, []string{"entity", "op", "kind"},
		),
		moderatorTransfers: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "moderator_transfers_total",
				Help:      "Group ownership changes that moved the moderator flag.",
			},
		),
		cascadedMemberships: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cascaded_memberships_total",
				Help:      "Membership rows removed by group and user deletions.",
			},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.failures.Describe(ch)
	c.moderatorTransfers.Describe(ch)
	c.cascadedMemberships.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.failures.Collect(ch)
	c.moderatorTransfers.Collect(ch)
	c.cascadedMemberships.Collect(ch)
}
