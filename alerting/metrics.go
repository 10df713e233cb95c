package alerting

import (
	"github.com/prometheus/client_golang/prometheus"
)

func NewAlertsCounter(namespace string, subSystem string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "alerts_total",
			Help:      "Total alerts generated",
		}, []string{"model_id", "alert_type", "severity"})
}

func NewObservationsCounter(namespace string, subSystem string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "metric_observations_total",
			Help:      "Total metric observations ingested",
		}, []string{"metric_type"})
}
