package healthendpoint

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

type DatabaseStatus interface {
	GetDBStatus() sql.DBStats
}

type databaseStatusCollector struct {
	maxOpenConnectionsGauge prometheus.Gauge
	openConnectionsGauge    prometheus.Gauge
	inUseGauge              prometheus.Gauge
	idleGauge               prometheus.Gauge
	waitCountGauge          prometheus.Gauge
	waitDurationGauge       prometheus.Gauge
	maxIdleClosedGauge      prometheus.Gauge
	maxLifetimeClosedGauge  prometheus.Gauge

	dbStatus DatabaseStatus
}

func NewDatabaseStatusCollector(namespace, subSystem string, dbName string, dbStatus DatabaseStatus) prometheus.Collector {
	return &databaseStatusCollector{
		maxOpenConnectionsGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      dbName + "_max_open_connections",
				Help:      "Maximum number of open connections to the database",
			}),
		openConnectionsGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      dbName + "_open_connections",
				Help:      "The number of established connections both in use and idle",
			}),
		inUseGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      dbName + "_in_use",
				Help:      "The number of connections currently in use",
			}),
		idleGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      dbName + "_idle",
				Help:      "The number of idle connections",
			}),
		waitCountGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      dbName + "_wait_count",
				Help:      "The total number of connections waited for",
			}),
		waitDurationGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      dbName + "_wait_duration",
				Help:      "The total time blocked waiting for a new connection",
			}),
		maxIdleClosedGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      dbName + "_max_idle_closed",
				Help:      "The total number of connections closed due to SetMaxIdleConns",
			}),
		maxLifetimeClosedGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      dbName + "_max_lifetime_closed",
				Help:      "The total number of connections closed due to SetConnMaxLifetime",
			}),
		dbStatus: dbStatus,
	}
}

func (c *databaseStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.maxOpenConnectionsGauge.Desc()
	ch <- c.openConnectionsGauge.Desc()
	ch <- c.inUseGauge.Desc()
	ch <- c.idleGauge.Desc()
	ch <- c.waitCountGauge.Desc()
	ch <- c.waitDurationGauge.Desc()
	ch <- c.maxIdleClosedGauge.Desc()
	ch <- c.maxLifetimeClosedGauge.Desc()
}

func (c *databaseStatusCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.dbStatus.GetDBStatus()
	m, _ := prometheus.NewConstMetric(c.maxOpenConnectionsGauge.Desc(), prometheus.GaugeValue, float64(stats.MaxOpenConnections))
	ch <- m
	m, _ = prometheus.NewConstMetric(c.openConnectionsGauge.Desc(), prometheus.GaugeValue, float64(stats.OpenConnections))
	ch <- m
	m, _ = prometheus.NewConstMetric(c.inUseGauge.Desc(), prometheus.GaugeValue, float64(stats.InUse))
	ch <- m
	m, _ = prometheus.NewConstMetric(c.idleGauge.Desc(), prometheus.GaugeValue, float64(stats.Idle))
	ch <- m
	m, _ = prometheus.NewConstMetric(c.waitCountGauge.Desc(), prometheus.GaugeValue, float64(stats.WaitCount))
	ch <- m
	m, _ = prometheus.NewConstMetric(c.waitDurationGauge.Desc(), prometheus.GaugeValue, float64(stats.WaitDuration))
	ch <- m
	m, _ = prometheus.NewConstMetric(c.maxIdleClosedGauge.Desc(), prometheus.GaugeValue, float64(stats.MaxIdleClosed))
	ch <- m
	m, _ = prometheus.NewConstMetric(c.maxLifetimeClosedGauge.Desc(), prometheus.GaugeValue, float64(stats.MaxLifetimeClosed))
	ch <- m
}
