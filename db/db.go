package db

import (
	"errors"
	"time"

	"github.com/modelwatch/modelwatch/healthendpoint"
	"github.com/modelwatch/modelwatch/models"
)

const (
	PostgresDriverName = "postgres"
	MysqlDriverName    = "mysql"
)

type OrderType uint8

const (
	DESC OrderType = iota
	ASC
)
const (
	DESCSTR string = "DESC"
	ASCSTR  string = "ASC"
)

var (
	// ErrAlertNotFound is returned when an alert id does not exist.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrModelNotFound is returned when a model id does not exist.
	ErrModelNotFound = errors.New("model not found")
	// ErrConflict is returned when a conditional update finds the row
	// in a different state than the caller expected. The caller should
	// re-read and retry; the update did not take effect.
	ErrConflict = errors.New("alert modified concurrently")
	// ErrTimeout is returned when a query exceeds the configured query
	// timeout. The operation's effect is unknown to the caller.
	ErrTimeout = errors.New("database query timed out")
)

const DefaultQueryTimeout = 10 * time.Second

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
	QueryTimeout          time.Duration `yaml:"query_timeout"`
}

type ModelDB interface {
	healthendpoint.Pinger
	GetMonitoringConfig(modelId string) (*models.MonitoringConfig, error)
	SaveMonitoringConfig(modelId string, config *models.MonitoringConfig) error
	Close() error
}

type MetricDB interface {
	healthendpoint.Pinger
	SaveObservation(observation *models.MetricObservation) error
	RetrieveObservations(modelId string, metricType models.MetricType, start int64, end int64, orderType OrderType) ([]*models.MetricObservation, error)
	PruneObservations(before int64) error
	Close() error
}

type AlertDB interface {
	healthendpoint.Pinger
	SaveAlert(alert *models.Alert) error
	GetAlert(alertId string) (*models.Alert, error)
	GetActiveAlert(modelId string, alertType models.AlertType) (*models.Alert, error)
	RefreshAlertValue(alertId string, currentValue float64) error
	UpdateAlertStatus(alert *models.Alert, expectedStatus models.AlertStatus) error
	RecordNotificationAttempt(alertId string, channel string, success bool) error
	RetrieveAlerts(modelId string, start int64, end int64, orderType OrderType) ([]*models.Alert, error)
	Close() error
}
