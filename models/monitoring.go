package models

import (
	"fmt"
	"time"
)

const (
	DefaultDriftThreshold    = 0.05
	DefaultAccuracyThreshold = 0.8
	DefaultLatencyThreshold  = 100.0
	DefaultAlertCooldownSecs = 900
)

// MonitoringConfig holds the per-model thresholds and alert routing
// policy. The evaluator reads it as an immutable snapshot for the
// duration of one evaluation.
type MonitoringConfig struct {
	DriftThreshold    float64  `json:"drift_threshold" yaml:"drift_threshold" db:"driftthreshold"`
	AccuracyThreshold float64  `json:"accuracy_threshold" yaml:"accuracy_threshold" db:"accuracythreshold"`
	LatencyThreshold  float64  `json:"latency_threshold" yaml:"latency_threshold" db:"latencythreshold"`
	AlertChannels     []string `json:"alert_channels" yaml:"alert_channels"`
	AlertCooldownSecs int      `json:"alert_cooldown_secs" yaml:"alert_cooldown_secs" db:"alertcooldownsecs"`
}

// DefaultMonitoringConfig is used for models without an explicit
// config row.
func DefaultMonitoringConfig() *MonitoringConfig {
	return &MonitoringConfig{
		DriftThreshold:    DefaultDriftThreshold,
		AccuracyThreshold: DefaultAccuracyThreshold,
		LatencyThreshold:  DefaultLatencyThreshold,
		AlertCooldownSecs: DefaultAlertCooldownSecs,
	}
}

func (c *MonitoringConfig) Validate() error {
	if c.DriftThreshold <= 0 || c.DriftThreshold > 1 {
		return fmt.Errorf("drift_threshold must be in (0, 1], got %v", c.DriftThreshold)
	}
	if c.AccuracyThreshold <= 0 || c.AccuracyThreshold > 1 {
		return fmt.Errorf("accuracy_threshold must be in (0, 1], got %v", c.AccuracyThreshold)
	}
	if c.LatencyThreshold <= 0 {
		return fmt.Errorf("latency_threshold must be greater than 0, got %v", c.LatencyThreshold)
	}
	if c.AlertCooldownSecs < 0 {
		return fmt.Errorf("alert_cooldown_secs must not be negative, got %d", c.AlertCooldownSecs)
	}
	return nil
}

func (c *MonitoringConfig) AlertCooldown() time.Duration {
	return time.Duration(c.AlertCooldownSecs) * time.Second
}
