package models

import (
	"fmt"
	"time"
)

type AlertType string

const (
	AlertTypeDriftDetected       AlertType = "drift_detected"
	AlertTypeAccuracyDegradation AlertType = "accuracy_degradation"
	AlertTypeLatencyIncrease     AlertType = "latency_increase"
	AlertTypeErrorRateSpike      AlertType = "error_rate_spike"
	AlertTypeDataQualityIssue    AlertType = "data_quality_issue"
	AlertTypeModelFailure        AlertType = "model_failure"
	AlertTypeInfrastructureIssue AlertType = "infrastructure_issue"
	AlertTypeComplianceViolation AlertType = "compliance_violation"
)

var alertTypes = map[AlertType]bool{
	AlertTypeDriftDetected:       true,
	AlertTypeAccuracyDegradation: true,
	AlertTypeLatencyIncrease:     true,
	AlertTypeErrorRateSpike:      true,
	AlertTypeDataQualityIssue:    true,
	AlertTypeModelFailure:        true,
	AlertTypeInfrastructureIssue: true,
	AlertTypeComplianceViolation: true,
}

func ParseAlertType(value string) (AlertType, error) {
	alertType := AlertType(value)
	if !alertTypes[alertType] {
		return "", fmt.Errorf("unknown alert type: %q", value)
	}
	return alertType, nil
}

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "open"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusClosed       AlertStatus = "closed"
)

var alertStatusRank = map[AlertStatus]int{
	AlertStatusOpen:         0,
	AlertStatusAcknowledged: 1,
	AlertStatusResolved:     2,
	AlertStatusClosed:       3,
}

func ParseAlertStatus(value string) (AlertStatus, error) {
	status := AlertStatus(value)
	if _, ok := alertStatusRank[status]; !ok {
		return "", fmt.Errorf("unknown alert status: %q", value)
	}
	return status, nil
}

// Precedes reports whether s comes strictly before other in the
// lifecycle. Transitions are only legal in this direction.
func (s AlertStatus) Precedes(other AlertStatus) bool {
	return alertStatusRank[s] < alertStatusRank[other]
}

// Alert is the record of one threshold breach and its lifecycle from
// creation through closure. Alerts are never deleted; a closed alert
// stays in the store as an audit trail.
type Alert struct {
	AlertId string `json:"alert_id" db:"alertid"`
	ModelId string `json:"model_id" db:"modelid"`

	AlertType AlertType     `json:"alert_type" db:"alerttype"`
	Severity  AlertSeverity `json:"severity" db:"severity"`
	Status    AlertStatus   `json:"status" db:"status"`

	Title   string `json:"title" db:"title"`
	Message string `json:"message" db:"message"`

	ThresholdValue float64 `json:"threshold_value" db:"thresholdvalue"`
	CurrentValue   float64 `json:"current_value" db:"currentvalue"`

	TriggeredAt    int64  `json:"triggered_at" db:"triggeredat"`
	AcknowledgedAt int64  `json:"acknowledged_at,omitempty" db:"acknowledgedat"`
	AcknowledgedBy string `json:"acknowledged_by,omitempty" db:"acknowledgedby"`
	ResolvedAt     int64  `json:"resolved_at,omitempty" db:"resolvedat"`
	ResolvedBy     string `json:"resolved_by,omitempty" db:"resolvedby"`
	ClosedAt       int64  `json:"closed_at,omitempty" db:"closedat"`

	ResolutionAction string `json:"resolution_action,omitempty" db:"resolutionaction"`
	// ResolutionNotes holds operator notes from acknowledge as well as resolve.
	ResolutionNotes string `json:"resolution_notes,omitempty" db:"resolutionnotes"`
	TimeToResolve   int64  `json:"time_to_resolve,omitempty" db:"timetoresolve"`

	NotificationSent     bool     `json:"notification_sent" db:"notificationsent"`
	NotificationChannels []string `json:"notification_channels"`
	NotificationAttempts int      `json:"notification_attempts" db:"notificationattempts"`
}

func (a *Alert) IsOpen() bool {
	return a.Status == AlertStatusOpen
}

func (a *Alert) IsClosed() bool {
	return a.Status == AlertStatusClosed
}

// TimeSinceTriggered is always derived from the current time, never
// stored.
func (a *Alert) TimeSinceTriggered(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, a.TriggeredAt))
}
