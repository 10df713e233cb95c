package alerting

import (
	"math"

	"code.cloudfoundry.org/lager/v3"

	"github.com/modelwatch/modelwatch/models"
)

// AlertDraft is what the evaluator proposes on a breach. The caller
// decides persistence and notification.
type AlertDraft struct {
	AlertType      models.AlertType
	Severity       models.AlertSeverity
	ThresholdValue float64
	CurrentValue   float64
}

type ThresholdEvaluator struct {
	logger lager.Logger
}

func NewThresholdEvaluator(logger lager.Logger) *ThresholdEvaluator {
	return &ThresholdEvaluator{
		logger: logger.Session("threshold-evaluator"),
	}
}

// Evaluate compares one observation against the model's monitoring
// config snapshot. It returns (nil, false) for metric types that carry
// no default breach rule, (nil, true) when the rule evaluated and
// found no breach, and a draft when the threshold is breached.
// Evaluation is deterministic and has no side effects.
func (e *ThresholdEvaluator) Evaluate(observation *models.MetricObservation, config *models.MonitoringConfig) (*AlertDraft, bool) {
	var threshold float64
	var alertType models.AlertType
	var breached bool

	switch observation.MetricType {
	case models.MetricTypeAccuracy:
		threshold = config.AccuracyThreshold
		alertType = models.AlertTypeAccuracyDegradation
		breached = observation.Value < threshold
	case models.MetricTypeLatency:
		threshold = config.LatencyThreshold
		alertType = models.AlertTypeLatencyIncrease
		breached = observation.Value > threshold
	case models.MetricTypeDriftScore:
		threshold = config.DriftThreshold
		alertType = models.AlertTypeDriftDetected
		breached = observation.Value > threshold
	default:
		// No default breach rule for this metric type. Extension
		// point: precision, recall, f1_score, throughput, error_rate,
		// data_quality and business_impact pass through unevaluated.
		e.logger.Debug("no-breach-rule", lager.Data{"metricType": observation.MetricType})
		return nil, false
	}

	if !breached {
		return nil, true
	}

	return &AlertDraft{
		AlertType:      alertType,
		Severity:       severityForDeviation(observation.Value, threshold),
		ThresholdValue: threshold,
		CurrentValue:   observation.Value,
	}, true
}

const severityEpsilon = 1e-9

// severityForDeviation grades a breach by how far the value deviates
// from the threshold, relative to the threshold magnitude:
// below 10% low, below 25% medium, below 50% high, 50% and beyond
// critical. Monotonic in deviation magnitude.
func severityForDeviation(value float64, threshold float64) models.AlertSeverity {
	deviation := math.Abs(value-threshold) / math.Max(math.Abs(threshold), severityEpsilon)
	switch {
	case deviation >= 0.5:
		return models.SeverityCritical
	case deviation >= 0.25:
		return models.SeverityHigh
	case deviation >= 0.1:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}
