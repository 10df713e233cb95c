package models

import (
	"fmt"
)

type MetricType string

const (
	MetricTypeAccuracy       MetricType = "accuracy"
	MetricTypePrecision      MetricType = "precision"
	MetricTypeRecall         MetricType = "recall"
	MetricTypeF1Score        MetricType = "f1_score"
	MetricTypeLatency        MetricType = "latency"
	MetricTypeThroughput     MetricType = "throughput"
	MetricTypeErrorRate      MetricType = "error_rate"
	MetricTypeDriftScore     MetricType = "drift_score"
	MetricTypeDataQuality    MetricType = "data_quality"
	MetricTypeBusinessImpact MetricType = "business_impact"
)

var metricTypes = map[MetricType]bool{
	MetricTypeAccuracy:       true,
	MetricTypePrecision:      true,
	MetricTypeRecall:         true,
	MetricTypeF1Score:        true,
	MetricTypeLatency:        true,
	MetricTypeThroughput:     true,
	MetricTypeErrorRate:      true,
	MetricTypeDriftScore:     true,
	MetricTypeDataQuality:    true,
	MetricTypeBusinessImpact: true,
}

func ParseMetricType(value string) (MetricType, error) {
	metricType := MetricType(value)
	if !metricTypes[metricType] {
		return "", fmt.Errorf("unknown metric type: %q", value)
	}
	return metricType, nil
}

type DriftType string

const (
	DriftTypeCovariate DriftType = "covariate_drift"
	DriftTypeLabel     DriftType = "label_drift"
	DriftTypeConcept   DriftType = "concept_drift"
	DriftTypeFeature   DriftType = "feature_drift"
)

var driftTypes = map[DriftType]bool{
	DriftTypeCovariate: true,
	DriftTypeLabel:     true,
	DriftTypeConcept:   true,
	DriftTypeFeature:   true,
}

func ParseDriftType(value string) (DriftType, error) {
	driftType := DriftType(value)
	if !driftTypes[driftType] {
		return "", fmt.Errorf("unknown drift type: %q", value)
	}
	return driftType, nil
}

// MetricObservation is a single time-series data point reported for a
// model. Observations are append-only: once stored they are never
// mutated. Out-of-order timestamps are permitted.
type MetricObservation struct {
	ObservationId string            `json:"observation_id" db:"observationid"`
	ModelId       string            `json:"model_id" db:"modelid"`
	MetricType    MetricType        `json:"metric_type" db:"metrictype"`
	Value         float64           `json:"value" db:"value"`
	Timestamp     int64             `json:"timestamp" db:"timestamp"`
	DriftType     DriftType         `json:"drift_type,omitempty" db:"drifttype"`
	SampleSize    int               `json:"sample_size,omitempty" db:"samplesize"`
	WindowSecs    int               `json:"window_secs,omitempty" db:"windowsecs"`
	Labels        map[string]string `json:"labels,omitempty"`

	// data quality sub-metrics
	MissingValuesPct float64 `json:"missing_values_pct,omitempty" db:"missingvaluespct"`
	OutlierPct       float64 `json:"outlier_pct,omitempty" db:"outlierpct"`

	// business impact sub-metrics
	RevenueImpact        float64 `json:"revenue_impact,omitempty" db:"revenueimpact"`
	CustomerSatisfaction float64 `json:"customer_satisfaction,omitempty" db:"customersatisfaction"`
}

func (o *MetricObservation) Validate() error {
	if o.ModelId == "" {
		return fmt.Errorf("model_id is required")
	}
	if _, err := ParseMetricType(string(o.MetricType)); err != nil {
		return err
	}
	if o.DriftType != "" {
		if _, err := ParseDriftType(string(o.DriftType)); err != nil {
			return err
		}
	}
	if o.Timestamp < 0 {
		return fmt.Errorf("timestamp must not be negative")
	}
	return nil
}

type EvaluationOutcome string

const (
	OutcomeNoRule             EvaluationOutcome = "no_rule"
	OutcomeNoBreach           EvaluationOutcome = "no_breach"
	OutcomeAlertCreated       EvaluationOutcome = "alert_created"
	OutcomeCooldownSuppressed EvaluationOutcome = "cooldown_suppressed"
)

// EvaluationResult reports what submitting one observation did. A
// cooldown-suppressed breach is a successful outcome, distinct from
// "no breach".
type EvaluationResult struct {
	ObservationId string            `json:"observation_id"`
	ModelId       string            `json:"model_id"`
	Outcome       EvaluationOutcome `json:"outcome"`
	AlertId       string            `json:"alert_id,omitempty"`
}
