package alerting

import (
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/helpers"
	"github.com/modelwatch/modelwatch/models"
	"github.com/modelwatch/modelwatch/notifier"
)

type AlertingEngine interface {
	SubmitMetric(observation *models.MetricObservation) (*models.EvaluationResult, error)
	AcknowledgeAlert(alertId string, actor string, notes string) (*models.Alert, error)
	ResolveAlert(alertId string, actor string, action string, notes string) (*models.Alert, error)
	CloseAlert(alertId string, actor string) (*models.Alert, error)
	RecordNotificationAttempt(alertId string, channel string, success bool) error
	GetAlert(alertId string) (*models.Alert, error)
	RetrieveAlerts(modelId string, start int64, end int64, orderType db.OrderType) ([]*models.Alert, error)
}

type alertingEngine struct {
	logger      lager.Logger
	modelDB     db.ModelDB
	metricDB    db.MetricDB
	alertDB     db.AlertDB
	dispatcher  notifier.Dispatcher
	evaluator   *ThresholdEvaluator
	alertLock   *StripedLock
	clock       clock.Clock
	configCache *cache.Cache

	alertsCounter       *prometheus.CounterVec
	observationsCounter *prometheus.CounterVec
}

func NewAlertingEngine(logger lager.Logger, modelDB db.ModelDB, metricDB db.MetricDB, alertDB db.AlertDB,
	dispatcher notifier.Dispatcher, eclock clock.Clock, lockSize int, configCacheTTL time.Duration,
	alertsCounter *prometheus.CounterVec, observationsCounter *prometheus.CounterVec) AlertingEngine {
	return &alertingEngine{
		logger:              logger.Session("alerting-engine"),
		modelDB:             modelDB,
		metricDB:            metricDB,
		alertDB:             alertDB,
		dispatcher:          dispatcher,
		evaluator:           NewThresholdEvaluator(logger),
		alertLock:           NewStripedLock(lockSize),
		clock:               eclock,
		configCache:         cache.New(configCacheTTL, 2*configCacheTTL),
		alertsCounter:       alertsCounter,
		observationsCounter: observationsCounter,
	}
}

func (e *alertingEngine) SubmitMetric(observation *models.MetricObservation) (*models.EvaluationResult, error) {
	logger := e.logger.WithData(lager.Data{"modelId": observation.ModelId, "metricType": observation.MetricType})

	if err := observation.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if observation.Timestamp == 0 {
		observation.Timestamp = e.clock.Now().UnixNano()
	}

	config, err := e.getMonitoringConfig(observation.ModelId)
	if err != nil {
		logger.Error("failed-to-get-monitoring-config", err)
		return nil, err
	}

	observationId, err := helpers.GenerateGUID(logger)
	if err != nil {
		return nil, err
	}
	observation.ObservationId = observationId

	if err = e.metricDB.SaveObservation(observation); err != nil {
		logger.Error("failed-to-save-observation", err)
		return nil, err
	}
	e.observationsCounter.WithLabelValues(string(observation.MetricType)).Inc()

	result := &models.EvaluationResult{
		ObservationId: observationId,
		ModelId:       observation.ModelId,
	}

	draft, ruled := e.evaluator.Evaluate(observation, config)
	if !ruled {
		result.Outcome = models.OutcomeNoRule
		return result, nil
	}
	if draft == nil {
		result.Outcome = models.OutcomeNoBreach
		return result, nil
	}

	lock := e.alertLock.GetLock(alertLockKey(observation.ModelId, draft.AlertType))
	lock.Lock()
	defer lock.Unlock()

	existing, err := e.alertDB.GetActiveAlert(observation.ModelId, draft.AlertType)
	if err != nil {
		logger.Error("failed-to-get-active-alert", err)
		return nil, err
	}

	if existing != nil && observation.Timestamp < existing.TriggeredAt+config.AlertCooldown().Nanoseconds() {
		if err = e.alertDB.RefreshAlertValue(existing.AlertId, observation.Value); err != nil {
			logger.Error("failed-to-refresh-alert-value", err, lager.Data{"alertId": existing.AlertId})
			return nil, err
		}
		logger.Info("breach-suppressed-by-cooldown", lager.Data{"alertId": existing.AlertId, "value": observation.Value})
		result.Outcome = models.OutcomeCooldownSuppressed
		result.AlertId = existing.AlertId
		return result, nil
	}

	alert, err := e.newAlert(logger, observation, draft)
	if err != nil {
		return nil, err
	}
	if err = e.alertDB.SaveAlert(alert); err != nil {
		logger.Error("failed-to-save-alert", err)
		return nil, err
	}
	e.alertsCounter.WithLabelValues(alert.ModelId, string(alert.AlertType), string(alert.Severity)).Inc()
	logger.Info("alert-created", lager.Data{"alertId": alert.AlertId, "alertType": alert.AlertType, "severity": alert.Severity})

	e.dispatcher.AlertCreated(alert)

	result.Outcome = models.OutcomeAlertCreated
	result.AlertId = alert.AlertId
	return result, nil
}

func (e *alertingEngine) AcknowledgeAlert(alertId string, actor string, notes string) (*models.Alert, error) {
	logger := e.logger.WithData(lager.Data{"alertId": alertId, "actor": actor})

	alert, err := e.alertDB.GetAlert(alertId)
	if err != nil {
		return nil, err
	}
	if alert.Status != models.AlertStatusOpen {
		return nil, &InvalidTransitionError{AlertId: alertId, Status: alert.Status, Operation: "acknowledge"}
	}

	expected := alert.Status
	alert.Status = models.AlertStatusAcknowledged
	alert.AcknowledgedAt = e.clock.Now().UnixNano()
	alert.AcknowledgedBy = actor
	if notes != "" {
		alert.ResolutionNotes = notes
	}

	if err = e.alertDB.UpdateAlertStatus(alert, expected); err != nil {
		logger.Error("failed-to-acknowledge-alert", err)
		return nil, err
	}
	logger.Info("alert-acknowledged")
	e.dispatcher.AlertUpdated(alert)
	return alert, nil
}

func (e *alertingEngine) ResolveAlert(alertId string, actor string, action string, notes string) (*models.Alert, error) {
	logger := e.logger.WithData(lager.Data{"alertId": alertId, "actor": actor})

	alert, err := e.alertDB.GetAlert(alertId)
	if err != nil {
		return nil, err
	}
	if alert.Status != models.AlertStatusOpen && alert.Status != models.AlertStatusAcknowledged {
		return nil, &InvalidTransitionError{AlertId: alertId, Status: alert.Status, Operation: "resolve"}
	}

	expected := alert.Status
	now := e.clock.Now()
	alert.Status = models.AlertStatusResolved
	alert.ResolvedAt = now.UnixNano()
	alert.ResolvedBy = actor
	alert.ResolutionAction = action
	if notes != "" {
		alert.ResolutionNotes = notes
	}
	// whole minutes, floored, computed once and never recomputed
	alert.TimeToResolve = (alert.ResolvedAt - alert.TriggeredAt) / int64(time.Minute)

	if err = e.alertDB.UpdateAlertStatus(alert, expected); err != nil {
		logger.Error("failed-to-resolve-alert", err)
		return nil, err
	}
	logger.Info("alert-resolved", lager.Data{"action": action, "timeToResolveMins": alert.TimeToResolve})
	e.dispatcher.AlertUpdated(alert)
	return alert, nil
}

func (e *alertingEngine) CloseAlert(alertId string, actor string) (*models.Alert, error) {
	logger := e.logger.WithData(lager.Data{"alertId": alertId, "actor": actor})

	alert, err := e.alertDB.GetAlert(alertId)
	if err != nil {
		return nil, err
	}
	if alert.Status == models.AlertStatusClosed {
		return nil, &InvalidTransitionError{AlertId: alertId, Status: alert.Status, Operation: "close"}
	}

	expected := alert.Status
	alert.Status = models.AlertStatusClosed
	alert.ClosedAt = e.clock.Now().UnixNano()

	if err = e.alertDB.UpdateAlertStatus(alert, expected); err != nil {
		logger.Error("failed-to-close-alert", err)
		return nil, err
	}
	logger.Info("alert-closed")
	e.dispatcher.AlertUpdated(alert)
	return alert, nil
}

func (e *alertingEngine) RecordNotificationAttempt(alertId string, channel string, success bool) error {
	err := e.alertDB.RecordNotificationAttempt(alertId, channel, success)
	if err != nil {
		e.logger.Error("failed-to-record-notification-attempt", err, lager.Data{"alertId": alertId, "channel": channel})
	}
	return err
}

func (e *alertingEngine) GetAlert(alertId string) (*models.Alert, error) {
	return e.alertDB.GetAlert(alertId)
}

func (e *alertingEngine) RetrieveAlerts(modelId string, start int64, end int64, orderType db.OrderType) ([]*models.Alert, error) {
	return e.alertDB.RetrieveAlerts(modelId, start, end, orderType)
}

func (e *alertingEngine) getMonitoringConfig(modelId string) (*models.MonitoringConfig, error) {
	if cached, found := e.configCache.Get(modelId); found {
		return cached.(*models.MonitoringConfig), nil
	}
	config, err := e.modelDB.GetMonitoringConfig(modelId)
	if errors.Is(err, db.ErrModelNotFound) {
		// models without a stored config are evaluated against the defaults
		config = models.DefaultMonitoringConfig()
	} else if err != nil {
		return nil, err
	}
	e.configCache.SetDefault(modelId, config)
	return config, nil
}

func (e *alertingEngine) newAlert(logger lager.Logger, observation *models.MetricObservation, draft *AlertDraft) (*models.Alert, error) {
	alertId, err := helpers.GenerateGUID(logger)
	if err != nil {
		return nil, err
	}
	return &models.Alert{
		AlertId:        alertId,
		ModelId:        observation.ModelId,
		AlertType:      draft.AlertType,
		Severity:       draft.Severity,
		Status:         models.AlertStatusOpen,
		Title:          fmt.Sprintf("%s for model %s", draft.AlertType, observation.ModelId),
		Message:        getBreachReason(observation, draft),
		ThresholdValue: draft.ThresholdValue,
		CurrentValue:   draft.CurrentValue,
		TriggeredAt:    observation.Timestamp,
	}, nil
}

func getBreachReason(observation *models.MetricObservation, draft *AlertDraft) string {
	return fmt.Sprintf("%s is %g against threshold %g",
		observation.MetricType, draft.CurrentValue, draft.ThresholdValue)
}

func alertLockKey(modelId string, alertType models.AlertType) string {
	return modelId + "#" + string(alertType)
}
