package notifier

import (
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/models"
)

// Dispatcher receives alert events and attempts delivery on each of
// the model's configured channels.
type Dispatcher interface {
	AlertCreated(alert *models.Alert)
	AlertUpdated(alert *models.Alert)
}

type dispatcher struct {
	logger        lager.Logger
	modelDB       db.ModelDB
	alertDB       db.AlertDB
	emitter       Emitter
	maxRetries    uint64
	retryInterval time.Duration

	breakerThreshold int64
	breakers         map[string]*circuit.Breaker
	breakerLock      sync.Mutex
}

// NewDispatcher delivers notifications synchronously: delivery on every
// channel is attempted, with retries, before the call returns, and
// every individual attempt is recorded on the alert. A per-model
// circuit breaker short-circuits delivery for models whose channels
// fail persistently; a short-circuited delivery still counts as a
// failed attempt.
func NewDispatcher(logger lager.Logger, modelDB db.ModelDB, alertDB db.AlertDB, emitter Emitter,
	maxRetries uint64, retryInterval time.Duration, breakerThreshold int64) Dispatcher {
	return &dispatcher{
		logger:           logger.Session("dispatcher"),
		modelDB:          modelDB,
		alertDB:          alertDB,
		emitter:          emitter,
		maxRetries:       maxRetries,
		retryInterval:    retryInterval,
		breakerThreshold: breakerThreshold,
		breakers:         map[string]*circuit.Breaker{},
	}
}

func (d *dispatcher) AlertCreated(alert *models.Alert) {
	d.deliver(alert, "created")
}

func (d *dispatcher) AlertUpdated(alert *models.Alert) {
	d.deliver(alert, "updated")
}

func (d *dispatcher) deliver(alert *models.Alert, event string) {
	logger := d.logger.WithData(lager.Data{"alertId": alert.AlertId, "modelId": alert.ModelId, "event": event})

	config, err := d.modelDB.GetMonitoringConfig(alert.ModelId)
	if err != nil {
		logger.Error("failed-to-get-monitoring-config", err)
		return
	}
	if len(config.AlertChannels) == 0 {
		logger.Debug("no-alert-channels-configured")
		return
	}

	breaker := d.getBreaker(alert.ModelId)
	for _, channel := range config.AlertChannels {
		err := breaker.Call(func() error {
			return d.emitWithRetry(logger, alert, event, channel)
		}, 0)
		if err != nil {
			if err == circuit.ErrBreakerOpen {
				logger.Info("circuit-tripped", lager.Data{"channel": channel})
				d.recordAttempt(logger, alert.AlertId, channel, false)
			}
			logger.Error("failed-to-deliver-notification", err, lager.Data{"channel": channel})
		}
	}
}

// emitWithRetry records every single attempt, successful or not, so the
// attempts counter is never lost.
func (d *dispatcher) emitWithRetry(logger lager.Logger, alert *models.Alert, event string, channel string) error {
	operation := func() error {
		err := d.emitter.Emit(channel, event, alert)
		d.recordAttempt(logger, alert.AlertId, channel, err == nil)
		return err
	}
	return backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewConstantBackOff(d.retryInterval), d.maxRetries))
}

func (d *dispatcher) recordAttempt(logger lager.Logger, alertId string, channel string, success bool) {
	if err := d.alertDB.RecordNotificationAttempt(alertId, channel, success); err != nil {
		logger.Error("failed-to-record-notification-attempt", err, lager.Data{"channel": channel, "success": success})
	}
}

func (d *dispatcher) getBreaker(modelId string) *circuit.Breaker {
	d.breakerLock.Lock()
	defer d.breakerLock.Unlock()
	breaker, ok := d.breakers[modelId]
	if !ok {
		breaker = circuit.NewConsecutiveBreaker(d.breakerThreshold)
		d.breakers[modelId] = breaker
	}
	return breaker
}
