package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager/v3"

	"github.com/modelwatch/modelwatch/models"
)

// Emitter performs a single delivery attempt to one channel.
type Emitter interface {
	Emit(channel string, event string, alert *models.Alert) error
}

type alertEvent struct {
	Event string        `json:"event"`
	Alert *models.Alert `json:"alert"`
}

// WebhookEmitter POSTs the alert to http(s) channels. Channels that
// are not webhook URLs (email and chat identifiers) have no transport
// here; the attempt is logged and reported successful so downstream
// relays can pick the event up from the log stream.
type WebhookEmitter struct {
	logger     lager.Logger
	httpClient *http.Client
}

func NewWebhookEmitter(logger lager.Logger, httpClient *http.Client) *WebhookEmitter {
	return &WebhookEmitter{
		logger:     logger.Session("webhook-emitter"),
		httpClient: httpClient,
	}
}

func (e *WebhookEmitter) Emit(channel string, event string, alert *models.Alert) error {
	if !strings.HasPrefix(channel, "http://") && !strings.HasPrefix(channel, "https://") {
		e.logger.Info("alert-notification", lager.Data{"channel": channel, "event": event, "alertId": alert.AlertId,
			"alertType": alert.AlertType, "severity": alert.Severity})
		return nil
	}

	body, err := json.Marshal(alertEvent{Event: event, Alert: alert})
	if err != nil {
		return err
	}

	resp, err := e.httpClient.Post(channel, "application/json", bytes.NewReader(body))
	if err != nil {
		e.logger.Error("failed-to-post-alert", err, lager.Data{"channel": channel, "alertId": alert.AlertId})
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		err = fmt.Errorf("webhook responded with status %d", resp.StatusCode)
		e.logger.Error("failed-to-post-alert", err, lager.Data{"channel": channel, "alertId": alert.AlertId})
		return err
	}
	return nil
}
