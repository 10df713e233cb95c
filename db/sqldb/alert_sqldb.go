package sqldb

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/models"
)

const alertColumns = "alertid, modelid, alerttype, severity, status, title, message," +
	" thresholdvalue, currentvalue, triggeredat, acknowledgedat, acknowledgedby," +
	" resolvedat, resolvedby, closedat, resolutionaction, resolutionnotes, timetoresolve," +
	" notificationsent, notificationchannels, notificationattempts"

type AlertSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewAlertSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*AlertSQLDB, error) {
	sqldb, err := openConnection(dbConfig, logger, "alert-db")
	if err != nil {
		return nil, err
	}
	return &AlertSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (adb *AlertSQLDB) Ping() error {
	return adb.sqldb.Ping()
}

func (adb *AlertSQLDB) Close() error {
	err := adb.sqldb.Close()
	if err != nil {
		adb.logger.Error("close-alert-db", err, lager.Data{"dbConfig": adb.dbConfig})
		return err
	}
	return nil
}

func (adb *AlertSQLDB) SaveAlert(alert *models.Alert) error {
	ctx, cancel := queryContext(adb.dbConfig)
	defer cancel()

	channelsJSON, err := json.Marshal(alert.NotificationChannels)
	if err != nil {
		return err
	}

	query := adb.sqldb.Rebind("INSERT INTO alert (" + alertColumns + ")" +
		" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	_, err = adb.sqldb.ExecContext(ctx, query, alert.AlertId, alert.ModelId, alert.AlertType,
		alert.Severity, alert.Status, alert.Title, alert.Message,
		alert.ThresholdValue, alert.CurrentValue, alert.TriggeredAt,
		alert.AcknowledgedAt, alert.AcknowledgedBy, alert.ResolvedAt, alert.ResolvedBy,
		alert.ClosedAt, alert.ResolutionAction, alert.ResolutionNotes, alert.TimeToResolve,
		alert.NotificationSent, channelsJSON, alert.NotificationAttempts)
	if err != nil {
		adb.logger.Error("save-alert", err, lager.Data{"query": query, "alert": alert})
		return timeoutError(err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAlert(row rowScanner) (*models.Alert, error) {
	alert := &models.Alert{}
	var channelsJSON []byte
	err := row.Scan(&alert.AlertId, &alert.ModelId, &alert.AlertType, &alert.Severity, &alert.Status,
		&alert.Title, &alert.Message, &alert.ThresholdValue, &alert.CurrentValue, &alert.TriggeredAt,
		&alert.AcknowledgedAt, &alert.AcknowledgedBy, &alert.ResolvedAt, &alert.ResolvedBy,
		&alert.ClosedAt, &alert.ResolutionAction, &alert.ResolutionNotes, &alert.TimeToResolve,
		&alert.NotificationSent, &channelsJSON, &alert.NotificationAttempts)
	if err != nil {
		return nil, err
	}
	if len(channelsJSON) > 0 {
		if err = json.Unmarshal(channelsJSON, &alert.NotificationChannels); err != nil {
			return nil, err
		}
	}
	return alert, nil
}

func (adb *AlertSQLDB) GetAlert(alertId string) (*models.Alert, error) {
	ctx, cancel := queryContext(adb.dbConfig)
	defer cancel()

	query := adb.sqldb.Rebind("SELECT " + alertColumns + " FROM alert WHERE alertid = ?")
	alert, err := scanAlert(adb.sqldb.QueryRowContext(ctx, query, alertId))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrAlertNotFound
	}
	if err != nil {
		adb.logger.Error("get-alert", err, lager.Data{"query": query, "alertId": alertId})
		return nil, timeoutError(err)
	}
	return alert, nil
}

// GetActiveAlert returns the most recently triggered OPEN or
// ACKNOWLEDGED alert of the given type, or nil when there is none.
func (adb *AlertSQLDB) GetActiveAlert(modelId string, alertType models.AlertType) (*models.Alert, error) {
	ctx, cancel := queryContext(adb.dbConfig)
	defer cancel()

	query := adb.sqldb.Rebind("SELECT " + alertColumns + " FROM alert" +
		" WHERE modelid = ? AND alerttype = ? AND status IN (?, ?)" +
		" ORDER BY triggeredat DESC LIMIT 1")
	alert, err := scanAlert(adb.sqldb.QueryRowContext(ctx, query, modelId, alertType,
		models.AlertStatusOpen, models.AlertStatusAcknowledged))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		adb.logger.Error("get-active-alert", err, lager.Data{"query": query, "modelId": modelId, "alertType": alertType})
		return nil, timeoutError(err)
	}
	return alert, nil
}

func (adb *AlertSQLDB) RefreshAlertValue(alertId string, currentValue float64) error {
	ctx, cancel := queryContext(adb.dbConfig)
	defer cancel()

	query := adb.sqldb.Rebind("UPDATE alert SET currentvalue = ? WHERE alertid = ?")
	result, err := adb.sqldb.ExecContext(ctx, query, currentValue, alertId)
	if err != nil {
		adb.logger.Error("refresh-alert-value", err, lager.Data{"query": query, "alertId": alertId})
		return timeoutError(err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return db.ErrAlertNotFound
	}
	return nil
}

// UpdateAlertStatus writes the alert's lifecycle fields, guarded by the
// precondition that the stored status still matches expectedStatus.
// A raced update returns ErrConflict and leaves the row untouched.
func (adb *AlertSQLDB) UpdateAlertStatus(alert *models.Alert, expectedStatus models.AlertStatus) error {
	ctx, cancel := queryContext(adb.dbConfig)
	defer cancel()

	query := adb.sqldb.Rebind("UPDATE alert SET status = ?, acknowledgedat = ?, acknowledgedby = ?," +
		" resolvedat = ?, resolvedby = ?, closedat = ?, resolutionaction = ?, resolutionnotes = ?, timetoresolve = ?" +
		" WHERE alertid = ? AND status = ?")
	result, err := adb.sqldb.ExecContext(ctx, query, alert.Status,
		alert.AcknowledgedAt, alert.AcknowledgedBy, alert.ResolvedAt, alert.ResolvedBy,
		alert.ClosedAt, alert.ResolutionAction, alert.ResolutionNotes, alert.TimeToResolve,
		alert.AlertId, expectedStatus)
	if err != nil {
		adb.logger.Error("update-alert-status", err, lager.Data{"query": query, "alertId": alert.AlertId})
		return timeoutError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err = adb.GetAlert(alert.AlertId); errors.Is(err, db.ErrAlertNotFound) {
			return db.ErrAlertNotFound
		}
		return db.ErrConflict
	}
	return nil
}

// RecordNotificationAttempt is legal regardless of alert status. The
// row is locked for the read-modify-write of the channel snapshot so
// the attempts counter is never lost.
func (adb *AlertSQLDB) RecordNotificationAttempt(alertId string, channel string, success bool) error {
	ctx, cancel := queryContext(adb.dbConfig)
	defer cancel()

	tx, err := adb.sqldb.BeginTxx(ctx, nil)
	if err != nil {
		adb.logger.Error("record-notification-attempt-begin", err, lager.Data{"alertId": alertId})
		return timeoutError(err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.Rebind("SELECT notificationsent, notificationchannels FROM alert WHERE alertid = ? FOR UPDATE")
	var sent bool
	var channelsJSON []byte
	err = tx.QueryRowContext(ctx, query, alertId).Scan(&sent, &channelsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrAlertNotFound
	}
	if err != nil {
		adb.logger.Error("record-notification-attempt-select", err, lager.Data{"query": query, "alertId": alertId})
		return timeoutError(err)
	}

	var channels []string
	if len(channelsJSON) > 0 {
		if err = json.Unmarshal(channelsJSON, &channels); err != nil {
			return err
		}
	}
	channels = append(channels, channel)
	channelsJSON, err = json.Marshal(channels)
	if err != nil {
		return err
	}

	query = tx.Rebind("UPDATE alert SET notificationattempts = notificationattempts + 1," +
		" notificationsent = ?, notificationchannels = ? WHERE alertid = ?")
	_, err = tx.ExecContext(ctx, query, sent || success, channelsJSON, alertId)
	if err != nil {
		adb.logger.Error("record-notification-attempt-update", err, lager.Data{"query": query, "alertId": alertId})
		return timeoutError(err)
	}

	if err = tx.Commit(); err != nil {
		adb.logger.Error("record-notification-attempt-commit", err, lager.Data{"alertId": alertId})
		return timeoutError(err)
	}
	return nil
}

func (adb *AlertSQLDB) RetrieveAlerts(modelId string, start int64, end int64, orderType db.OrderType) ([]*models.Alert, error) {
	ctx, cancel := queryContext(adb.dbConfig)
	defer cancel()

	var orderStr string
	if orderType == db.DESC {
		orderStr = db.DESCSTR
	} else {
		orderStr = db.ASCSTR
	}

	if end < 0 {
		end = time.Now().UnixNano()
	}

	query := adb.sqldb.Rebind("SELECT " + alertColumns + " FROM alert" +
		" WHERE modelid = ? AND triggeredat >= ? AND triggeredat <= ?" +
		" ORDER BY triggeredat " + orderStr)
	rows, err := adb.sqldb.QueryContext(ctx, query, modelId, start, end)
	if err != nil {
		adb.logger.Error("retrieve-alerts", err,
			lager.Data{"query": query, "modelId": modelId, "start": start, "end": end})
		return nil, timeoutError(err)
	}
	defer func() { _ = rows.Close() }()

	alerts := []*models.Alert{}
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			adb.logger.Error("retrieve-alerts-scan", err)
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}

func (adb *AlertSQLDB) GetDBStatus() sql.DBStats {
	return adb.sqldb.Stats()
}
