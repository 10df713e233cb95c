package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"code.cloudfoundry.org/lager/v3"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/models"
)

type ModelSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewModelSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*ModelSQLDB, error) {
	sqldb, err := openConnection(dbConfig, logger, "model-db")
	if err != nil {
		return nil, err
	}
	return &ModelSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (mdb *ModelSQLDB) Ping() error {
	return mdb.sqldb.Ping()
}

func (mdb *ModelSQLDB) Close() error {
	err := mdb.sqldb.Close()
	if err != nil {
		mdb.logger.Error("close-model-db", err, lager.Data{"dbConfig": mdb.dbConfig})
		return err
	}
	return nil
}

func (mdb *ModelSQLDB) GetMonitoringConfig(modelId string) (*models.MonitoringConfig, error) {
	ctx, cancel := queryContext(mdb.dbConfig)
	defer cancel()

	query := mdb.sqldb.Rebind("SELECT driftthreshold, accuracythreshold, latencythreshold, alertchannels, alertcooldownsecs" +
		" FROM monitoring_config WHERE modelid = ?")

	config := &models.MonitoringConfig{}
	var channelsJSON []byte
	err := mdb.sqldb.QueryRowContext(ctx, query, modelId).Scan(&config.DriftThreshold, &config.AccuracyThreshold,
		&config.LatencyThreshold, &channelsJSON, &config.AlertCooldownSecs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrModelNotFound
	}
	if err != nil {
		mdb.logger.Error("get-monitoring-config", err, lager.Data{"query": query, "modelId": modelId})
		return nil, timeoutError(err)
	}

	if len(channelsJSON) > 0 {
		if err = json.Unmarshal(channelsJSON, &config.AlertChannels); err != nil {
			mdb.logger.Error("get-monitoring-config-unmarshal-channels", err, lager.Data{"modelId": modelId})
			return nil, err
		}
	}
	return config, nil
}

func (mdb *ModelSQLDB) SaveMonitoringConfig(modelId string, config *models.MonitoringConfig) error {
	ctx, cancel := queryContext(mdb.dbConfig)
	defer cancel()

	channelsJSON, err := json.Marshal(config.AlertChannels)
	if err != nil {
		return err
	}

	queryPrefix := "INSERT INTO monitoring_config" +
		" (modelid, driftthreshold, accuracythreshold, latencythreshold, alertchannels, alertcooldownsecs)" +
		" VALUES (?, ?, ?, ?, ?, ?) "
	var query string
	switch mdb.sqldb.DriverName() {
	case db.PostgresDriverName:
		query = mdb.sqldb.Rebind(queryPrefix +
			"ON CONFLICT(modelid) DO UPDATE SET driftthreshold=EXCLUDED.driftthreshold, accuracythreshold=EXCLUDED.accuracythreshold," +
			" latencythreshold=EXCLUDED.latencythreshold, alertchannels=EXCLUDED.alertchannels, alertcooldownsecs=EXCLUDED.alertcooldownsecs")
	default:
		query = mdb.sqldb.Rebind(queryPrefix +
			"ON DUPLICATE KEY UPDATE driftthreshold=VALUES(driftthreshold), accuracythreshold=VALUES(accuracythreshold)," +
			" latencythreshold=VALUES(latencythreshold), alertchannels=VALUES(alertchannels), alertcooldownsecs=VALUES(alertcooldownsecs)")
	}

	_, err = mdb.sqldb.ExecContext(ctx, query, modelId, config.DriftThreshold, config.AccuracyThreshold,
		config.LatencyThreshold, channelsJSON, config.AlertCooldownSecs)
	if err != nil {
		mdb.logger.Error("save-monitoring-config", err, lager.Data{"query": query, "modelId": modelId})
		return timeoutError(err)
	}
	return nil
}

func (mdb *ModelSQLDB) GetDBStatus() sql.DBStats {
	return mdb.sqldb.Stats()
}

func queryContext(dbConfig db.DatabaseConfig) (context.Context, context.CancelFunc) {
	timeout := dbConfig.QueryTimeout
	if timeout <= 0 {
		timeout = db.DefaultQueryTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func timeoutError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return db.ErrTimeout
	}
	return err
}

func openConnection(dbConfig db.DatabaseConfig, logger lager.Logger, name string) (*sqlx.DB, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := otelsqlx.Open(database.DriverName, database.DataSourceName, otelsql.WithAttributes(database.OTELAttribute))
	if err != nil {
		logger.Error("open-"+name, err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-"+name, err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	return sqldb, nil
}
