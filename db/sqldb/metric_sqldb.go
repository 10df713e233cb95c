package sqldb

import (
	"database/sql"
	"encoding/json"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/models"
)

type MetricSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewMetricSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*MetricSQLDB, error) {
	sqldb, err := openConnection(dbConfig, logger, "metric-db")
	if err != nil {
		return nil, err
	}
	return &MetricSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (mdb *MetricSQLDB) Ping() error {
	return mdb.sqldb.Ping()
}

func (mdb *MetricSQLDB) Close() error {
	err := mdb.sqldb.Close()
	if err != nil {
		mdb.logger.Error("close-metric-db", err, lager.Data{"dbConfig": mdb.dbConfig})
		return err
	}
	return nil
}

func (mdb *MetricSQLDB) SaveObservation(observation *models.MetricObservation) error {
	ctx, cancel := queryContext(mdb.dbConfig)
	defer cancel()

	labelsJSON, err := json.Marshal(observation.Labels)
	if err != nil {
		return err
	}

	query := mdb.sqldb.Rebind("INSERT INTO metric_observation" +
		" (observationid, modelid, metrictype, value, timestamp, drifttype, samplesize, windowsecs, labels," +
		" missingvaluespct, outlierpct, revenueimpact, customersatisfaction)" +
		" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	_, err = mdb.sqldb.ExecContext(ctx, query, observation.ObservationId, observation.ModelId,
		observation.MetricType, observation.Value, observation.Timestamp, observation.DriftType,
		observation.SampleSize, observation.WindowSecs, labelsJSON,
		observation.MissingValuesPct, observation.OutlierPct,
		observation.RevenueImpact, observation.CustomerSatisfaction)
	if err != nil {
		mdb.logger.Error("save-observation", err, lager.Data{"query": query, "observation": observation})
		return timeoutError(err)
	}
	return nil
}

func (mdb *MetricSQLDB) RetrieveObservations(modelId string, metricType models.MetricType, start int64, end int64, orderType db.OrderType) ([]*models.MetricObservation, error) {
	ctx, cancel := queryContext(mdb.dbConfig)
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

	query := mdb.sqldb.Rebind("SELECT observationid, modelid, metrictype, value, timestamp, drifttype, samplesize, windowsecs, labels," +
		" missingvaluespct, outlierpct, revenueimpact, customersatisfaction" +
		" FROM metric_observation WHERE modelid = ? AND metrictype = ? AND timestamp >= ? AND timestamp <= ?" +
		" ORDER BY timestamp " + orderStr)

	rows, err := mdb.sqldb.QueryContext(ctx, query, modelId, metricType, start, end)
	if err != nil {
		mdb.logger.Error("retrieve-observations", err,
			lager.Data{"query": query, "modelId": modelId, "metricType": metricType, "start": start, "end": end})
		return nil, timeoutError(err)
	}
	defer func() { _ = rows.Close() }()

	observations := []*models.MetricObservation{}
	for rows.Next() {
		observation := &models.MetricObservation{}
		var labelsJSON []byte
		if err = rows.Scan(&observation.ObservationId, &observation.ModelId, &observation.MetricType,
			&observation.Value, &observation.Timestamp, &observation.DriftType,
			&observation.SampleSize, &observation.WindowSecs, &labelsJSON,
			&observation.MissingValuesPct, &observation.OutlierPct,
			&observation.RevenueImpact, &observation.CustomerSatisfaction); err != nil {
			mdb.logger.Error("retrieve-observations-scan", err)
			return nil, err
		}
		if len(labelsJSON) > 0 {
			if err = json.Unmarshal(labelsJSON, &observation.Labels); err != nil {
				mdb.logger.Error("retrieve-observations-unmarshal-labels", err)
				return nil, err
			}
		}
		observations = append(observations, observation)
	}
	return observations, rows.Err()
}

func (mdb *MetricSQLDB) PruneObservations(before int64) error {
	ctx, cancel := queryContext(mdb.dbConfig)
	defer cancel()

	query := mdb.sqldb.Rebind("DELETE FROM metric_observation WHERE timestamp <= ?")
	_, err := mdb.sqldb.ExecContext(ctx, query, before)
	if err != nil {
		mdb.logger.Error("prune-observations", err, lager.Data{"query": query, "before": before})
		return timeoutError(err)
	}
	return nil
}

func (mdb *MetricSQLDB) GetDBStatus() sql.DBStats {
	return mdb.sqldb.Stats()
}
