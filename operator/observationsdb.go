package operator

import (
	"time"

	"github.com/modelwatch/modelwatch/db"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type ObservationsDbPruner struct {
	metricDb       db.MetricDB
	cutoffDuration time.Duration
	clock          clock.Clock
	logger         lager.Logger
}

func NewObservationsDbPruner(metricDb db.MetricDB, cutoffDuration time.Duration, clock clock.Clock, logger lager.Logger) *ObservationsDbPruner {
	return &ObservationsDbPruner{
		metricDb:       metricDb,
		cutoffDuration: cutoffDuration,
		clock:          clock,
		logger:         logger.Session("observations_db_pruner"),
	}
}

func (odp ObservationsDbPruner) Operate() {
	timestamp := odp.clock.Now().Add(-odp.cutoffDuration).UnixNano()

	logger := odp.logger.Session("pruning-observations", lager.Data{"cutoff-time": timestamp})
	logger.Info("starting")
	defer logger.Info("completed")

	err := odp.metricDb.PruneObservations(timestamp)
	if err != nil {
		odp.logger.Error("failed-prune-observations", err)
		return
	}
}
