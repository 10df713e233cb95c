package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/modelwatch/modelwatch/accesscontrol"
	"github.com/modelwatch/modelwatch/alerting"
	"github.com/modelwatch/modelwatch/alerting/config"
	"github.com/modelwatch/modelwatch/alerting/server"
	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/db/sqldb"
	"github.com/modelwatch/modelwatch/healthendpoint"
	"github.com/modelwatch/modelwatch/helpers"
	"github.com/modelwatch/modelwatch/notifier"
	"github.com/modelwatch/modelwatch/operator"
	"github.com/modelwatch/modelwatch/ratelimiter"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "missing config file")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	var conf *config.Config
	conf, err = config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	configFile.Close()

	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "alerting")

	eClock := clock.NewClock()

	var modelDB db.ModelDB
	modelDB, err = sqldb.NewModelSQLDB(conf.DB.ModelDB, logger.Session("model-db"))
	if err != nil {
		logger.Error("failed to connect model database", err, lager.Data{"dbConfig": conf.DB.ModelDB})
		os.Exit(1)
	}
	defer modelDB.Close()

	var metricDB db.MetricDB
	metricDB, err = sqldb.NewMetricSQLDB(conf.DB.MetricDB, logger.Session("metric-db"))
	if err != nil {
		logger.Error("failed to connect metric database", err, lager.Data{"dbConfig": conf.DB.MetricDB})
		os.Exit(1)
	}
	defer metricDB.Close()

	var alertDB db.AlertDB
	alertDB, err = sqldb.NewAlertSQLDB(conf.DB.AlertDB, logger.Session("alert-db"))
	if err != nil {
		logger.Error("failed to connect alert database", err, lager.Data{"dbConfig": conf.DB.AlertDB})
		os.Exit(1)
	}
	defer alertDB.Close()

	alertsCounter := alerting.NewAlertsCounter("modelwatch", "alerting")
	observationsCounter := alerting.NewObservationsCounter("modelwatch", "alerting")

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector("modelwatch", "alerting")
	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		healthendpoint.NewDatabaseStatusCollector("modelwatch", "alerting", "modelDB", modelDB.(*sqldb.ModelSQLDB)),
		healthendpoint.NewDatabaseStatusCollector("modelwatch", "alerting", "metricDB", metricDB.(*sqldb.MetricSQLDB)),
		healthendpoint.NewDatabaseStatusCollector("modelwatch", "alerting", "alertDB", alertDB.(*sqldb.AlertSQLDB)),
		alertsCounter,
		observationsCounter,
		httpStatusCollector,
	}, true, logger.Session("alerting-prometheus"))

	httpClient, err := helpers.CreateHTTPClient(&conf.Notifier.TLSClientCerts)
	if err != nil {
		logger.Error("failed to create notifier http client", err)
		os.Exit(1)
	}
	httpClient.Timeout = conf.HttpClientTimeout

	emitter := notifier.NewWebhookEmitter(logger, httpClient)
	dispatcher := notifier.NewDispatcher(logger, modelDB, alertDB, emitter,
		conf.Notifier.MaxRetries, conf.Notifier.RetryInterval, conf.Notifier.BreakerConsecutive)

	engine := alerting.NewAlertingEngine(logger, modelDB, metricDB, alertDB, dispatcher, eClock,
		conf.LockSize, conf.ConfigCacheTTL, alertsCounter, observationsCounter)

	accessControl, err := accesscontrol.New(conf.Principals)
	if err != nil {
		logger.Error("failed to build access control", err)
		os.Exit(1)
	}

	rateLimiter := ratelimiter.DefaultRateLimiter(conf.RateLimit.MaxAmount, conf.RateLimit.ValidDuration, logger.Session("alerting-ratelimiter"))

	httpServer, err := server.NewServer(logger.Session("http-server"), conf, modelDB, metricDB, engine, accessControl, httpStatusCollector, rateLimiter)
	if err != nil {
		logger.Error("failed to create http server", err)
		os.Exit(1)
	}

	checkers := []healthendpoint.Checker{
		healthendpoint.DbChecker("modelDB", modelDB),
		healthendpoint.DbChecker("metricDB", metricDB),
		healthendpoint.DbChecker("alertDB", alertDB),
	}
	healthServer, err := healthendpoint.NewServerWithBasicAuth(conf.Health, checkers, logger.Session("health-server"), promRegistry)
	if err != nil {
		logger.Error("failed to create health server", err)
		os.Exit(1)
	}

	prunerRunner := operator.NewOperatorRunner(
		operator.NewObservationsDbPruner(metricDB, conf.Pruner.CutoffDuration, eClock, logger),
		conf.Pruner.RefreshInterval, eClock, logger.Session("observations-pruner"))

	members := grouper.Members{
		{Name: "http_server", Runner: httpServer},
		{Name: "health_server", Runner: healthServer},
		{Name: "observations_pruner", Runner: prunerRunner},
	}

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")
	err = <-monitor.Wait()
	if err != nil {
		logger.Error("http-server-exited-with-failure", err)
		os.Exit(1)
	}
	logger.Info("exited")
}
