package server

import (
	"net/http"

	"github.com/modelwatch/modelwatch/accesscontrol"
	"github.com/modelwatch/modelwatch/alerting"
	"github.com/modelwatch/modelwatch/alerting/config"
	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/healthendpoint"
	"github.com/modelwatch/modelwatch/helpers"
	"github.com/modelwatch/modelwatch/ratelimiter"
	"github.com/modelwatch/modelwatch/routes"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vh(w, r, vars)
}

func NewServer(logger lager.Logger, conf *config.Config, modelDB db.ModelDB, metricDB db.MetricDB,
	engine alerting.AlertingEngine, accessControl *accesscontrol.AccessControl,
	httpStatusCollector healthendpoint.HTTPStatusCollector, rateLimiter ratelimiter.Limiter) (ifrit.Runner, error) {
	metricHandler := NewMetricHandler(logger, metricDB, engine)
	alertHandler := NewAlertHandler(logger, engine)
	configHandler := NewConfigHandler(logger, modelDB)

	authMiddleware := accesscontrol.NewMiddleware(logger, accessControl)
	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)
	rateLimiterMiddleware := ratelimiter.NewRateLimiterMiddleware("modelid", rateLimiter, logger.Session("alerting-ratelimiter-middleware"))

	r := routes.AlertingRoutes()
	r.Use(otelmux.Middleware("alerting"))
	r.Use(httpStatusCollectMiddleware.Collect)
	r.Use(authMiddleware.Authenticate)

	// metric ingestion is the hot path, only it gets rate limited
	r.Get(routes.SubmitMetricRouteName).Handler(
		rateLimiterMiddleware.CheckRateLimit(
			authMiddleware.RequirePermission(accesscontrol.PermissionMetricsWrite, VarsFunc(metricHandler.SubmitMetric))))
	r.Get(routes.GetMetricHistoriesRouteName).Handler(
		authMiddleware.RequirePermission(accesscontrol.PermissionAlertsRead, VarsFunc(metricHandler.GetMetricHistories)))

	r.Get(routes.PutMonitoringConfigRouteName).Handler(
		authMiddleware.RequirePermission(accesscontrol.PermissionModelsWrite, VarsFunc(configHandler.PutMonitoringConfig)))
	r.Get(routes.GetMonitoringConfigRouteName).Handler(
		authMiddleware.RequirePermission(accesscontrol.PermissionAlertsRead, VarsFunc(configHandler.GetMonitoringConfig)))

	r.Get(routes.GetModelAlertsRouteName).Handler(
		authMiddleware.RequirePermission(accesscontrol.PermissionAlertsRead, VarsFunc(alertHandler.GetModelAlerts)))
	r.Get(routes.GetAlertRouteName).Handler(
		authMiddleware.RequirePermission(accesscontrol.PermissionAlertsRead, VarsFunc(alertHandler.GetAlert)))
	r.Get(routes.AcknowledgeAlertRouteName).Handler(
		authMiddleware.RequirePermission(accesscontrol.PermissionAlertsWrite, VarsFunc(alertHandler.AcknowledgeAlert)))
	r.Get(routes.ResolveAlertRouteName).Handler(
		authMiddleware.RequirePermission(accesscontrol.PermissionAlertsWrite, VarsFunc(alertHandler.ResolveAlert)))
	r.Get(routes.CloseAlertRouteName).Handler(
		authMiddleware.RequirePermission(accesscontrol.PermissionAlertsWrite, VarsFunc(alertHandler.CloseAlert)))

	return helpers.NewHTTPServer(logger, conf.Server, r)
}
