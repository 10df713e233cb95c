package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	SubmitMetricPath      = "/v1/models/{modelid}/metrics"
	SubmitMetricRouteName = "SubmitMetric"

	MetricHistoriesPath         = "/v1/models/{modelid}/metric_histories/{metrictype}"
	GetMetricHistoriesRouteName = "GetMetricHistories"

	MonitoringConfigPath         = "/v1/models/{modelid}/monitoring_config"
	PutMonitoringConfigRouteName = "PutMonitoringConfig"
	GetMonitoringConfigRouteName = "GetMonitoringConfig"

	ModelAlertsPath         = "/v1/models/{modelid}/alerts"
	GetModelAlertsRouteName = "GetModelAlerts"

	AlertPath         = "/v1/alerts/{alertid}"
	GetAlertRouteName = "GetAlert"

	AcknowledgeAlertPath      = "/v1/alerts/{alertid}/acknowledge"
	AcknowledgeAlertRouteName = "AcknowledgeAlert"

	ResolveAlertPath      = "/v1/alerts/{alertid}/resolve"
	ResolveAlertRouteName = "ResolveAlert"

	CloseAlertPath      = "/v1/alerts/{alertid}/close"
	CloseAlertRouteName = "CloseAlert"
)

type ModelWatchRoute struct {
	alertingRoutes *mux.Router
}

var modelWatchRouteInstance = newRouters()

func newRouters() *ModelWatchRoute {
	instance := &ModelWatchRoute{
		alertingRoutes: mux.NewRouter(),
	}

	instance.alertingRoutes.Path(SubmitMetricPath).Methods(http.MethodPost).Name(SubmitMetricRouteName)
	instance.alertingRoutes.Path(MetricHistoriesPath).Methods(http.MethodGet).Name(GetMetricHistoriesRouteName)
	instance.alertingRoutes.Path(MonitoringConfigPath).Methods(http.MethodPut).Name(PutMonitoringConfigRouteName)
	instance.alertingRoutes.Path(MonitoringConfigPath).Methods(http.MethodGet).Name(GetMonitoringConfigRouteName)
	instance.alertingRoutes.Path(ModelAlertsPath).Methods(http.MethodGet).Name(GetModelAlertsRouteName)
	instance.alertingRoutes.Path(AlertPath).Methods(http.MethodGet).Name(GetAlertRouteName)
	instance.alertingRoutes.Path(AcknowledgeAlertPath).Methods(http.MethodPut).Name(AcknowledgeAlertRouteName)
	instance.alertingRoutes.Path(ResolveAlertPath).Methods(http.MethodPut).Name(ResolveAlertRouteName)
	instance.alertingRoutes.Path(CloseAlertPath).Methods(http.MethodPut).Name(CloseAlertRouteName)

	return instance
}

func AlertingRoutes() *mux.Router {
	return modelWatchRouteInstance.alertingRoutes
}
