package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/modelwatch/modelwatch/alerting"
	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/helpers/handlers"
	"github.com/modelwatch/modelwatch/models"

	"code.cloudfoundry.org/lager/v3"
)

type MetricHandler struct {
	logger   lager.Logger
	metricDB db.MetricDB
	engine   alerting.AlertingEngine
}

func NewMetricHandler(logger lager.Logger, metricDB db.MetricDB, engine alerting.AlertingEngine) *MetricHandler {
	return &MetricHandler{
		logger:   logger.Session("metric-handler"),
		metricDB: metricDB,
		engine:   engine,
	}
}

func (h *MetricHandler) SubmitMetric(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	modelId := vars["modelid"]
	logger := h.logger.Session("submit-metric", lager.Data{"modelId": modelId})

	observation := &models.MetricObservation{}
	err := json.NewDecoder(r.Body).Decode(observation)
	if err != nil {
		logger.Error("failed-to-decode", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect metric observation in request body"})
		return
	}
	observation.ModelId = modelId

	logger.Debug("handling", lager.Data{"observation": observation})

	result, err := h.engine.SubmitMetric(observation)
	if err != nil {
		var validationErr *alerting.ValidationError
		switch {
		case errors.As(err, &validationErr):
			logger.Info("invalid-observation", lager.Data{"error": validationErr.Message})
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: validationErr.Message})
		case errors.Is(err, db.ErrModelNotFound):
			handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "Not-Found",
				Message: fmt.Sprintf("No monitoring config exists for model %s", modelId)})
		case errors.Is(err, db.ErrTimeout):
			logger.Error("database-timeout", err)
			handlers.WriteJSONResponse(w, http.StatusServiceUnavailable, models.ErrorResponse{
				Code:    "Database-Timeout",
				Message: "Timed out talking to the database"})
		default:
			logger.Error("failed-to-submit-metric", err)
			handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
				Code:    "Internal-Server-Error",
				Message: "Error evaluating metric observation"})
		}
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *MetricHandler) GetMetricHistories(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	modelId := vars["modelid"]
	metricTypeParam := vars["metrictype"]
	logger := h.logger.Session("get-metric-histories", lager.Data{"modelId": modelId, "metricType": metricTypeParam})

	metricType, err := models.ParseMetricType(metricTypeParam)
	if err != nil {
		logger.Error("failed-to-parse-metric-type", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: fmt.Sprintf("Unsupported metric type %q", metricTypeParam)})
		return
	}

	start, end, order, parseOk := parseHistoryRange(w, logger, r)
	if !parseOk {
		return
	}

	observations, err := h.metricDB.RetrieveObservations(modelId, metricType, start, end, order)
	if err != nil {
		logger.Error("failed-to-retrieve-observations", err, lager.Data{"start": start, "end": end, "order": order})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error getting metric histories from database"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, observations)
}

// parseHistoryRange reads start, end and order query parameters; start
// defaults to 0, end to -1 (now) and order to DESC. It writes the error
// response itself and reports success through the last return value.
func parseHistoryRange(w http.ResponseWriter, logger lager.Logger, r *http.Request) (int64, int64, db.OrderType, bool) {
	startParam := r.URL.Query()["start"]
	endParam := r.URL.Query()["end"]
	orderParam := r.URL.Query()["order"]
	logger.Debug("handling", lager.Data{"start": startParam, "end": endParam, "order": orderParam})

	var err error
	start := int64(0)
	end := int64(-1)
	order := db.DESC

	if len(startParam) == 1 {
		start, err = strconv.ParseInt(startParam[0], 10, 64)
		if err != nil {
			logger.Error("failed-to-parse-start-time", err, lager.Data{"start": startParam})
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Error parsing start time"})
			return 0, 0, order, false
		}
	} else if len(startParam) > 1 {
		logger.Error("failed-to-get-start-time", err, lager.Data{"start": startParam})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect start parameter in query string"})
		return 0, 0, order, false
	}

	if len(endParam) == 1 {
		end, err = strconv.ParseInt(endParam[0], 10, 64)
		if err != nil {
			logger.Error("failed-to-parse-end-time", err, lager.Data{"end": endParam})
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: "Error parsing end time"})
			return 0, 0, order, false
		}
	} else if len(endParam) > 1 {
		logger.Error("failed-to-get-end-time", err, lager.Data{"end": endParam})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect end parameter in query string"})
		return 0, 0, order, false
	}

	if len(orderParam) == 1 {
		orderStr := strings.ToUpper(orderParam[0])
		if orderStr == db.DESCSTR {
			order = db.DESC
		} else if orderStr == db.ASCSTR {
			order = db.ASC
		} else {
			logger.Error("failed-to-get-order", err, lager.Data{"order": orderParam})
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "Bad-Request",
				Message: fmt.Sprintf("Incorrect order parameter in query string, the value can only be %s or %s", db.ASCSTR, db.DESCSTR),
			})
			return 0, 0, order, false
		}
	} else if len(orderParam) > 1 {
		logger.Error("failed-to-get-order", err, lager.Data{"order": orderParam})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect order parameter in query string"})
		return 0, 0, order, false
	}

	return start, end, order, true
}
