package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/modelwatch/modelwatch/alerting"
	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/helpers/handlers"
	"github.com/modelwatch/modelwatch/models"

	"code.cloudfoundry.org/lager/v3"
)

type AlertHandler struct {
	logger lager.Logger
	engine alerting.AlertingEngine
}

func NewAlertHandler(logger lager.Logger, engine alerting.AlertingEngine) *AlertHandler {
	return &AlertHandler{
		logger: logger.Session("alert-handler"),
		engine: engine,
	}
}

func (h *AlertHandler) GetAlert(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	alertId := vars["alertid"]
	logger := h.logger.Session("get-alert", lager.Data{"alertId": alertId})

	alert, err := h.engine.GetAlert(alertId)
	if err != nil {
		h.writeAlertError(logger, w, alertId, err, "Error getting alert from database")
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, alert)
}

func (h *AlertHandler) GetModelAlerts(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	modelId := vars["modelid"]
	logger := h.logger.Session("get-model-alerts", lager.Data{"modelId": modelId})

	start, end, order, parseOk := parseHistoryRange(w, logger, r)
	if !parseOk {
		return
	}

	alerts, err := h.engine.RetrieveAlerts(modelId, start, end, order)
	if err != nil {
		logger.Error("failed-to-retrieve-alerts", err, lager.Data{"start": start, "end": end, "order": order})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error getting alerts from database"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, alerts)
}

func (h *AlertHandler) AcknowledgeAlert(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	alertId := vars["alertid"]
	logger := h.logger.Session("acknowledge-alert", lager.Data{"alertId": alertId})

	request := &models.AcknowledgeAlertRequest{}
	if !decodeRequest(logger, w, r, request) {
		return
	}
	if request.AcknowledgedBy == "" {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "acknowledged_by is required"})
		return
	}

	alert, err := h.engine.AcknowledgeAlert(alertId, request.AcknowledgedBy, request.Notes)
	if err != nil {
		h.writeAlertError(logger, w, alertId, err, "Error acknowledging alert")
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, alert)
}

func (h *AlertHandler) ResolveAlert(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	alertId := vars["alertid"]
	logger := h.logger.Session("resolve-alert", lager.Data{"alertId": alertId})

	request := &models.ResolveAlertRequest{}
	if !decodeRequest(logger, w, r, request) {
		return
	}
	if request.ResolvedBy == "" {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "resolved_by is required"})
		return
	}

	alert, err := h.engine.ResolveAlert(alertId, request.ResolvedBy, request.ResolutionAction, request.ResolutionNotes)
	if err != nil {
		h.writeAlertError(logger, w, alertId, err, "Error resolving alert")
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, alert)
}

func (h *AlertHandler) CloseAlert(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	alertId := vars["alertid"]
	logger := h.logger.Session("close-alert", lager.Data{"alertId": alertId})

	request := &models.CloseAlertRequest{}
	if !decodeRequest(logger, w, r, request) {
		return
	}
	if request.ClosedBy == "" {
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "closed_by is required"})
		return
	}

	alert, err := h.engine.CloseAlert(alertId, request.ClosedBy)
	if err != nil {
		h.writeAlertError(logger, w, alertId, err, "Error closing alert")
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, alert)
}

func decodeRequest(logger lager.Logger, w http.ResponseWriter, r *http.Request, request interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		logger.Error("failed-to-decode", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect request body"})
		return false
	}
	return true
}

func (h *AlertHandler) writeAlertError(logger lager.Logger, w http.ResponseWriter, alertId string, err error, fallback string) {
	var transitionErr *alerting.InvalidTransitionError
	switch {
	case errors.Is(err, db.ErrAlertNotFound):
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: fmt.Sprintf("Alert %s does not exist", alertId)})
	case errors.As(err, &transitionErr):
		logger.Info("invalid-transition", lager.Data{"status": transitionErr.Status, "operation": transitionErr.Operation})
		handlers.WriteJSONResponse(w, http.StatusConflict, models.ErrorResponse{
			Code:    "Conflict",
			Message: transitionErr.Error()})
	case errors.Is(err, db.ErrConflict):
		logger.Info("concurrent-status-change", nil)
		handlers.WriteJSONResponse(w, http.StatusConflict, models.ErrorResponse{
			Code:    "Conflict",
			Message: "Alert status changed concurrently, please retry"})
	case errors.Is(err, db.ErrTimeout):
		logger.Error("database-timeout", err)
		handlers.WriteJSONResponse(w, http.StatusServiceUnavailable, models.ErrorResponse{
			Code:    "Database-Timeout",
			Message: "Timed out talking to the database"})
	default:
		logger.Error("failed-alert-operation", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: fallback})
	}
}
