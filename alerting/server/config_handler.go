package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/modelwatch/modelwatch/configvalidator"
	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/helpers/handlers"
	"github.com/modelwatch/modelwatch/models"

	"code.cloudfoundry.org/lager/v3"
)

type ConfigHandler struct {
	logger          lager.Logger
	modelDB         db.ModelDB
	configValidator *configvalidator.ConfigValidator
}

func NewConfigHandler(logger lager.Logger, modelDB db.ModelDB) *ConfigHandler {
	return &ConfigHandler{
		logger:          logger.Session("config-handler"),
		modelDB:         modelDB,
		configValidator: configvalidator.NewConfigValidator(),
	}
}

func (h *ConfigHandler) PutMonitoringConfig(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	modelId := vars["modelid"]
	logger := h.logger.Session("put-monitoring-config", lager.Data{"modelId": modelId})

	rawConfig, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("failed-to-read-body", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error reading monitoring config request body"})
		return
	}

	config, validationErrs := h.configValidator.ParseAndValidateConfig(rawConfig)
	if validationErrs != nil {
		logger.Info("invalid-monitoring-config", lager.Data{"errors": validationErrs})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, validationErrs)
		return
	}

	err = h.modelDB.SaveMonitoringConfig(modelId, config)
	if err != nil {
		logger.Error("failed-to-save-monitoring-config", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error saving monitoring config"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, config)
}

func (h *ConfigHandler) GetMonitoringConfig(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	modelId := vars["modelid"]
	logger := h.logger.Session("get-monitoring-config", lager.Data{"modelId": modelId})

	config, err := h.modelDB.GetMonitoringConfig(modelId)
	if err != nil {
		if errors.Is(err, db.ErrModelNotFound) {
			handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "Not-Found",
				Message: fmt.Sprintf("No monitoring config exists for model %s", modelId)})
			return
		}
		logger.Error("failed-to-get-monitoring-config", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error getting monitoring config from database"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, config)
}
