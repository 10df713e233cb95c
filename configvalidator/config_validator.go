package configvalidator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/modelwatch/modelwatch/models"
)

const monitoringConfigSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"drift_threshold": {
			"type": "number",
			"exclusiveMinimum": 0,
			"maximum": 1
		},
		"accuracy_threshold": {
			"type": "number",
			"exclusiveMinimum": 0,
			"maximum": 1
		},
		"latency_threshold": {
			"type": "number",
			"exclusiveMinimum": 0
		},
		"alert_channels": {
			"type": "array",
			"items": {
				"type": "string",
				"minLength": 1
			}
		},
		"alert_cooldown_secs": {
			"type": "integer",
			"minimum": 0
		}
	},
	"required": ["drift_threshold", "accuracy_threshold", "latency_threshold"],
	"additionalProperties": false
}`

type (
	ConfigValidator struct {
		schemaLoader gojsonschema.JSONLoader
	}

	ConfigValidationErrors struct {
		Context     string `json:"context"`
		Description string `json:"description"`
	}

	ValidationErrors []ConfigValidationErrors
)

var _ error = ValidationErrors{}

func (v ValidationErrors) Error() string {
	var errs []string
	for _, failure := range v {
		errs = append(errs, fmt.Sprintf("%s-%s", failure.Context, failure.Description))
	}
	return strings.Join(errs, ", ")
}

func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		schemaLoader: gojsonschema.NewStringLoader(monitoringConfigSchema),
	}
}

// ParseAndValidateConfig rejects unknown or malformed monitoring-config
// documents at the boundary; cooldown defaults to 900 seconds when
// omitted.
func (cv *ConfigValidator) ParseAndValidateConfig(rawJson json.RawMessage) (*models.MonitoringConfig, ValidationErrors) {
	result, err := gojsonschema.Validate(cv.schemaLoader, gojsonschema.NewBytesLoader(rawJson))
	if err != nil {
		return nil, ValidationErrors{{Context: "(root)", Description: err.Error()}}
	}
	if !result.Valid() {
		var errs ValidationErrors
		for _, resultError := range result.Errors() {
			errs = append(errs, ConfigValidationErrors{
				Context:     resultError.Context().String(),
				Description: resultError.Description(),
			})
		}
		return nil, errs
	}

	config := models.DefaultMonitoringConfig()
	if err := json.Unmarshal(rawJson, config); err != nil {
		return nil, ValidationErrors{{Context: "(root)", Description: err.Error()}}
	}
	if err := config.Validate(); err != nil {
		return nil, ValidationErrors{{Context: "(root)", Description: err.Error()}}
	}
	return config, nil
}
