package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/modelwatch/modelwatch/alerting"
	"github.com/modelwatch/modelwatch/alerting/server"
	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/fakes"
	"github.com/modelwatch/modelwatch/models"
)

var _ = Describe("MetricHandler", func() {
	var (
		handler  *server.MetricHandler
		metricDB *fakes.FakeMetricDB
		engine   *fakes.FakeAlertingEngine
		resp     *httptest.ResponseRecorder
		req      *http.Request
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("metric-handler")
		metricDB = &fakes.FakeMetricDB{}
		engine = &fakes.FakeAlertingEngine{}
		handler = server.NewMetricHandler(logger, metricDB, engine)
		resp = httptest.NewRecorder()
	})

	Describe("SubmitMetric", func() {
		var body []byte

		BeforeEach(func() {
			body, _ = json.Marshal(models.MetricObservation{
				MetricType: models.MetricTypeAccuracy,
				Value:      0.70,
				Timestamp:  1700000000000000000,
			})
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/v1/models/model-fraud-v2/metrics", bytes.NewReader(body))
			handler.SubmitMetric(resp, req, map[string]string{"modelid": "model-fraud-v2"})
		})

		Context("when the evaluation succeeds", func() {
			BeforeEach(func() {
				engine.SubmitMetricReturns(&models.EvaluationResult{
					ObservationId: "obs-1",
					ModelId:       "model-fraud-v2",
					Outcome:       models.OutcomeAlertCreated,
					AlertId:       "alert-1",
				}, nil)
			})

			It("responds 200 with the evaluation result", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))

				result := &models.EvaluationResult{}
				Expect(json.Unmarshal(resp.Body.Bytes(), result)).To(Succeed())
				Expect(result.Outcome).To(Equal(models.OutcomeAlertCreated))
				Expect(result.AlertId).To(Equal("alert-1"))
			})

			It("passes the model id from the route to the engine", func() {
				observation := engine.SubmitMetricArgsForCall(0)
				Expect(observation.ModelId).To(Equal("model-fraud-v2"))
				Expect(observation.MetricType).To(Equal(models.MetricTypeAccuracy))
			})
		})

		Context("when the request body is not json", func() {
			BeforeEach(func() {
				body = []byte("not json")
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"code":"Bad-Request","message":"Incorrect metric observation in request body"}`))
			})
		})

		Context("when the observation is invalid", func() {
			BeforeEach(func() {
				engine.SubmitMetricReturns(nil, &alerting.ValidationError{Message: `unknown metric type: "temperature"`})
			})
			It("responds 400 with the validation message", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring("unknown metric type"))
			})
		})

		Context("when the model has no monitoring config", func() {
			BeforeEach(func() {
				engine.SubmitMetricReturns(nil, db.ErrModelNotFound)
			})
			It("responds 404", func() {
				Expect(resp.Code).To(Equal(http.StatusNotFound))
				Expect(resp.Body.String()).To(Equal(`{"code":"Not-Found","message":"No monitoring config exists for model model-fraud-v2"}`))
			})
		})

		Context("when the database times out", func() {
			BeforeEach(func() {
				engine.SubmitMetricReturns(nil, db.ErrTimeout)
			})
			It("responds 503", func() {
				Expect(resp.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(resp.Body.String()).To(ContainSubstring("Database-Timeout"))
			})
		})

		Context("when the engine fails", func() {
			BeforeEach(func() {
				engine.SubmitMetricReturns(nil, errors.New("insert failed"))
			})
			It("responds 500", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Body.String()).To(Equal(`{"code":"Internal-Server-Error","message":"Error evaluating metric observation"}`))
			})
		})
	})

	Describe("GetMetricHistories", func() {
		var (
			vars map[string]string
			url  string
		)

		BeforeEach(func() {
			vars = map[string]string{"modelid": "model-fraud-v2", "metrictype": "accuracy"}
			url = "/v1/models/model-fraud-v2/metric_histories/accuracy"
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, url, nil)
			handler.GetMetricHistories(resp, req, vars)
		})

		Context("when observations exist", func() {
			BeforeEach(func() {
				metricDB.RetrieveObservationsReturns([]*models.MetricObservation{
					{ModelId: "model-fraud-v2", MetricType: models.MetricTypeAccuracy, Value: 0.92, Timestamp: 222},
					{ModelId: "model-fraud-v2", MetricType: models.MetricTypeAccuracy, Value: 0.91, Timestamp: 111},
				}, nil)
			})

			It("responds 200 with the observations", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				var observations []*models.MetricObservation
				Expect(json.Unmarshal(resp.Body.Bytes(), &observations)).To(Succeed())
				Expect(observations).To(HaveLen(2))
			})

			It("defaults to the whole range in descending order", func() {
				modelId, metricType, start, end, order := metricDB.RetrieveObservationsArgsForCall(0)
				Expect(modelId).To(Equal("model-fraud-v2"))
				Expect(metricType).To(Equal(models.MetricTypeAccuracy))
				Expect(start).To(Equal(int64(0)))
				Expect(end).To(Equal(int64(-1)))
				Expect(order).To(Equal(db.DESC))
			})
		})

		Context("with explicit range and order", func() {
			BeforeEach(func() {
				url = url + "?start=123&end=456&order=asc"
			})
			It("queries the requested window", func() {
				_, _, start, end, order := metricDB.RetrieveObservationsArgsForCall(0)
				Expect(start).To(Equal(int64(123)))
				Expect(end).To(Equal(int64(456)))
				Expect(order).To(Equal(db.ASC))
			})
		})

		Context("with an unsupported metric type", func() {
			BeforeEach(func() {
				vars["metrictype"] = "temperature"
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"code":"Bad-Request","message":"Unsupported metric type \"temperature\""}`))
			})
		})

		Context("with a malformed start time", func() {
			BeforeEach(func() {
				url = url + "?start=abc"
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"code":"Bad-Request","message":"Error parsing start time"}`))
			})
		})

		Context("with a malformed end time", func() {
			BeforeEach(func() {
				url = url + "?end=abc"
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"code":"Bad-Request","message":"Error parsing end time"}`))
			})
		})

		Context("with duplicate start parameters", func() {
			BeforeEach(func() {
				url = url + "?start=1&start=2"
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"code":"Bad-Request","message":"Incorrect start parameter in query string"}`))
			})
		})

		Context("with an invalid order", func() {
			BeforeEach(func() {
				url = url + "?order=sideways"
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring("Incorrect order parameter"))
			})
		})

		Context("when the database fails", func() {
			BeforeEach(func() {
				metricDB.RetrieveObservationsReturns(nil, errors.New("query failed"))
			})
			It("responds 500", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Body.String()).To(Equal(`{"code":"Internal-Server-Error","message":"Error getting metric histories from database"}`))
			})
		})
	})
})
