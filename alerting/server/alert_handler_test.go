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

var _ = Describe("AlertHandler", func() {
	var (
		handler *server.AlertHandler
		engine  *fakes.FakeAlertingEngine
		resp    *httptest.ResponseRecorder
		req     *http.Request
		alert   *models.Alert
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("alert-handler")
		engine = &fakes.FakeAlertingEngine{}
		handler = server.NewAlertHandler(logger, engine)
		resp = httptest.NewRecorder()

		alert = &models.Alert{
			AlertId:   "alert-1",
			ModelId:   "model-fraud-v2",
			AlertType: models.AlertTypeAccuracyDegradation,
			Severity:  models.SeverityMedium,
			Status:    models.AlertStatusOpen,
		}
	})

	Describe("GetAlert", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/v1/alerts/alert-1", nil)
			handler.GetAlert(resp, req, map[string]string{"alertid": "alert-1"})
		})

		Context("when the alert exists", func() {
			BeforeEach(func() {
				engine.GetAlertReturns(alert, nil)
			})
			It("responds 200 with the alert", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				returned := &models.Alert{}
				Expect(json.Unmarshal(resp.Body.Bytes(), returned)).To(Succeed())
				Expect(returned.AlertId).To(Equal("alert-1"))
				Expect(engine.GetAlertArgsForCall(0)).To(Equal("alert-1"))
			})
		})

		Context("when the alert does not exist", func() {
			BeforeEach(func() {
				engine.GetAlertReturns(nil, db.ErrAlertNotFound)
			})
			It("responds 404", func() {
				Expect(resp.Code).To(Equal(http.StatusNotFound))
				Expect(resp.Body.String()).To(Equal(`{"code":"Not-Found","message":"Alert alert-1 does not exist"}`))
			})
		})
	})

	Describe("GetModelAlerts", func() {
		var url string

		BeforeEach(func() {
			url = "/v1/models/model-fraud-v2/alerts"
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, url, nil)
			handler.GetModelAlerts(resp, req, map[string]string{"modelid": "model-fraud-v2"})
		})

		Context("when alerts exist", func() {
			BeforeEach(func() {
				engine.RetrieveAlertsReturns([]*models.Alert{alert}, nil)
			})
			It("responds 200 with the alerts", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				var alerts []*models.Alert
				Expect(json.Unmarshal(resp.Body.Bytes(), &alerts)).To(Succeed())
				Expect(alerts).To(HaveLen(1))

				modelId, start, end, order := engine.RetrieveAlertsArgsForCall(0)
				Expect(modelId).To(Equal("model-fraud-v2"))
				Expect(start).To(Equal(int64(0)))
				Expect(end).To(Equal(int64(-1)))
				Expect(order).To(Equal(db.DESC))
			})
		})

		Context("with a malformed range", func() {
			BeforeEach(func() {
				url = url + "?start=abc"
			})
			It("responds 400 without hitting the engine", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(engine.RetrieveAlertsCallCount()).To(Equal(0))
			})
		})

		Context("when the database fails", func() {
			BeforeEach(func() {
				engine.RetrieveAlertsReturns(nil, errors.New("query failed"))
			})
			It("responds 500", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Body.String()).To(Equal(`{"code":"Internal-Server-Error","message":"Error getting alerts from database"}`))
			})
		})
	})

	Describe("AcknowledgeAlert", func() {
		var body []byte

		BeforeEach(func() {
			body, _ = json.Marshal(models.AcknowledgeAlertRequest{
				AcknowledgedBy: "oncall@example.com",
				Notes:          "looking into it",
			})
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPut, "/v1/alerts/alert-1/acknowledge", bytes.NewReader(body))
			handler.AcknowledgeAlert(resp, req, map[string]string{"alertid": "alert-1"})
		})

		Context("when the transition is legal", func() {
			BeforeEach(func() {
				alert.Status = models.AlertStatusAcknowledged
				engine.AcknowledgeAlertReturns(alert, nil)
			})
			It("responds 200 with the acknowledged alert", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))

				alertId, actor, notes := engine.AcknowledgeAlertArgsForCall(0)
				Expect(alertId).To(Equal("alert-1"))
				Expect(actor).To(Equal("oncall@example.com"))
				Expect(notes).To(Equal("looking into it"))
			})
		})

		Context("when the body is not json", func() {
			BeforeEach(func() {
				body = []byte("not json")
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(engine.AcknowledgeAlertCallCount()).To(Equal(0))
			})
		})

		Context("when acknowledged_by is missing", func() {
			BeforeEach(func() {
				body = []byte(`{"notes":"no actor"}`)
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"code":"Bad-Request","message":"acknowledged_by is required"}`))
			})
		})

		Context("when the alert is not open", func() {
			BeforeEach(func() {
				engine.AcknowledgeAlertReturns(nil, &alerting.InvalidTransitionError{
					AlertId: "alert-1", Status: models.AlertStatusResolved, Operation: "acknowledge"})
			})
			It("responds 409 with the actual status", func() {
				Expect(resp.Code).To(Equal(http.StatusConflict))
				Expect(resp.Body.String()).To(ContainSubstring(`cannot acknowledge alert alert-1 in status \"resolved\"`))
			})
		})

		Context("when the status changed concurrently", func() {
			BeforeEach(func() {
				engine.AcknowledgeAlertReturns(nil, db.ErrConflict)
			})
			It("responds 409", func() {
				Expect(resp.Code).To(Equal(http.StatusConflict))
				Expect(resp.Body.String()).To(ContainSubstring("changed concurrently"))
			})
		})

		Context("when the alert does not exist", func() {
			BeforeEach(func() {
				engine.AcknowledgeAlertReturns(nil, db.ErrAlertNotFound)
			})
			It("responds 404", func() {
				Expect(resp.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("ResolveAlert", func() {
		var body []byte

		BeforeEach(func() {
			body, _ = json.Marshal(models.ResolveAlertRequest{
				ResolvedBy:       "oncall@example.com",
				ResolutionAction: "retrained model",
				ResolutionNotes:  "fixed by retrain",
			})
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPut, "/v1/alerts/alert-1/resolve", bytes.NewReader(body))
			handler.ResolveAlert(resp, req, map[string]string{"alertid": "alert-1"})
		})

		Context("when the transition is legal", func() {
			BeforeEach(func() {
				alert.Status = models.AlertStatusResolved
				alert.TimeToResolve = 125
				engine.ResolveAlertReturns(alert, nil)
			})
			It("responds 200 with the resolved alert", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))

				alertId, actor, action, notes := engine.ResolveAlertArgsForCall(0)
				Expect(alertId).To(Equal("alert-1"))
				Expect(actor).To(Equal("oncall@example.com"))
				Expect(action).To(Equal("retrained model"))
				Expect(notes).To(Equal("fixed by retrain"))

				returned := &models.Alert{}
				Expect(json.Unmarshal(resp.Body.Bytes(), returned)).To(Succeed())
				Expect(returned.TimeToResolve).To(Equal(int64(125)))
			})
		})

		Context("when resolved_by is missing", func() {
			BeforeEach(func() {
				body = []byte(`{"resolution_action":"restart"}`)
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"code":"Bad-Request","message":"resolved_by is required"}`))
			})
		})

		Context("when the alert is already resolved", func() {
			BeforeEach(func() {
				engine.ResolveAlertReturns(nil, &alerting.InvalidTransitionError{
					AlertId: "alert-1", Status: models.AlertStatusResolved, Operation: "resolve"})
			})
			It("responds 409", func() {
				Expect(resp.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("CloseAlert", func() {
		var body []byte

		BeforeEach(func() {
			body, _ = json.Marshal(models.CloseAlertRequest{ClosedBy: "oncall@example.com"})
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPut, "/v1/alerts/alert-1/close", bytes.NewReader(body))
			handler.CloseAlert(resp, req, map[string]string{"alertid": "alert-1"})
		})

		Context("when the transition is legal", func() {
			BeforeEach(func() {
				alert.Status = models.AlertStatusClosed
				engine.CloseAlertReturns(alert, nil)
			})
			It("responds 200 with the closed alert", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				alertId, actor := engine.CloseAlertArgsForCall(0)
				Expect(alertId).To(Equal("alert-1"))
				Expect(actor).To(Equal("oncall@example.com"))
			})
		})

		Context("when closed_by is missing", func() {
			BeforeEach(func() {
				body = []byte(`{}`)
			})
			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"code":"Bad-Request","message":"closed_by is required"}`))
			})
		})

		Context("when the alert is already closed", func() {
			BeforeEach(func() {
				engine.CloseAlertReturns(nil, &alerting.InvalidTransitionError{
					AlertId: "alert-1", Status: models.AlertStatusClosed, Operation: "close"})
			})
			It("responds 409", func() {
				Expect(resp.Code).To(Equal(http.StatusConflict))
			})
		})

		Context("when the database times out", func() {
			BeforeEach(func() {
				engine.CloseAlertReturns(nil, db.ErrTimeout)
			})
			It("responds 503", func() {
				Expect(resp.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(resp.Body.String()).To(ContainSubstring("Database-Timeout"))
			})
		})
	})
})
