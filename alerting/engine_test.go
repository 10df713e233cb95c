package alerting_test

import (
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/modelwatch/modelwatch/alerting"
	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/fakes"
	"github.com/modelwatch/modelwatch/models"
)

const testModelId = "model-fraud-v2"

var _ = Describe("AlertingEngine", func() {
	var (
		engine     alerting.AlertingEngine
		modelDB    *fakes.FakeModelDB
		metricDB   *fakes.FakeMetricDB
		alertDB    *fakes.FakeAlertDB
		dispatcher *fakes.FakeDispatcher
		fclock     *fakeclock.FakeClock
		config     *models.MonitoringConfig
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("engine")
		modelDB = &fakes.FakeModelDB{}
		metricDB = &fakes.FakeMetricDB{}
		alertDB = &fakes.FakeAlertDB{}
		dispatcher = &fakes.FakeDispatcher{}
		fclock = fakeclock.NewFakeClock(time.Unix(1700000000, 0))
		config = &models.MonitoringConfig{
			DriftThreshold:    0.05,
			AccuracyThreshold: 0.8,
			LatencyThreshold:  100,
			AlertCooldownSecs: 900,
		}
		modelDB.GetMonitoringConfigReturns(config, nil)
		engine = alerting.NewAlertingEngine(logger, modelDB, metricDB, alertDB, dispatcher,
			fclock, 32, 60*time.Second,
			alerting.NewAlertsCounter("modelwatch", "alerting_test"),
			alerting.NewObservationsCounter("modelwatch", "alerting_test"))
	})

	Describe("SubmitMetric", func() {
		var (
			observation *models.MetricObservation
			result      *models.EvaluationResult
			err         error
		)

		BeforeEach(func() {
			observation = &models.MetricObservation{
				ModelId:    testModelId,
				MetricType: models.MetricTypeAccuracy,
				Value:      0.70,
				Timestamp:  fclock.Now().UnixNano(),
			}
		})

		JustBeforeEach(func() {
			result, err = engine.SubmitMetric(observation)
		})

		Context("when the observation is invalid", func() {
			BeforeEach(func() {
				observation.ModelId = ""
			})
			It("returns a validation error and persists nothing", func() {
				var validationErr *alerting.ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue())
				Expect(metricDB.SaveObservationCallCount()).To(Equal(0))
				Expect(alertDB.SaveAlertCallCount()).To(Equal(0))
			})
		})

		Context("when no monitoring config exists for the model", func() {
			BeforeEach(func() {
				modelDB.GetMonitoringConfigReturns(nil, db.ErrModelNotFound)
			})
			It("evaluates the observation against the default thresholds", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Outcome).To(Equal(models.OutcomeAlertCreated))
				Expect(metricDB.SaveObservationCallCount()).To(Equal(1))

				alert := alertDB.SaveAlertArgsForCall(0)
				Expect(alert.ThresholdValue).To(Equal(models.DefaultAccuracyThreshold))
				Expect(alert.CurrentValue).To(Equal(0.70))
			})
		})

		Context("when fetching the monitoring config fails", func() {
			BeforeEach(func() {
				modelDB.GetMonitoringConfigReturns(nil, errors.New("connection refused"))
			})
			It("returns the error and persists nothing", func() {
				Expect(err).To(MatchError("connection refused"))
				Expect(metricDB.SaveObservationCallCount()).To(Equal(0))
			})
		})

		Context("when the threshold is breached and no alert is active", func() {
			It("stores the observation and creates an open alert", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Outcome).To(Equal(models.OutcomeAlertCreated))
				Expect(result.AlertId).NotTo(BeEmpty())
				Expect(result.ObservationId).NotTo(BeEmpty())

				Expect(metricDB.SaveObservationCallCount()).To(Equal(1))
				saved := metricDB.SaveObservationArgsForCall(0)
				Expect(saved.ObservationId).To(Equal(result.ObservationId))

				Expect(alertDB.SaveAlertCallCount()).To(Equal(1))
				alert := alertDB.SaveAlertArgsForCall(0)
				Expect(alert.ModelId).To(Equal(testModelId))
				Expect(alert.AlertType).To(Equal(models.AlertTypeAccuracyDegradation))
				Expect(alert.Severity).To(Equal(models.SeverityMedium))
				Expect(alert.Status).To(Equal(models.AlertStatusOpen))
				Expect(alert.Title).To(Equal("accuracy_degradation for model model-fraud-v2"))
				Expect(alert.Message).To(Equal("accuracy is 0.7 against threshold 0.8"))
				Expect(alert.ThresholdValue).To(Equal(0.8))
				Expect(alert.CurrentValue).To(Equal(0.70))
				Expect(alert.TriggeredAt).To(Equal(observation.Timestamp))
			})

			It("notifies the dispatcher once", func() {
				Expect(dispatcher.AlertCreatedCallCount()).To(Equal(1))
				Expect(dispatcher.AlertCreatedArgsForCall(0).AlertId).To(Equal(result.AlertId))
			})
		})

		Context("when the observation carries no timestamp", func() {
			BeforeEach(func() {
				observation.Timestamp = 0
			})
			It("stamps it with the current time", func() {
				Expect(err).NotTo(HaveOccurred())
				saved := metricDB.SaveObservationArgsForCall(0)
				Expect(saved.Timestamp).To(Equal(fclock.Now().UnixNano()))
			})
		})

		Context("when no threshold is breached", func() {
			BeforeEach(func() {
				observation.Value = 0.85
			})
			It("stores the observation without creating an alert", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Outcome).To(Equal(models.OutcomeNoBreach))
				Expect(result.AlertId).To(BeEmpty())
				Expect(metricDB.SaveObservationCallCount()).To(Equal(1))
				Expect(alertDB.SaveAlertCallCount()).To(Equal(0))
				Expect(dispatcher.AlertCreatedCallCount()).To(Equal(0))
			})
		})

		Context("when the metric type has no breach rule", func() {
			BeforeEach(func() {
				observation.MetricType = models.MetricTypeThroughput
				observation.Value = 2
			})
			It("stores the observation and reports no rule", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Outcome).To(Equal(models.OutcomeNoRule))
				Expect(metricDB.SaveObservationCallCount()).To(Equal(1))
				Expect(alertDB.GetActiveAlertCallCount()).To(Equal(0))
			})
		})

		Context("when an active alert is inside its cooldown window", func() {
			BeforeEach(func() {
				existing := &models.Alert{
					AlertId:     "alert-1",
					ModelId:     testModelId,
					AlertType:   models.AlertTypeAccuracyDegradation,
					Status:      models.AlertStatusOpen,
					TriggeredAt: observation.Timestamp - (config.AlertCooldown() - time.Second).Nanoseconds(),
				}
				alertDB.GetActiveAlertReturns(existing, nil)
			})
			It("suppresses the breach and refreshes the alert value", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Outcome).To(Equal(models.OutcomeCooldownSuppressed))
				Expect(result.AlertId).To(Equal("alert-1"))

				Expect(alertDB.RefreshAlertValueCallCount()).To(Equal(1))
				alertId, value := alertDB.RefreshAlertValueArgsForCall(0)
				Expect(alertId).To(Equal("alert-1"))
				Expect(value).To(Equal(0.70))

				Expect(alertDB.SaveAlertCallCount()).To(Equal(0))
				Expect(dispatcher.AlertCreatedCallCount()).To(Equal(0))
			})
		})

		Context("when the active alert's cooldown has expired", func() {
			BeforeEach(func() {
				existing := &models.Alert{
					AlertId:     "alert-1",
					ModelId:     testModelId,
					AlertType:   models.AlertTypeAccuracyDegradation,
					Status:      models.AlertStatusOpen,
					TriggeredAt: observation.Timestamp - config.AlertCooldown().Nanoseconds(),
				}
				alertDB.GetActiveAlertReturns(existing, nil)
			})
			It("creates a fresh alert", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Outcome).To(Equal(models.OutcomeAlertCreated))
				Expect(alertDB.RefreshAlertValueCallCount()).To(Equal(0))
				Expect(alertDB.SaveAlertCallCount()).To(Equal(1))
			})
		})

		Context("when saving the observation fails", func() {
			BeforeEach(func() {
				metricDB.SaveObservationReturns(errors.New("insert failed"))
			})
			It("returns the error without evaluating", func() {
				Expect(err).To(MatchError("insert failed"))
				Expect(alertDB.GetActiveAlertCallCount()).To(Equal(0))
			})
		})

		Describe("config caching", func() {
			It("fetches the monitoring config once per model within the TTL", func() {
				Expect(err).NotTo(HaveOccurred())
				_, err = engine.SubmitMetric(&models.MetricObservation{
					ModelId:    testModelId,
					MetricType: models.MetricTypeAccuracy,
					Value:      0.75,
					Timestamp:  fclock.Now().UnixNano(),
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(modelDB.GetMonitoringConfigCallCount()).To(Equal(1))
			})
		})
	})

	Describe("concurrent breaches for the same model and alert type", func() {
		BeforeEach(func() {
			var mu sync.Mutex
			var created *models.Alert
			alertDB.GetActiveAlertStub = func(string, models.AlertType) (*models.Alert, error) {
				mu.Lock()
				defer mu.Unlock()
				return created, nil
			}
			alertDB.SaveAlertStub = func(alert *models.Alert) error {
				mu.Lock()
				defer mu.Unlock()
				created = alert
				return nil
			}
		})

		It("creates a single alert and suppresses the loser", func() {
			var wg sync.WaitGroup
			for i := 0; i < 2; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					observation := &models.MetricObservation{
						ModelId:    testModelId,
						MetricType: models.MetricTypeAccuracy,
						Value:      0.70,
						Timestamp:  fclock.Now().UnixNano(),
					}
					_, submitErr := engine.SubmitMetric(observation)
					Expect(submitErr).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()
			Expect(alertDB.SaveAlertCallCount()).To(Equal(1))
			Expect(alertDB.RefreshAlertValueCallCount()).To(Equal(1))
			Expect(dispatcher.AlertCreatedCallCount()).To(Equal(1))
		})
	})

	Describe("AcknowledgeAlert", func() {
		var (
			stored *models.Alert
			alert  *models.Alert
			err    error
		)

		BeforeEach(func() {
			stored = &models.Alert{
				AlertId:     "alert-1",
				ModelId:     testModelId,
				AlertType:   models.AlertTypeAccuracyDegradation,
				Status:      models.AlertStatusOpen,
				TriggeredAt: fclock.Now().UnixNano(),
			}
			alertDB.GetAlertReturns(stored, nil)
		})

		JustBeforeEach(func() {
			alert, err = engine.AcknowledgeAlert("alert-1", "oncall@example.com", "looking into it")
		})

		It("moves the alert to acknowledged with a compare-and-swap", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(alert.Status).To(Equal(models.AlertStatusAcknowledged))
			Expect(alert.AcknowledgedBy).To(Equal("oncall@example.com"))
			Expect(alert.AcknowledgedAt).To(Equal(fclock.Now().UnixNano()))
			Expect(alert.ResolutionNotes).To(Equal("looking into it"))

			Expect(alertDB.UpdateAlertStatusCallCount()).To(Equal(1))
			updated, expected := alertDB.UpdateAlertStatusArgsForCall(0)
			Expect(updated.AlertId).To(Equal("alert-1"))
			Expect(expected).To(Equal(models.AlertStatusOpen))

			Expect(dispatcher.AlertUpdatedCallCount()).To(Equal(1))
		})

		Context("when the alert is not open", func() {
			BeforeEach(func() {
				stored.Status = models.AlertStatusResolved
			})
			It("rejects the transition", func() {
				var transitionErr *alerting.InvalidTransitionError
				Expect(errors.As(err, &transitionErr)).To(BeTrue())
				Expect(transitionErr.Status).To(Equal(models.AlertStatusResolved))
				Expect(alertDB.UpdateAlertStatusCallCount()).To(Equal(0))
			})
		})

		Context("when the alert does not exist", func() {
			BeforeEach(func() {
				alertDB.GetAlertReturns(nil, db.ErrAlertNotFound)
			})
			It("returns the not-found error", func() {
				Expect(err).To(MatchError(db.ErrAlertNotFound))
			})
		})

		Context("when the status changed concurrently", func() {
			BeforeEach(func() {
				alertDB.UpdateAlertStatusReturns(db.ErrConflict)
			})
			It("returns the conflict error and does not notify", func() {
				Expect(err).To(MatchError(db.ErrConflict))
				Expect(dispatcher.AlertUpdatedCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ResolveAlert", func() {
		var (
			stored *models.Alert
			alert  *models.Alert
			err    error
		)

		BeforeEach(func() {
			stored = &models.Alert{
				AlertId:     "alert-1",
				ModelId:     testModelId,
				AlertType:   models.AlertTypeAccuracyDegradation,
				Status:      models.AlertStatusAcknowledged,
				TriggeredAt: fclock.Now().Add(-125 * time.Minute).UnixNano(),
			}
			alertDB.GetAlertReturns(stored, nil)
		})

		JustBeforeEach(func() {
			alert, err = engine.ResolveAlert("alert-1", "oncall@example.com", "retrained model", "fixed by retrain")
		})

		It("moves the alert to resolved and records the time to resolve", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(alert.Status).To(Equal(models.AlertStatusResolved))
			Expect(alert.ResolvedBy).To(Equal("oncall@example.com"))
			Expect(alert.ResolutionAction).To(Equal("retrained model"))
			Expect(alert.ResolutionNotes).To(Equal("fixed by retrain"))
			Expect(alert.TimeToResolve).To(Equal(int64(125)))

			_, expected := alertDB.UpdateAlertStatusArgsForCall(0)
			Expect(expected).To(Equal(models.AlertStatusAcknowledged))
			Expect(dispatcher.AlertUpdatedCallCount()).To(Equal(1))
		})

		Context("when resolving straight from open", func() {
			BeforeEach(func() {
				stored.Status = models.AlertStatusOpen
			})
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(alert.Status).To(Equal(models.AlertStatusResolved))
			})
		})

		Context("when the alert is already resolved", func() {
			BeforeEach(func() {
				stored.Status = models.AlertStatusResolved
			})
			It("rejects the transition", func() {
				var transitionErr *alerting.InvalidTransitionError
				Expect(errors.As(err, &transitionErr)).To(BeTrue())
			})
		})
	})

	Describe("CloseAlert", func() {
		var (
			stored *models.Alert
			alert  *models.Alert
			err    error
		)

		BeforeEach(func() {
			stored = &models.Alert{
				AlertId:     "alert-1",
				ModelId:     testModelId,
				Status:      models.AlertStatusResolved,
				TriggeredAt: fclock.Now().UnixNano(),
			}
			alertDB.GetAlertReturns(stored, nil)
		})

		JustBeforeEach(func() {
			alert, err = engine.CloseAlert("alert-1", "oncall@example.com")
		})

		It("closes the alert", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(alert.Status).To(Equal(models.AlertStatusClosed))
			Expect(alert.ClosedAt).To(Equal(fclock.Now().UnixNano()))
			_, expected := alertDB.UpdateAlertStatusArgsForCall(0)
			Expect(expected).To(Equal(models.AlertStatusResolved))
		})

		Context("when closing an open alert directly", func() {
			BeforeEach(func() {
				stored.Status = models.AlertStatusOpen
			})
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(alert.Status).To(Equal(models.AlertStatusClosed))
			})
		})

		Context("when the alert is already closed", func() {
			BeforeEach(func() {
				stored.Status = models.AlertStatusClosed
			})
			It("rejects the transition", func() {
				var transitionErr *alerting.InvalidTransitionError
				Expect(errors.As(err, &transitionErr)).To(BeTrue())
				Expect(alertDB.UpdateAlertStatusCallCount()).To(Equal(0))
			})
		})
	})

	Describe("RetrieveAlerts", func() {
		It("delegates to the alert database", func() {
			expected := []*models.Alert{{AlertId: "alert-1"}}
			alertDB.RetrieveAlertsReturns(expected, nil)

			alerts, err := engine.RetrieveAlerts(testModelId, 0, -1, db.DESC)
			Expect(err).NotTo(HaveOccurred())
			Expect(alerts).To(Equal(expected))

			modelId, start, end, order := alertDB.RetrieveAlertsArgsForCall(0)
			Expect(modelId).To(Equal(testModelId))
			Expect(start).To(Equal(int64(0)))
			Expect(end).To(Equal(int64(-1)))
			Expect(order).To(Equal(db.DESC))
		})
	})
})
