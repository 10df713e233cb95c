package routes_test

import (
	"github.com/modelwatch/modelwatch/routes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Routes", func() {

	var (
		testModelId    = "testModelId"
		testMetricType = "accuracy"
		testAlertId    = "testAlertId"
	)

	Describe("AlertingRoutes", func() {
		Context("SubmitMetricRoute", func() {
			Context("when provide correct route variable", func() {
				It("should return the correct path", func() {
					path, err := routes.AlertingRoutes().Get(routes.SubmitMetricRouteName).URLPath("modelid", testModelId)
					Expect(err).NotTo(HaveOccurred())
					Expect(path.Path).To(Equal("/v1/models/" + testModelId + "/metrics"))
				})
			})

			Context("when provide wrong route variable", func() {
				It("should return error", func() {
					_, err := routes.AlertingRoutes().Get(routes.SubmitMetricRouteName).URLPath("wrongVariable", testModelId)
					Expect(err).To(HaveOccurred())
				})
			})
		})

		Context("GetMetricHistoriesRoute", func() {
			Context("when provide correct route variable", func() {
				It("should return the correct path", func() {
					path, err := routes.AlertingRoutes().Get(routes.GetMetricHistoriesRouteName).URLPath("modelid", testModelId, "metrictype", testMetricType)
					Expect(err).NotTo(HaveOccurred())
					Expect(path.Path).To(Equal("/v1/models/" + testModelId + "/metric_histories/" + testMetricType))
				})
			})

			Context("when provide not enough route variable", func() {
				It("should return error", func() {
					_, err := routes.AlertingRoutes().Get(routes.GetMetricHistoriesRouteName).URLPath("modelid", testModelId)
					Expect(err).To(HaveOccurred())
				})
			})
		})

		Context("MonitoringConfigRoutes", func() {
			It("should return the correct path", func() {
				path, err := routes.AlertingRoutes().Get(routes.PutMonitoringConfigRouteName).URLPath("modelid", testModelId)
				Expect(err).NotTo(HaveOccurred())
				Expect(path.Path).To(Equal("/v1/models/" + testModelId + "/monitoring_config"))

				path, err = routes.AlertingRoutes().Get(routes.GetMonitoringConfigRouteName).URLPath("modelid", testModelId)
				Expect(err).NotTo(HaveOccurred())
				Expect(path.Path).To(Equal("/v1/models/" + testModelId + "/monitoring_config"))
			})
		})

		Context("GetModelAlertsRoute", func() {
			It("should return the correct path", func() {
				path, err := routes.AlertingRoutes().Get(routes.GetModelAlertsRouteName).URLPath("modelid", testModelId)
				Expect(err).NotTo(HaveOccurred())
				Expect(path.Path).To(Equal("/v1/models/" + testModelId + "/alerts"))
			})
		})

		Context("AlertLifecycleRoutes", func() {
			It("should return the correct paths", func() {
				path, err := routes.AlertingRoutes().Get(routes.GetAlertRouteName).URLPath("alertid", testAlertId)
				Expect(err).NotTo(HaveOccurred())
				Expect(path.Path).To(Equal("/v1/alerts/" + testAlertId))

				path, err = routes.AlertingRoutes().Get(routes.AcknowledgeAlertRouteName).URLPath("alertid", testAlertId)
				Expect(err).NotTo(HaveOccurred())
				Expect(path.Path).To(Equal("/v1/alerts/" + testAlertId + "/acknowledge"))

				path, err = routes.AlertingRoutes().Get(routes.ResolveAlertRouteName).URLPath("alertid", testAlertId)
				Expect(err).NotTo(HaveOccurred())
				Expect(path.Path).To(Equal("/v1/alerts/" + testAlertId + "/resolve"))

				path, err = routes.AlertingRoutes().Get(routes.CloseAlertRouteName).URLPath("alertid", testAlertId)
				Expect(err).NotTo(HaveOccurred())
				Expect(path.Path).To(Equal("/v1/alerts/" + testAlertId + "/close"))
			})
		})
	})
})
