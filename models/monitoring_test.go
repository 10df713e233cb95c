package models_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/modelwatch/modelwatch/models"
)

var _ = Describe("MonitoringConfig", func() {
	var config *MonitoringConfig

	BeforeEach(func() {
		config = DefaultMonitoringConfig()
	})

	Describe("DefaultMonitoringConfig", func() {
		It("carries the default thresholds and cooldown", func() {
			Expect(config.DriftThreshold).To(Equal(0.05))
			Expect(config.AccuracyThreshold).To(Equal(0.8))
			Expect(config.LatencyThreshold).To(Equal(100.0))
			Expect(config.AlertCooldownSecs).To(Equal(900))
		})

		It("validates", func() {
			Expect(config.Validate()).To(Succeed())
		})
	})

	Describe("Validate", func() {
		It("rejects a drift threshold outside (0, 1]", func() {
			config.DriftThreshold = 0
			Expect(config.Validate()).To(MatchError("drift_threshold must be in (0, 1], got 0"))
			config.DriftThreshold = 1.5
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("rejects an accuracy threshold outside (0, 1]", func() {
			config.AccuracyThreshold = -0.1
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("rejects a non-positive latency threshold", func() {
			config.LatencyThreshold = 0
			Expect(config.Validate()).To(MatchError("latency_threshold must be greater than 0, got 0"))
		})

		It("rejects a negative cooldown", func() {
			config.AlertCooldownSecs = -1
			Expect(config.Validate()).To(MatchError("alert_cooldown_secs must not be negative, got -1"))
		})

		It("allows a zero cooldown", func() {
			config.AlertCooldownSecs = 0
			Expect(config.Validate()).To(Succeed())
		})
	})

	Describe("AlertCooldown", func() {
		It("converts the cooldown to a duration", func() {
			config.AlertCooldownSecs = 900
			Expect(config.AlertCooldown()).To(Equal(15 * time.Minute))
		})
	})
})
