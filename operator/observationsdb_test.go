package operator_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/modelwatch/modelwatch/fakes"
	"github.com/modelwatch/modelwatch/operator"
)

var _ = Describe("ObservationsDB Prune", func() {
	var (
		metricDb             *fakes.FakeMetricDB
		fclock               *fakeclock.FakeClock
		cutoffDuration       time.Duration
		buffer               *gbytes.Buffer
		observationsDbPruner *operator.ObservationsDbPruner
	)

	BeforeEach(func() {
		cutoffDuration = 30 * 24 * time.Hour
		logger := lagertest.NewTestLogger("prune-test")
		buffer = logger.Buffer()

		metricDb = &fakes.FakeMetricDB{}
		fclock = fakeclock.NewFakeClock(time.Now())

		observationsDbPruner = operator.NewObservationsDbPruner(metricDb, cutoffDuration, fclock, logger)
	})

	Describe("Prune", func() {
		JustBeforeEach(func() {
			observationsDbPruner.Operate()
		})

		Context("when pruning observations from the metric db", func() {
			It("prunes as per given cutoff duration", func() {
				Eventually(metricDb.PruneObservationsCallCount).Should(Equal(1))
				Expect(metricDb.PruneObservationsArgsForCall(0)).To(BeNumerically("==", fclock.Now().Add(-cutoffDuration).UnixNano()))
			})
		})

		Context("when pruning observations from the metric db fails", func() {
			BeforeEach(func() {
				metricDb.PruneObservationsReturns(errors.New("test pruner error"))
			})

			It("should error", func() {
				Eventually(metricDb.PruneObservationsCallCount).Should(Equal(1))
				Eventually(buffer).Should(gbytes.Say("test pruner error"))
			})
		})
	})
})
