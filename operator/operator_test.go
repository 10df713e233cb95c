package operator_test

import (
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon_v2"

	"github.com/modelwatch/modelwatch/fakes"
	"github.com/modelwatch/modelwatch/operator"
)

var _ = Describe("OperatorRunner", func() {
	var (
		proc   ifrit.Process
		fclock *fakeclock.FakeClock
		buffer *gbytes.Buffer
		pruner *fakes.FakeOperator
		runner *operator.OperatorRunner
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("observation-pruner")
		buffer = logger.Buffer()
		fclock = fakeclock.NewFakeClock(time.Now())
		pruner = &fakes.FakeOperator{}
		runner = operator.NewOperatorRunner(pruner, TestRefreshInterval, fclock, logger)

		proc = ifrit.Invoke(runner)
		Eventually(buffer).Should(gbytes.Say("started"))
	})

	AfterEach(func() {
		ginkgomon_v2.Kill(proc)
		Eventually(proc.Wait()).Should(Receive(BeNil()))
	})

	It("runs the operation once on startup", func() {
		Eventually(pruner.OperateCallCount).Should(Equal(1))
		Consistently(pruner.OperateCallCount).Should(Equal(1))
	})

	It("runs the operation again on every interval tick", func() {
		Eventually(pruner.OperateCallCount).Should(Equal(1))

		fclock.Increment(TestRefreshInterval)
		Eventually(pruner.OperateCallCount).Should(Equal(2))

		fclock.Increment(TestRefreshInterval)
		Eventually(pruner.OperateCallCount).Should(Equal(3))
	})

	It("stops scheduling when interrupted", func() {
		Eventually(pruner.OperateCallCount).Should(Equal(1))

		ginkgomon_v2.Kill(proc)
		Eventually(proc.Wait()).Should(Receive(BeNil()))
		Eventually(buffer).Should(gbytes.Say("stopped"))

		fclock.Increment(TestRefreshInterval)
		Consistently(pruner.OperateCallCount).Should(Equal(1))
	})
})
