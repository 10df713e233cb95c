package ratelimiter_test

import (
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/modelwatch/modelwatch/ratelimiter"
)

var _ = Describe("RateLimiter", func() {
	const (
		burstCapacity = 4
		maxAmount     = 2
		validDuration = 1 * time.Second
		idleDuration  = 5 * time.Second
		sweepInterval = 1 * time.Second
	)

	var limiter *ratelimiter.RateLimiter

	BeforeEach(func() {
		limiter = ratelimiter.NewRateLimiter(burstCapacity, maxAmount, validDuration, idleDuration, sweepInterval,
			lagertest.NewTestLogger("ratelimiter"))
	})

	Describe("ExceedsLimit", func() {
		It("throttles a model once its burst is spent", func() {
			for i := 0; i < burstCapacity; i++ {
				Expect(limiter.ExceedsLimit("model-fraud-v2")).To(BeFalse())
			}
			Expect(limiter.ExceedsLimit("model-fraud-v2")).To(BeTrue())
		})

		It("meters each model independently", func() {
			for i := 0; i < burstCapacity; i++ {
				Expect(limiter.ExceedsLimit("model-fraud-v2")).To(BeFalse())
			}
			Expect(limiter.ExceedsLimit("model-fraud-v2")).To(BeTrue())
			Expect(limiter.ExceedsLimit("model-churn-v1")).To(BeFalse())
		})

		It("admits the sustained rate after the refill window", func() {
			for i := 0; i < burstCapacity; i++ {
				Expect(limiter.ExceedsLimit("model-fraud-v2")).To(BeFalse())
			}
			Expect(limiter.ExceedsLimit("model-fraud-v2")).To(BeTrue())

			time.Sleep(validDuration)
			for i := 0; i < maxAmount; i++ {
				Expect(limiter.ExceedsLimit("model-fraud-v2")).To(BeFalse())
			}
			Expect(limiter.ExceedsLimit("model-fraud-v2")).To(BeTrue())
		})
	})
})
