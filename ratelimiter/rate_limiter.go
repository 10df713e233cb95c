package ratelimiter

import (
	"time"

	"code.cloudfoundry.org/lager/v3"
)

const (
	defaultBurstCapacity = 20
	defaultIdleDuration  = 10 * time.Minute
	defaultSweepInterval = 30 * time.Second
)

type Limiter interface {
	ExceedsLimit(string) bool
}

type RateLimiter struct {
	store Store
}

func DefaultRateLimiter(maxAmount int, validDuration time.Duration, logger lager.Logger) *RateLimiter {
	return NewRateLimiter(defaultBurstCapacity, maxAmount, validDuration, defaultIdleDuration, defaultSweepInterval, logger)
}

func NewRateLimiter(burstCapacity int, maxAmount int, validDuration time.Duration, idleDuration time.Duration, sweepInterval time.Duration, logger lager.Logger) *RateLimiter {
	return &RateLimiter{
		store: NewStore(burstCapacity, maxAmount, validDuration, idleDuration, sweepInterval, logger),
	}
}

func (r *RateLimiter) ExceedsLimit(modelId string) bool {
	return r.store.Increment(modelId) != nil
}
