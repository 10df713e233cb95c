package ratelimiter

import (
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/time/rate"
)

type Store interface {
	Increment(modelId string) error
}

// modelBucket is the token bucket metering one model's observation stream.
type modelBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	sync.RWMutex
}

func (b *modelBucket) Touch(now time.Time) {
	b.Lock()
	defer b.Unlock()
	b.lastSeen = now
}

func (b *modelBucket) IdleSince(cutoff time.Time) bool {
	b.RLock()
	defer b.RUnlock()
	return b.lastSeen.Before(cutoff)
}

// ModelBucketStore keeps one token bucket per model id and drops
// buckets of models that stopped reporting, so the map does not grow
// with every model ever seen.
type ModelBucketStore struct {
	burstCapacity int
	maxAmount     int
	validDuration time.Duration
	idleDuration  time.Duration
	sweepInterval time.Duration
	buckets       map[string]*modelBucket
	logger        lager.Logger
	sync.RWMutex
}

func NewStore(burstCapacity int, maxAmount int, validDuration time.Duration, idleDuration time.Duration, sweepInterval time.Duration, logger lager.Logger) Store {
	store := &ModelBucketStore{
		burstCapacity: burstCapacity,
		maxAmount:     maxAmount,
		validDuration: validDuration,
		idleDuration:  idleDuration,
		sweepInterval: sweepInterval,
		buckets:       make(map[string]*modelBucket),
		logger:        logger,
	}
	go store.sweepIdleModels()

	return store
}

func (s *ModelBucketStore) Increment(modelId string) error {
	bucket := s.bucketFor(modelId)
	bucket.Touch(time.Now())
	if !bucket.limiter.Allow() {
		return fmt.Errorf("ingestion burst capacity exhausted for model %s", modelId)
	}
	return nil
}

func (s *ModelBucketStore) bucketFor(modelId string) *modelBucket {
	s.RLock()
	bucket, ok := s.buckets[modelId]
	s.RUnlock()
	if ok {
		return bucket
	}

	s.Lock()
	defer s.Unlock()
	if bucket, ok = s.buckets[modelId]; ok {
		return bucket
	}
	limit := rate.Limit(float64(s.maxAmount) / s.validDuration.Seconds())
	bucket = &modelBucket{limiter: rate.NewLimiter(limit, s.burstCapacity)}
	s.buckets[modelId] = bucket
	return bucket
}

func (s *ModelBucketStore) sweepIdleModels() {
	ticker := time.NewTicker(s.sweepInterval)
	for range ticker.C {
		cutoff := time.Now().Add(-s.idleDuration)
		s.Lock()
		for modelId, bucket := range s.buckets {
			if bucket.IdleSince(cutoff) {
				s.logger.Info("dropping-idle-model-bucket", lager.Data{"modelId": modelId})
				delete(s.buckets, modelId)
			}
		}
		s.Unlock()
	}
}
