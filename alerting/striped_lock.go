package alerting

import (
	"hash/crc32"
	"sync"
)

// StripedLock maps string keys onto a fixed pool of mutexes. Two keys
// on the same stripe share a mutex, which is acceptable: the lock only
// guards the short cooldown check-then-create section.
type StripedLock struct {
	capacity int
	sLock    *sync.Mutex
	locks    []*sync.Mutex
}

func NewStripedLock(capacity int) *StripedLock {
	if capacity <= 0 {
		panic("invalid striped lock capacity")
	}
	return &StripedLock{
		capacity: capacity,
		sLock:    &sync.Mutex{},
		locks:    make([]*sync.Mutex, capacity),
	}
}

func (sl *StripedLock) GetLock(key string) *sync.Mutex {
	idx := crc32.ChecksumIEEE([]byte(key)) % uint32(sl.capacity)
	sl.sLock.Lock()
	if sl.locks[idx] == nil {
		sl.locks[idx] = &sync.Mutex{}
	}
	sl.sLock.Unlock()
	return sl.locks[idx]
}
