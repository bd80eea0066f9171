package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key (user id or client IP plus action).
type RateLimiter struct {
	perMinute int
	burst     int
	buckets   map[string]*entry
	mutex     sync.Mutex
}

func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	burst := perMinute / 3
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		perMinute: perMinute,
		burst:     burst,
		buckets:   make(map[string]*entry),
	}
}

// Allow consumes a token for key:action. When none is left it also reports how
// long until the next one.
func (rl *RateLimiter) Allow(key, action string) (bool, time.Duration) {
	bucket := rl.bucket(key + ":" + action)

	reservation := bucket.Reserve()
	if !reservation.OK() {
		return false, time.Minute
	}
	if delay := reservation.Delay(); delay > 0 {
		reservation.Cancel()
		return false, delay
	}
	return true, 0
}

func (rl *RateLimiter) bucket(key string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	e, ok := rl.buckets[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMinute)), rl.burst)}
		rl.buckets[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}

// Cleanup drops buckets idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	for key, e := range rl.buckets {
		if now.Sub(e.lastSeen) > maxIdle {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) StartCleanupRoutine(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup(time.Hour)
			case <-stop:
				return
			}
		}
	}()
}
