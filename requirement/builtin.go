package requirement

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// KeyFunc derives the limiter key for a sender, typically a user or
// channel identifier.
type KeyFunc func(sender any) string

// Cooldown returns a predicate that rejects a sender who ran the command
// within the last d. The first evaluation for a key passes and starts the
// cooldown window.
func Cooldown(d time.Duration, keyFn KeyFunc) Predicate {
	store := cache.New(d, d)
	return func(sender any, _ map[string]any) bool {
		key := keyFn(sender)
		if _, onCooldown := store.Get(key); onCooldown {
			return false
		}
		store.Set(key, struct{}{}, d)
		return true
	}
}

// RateLimit returns a predicate backed by a per-key token bucket: each key
// may run at most limit events per second with the given burst.
func RateLimit(limit rate.Limit, burst int, keyFn KeyFunc) Predicate {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	return func(sender any, _ map[string]any) bool {
		key := keyFn(sender)

		mu.Lock()
		limiter, ok := limiters[key]
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters[key] = limiter
		}
		mu.Unlock()

		return limiter.Allow()
	}
}
