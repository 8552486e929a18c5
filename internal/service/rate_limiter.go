package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LimitDecision es el veredicto del rate limiter para una peticion.
type LimitDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter limita peticiones por clave (normalmente IP de cliente) en
// ventana fija. Estado explicito con ciclo de vida de proceso, nunca un
// singleton ambiente.
type RateLimiter interface {
	Allow(key string) LimitDecision
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

type memoryRateLimiter struct {
	mu          sync.Mutex
	entries     map[string]windowEntry
	window      time.Duration
	max         int
	cleanupEach time.Duration
	lastCleanup time.Time
	now         func() time.Time
}

// NewMemoryRateLimiter crea un limiter de ventana fija en memoria.
// Las entradas vencidas se barren de manera oportunista.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &memoryRateLimiter{
		entries:     make(map[string]windowEntry),
		window:      window,
		max:         max,
		cleanupEach: 5 * time.Minute,
		now:         time.Now,
	}
}

func (l *memoryRateLimiter) Allow(key string) LimitDecision {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybeCleanupLocked(now)

	entry, ok := l.entries[key]
	if !ok || now.After(entry.resetAt) {
		l.entries[key] = windowEntry{count: 1, resetAt: now.Add(l.window)}
		return LimitDecision{Allowed: true, Limit: l.max, Remaining: l.max - 1}
	}

	if entry.count >= l.max {
		return LimitDecision{
			Allowed:    false,
			Limit:      l.max,
			Remaining:  0,
			RetryAfter: entry.resetAt.Sub(now),
		}
	}

	entry.count++
	l.entries[key] = entry
	return LimitDecision{Allowed: true, Limit: l.max, Remaining: l.max - entry.count}
}

func (l *memoryRateLimiter) maybeCleanupLocked(now time.Time) {
	if now.Sub(l.lastCleanup) < l.cleanupEach {
		return
	}
	l.lastCleanup = now
	for k, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, k)
		}
	}
}

const redisAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

// NewRedisRateLimiter crea un limiter de ventana fija sobre Redis, para
// despliegues con varias instancias. Ante error de Redis se deja pasar.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "rl:ip:",
	}
}

func (l *redisRateLimiter) Allow(key string) LimitDecision {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if normalized == "" {
		normalized = "unknown"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}

	vals, err := l.client.Eval(ctx, redisAllowScript, []string{l.prefix + normalized}, seconds).Int64Slice()
	if err != nil || len(vals) < 2 {
		return LimitDecision{Allowed: true, Limit: l.max, Remaining: l.max}
	}

	count, ttl := int(vals[0]), time.Duration(vals[1])*time.Second
	if count > l.max {
		return LimitDecision{Allowed: false, Limit: l.max, Remaining: 0, RetryAfter: ttl}
	}
	return LimitDecision{Allowed: true, Limit: l.max, Remaining: l.max - count}
}
