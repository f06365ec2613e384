package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultLimiterIdleTTL - через сколько простоя лимитер клиента удаляется
const DefaultLimiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter хранит token bucket на каждого клиента.
// Лимитеры клиентов, не обращавшихся дольше idleTTL, удаляются при очередном вызове Allow
type ClientRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	r         rate.Limit
	b         int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewClientRateLimiter создаёт лимитер: r запросов в секунду, b - размер всплеска
func NewClientRateLimiter(r rate.Limit, b int, idleTTL time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters:  make(map[string]*clientLimiter),
		r:         r,
		b:         b,
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow сообщает, можно ли обслужить очередной запрос клиента
func (l *ClientRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	l.evictIdle(now)

	entry, ok := l.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// Len возвращает число отслеживаемых клиентов
func (l *ClientRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// evictIdle проходит по карте не чаще раза в idleTTL. Вызывается под mu
func (l *ClientRateLimiter) evictIdle(now time.Time) {
	if l.idleTTL <= 0 || now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= l.idleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

// RateLimit отклоняет запросы сверх лимита с кодом 429. rps <= 0 отключает ограничение
func RateLimit(rps float64, burst int) Middleware {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := NewClientRateLimiter(rate.Limit(rps), burst, DefaultLimiterIdleTTL)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
