package handlers

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"heating_leads/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const ctxOperatorID = "operatorId"

func (h *Handler) operatorIdentity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	operatorID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxOperatorID, operatorID)
	c.Next()
}

// minLimiterIdle is the shortest time an unused bucket is kept.
const minLimiterIdle = 10 * time.Minute

// IPRateLimiter keeps one token bucket per client IP. Buckets unused for
// longer than a full refill are dropped on a later request.
type IPRateLimiter struct {
	limiters  sync.Map // ip -> *ipBucket
	rate      rate.Limit
	burst     int
	idle      time.Duration
	lastSweep atomic.Int64
	now       func() time.Time
	log       *logger.Logger
}

type ipBucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

func NewIPRateLimiter(r rate.Limit, burst int, log *logger.Logger) *IPRateLimiter {
	idle := minLimiterIdle
	if r != rate.Inf && r > 0 {
		// a bucket idle this long is full again, so forgetting it changes nothing
		if refill := time.Duration(float64(burst) / float64(r) * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	l := &IPRateLimiter{rate: r, burst: burst, idle: idle, now: time.Now, log: log}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

func (i *IPRateLimiter) getLimiter(ip string, now time.Time) *rate.Limiter {
	v, ok := i.limiters.Load(ip)
	if !ok {
		v, _ = i.limiters.LoadOrStore(ip, &ipBucket{limiter: rate.NewLimiter(i.rate, i.burst)})
	}
	b := v.(*ipBucket)
	b.lastSeen.Store(now.UnixNano())
	return b.limiter
}

// sweep drops idle buckets at most once per idle period.
func (i *IPRateLimiter) sweep(now time.Time) {
	last := i.lastSweep.Load()
	if now.UnixNano()-last < int64(i.idle) || !i.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-i.idle).UnixNano()
	i.limiters.Range(func(key, v any) bool {
		if v.(*ipBucket).lastSeen.Load() < cutoff {
			i.limiters.Delete(key)
		}
		return true
	})
}

func (i *IPRateLimiter) size() int {
	n := 0
	i.limiters.Range(func(any, any) bool { n++; return true })
	return n
}

// RateLimit rejects requests over the per-IP budget with 429.
func (i *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := i.now()
		i.sweep(now)
		if !i.getLimiter(ip, now).AllowN(now, 1) {
			i.log.Warnw("rate_limit_exceeded", "ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
