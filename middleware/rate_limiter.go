package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"beautyspa/config"
	"beautyspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type ipLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perMin   int
}

func newIPLimiters(perMin int) *ipLimiters {
	if perMin <= 0 {
		perMin = 120
	}
	return &ipLimiters{limiters: make(map[string]*rate.Limiter), perMin: perMin}
}

func (s *ipLimiters) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	lim, ok := s.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
		s.limiters[ip] = lim
	}
	return lim
}

// RateLimitMiddleware throttles requests per client IP using the configured
// per-minute budget.
func RateLimitMiddleware() gin.HandlerFunc {
	store := newIPLimiters(config.AppConfig.MaxRequestsPerMin)
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !store.get(ip).Allow() {
			utils.GetLogger().Warn("rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, try again later"})
			return
		}
		c.Next()
	}
}

// clientIP resolves the caller's address, honouring proxy headers.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
