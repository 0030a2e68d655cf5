package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter membatasi request per IP dengan sliding window. IP yang tidak
// punya request di dalam window dibuang dari map.
type RateLimiter struct {
	rate      int
	interval  time.Duration
	ips       map[string][]time.Time
	lastSweep time.Time
	mu        sync.Mutex
}

func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		rate:      rate,
		interval:  interval,
		ips:       make(map[string][]time.Time),
		lastSweep: time.Now(),
	}
}

// NewStrictRateLimiter guards write-heavy endpoints (order placement,
// booking submission) with a token bucket shared by all callers.
func NewStrictRateLimiter(every time.Duration, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(every), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  false,
				"message": "too many requests, please wait a moment",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Len returns the number of client IPs currently tracked.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.ips)
}

func (rl *RateLimiter) recent(requests []time.Time, cutoff time.Time) []time.Time {
	valid := make([]time.Time, 0, len(requests))
	for _, t := range requests {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	return valid
}

// sweepLocked membuang IP yang sudah tidak aktif, paling sering sekali per interval
func (rl *RateLimiter) sweepLocked(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	rl.lastSweep = now

	cutoff := now.Add(-rl.interval)
	for ip, requests := range rl.ips {
		valid := rl.recent(requests, cutoff)
		if len(valid) == 0 {
			delete(rl.ips, ip)
			continue
		}
		rl.ips[ip] = valid
	}
}

// allow mencatat request dan melaporkan apakah masih di bawah limit
func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweepLocked(now)

	valid := rl.recent(rl.ips[ip], now.Add(-rl.interval))
	if len(valid) >= rl.rate {
		rl.ips[ip] = valid
		return false
	}
	rl.ips[ip] = append(valid, now)
	return true
}

// RateLimit hanya memegang lock selama pengecekan, bukan selama handler
// berjalan (koneksi websocket bisa hidup lama).
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
