package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AnshRaj112/guildhall-backend/pkg/clientip"
)

const (
	// RateLimitWindow is 120 seconds
	RateLimitWindow = 120 * time.Second
	// RateLimitMaxRequests is the maximum number of requests allowed in the window
	RateLimitMaxRequests = 25
	// RateLimitKeyPrefix is the Redis key prefix for rate limiting
	RateLimitKeyPrefix = "ratelimit:"
	// BlockedIPKeyPrefix is the Redis key prefix for blocked IPs
	BlockedIPKeyPrefix = "blocked_ip:"
	// BlockedIPDuration is how long an IP stays blocked
	BlockedIPDuration = 24 * time.Hour
)

// RedisRateLimiter counts requests per IP in Redis, shared by every instance
// behind the same server. Each request pushes the window's expiry forward; an
// IP that exceeds MaxRequests is blocked for BlockDuration.
type RedisRateLimiter struct {
	client        *redis.Client
	Window        time.Duration
	MaxRequests   int
	BlockDuration time.Duration
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:        client,
		Window:        RateLimitWindow,
		MaxRequests:   RateLimitMaxRequests,
		BlockDuration: BlockedIPDuration,
	}
}

// Handler fails open: when Redis is unreachable requests go through.
func (l *RedisRateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ip := clientip.RealClientIP(r)
		blockedKey := BlockedIPKeyPrefix + ip

		blocked, err := l.client.Exists(ctx, blockedKey).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if blocked > 0 {
			writeTooManyRequests(w, "Your IP has been temporarily blocked due to excessive requests. Please try again later.")
			return
		}

		key := RateLimitKeyPrefix + ip
		pipe := l.client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.Window)
		if _, err := pipe.Exec(ctx); err != nil {
			slog.Warn("rate limiter unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		count := int(incr.Val())
		if count > l.MaxRequests {
			if err := l.client.Set(ctx, blockedKey, "1", l.BlockDuration).Err(); err != nil {
				slog.Warn("block ip", "ip", ip, "error", err)
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(l.Window.Seconds())))
			writeTooManyRequests(w, "Rate limit exceeded. Your IP has been temporarily blocked. Please try again later.")
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.MaxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(l.MaxRequests-count))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(l.Window).Unix(), 10))

		next.ServeHTTP(w, r)
	})
}

func writeTooManyRequests(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}
