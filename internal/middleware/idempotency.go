package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyResultTTL = 24 * time.Hour
	idempotencyLockTTL   = 30 * time.Second
)

// Idempotency replays the cached response for a repeated Idempotency-Key.
// Requests without the header pass through untouched; resubmitting without
// a key still creates a new row.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s", c.FullPath(), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached any
			_ = json.Unmarshal([]byte(val), &cached)
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true, "data": cached})
			return
		}

		// SetNX so a concurrent duplicate is rejected while the first
		// request is still in flight; short TTL clears a crashed holder.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "The same request is already being processed",
			})
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}

// StoreIdempotentResult is called by handlers after a successful mutation
// to record the response and release the in-flight lock.
func StoreIdempotentResult(ctx context.Context, rdb *redis.Client, c *gin.Context, result any) {
	cacheKey := c.GetString(IdempotencyCacheKey)
	lockKey := c.GetString(IdempotencyLockKey)
	if cacheKey == "" || rdb == nil {
		return
	}

	if payload, err := json.Marshal(result); err == nil {
		rdb.Set(ctx, cacheKey, payload, idempotencyResultTTL)
	}
	if lockKey != "" {
		rdb.Del(ctx, lockKey)
	}
}
