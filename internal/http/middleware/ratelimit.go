package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"partyroom/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var limiterClient *redis.Client

// инициализирует Redis-клиент лимитера; пустой addr отключает лимиты
// (локальная разработка без Redis)
func InitRedisRateLimiter(addr, password string, db int) {
	if addr == "" {
		logger.Warn("rate limiter отключен: REDIS_ADDR не задан")
		return
	}
	limiterClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// фиксированное окно на клиента: счётчик INCR с TTL окна.
// Отказ Redis не блокирует запросы - лимитер вспомогательный
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiterClient == nil {
			c.Next()
			return
		}

		key := rateKey(c)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 500*time.Millisecond)
		defer cancel()

		count, err := limiterClient.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			limiterClient.Expire(ctx, key, window)
		}

		if count > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "слишком много запросов"})
			return
		}
		c.Next()
	}
}

// ключ по игроку, если запрос аутентифицирован, иначе по адресу
func rateKey(c *gin.Context) string {
	if id, ok := PlayerID(c); ok {
		return fmt.Sprintf("rl:%s:%s", c.FullPath(), id)
	}
	return fmt.Sprintf("rl:%s:%s", c.FullPath(), c.ClientIP())
}
