// Package ratelimit фиксированное окно запросов в Redis.
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 10
	defaultWindow = time.Minute
	defaultPrefix = "studio:rl"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// Limiter ограничивает число запросов с одного ключа за окно.
// Счётчик общий для всех экземпляров сервиса.
type Limiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

// New создает ограничитель
func New(rdb redis.Scripter, limit int, window time.Duration, prefix string) *Limiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Limiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

// Allow учитывает запрос и сообщает, укладывается ли он в лимит.
// Ошибка Redis возвращается вызывающему, решение fail-open принимает middleware.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("ratelimit: %w", err)
	}
	return count <= int64(l.limit), nil
}

// Limit максимальное число запросов за окно
func (l *Limiter) Limit() int {
	return l.limit
}
