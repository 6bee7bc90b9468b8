package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ResponseCache кеш ответов публичных GET-эндпоинтов в redis.
// Доступность и рекомендации пересчитываются на каждый запрос,
// поэтому короткий TTL заметно снимает нагрузку с БД.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewResponseCache создает кеш ответов поверх redis-клиента
func NewResponseCache(client *redis.Client, ttl time.Duration, logger Logger) *ResponseCache {
	return &ResponseCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// captureWriter буферизует тело ответа для записи в кеш
type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.body.Write(p)
	return w.ResponseWriter.Write(p)
}

// Middleware отдает закешированный ответ или пропускает запрос дальше
// и кеширует успешный результат. Ошибки redis не блокируют запрос.
func (c *ResponseCache) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)

			cached, err := c.client.Get(r.Context(), key).Bytes()
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(cached)
				return
			}
			if err != redis.Nil {
				c.logger.Warn("ResponseCache: redis get failed for key=%s: %v", key, err)
			}

			capture := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(capture, r)

			if capture.status == http.StatusOK && capture.body.Len() > 0 {
				if err := c.client.Set(r.Context(), key, capture.body.Bytes(), c.ttl).Err(); err != nil {
					c.logger.Warn("ResponseCache: redis set failed for key=%s: %v", key, err)
				}
			}
		})
	}
}

// cacheKey строит ключ кеша из метода, пути и параметров запроса
func cacheKey(r *http.Request) string {
	sum := sha1.Sum([]byte(r.Method + " " + r.URL.Path + "?" + r.URL.RawQuery))
	return "httpcache:" + hex.EncodeToString(sum[:])
}
