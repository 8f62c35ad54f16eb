package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/courier-portal/internal/domain/dto"
	"github.com/guttosm/courier-portal/internal/i18n"
	"github.com/guttosm/courier-portal/internal/service/cache"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
	// defaultIdempotencyCapacity bounds the number of stored responses.
	defaultIdempotencyCapacity = 10000
)

// Per-request headers that must not be replayed.
var unreplayedHeaders = []string{
	RequestIDHeader,
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
	"Retry-After",
	"Date",
	"Content-Length",
	// set again by the compression middleware on replay
	"Content-Encoding",
	"Vary",
}

// cachedResponse stores a completed response for replay.
type cachedResponse struct {
	BodyHash   string
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   cache.Cache[string, *cachedResponse]
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   cache.NewTTL[string, *cachedResponse]("idempotency", defaultIdempotencyCapacity, IdempotencyKeyTTL),
		Enabled: true,
	}
}

// Idempotency returns a middleware that replays the stored response for a
// repeated Idempotency-Key. Keys are scoped to the caller, method and path.
// Reusing a key with a different body is rejected with 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" {
			c.Next()
			return
		}

		bodyHash, err := hashBody(c.Request)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}

		cacheKey := idempotencyCacheKey(key, callerIdentity(c), c.Request)

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			if cached.BodyHash != bodyHash {
				abortWithError(c, http.StatusConflict, dto.ErrCodeConflict, i18n.ErrKeyIdempotencyKeyReused)
				return
			}
			for k, values := range cached.Headers {
				for _, v := range values {
					c.Writer.Header().Add(k, v)
				}
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.Headers.Get("Content-Type"), cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		cfg.Cache.Set(cacheKey, &cachedResponse{
			BodyHash:   bodyHash,
			StatusCode: status,
			Headers:    replayableHeaders(writer.Header()),
			Body:       writer.body.Bytes(),
		})
	}
}

// callerIdentity scopes keys to the session email, or the client IP for anonymous calls.
func callerIdentity(c *gin.Context) string {
	if email := c.GetString(string(UserEmailKey)); email != "" {
		return "user:" + email
	}
	return "ip:" + c.ClientIP()
}

func idempotencyCacheKey(key, identity string, req *http.Request) string {
	return strings.Join([]string{key, identity, req.Method, req.URL.Path}, "|")
}

// hashBody reads and restores the request body, returning its SHA-256.
func hashBody(req *http.Request) (string, error) {
	if req.Body == nil {
		return "", nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return "", err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

func replayableHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, k := range unreplayedHeaders {
		out.Del(k)
	}
	return out
}

// responseWriter tees the response body for caching.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
