package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/telemetry"
	"purchase-engine/pkg/apperror"
	"purchase-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderIdempotentReplay marks a response served from the cache.
	HeaderIdempotentReplay = "Idempotent-Replayed"

	idempotencyClaimTTL = time.Minute
	idempotencyIOTime   = 2 * time.Second
)

// captureWriter tees the response body so it can be cached.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the cached response for a repeated Idempotency-Key and
// rejects a duplicate that arrives while the first request is still in
// flight. Keys are scoped to the authenticated caller, so it must run after
// JWTAuth. Requests without the header pass through.
func Idempotency(cache ports.IdempotencyCache, ttl time.Duration, metrics *telemetry.Metrics, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.GetHeader(HeaderIdempotencyKey)
		if clientKey == "" {
			c.Next()
			return
		}
		if len(clientKey) > 128 {
			response.Error(c, apperror.Validation("Idempotency-Key must be at most 128 characters"))
			c.Abort()
			return
		}
		userID, ok := UserID(c)
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		key := domain.BuildPurchaseIdempotencyKey(userID, clientKey)
		ctx := c.Request.Context()

		cached, err := cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency lookup failed, processing without replay protection")
			c.Next()
			return
		}
		if cached != nil {
			var rec domain.IdempotencyRecord
			if err := json.Unmarshal(cached, &rec); err == nil {
				metrics.IdempotentReplay()
				c.Header(HeaderIdempotentReplay, "true")
				c.Data(rec.StatusCode, "application/json; charset=utf-8", rec.ResponseJSON)
				c.Abort()
				return
			}
			log.Warn().Str("key", key).Msg("discarding unreadable idempotency record")
		}

		claimed, err := cache.Claim(ctx, key, idempotencyClaimTTL)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency claim failed, processing without replay protection")
			c.Next()
			return
		}
		if !claimed {
			response.Error(c, apperror.ErrDuplicateRequest())
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		// The outcome is stored even if the caller hung up.
		storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), idempotencyIOTime)
		defer cancel()

		status := w.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			if err := cache.Unclaim(storeCtx, key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to release idempotency claim")
			}
			return
		}

		rec, err := json.Marshal(domain.IdempotencyRecord{
			Key:          key,
			StatusCode:   status,
			ResponseJSON: w.body.Bytes(),
			CreatedAt:    time.Now().UTC(),
		})
		if err == nil {
			err = cache.Set(storeCtx, key, rec, ttl)
		}
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to cache idempotent response")
		}
	}
}
