package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/voicecartlabs/voicecart-backend/api/responses"
	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
)

type rateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// SessionRateLimitPolicy throttles one commerce session across both callers
// (voice agent and UI share the budget).
type SessionRateLimitPolicy struct {
	Window time.Duration
	Limit  int
}

func (p SessionRateLimitPolicy) enabled() bool {
	return p.Window > 0 && p.Limit > 0
}

// SessionRateLimit applies a fixed-window counter per session id. Limiter
// outages fail open: a broken Redis must not take the storefront down.
func SessionRateLimit(policy SessionRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sessionID := SessionIDFromContext(ctx)
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed, count, err := store.FixedWindowAllow(ctx, "session:"+sessionID, int64(policy.Limit), policy.Window)
			if err != nil {
				if logg != nil {
					logg.Error(ctx, "rate limit check failed", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "count", count), "session rate limited")
				}
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many requests for this session"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
