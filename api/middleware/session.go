package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-ID"

// NewSessionID mints an id like session_3fa1b2c4 for callers that arrive
// without one.
func NewSessionID() string {
	return "session_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Session scopes each request to a commerce session. The id from the
// X-Session-ID header is used as-is; when absent a fresh one is minted and
// echoed back so the caller can stick to it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader))
			if sessionID == "" {
				sessionID = NewSessionID()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
