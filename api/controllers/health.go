package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/voicecartlabs/voicecart-backend/api/responses"
	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
)

const readyCheckTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the datasources. Nil pingers (redis disabled in the demo
// profile) are reported as skipped, not failures.
func HealthReady(db, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		checks := map[string]string{}

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not reachable"))
				return
			}
			checks["db"] = "ok"
		} else {
			checks["db"] = "skipped"
		}

		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not reachable"))
				return
			}
			checks["redis"] = "ok"
		} else {
			checks["redis"] = "skipped"
		}

		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}
