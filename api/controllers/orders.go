package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voicecartlabs/voicecart-backend/api/middleware"
	"github.com/voicecartlabs/voicecart-backend/api/responses"
	"github.com/voicecartlabs/voicecart-backend/api/validators"
	ordersvc "github.com/voicecartlabs/voicecart-backend/internal/orders"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
	"github.com/voicecartlabs/voicecart-backend/pkg/pagination"
)

// OrdersList returns the session's orders, newest first. all=true widens the
// listing to every session (demo dashboard view); last=true returns only the
// session's most recent order, null when it has none ("where's my order?"
// follow-ups from the voice agent).
func OrdersList(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("last") == "true" {
			order, err := svc.LastBySession(r.Context(), middleware.SessionIDFromContext(r.Context()))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"order": order})
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if r.URL.Query().Get("all") == "true" {
			sessionID = ""
		}

		orders, err := svc.List(r.Context(), ordersvc.ListFilter{
			SessionID: sessionID,
			Status:    r.URL.Query().Get("status"),
			Page:      pagination.Params{Limit: limit, Offset: offset},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"orders": orders,
			"limit":  limit,
			"offset": offset,
		})
	}
}

func OrdersGet(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		order, err := svc.GetByID(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

func OrdersAnalyticsSummary(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.AnalyticsSummary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
