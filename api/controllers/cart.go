package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voicecartlabs/voicecart-backend/api/middleware"
	"github.com/voicecartlabs/voicecart-backend/api/responses"
	"github.com/voicecartlabs/voicecart-backend/api/validators"
	cartsvc "github.com/voicecartlabs/voicecart-backend/internal/cart"
	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	Size      string `json:"size,omitempty"`
}

type updateCartItemRequest struct {
	Quantity int    `json:"quantity" validate:"min=0"`
	Size     string `json:"size,omitempty"`
}

// CartGet returns the session's cart, creating an empty one on first access.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		snapshot, err := svc.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, snapshot)
	}
}

func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Quantity == 0 {
			payload.Quantity = 1
		}

		snapshot, err := svc.AddItem(r.Context(), sessionID, payload.ProductID, payload.Quantity, payload.Size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, snapshot)
	}
}

func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		productID := chi.URLParam(r, "productID")

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		size := payload.Size
		if size == "" {
			size = r.URL.Query().Get("size")
		}

		snapshot, err := svc.UpdateItem(r.Context(), sessionID, productID, payload.Quantity, size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, snapshot)
	}
}

func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		productID := chi.URLParam(r, "productID")
		size := r.URL.Query().Get("size")

		snapshot, err := svc.RemoveItem(r.Context(), sessionID, productID, size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, snapshot)
	}
}

func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		snapshot, err := svc.Clear(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, snapshot)
	}
}

func requireSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (string, bool) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
		return "", false
	}
	return sessionID, true
}
