package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voicecartlabs/voicecart-backend/api/responses"
	"github.com/voicecartlabs/voicecart-backend/api/validators"
	checkoutsvc "github.com/voicecartlabs/voicecart-backend/internal/checkout"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
	"github.com/voicecartlabs/voicecart-backend/pkg/types"
)

type updateCheckoutRequest struct {
	FulfillmentOptionID *string        `json:"fulfillment_option_id,omitempty"`
	FulfillmentAddress  *types.Address `json:"fulfillment_address,omitempty"`
}

type completeCheckoutRequest struct {
	Buyer types.Buyer `json:"buyer" validate:"required"`
}

// CheckoutCreate snapshots the session's cart into a new checkout session.
func CheckoutCreate(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		session, err := svc.Create(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, session)
	}
}

func CheckoutGet(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checkoutID := chi.URLParam(r, "checkoutID")

		session, err := svc.Get(r.Context(), checkoutID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

func CheckoutUpdate(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checkoutID := chi.URLParam(r, "checkoutID")

		var payload updateCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Update(r.Context(), checkoutID, checkoutsvc.UpdateInput{
			FulfillmentOptionID: payload.FulfillmentOptionID,
			FulfillmentAddress:  payload.FulfillmentAddress,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

func CheckoutComplete(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checkoutID := chi.URLParam(r, "checkoutID")

		var payload completeCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Complete(r.Context(), checkoutID, payload.Buyer)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

func CheckoutCancel(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checkoutID := chi.URLParam(r, "checkoutID")

		session, err := svc.Cancel(r.Context(), checkoutID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}
