package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/voicecartlabs/voicecart-backend/api/responses"
	"github.com/voicecartlabs/voicecart-backend/api/validators"
	"github.com/voicecartlabs/voicecart-backend/internal/catalog"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
	"github.com/voicecartlabs/voicecart-backend/pkg/pagination"
)

// CatalogList serves the filtered product listing. in_stock_only defaults to
// true; pass in_stock_only=false to include sold-out items.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		minPrice, err := validators.ParseQueryInt64Ptr(r, "min_price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryInt64Ptr(r, "max_price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
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

		filter := catalog.Filter{
			Category:    query.Get("category"),
			MinPrice:    minPrice,
			MaxPrice:    maxPrice,
			Color:       query.Get("color"),
			Size:        query.Get("size"),
			Search:      query.Get("search"),
			InStockOnly: !strings.EqualFold(query.Get("in_stock_only"), "false"),
		}

		products := svc.List(r.Context(), filter)

		total := len(products)
		if offset > total {
			offset = total
		}
		end := offset + limit
		if end > total {
			end = total
		}

		responses.WriteSuccess(w, map[string]any{
			"products": products[offset:end],
			"total":    total,
			"limit":    limit,
			"offset":   offset,
		})
	}
}

func CatalogCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"categories": svc.Categories(r.Context()),
		})
	}
}

// CatalogColors lists the colors on offer, optionally narrowed to one
// category (color=? follow-ups from the voice agent).
func CatalogColors(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"colors": svc.Colors(r.Context(), r.URL.Query().Get("category")),
		})
	}
}

func CatalogGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productID")

		product, err := svc.GetByID(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
