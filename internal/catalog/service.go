package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
)

// StockRequest asks the ledger for quantity units of one product.
type StockRequest struct {
	ProductID string
	Quantity  int
}

// Service exposes catalog reads and the stock ledger.
type Service interface {
	List(ctx context.Context, filter Filter) []Product
	GetByID(ctx context.Context, id string) (*Product, error)
	Categories(ctx context.Context) []string
	Colors(ctx context.Context, category string) []string
	DecrementStock(ctx context.Context, requests []StockRequest) error
	RestoreStock(ctx context.Context, requests []StockRequest)
}

type service struct {
	mu         sync.Mutex
	products   []Product
	index      map[string]int
	trackStock bool
}

// NewService builds an in-memory catalog from the given products.
func NewService(products []Product, trackStock bool) (Service, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("at least one product required")
	}
	index := make(map[string]int, len(products))
	owned := make([]Product, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at position %d has no id", i)
		}
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price < 0 || p.StockQuantity < 0 {
			return nil, fmt.Errorf("product %q has negative price or stock", p.ID)
		}
		owned[i] = p
		index[p.ID] = i
	}
	return &service{
		products:   owned,
		index:      index,
		trackStock: trackStock,
	}, nil
}

func (s *service) List(_ context.Context, filter Filter) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := []Product{}
	for _, p := range s.products {
		if filter.matches(p) {
			results = append(results, cloneProduct(p))
		}
	}
	return results
}

func (s *service) GetByID(_ context.Context, id string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeProductNotFound, fmt.Sprintf("product %q not found", id))
	}
	p := cloneProduct(s.products[i])
	return &p, nil
}

func (s *service) Categories(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]struct{}{}
	categories := []string{}
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

func (s *service) Colors(_ context.Context, category string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	canonical := ""
	if category != "" {
		canonical = NormalizeCategory(category)
	}
	seen := map[string]struct{}{}
	colors := []string{}
	for _, p := range s.products {
		if canonical != "" && p.Category != canonical {
			continue
		}
		if _, ok := seen[p.Color]; ok {
			continue
		}
		seen[p.Color] = struct{}{}
		colors = append(colors, p.Color)
	}
	sort.Strings(colors)
	return colors
}

// DecrementStock applies every request or none of them. Shortfalls are
// reported per product so the caller can surface which line failed.
func (s *service) DecrementStock(_ context.Context, requests []StockRequest) error {
	if !s.trackStock || len(requests) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass verifies, second pass applies. Nothing moves unless every
	// line can be satisfied.
	shortfalls := []string{}
	for _, req := range requests {
		i, ok := s.index[req.ProductID]
		if !ok {
			return pkgerrors.New(pkgerrors.CodeProductNotFound, fmt.Sprintf("product %q not found", req.ProductID))
		}
		if req.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeInvalidQuantity, "stock quantity must be positive")
		}
		if s.products[i].StockQuantity < req.Quantity {
			shortfalls = append(shortfalls, req.ProductID)
		}
	}
	if len(shortfalls) > 0 {
		return pkgerrors.New(pkgerrors.CodeOutOfStock, "insufficient stock").WithDetails(map[string]any{
			"product_ids": shortfalls,
		})
	}

	for _, req := range requests {
		i := s.index[req.ProductID]
		s.products[i].StockQuantity -= req.Quantity
		s.products[i].InStock = s.products[i].StockQuantity > 0
	}
	return nil
}

// RestoreStock returns previously decremented units. Unknown products and
// non-positive quantities are skipped.
func (s *service) RestoreStock(_ context.Context, requests []StockRequest) {
	if !s.trackStock || len(requests) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range requests {
		i, ok := s.index[req.ProductID]
		if !ok || req.Quantity <= 0 {
			continue
		}
		s.products[i].StockQuantity += req.Quantity
		s.products[i].InStock = s.products[i].StockQuantity > 0
	}
}

func cloneProduct(p Product) Product {
	if len(p.Sizes) > 0 {
		sizes := make([]string, len(p.Sizes))
		copy(sizes, p.Sizes)
		p.Sizes = sizes
	}
	return p
}

// NormalizeSize upper-cases and trims a spoken size value.
func NormalizeSize(size string) string {
	return strings.ToUpper(strings.TrimSpace(size))
}
