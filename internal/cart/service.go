package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voicecartlabs/voicecart-backend/internal/catalog"
	"github.com/voicecartlabs/voicecart-backend/internal/events"
	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
	"github.com/voicecartlabs/voicecart-backend/pkg/sessionlock"
)

// Service exposes session-scoped cart operations. Every mutation returns the
// full updated aggregate so the voice agent and the UI stay in sync from a
// single response.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int, size string) (*Cart, error)
	UpdateItem(ctx context.Context, sessionID, productID string, quantity int, size string) (*Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID, size string) (*Cart, error)
	Clear(ctx context.Context, sessionID string) (*Cart, error)
}

type service struct {
	store      *Store
	catalog    catalog.Service
	locks      *sessionlock.Keyed
	publisher  events.Publisher
	taxRateBP  int64
	currency   string
	trackStock bool
}

// NewService builds the cart service. taxRateBP is the tax rate in basis
// points (1000 = 10%).
func NewService(store *Store, cat catalog.Service, locks *sessionlock.Keyed, publisher events.Publisher, taxRateBP int, currency string, trackStock bool) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if locks == nil {
		return nil, fmt.Errorf("session locks required")
	}
	if taxRateBP < 0 {
		return nil, fmt.Errorf("tax rate must not be negative")
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &service{
		store:      store,
		catalog:    cat,
		locks:      locks,
		publisher:  publisher,
		taxRateBP:  int64(taxRateBP),
		currency:   currency,
		trackStock: trackStock,
	}, nil
}

func (s *service) Get(_ context.Context, sessionID string) (*Cart, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	rec := s.store.getOrCreate(sessionID)
	return s.snapshot(sessionID, rec), nil
}

func (s *service) AddItem(ctx context.Context, sessionID, productID string, quantity int, size string) (*Cart, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be at least 1")
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, pkgerrors.New(pkgerrors.CodeOutOfStock, fmt.Sprintf("product %q is out of stock", productID))
	}

	normalizedSize := catalog.NormalizeSize(size)
	if len(product.Sizes) > 0 && normalizedSize != "" && !product.HasSize(normalizedSize) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("size %s not available, choose one of: %s", normalizedSize, strings.Join(product.Sizes, ", ")))
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	rec := s.store.getOrCreate(sessionID)

	existing := 0
	if i := rec.find(productID, normalizedSize); i >= 0 {
		existing = rec.rows[i].quantity
	}
	if s.trackStock && existing+quantity > product.StockQuantity {
		return nil, pkgerrors.New(pkgerrors.CodeOutOfStock,
			fmt.Sprintf("only %d units of %q available", product.StockQuantity, productID)).
			WithDetails(map[string]any{"product_id": productID, "available": product.StockQuantity})
	}

	if i := rec.find(productID, normalizedSize); i >= 0 {
		rec.rows[i].quantity += quantity
	} else {
		rec.rows = append(rec.rows, row{
			productID:   productID,
			productName: product.Name,
			size:        normalizedSize,
			quantity:    quantity,
			unitPrice:   product.Price,
			currency:    product.Currency,
		})
	}
	rec.updatedAt = time.Now().UTC()

	snap := s.snapshot(sessionID, rec)
	s.publisher.Publish(ctx, events.NewCartUpdate(sessionID, "add", productID, snap.ItemCount, snap.Total))
	return snap, nil
}

func (s *service) UpdateItem(ctx context.Context, sessionID, productID string, quantity int, size string) (*Cart, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must not be negative")
	}

	normalizedSize := catalog.NormalizeSize(size)

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	rec := s.store.getOrCreate(sessionID)
	i := rec.find(productID, normalizedSize)
	if i < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeItemNotInCart, fmt.Sprintf("product %q is not in the cart", productID))
	}

	if quantity == 0 {
		rec.rows = append(rec.rows[:i], rec.rows[i+1:]...)
	} else {
		if s.trackStock {
			product, err := s.catalog.GetByID(ctx, productID)
			if err != nil {
				return nil, err
			}
			if quantity > product.StockQuantity {
				return nil, pkgerrors.New(pkgerrors.CodeOutOfStock,
					fmt.Sprintf("only %d units of %q available", product.StockQuantity, productID)).
					WithDetails(map[string]any{"product_id": productID, "available": product.StockQuantity})
			}
		}
		rec.rows[i].quantity = quantity
	}
	rec.updatedAt = time.Now().UTC()

	snap := s.snapshot(sessionID, rec)
	s.publisher.Publish(ctx, events.NewCartUpdate(sessionID, "update", productID, snap.ItemCount, snap.Total))
	return snap, nil
}

// RemoveItem deletes a row when present; removing an absent row is a no-op.
func (s *service) RemoveItem(ctx context.Context, sessionID, productID, size string) (*Cart, error) {
	normalizedSize := catalog.NormalizeSize(size)

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	rec := s.store.getOrCreate(sessionID)
	removed := false
	if i := rec.find(productID, normalizedSize); i >= 0 {
		rec.rows = append(rec.rows[:i], rec.rows[i+1:]...)
		rec.updatedAt = time.Now().UTC()
		removed = true
	}

	snap := s.snapshot(sessionID, rec)
	if removed {
		s.publisher.Publish(ctx, events.NewCartUpdate(sessionID, "remove", productID, snap.ItemCount, snap.Total))
	}
	return snap, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	rec := s.store.getOrCreate(sessionID)
	rec.rows = nil
	rec.updatedAt = time.Now().UTC()

	snap := s.snapshot(sessionID, rec)
	s.publisher.Publish(ctx, events.NewCartUpdate(sessionID, "clear", "", snap.ItemCount, snap.Total))
	return snap, nil
}

// Tax computes the configured tax on amount, truncated to whole units.
func (s *service) Tax(amount int64) int64 {
	return taxFor(amount, s.taxRateBP)
}

func taxFor(amount, basisPoints int64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(basisPoints)).
		Div(decimal.NewFromInt(10_000)).
		IntPart()
}

func (s *service) snapshot(sessionID string, rec *record) *Cart {
	items := make([]Item, 0, len(rec.rows))
	currency := s.currency
	itemCount := 0
	var subtotal int64

	for _, r := range rec.rows {
		line := r.unitPrice * int64(r.quantity)
		items = append(items, Item{
			ProductID:   r.productID,
			ProductName: r.productName,
			Size:        r.size,
			Quantity:    r.quantity,
			UnitPrice:   r.unitPrice,
			LineTotal:   line,
		})
		itemCount += r.quantity
		subtotal += line
		if r.currency != "" {
			currency = r.currency
		}
	}

	tax := taxFor(subtotal, s.taxRateBP)
	return &Cart{
		SessionID: sessionID,
		Items:     items,
		ItemCount: itemCount,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
		Currency:  currency,
		CreatedAt: rec.createdAt,
		UpdatedAt: rec.updatedAt,
	}
}
