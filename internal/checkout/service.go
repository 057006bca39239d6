package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voicecartlabs/voicecart-backend/internal/cart"
	"github.com/voicecartlabs/voicecart-backend/internal/catalog"
	"github.com/voicecartlabs/voicecart-backend/internal/events"
	"github.com/voicecartlabs/voicecart-backend/internal/orders"
	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
	"github.com/voicecartlabs/voicecart-backend/pkg/sessionlock"
	"github.com/voicecartlabs/voicecart-backend/pkg/types"
)

const (
	OptionStandard = "fulfillment_standard"
	OptionExpress  = "fulfillment_express"
)

// UpdateInput carries the mutable parts of a session; nil fields are left
// untouched.
type UpdateInput struct {
	FulfillmentOptionID *string
	FulfillmentAddress  *types.Address
}

// Service drives the checkout session state machine.
type Service interface {
	Create(ctx context.Context, sessionID string) (*Session, error)
	Get(ctx context.Context, checkoutID string) (*Session, error)
	Update(ctx context.Context, checkoutID string, input UpdateInput) (*Session, error)
	Complete(ctx context.Context, checkoutID string, buyer types.Buyer) (*Session, error)
	Cancel(ctx context.Context, checkoutID string) (*Session, error)
}

type stockLedger interface {
	DecrementStock(ctx context.Context, requests []catalog.StockRequest) error
	RestoreStock(ctx context.Context, requests []catalog.StockRequest)
}

type cartReader interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Clear(ctx context.Context, sessionID string) (*cart.Cart, error)
}

type orderWriter interface {
	Create(ctx context.Context, input orders.CreateInput) (*orders.Order, error)
}

type service struct {
	store     *Store
	carts     cartReader
	stock     stockLedger
	orders    orderWriter
	publisher events.Publisher
	locks     *sessionlock.Keyed
	taxRateBP int64
}

// NewService wires the checkout state machine to the cart, the stock ledger
// and the order ledger.
func NewService(store *Store, carts cartReader, stock stockLedger, orderSvc orderWriter, publisher events.Publisher, locks *sessionlock.Keyed, taxRateBP int) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("checkout store required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock ledger required")
	}
	if orderSvc == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if locks == nil {
		return nil, fmt.Errorf("checkout locks required")
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &service{
		store:     store,
		carts:     carts,
		stock:     stock,
		orders:    orderSvc,
		publisher: publisher,
		locks:     locks,
		taxRateBP: int64(taxRateBP),
	}, nil
}

// NewCheckoutID mints an id like cs_1f8a4c02d9b37e65.
func NewCheckoutID() string {
	return "cs_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func (s *service) Create(ctx context.Context, sessionID string) (*Session, error) {
	snapshot, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cannot start checkout with an empty cart")
	}

	id := NewCheckoutID()
	lineItems := make([]LineItem, 0, len(snapshot.Items))
	for i, item := range snapshot.Items {
		base := item.UnitPrice * int64(item.Quantity)
		tax := s.tax(base)
		lineItems = append(lineItems, LineItem{
			ID:          fmt.Sprintf("li_%s_%d", id, i),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			BaseAmount:  base,
			Subtotal:    base,
			Tax:         tax,
			Total:       base + tax,
		})
	}

	now := time.Now().UTC()
	session := &Session{
		ID:                 id,
		SessionID:          sessionID,
		Status:             StatusNotReadyForPayment,
		Currency:           snapshot.Currency,
		LineItems:          lineItems,
		FulfillmentOptions: defaultFulfillmentOptions(),
		Totals: Totals{
			Subtotal: snapshot.Subtotal,
			Tax:      snapshot.Tax,
			Total:    snapshot.Subtotal + snapshot.Tax,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.store.put(session)

	return session.clone(), nil
}

func (s *service) Get(_ context.Context, checkoutID string) (*Session, error) {
	unlock := s.locks.Lock(checkoutID)
	defer unlock()

	session, err := s.load(checkoutID)
	if err != nil {
		return nil, err
	}
	return session.clone(), nil
}

func (s *service) Update(_ context.Context, checkoutID string, input UpdateInput) (*Session, error) {
	unlock := s.locks.Lock(checkoutID)
	defer unlock()

	session, err := s.load(checkoutID)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, notMutable(session.Status)
	}

	if input.FulfillmentOptionID != nil {
		optionID := *input.FulfillmentOptionID
		option := session.option(optionID)
		if option == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFulfillmentOption,
				fmt.Sprintf("unknown fulfillment option %q", optionID))
		}
		session.FulfillmentOptionID = optionID
		applyTotals(session, option)
		session.Status = StatusReadyForPayment
	}

	if input.FulfillmentAddress != nil {
		addr := *input.FulfillmentAddress
		session.FulfillmentAddress = &addr
	}

	session.UpdatedAt = time.Now().UTC()
	return session.clone(), nil
}

func (s *service) Complete(ctx context.Context, checkoutID string, buyer types.Buyer) (*Session, error) {
	if strings.TrimSpace(buyer.FirstName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeBuyerInfoIncomplete, "buyer first name is required")
	}

	unlock := s.locks.Lock(checkoutID)
	defer unlock()

	session, err := s.load(checkoutID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case StatusCompleted:
		// Double-complete returns the original result; exactly one order
		// exists per session.
		return session.clone(), nil
	case StatusCanceled:
		return nil, notMutable(session.Status)
	case StatusInProgress:
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "checkout session is already being completed")
	}

	// Demo-mode auto-advance: a session completed straight from the voice
	// flow implicitly takes standard shipping.
	if session.Status == StatusNotReadyForPayment {
		option := session.option(OptionStandard)
		session.FulfillmentOptionID = option.ID
		applyTotals(session, option)
		session.Status = StatusReadyForPayment
	}

	option := session.option(session.FulfillmentOptionID)
	if option == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidFulfillmentOption, "no fulfillment option selected")
	}

	session.Status = StatusInProgress

	requests := stockRequests(session.LineItems)
	if err := s.stock.DecrementStock(ctx, requests); err != nil {
		session.Status = StatusReadyForPayment
		return nil, err
	}

	order, err := s.orders.Create(ctx, orders.CreateInput{
		CheckoutSessionID: session.ID,
		SessionID:         session.SessionID,
		Currency:          session.Currency,
		Subtotal:          session.Totals.Subtotal,
		Tax:               session.Totals.Tax,
		Shipping:          session.Totals.Shipping,
		Total:             session.Totals.Total,
		FulfillmentOption: option.ID,
		Carrier:           option.Carrier,
		EstimatedDelivery: option.Subtitle,
		Buyer:             buyer,
		Items:             orderItems(session.LineItems),
	})
	if err != nil {
		s.stock.RestoreStock(ctx, requests)
		session.Status = StatusReadyForPayment
		return nil, err
	}

	buyerCopy := buyer
	session.Buyer = &buyerCopy
	session.OrderID = order.ID
	session.Status = StatusCompleted
	session.UpdatedAt = time.Now().UTC()

	// The order is already written; a failed cart clear must not fail the
	// completion.
	_, _ = s.carts.Clear(ctx, session.SessionID)

	s.publisher.Publish(ctx, events.NewOrderCreated(order.ID, order.Total, order.ItemCount, order.Status))

	return session.clone(), nil
}

func (s *service) Cancel(_ context.Context, checkoutID string) (*Session, error) {
	unlock := s.locks.Lock(checkoutID)
	defer unlock()

	session, err := s.load(checkoutID)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, notMutable(session.Status)
	}

	session.Status = StatusCanceled
	session.UpdatedAt = time.Now().UTC()
	return session.clone(), nil
}

func (s *service) load(checkoutID string) (*Session, error) {
	session, ok := s.store.get(checkoutID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeCheckoutNotFound,
			fmt.Sprintf("checkout session %q not found", checkoutID))
	}
	return session, nil
}

func (s *service) tax(amount int64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(s.taxRateBP)).
		Div(decimal.NewFromInt(10_000)).
		IntPart()
}

func applyTotals(session *Session, option *FulfillmentOption) {
	session.Totals.Shipping = option.Total
	session.Totals.Total = session.Totals.Subtotal + session.Totals.Tax + session.Totals.Shipping
}

func notMutable(status Status) error {
	return pkgerrors.New(pkgerrors.CodeSessionNotMutable,
		fmt.Sprintf("checkout session is %s and can no longer change", status))
}

func stockRequests(items []LineItem) []catalog.StockRequest {
	requests := make([]catalog.StockRequest, 0, len(items))
	for _, item := range items {
		requests = append(requests, catalog.StockRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return requests
}

func orderItems(items []LineItem) []orders.ItemInput {
	inputs := make([]orders.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, orders.ItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return inputs
}

func defaultFulfillmentOptions() []FulfillmentOption {
	return []FulfillmentOption{
		{
			ID:       OptionStandard,
			Type:     "shipping",
			Title:    "Standard Shipping",
			Subtitle: "Arrives in 5-7 business days",
			Carrier:  "India Post",
			Subtotal: 50,
			Tax:      5,
			Total:    55,
		},
		{
			ID:       OptionExpress,
			Type:     "shipping",
			Title:    "Express Shipping",
			Subtitle: "Arrives in 2-3 business days",
			Carrier:  "BlueDart",
			Subtotal: 150,
			Tax:      15,
			Total:    165,
		},
	}
}
