package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/voicecartlabs/voicecart-backend/internal/cart"
	"github.com/voicecartlabs/voicecart-backend/internal/catalog"
	"github.com/voicecartlabs/voicecart-backend/internal/events"
	"github.com/voicecartlabs/voicecart-backend/internal/orders"
	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
	"github.com/voicecartlabs/voicecart-backend/pkg/sessionlock"
	"github.com/voicecartlabs/voicecart-backend/pkg/types"
)

type stubCarts struct {
	mu      sync.Mutex
	cart    *cart.Cart
	cleared []string
}

func (s *stubCarts) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := *s.cart
	snapshot.SessionID = sessionID
	return &snapshot, nil
}

func (s *stubCarts) Clear(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared = append(s.cleared, sessionID)
	return &cart.Cart{SessionID: sessionID}, nil
}

type stubStock struct {
	mu         sync.Mutex
	decrements int
	restored   []catalog.StockRequest
	err        error
}

func (s *stubStock) DecrementStock(_ context.Context, requests []catalog.StockRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.decrements++
	return nil
}

func (s *stubStock) RestoreStock(_ context.Context, requests []catalog.StockRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restored = append(s.restored, requests...)
}

type stubOrders struct {
	mu      sync.Mutex
	created []orders.CreateInput
	err     error
}

func (s *stubOrders) Create(_ context.Context, input orders.CreateInput) (*orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, input)
	itemCount := 0
	for _, item := range input.Items {
		itemCount += item.Quantity
	}
	return &orders.Order{
		ID:        fmt.Sprintf("ORD-%08d", len(s.created)),
		Status:    orders.StatusConfirmed,
		Total:     input.Total,
		ItemCount: itemCount,
	}, nil
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []any
}

func (p *capturingPublisher) Publish(_ context.Context, event any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *capturingPublisher) orderCreated() []events.OrderCreated {
	p.mu.Lock()
	defer p.mu.Unlock()
	created := []events.OrderCreated{}
	for _, e := range p.events {
		if oc, ok := e.(events.OrderCreated); ok {
			created = append(created, oc)
		}
	}
	return created
}

type fixture struct {
	svc       Service
	carts     *stubCarts
	stock     *stubStock
	orders    *stubOrders
	publisher *capturingPublisher
}

func twoItemCart() *cart.Cart {
	return &cart.Cart{
		Items: []cart.Item{
			{ProductID: "mug-001", ProductName: "Blue Mug", Quantity: 2, UnitPrice: 499, LineTotal: 998},
			{ProductID: "tshirt-001", ProductName: "Black Tee", Size: "M", Quantity: 1, UnitPrice: 599, LineTotal: 599},
		},
		ItemCount: 3,
		Subtotal:  1597,
		Tax:       159,
		Total:     1756,
		Currency:  "INR",
	}
}

func newFixture(t *testing.T, snapshot *cart.Cart) *fixture {
	t.Helper()
	f := &fixture{
		carts:     &stubCarts{cart: snapshot},
		stock:     &stubStock{},
		orders:    &stubOrders{},
		publisher: &capturingPublisher{},
	}
	svc, err := NewService(NewStore(), f.carts, f.stock, f.orders, f.publisher, sessionlock.New(), 1000)
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}
	f.svc = svc
	return f
}

func TestNewCheckoutID(t *testing.T) {
	id := NewCheckoutID()
	if !strings.HasPrefix(id, "cs_") || len(id) != len("cs_")+16 {
		t.Fatalf("unexpected checkout id %q", id)
	}
}

func TestCreateRejectsEmptyCart(t *testing.T) {
	f := newFixture(t, &cart.Cart{Currency: "INR"})

	_, err := f.svc.Create(context.Background(), "session_a")
	if !pkgerrors.Is(err, pkgerrors.CodeEmptyCart) {
		t.Fatalf("expected EMPTY_CART got %v", err)
	}
}

func TestCreateSnapshotsCart(t *testing.T) {
	f := newFixture(t, twoItemCart())

	session, err := f.svc.Create(context.Background(), "session_a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.Status != StatusNotReadyForPayment {
		t.Fatalf("expected not_ready_for_payment got %s", session.Status)
	}
	if len(session.LineItems) != 2 {
		t.Fatalf("expected 2 line items got %d", len(session.LineItems))
	}
	for i, li := range session.LineItems {
		wantID := fmt.Sprintf("li_%s_%d", session.ID, i)
		if li.ID != wantID {
			t.Fatalf("unexpected line item id %q want %q", li.ID, wantID)
		}
		if li.Total != li.Subtotal+li.Tax {
			t.Fatalf("line item total identity broken: %+v", li)
		}
	}
	if session.Totals.Subtotal != 1597 || session.Totals.Tax != 159 || session.Totals.Shipping != 0 {
		t.Fatalf("unexpected totals %+v", session.Totals)
	}
	if session.Totals.Total != session.Totals.Subtotal+session.Totals.Tax {
		t.Fatalf("totals identity broken: %+v", session.Totals)
	}
	if len(session.FulfillmentOptions) != 2 {
		t.Fatalf("expected 2 fulfillment options got %d", len(session.FulfillmentOptions))
	}
}

func TestCreateIsIsolatedFromLaterCartEdits(t *testing.T) {
	f := newFixture(t, twoItemCart())

	session, err := f.svc.Create(context.Background(), "session_a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The live cart changes after the snapshot was taken.
	f.carts.mu.Lock()
	f.carts.cart.Items = nil
	f.carts.cart.Subtotal = 0
	f.carts.mu.Unlock()

	reloaded, err := f.svc.Get(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded.LineItems) != 2 || reloaded.Totals.Subtotal != 1597 {
		t.Fatalf("snapshot leaked cart edits: %+v", reloaded)
	}
}

func TestGetUnknownSession(t *testing.T) {
	f := newFixture(t, twoItemCart())

	_, err := f.svc.Get(context.Background(), "cs_missing")
	if !pkgerrors.Is(err, pkgerrors.CodeCheckoutNotFound) {
		t.Fatalf("expected CHECKOUT_NOT_FOUND got %v", err)
	}
}

func TestUpdateSelectsFulfillmentOption(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, err := f.svc.Create(ctx, "session_a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	option := OptionExpress
	updated, err := f.svc.Update(ctx, session.ID, UpdateInput{FulfillmentOptionID: &option})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusReadyForPayment {
		t.Fatalf("expected ready_for_payment got %s", updated.Status)
	}
	if updated.Totals.Shipping != 165 {
		t.Fatalf("expected express shipping 165 got %d", updated.Totals.Shipping)
	}
	if updated.Totals.Total != updated.Totals.Subtotal+updated.Totals.Tax+updated.Totals.Shipping {
		t.Fatalf("totals identity broken: %+v", updated.Totals)
	}

	// Switching the option reprices rather than stacking.
	option = OptionStandard
	updated, err = f.svc.Update(ctx, session.ID, UpdateInput{FulfillmentOptionID: &option})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Totals.Shipping != 55 {
		t.Fatalf("expected standard shipping 55 got %d", updated.Totals.Shipping)
	}
}

func TestUpdateRejectsUnknownOption(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	option := "fulfillment_drone"
	_, err := f.svc.Update(ctx, session.ID, UpdateInput{FulfillmentOptionID: &option})
	if !pkgerrors.Is(err, pkgerrors.CodeInvalidFulfillmentOption) {
		t.Fatalf("expected INVALID_FULFILLMENT_OPTION got %v", err)
	}
}

func TestUpdateAddressKeepsStatus(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	addr := types.Address{Name: "Asha", LineOne: "1 MG Road", City: "Bengaluru", State: "KA", Country: "IN", PostalCode: "560001"}
	updated, err := f.svc.Update(ctx, session.ID, UpdateInput{FulfillmentAddress: &addr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusNotReadyForPayment {
		t.Fatalf("address alone must not advance status, got %s", updated.Status)
	}
	if updated.FulfillmentAddress == nil || updated.FulfillmentAddress.City != "Bengaluru" {
		t.Fatalf("address not stored: %+v", updated.FulfillmentAddress)
	}
}

func TestCompleteRequiresBuyerFirstName(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	_, err := f.svc.Complete(ctx, session.ID, types.Buyer{Email: "asha@example.com"})
	if !pkgerrors.Is(err, pkgerrors.CodeBuyerInfoIncomplete) {
		t.Fatalf("expected BUYER_INFO_INCOMPLETE got %v", err)
	}

	reloaded, _ := f.svc.Get(ctx, session.ID)
	if reloaded.Status != StatusNotReadyForPayment {
		t.Fatalf("rejected completion must not change status, got %s", reloaded.Status)
	}
}

func TestCompleteAutoSelectsStandardShipping(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	completed, err := f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if completed.Status != StatusCompleted {
		t.Fatalf("expected completed got %s", completed.Status)
	}
	if completed.FulfillmentOptionID != OptionStandard {
		t.Fatalf("expected auto-selected standard shipping got %q", completed.FulfillmentOptionID)
	}
	if completed.Totals.Shipping != 55 {
		t.Fatalf("expected shipping 55 got %d", completed.Totals.Shipping)
	}
	if completed.OrderID == "" {
		t.Fatalf("expected order id on completed session")
	}
	if completed.Buyer == nil || completed.Buyer.FirstName != "Asha" {
		t.Fatalf("buyer not stored: %+v", completed.Buyer)
	}

	if f.stock.decrements != 1 {
		t.Fatalf("expected one stock decrement got %d", f.stock.decrements)
	}
	if len(f.orders.created) != 1 {
		t.Fatalf("expected one order write got %d", len(f.orders.created))
	}
	input := f.orders.created[0]
	if input.CheckoutSessionID != session.ID || input.Total != completed.Totals.Total {
		t.Fatalf("unexpected order input %+v", input)
	}
	if len(f.carts.cleared) != 1 || f.carts.cleared[0] != "session_a" {
		t.Fatalf("expected cart clear for session_a got %v", f.carts.cleared)
	}
	if got := f.publisher.orderCreated(); len(got) != 1 || got[0].OrderID != completed.OrderID {
		t.Fatalf("unexpected order events %+v", got)
	}
}

func TestCompleteTwiceReturnsSameOrder(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	first, err := f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"})
	if err != nil {
		t.Fatalf("second complete must succeed, got %v", err)
	}

	if first.OrderID != second.OrderID {
		t.Fatalf("expected same order id, got %q and %q", first.OrderID, second.OrderID)
	}
	if len(f.orders.created) != 1 {
		t.Fatalf("expected exactly one order got %d", len(f.orders.created))
	}
	if f.stock.decrements != 1 {
		t.Fatalf("expected exactly one stock decrement got %d", f.stock.decrements)
	}
}

func TestCompleteConcurrentlyWritesOneOrder(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"})
		}()
	}
	wg.Wait()

	if len(f.orders.created) != 1 {
		t.Fatalf("expected exactly one order got %d", len(f.orders.created))
	}
	reloaded, _ := f.svc.Get(ctx, session.ID)
	if reloaded.Status != StatusCompleted {
		t.Fatalf("expected completed got %s", reloaded.Status)
	}
}

func TestCompleteStockFailureRevertsStatus(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	f.stock.err = pkgerrors.New(pkgerrors.CodeOutOfStock, "insufficient stock")

	_, err := f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"})
	if !pkgerrors.Is(err, pkgerrors.CodeOutOfStock) {
		t.Fatalf("expected OUT_OF_STOCK got %v", err)
	}

	reloaded, _ := f.svc.Get(ctx, session.ID)
	if reloaded.Status != StatusReadyForPayment {
		t.Fatalf("expected ready_for_payment after failed completion, got %s", reloaded.Status)
	}
	if len(f.orders.created) != 0 {
		t.Fatalf("no order must be written on stock failure")
	}

	// A retry after restock succeeds on the same session.
	f.stock.mu.Lock()
	f.stock.err = nil
	f.stock.mu.Unlock()
	completed, err := f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"})
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Fatalf("expected completed got %s", completed.Status)
	}
}

func TestCompleteOrderFailureRestoresStock(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	f.orders.err = pkgerrors.New(pkgerrors.CodeDependency, "writing order")

	_, err := f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"})
	if !pkgerrors.Is(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected DEPENDENCY_ERROR got %v", err)
	}

	if len(f.stock.restored) != 2 {
		t.Fatalf("expected both lines restored got %v", f.stock.restored)
	}
	reloaded, _ := f.svc.Get(ctx, session.ID)
	if reloaded.Status != StatusReadyForPayment {
		t.Fatalf("expected ready_for_payment got %s", reloaded.Status)
	}
	if len(f.carts.cleared) != 0 {
		t.Fatalf("cart must survive a failed completion")
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	canceled, err := f.svc.Cancel(ctx, session.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canceled.Status != StatusCanceled {
		t.Fatalf("expected canceled got %s", canceled.Status)
	}

	if _, err := f.svc.Cancel(ctx, session.ID); !pkgerrors.Is(err, pkgerrors.CodeSessionNotMutable) {
		t.Fatalf("expected SESSION_NOT_MUTABLE got %v", err)
	}
	if _, err := f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"}); !pkgerrors.Is(err, pkgerrors.CodeSessionNotMutable) {
		t.Fatalf("expected SESSION_NOT_MUTABLE got %v", err)
	}
	option := OptionStandard
	if _, err := f.svc.Update(ctx, session.ID, UpdateInput{FulfillmentOptionID: &option}); !pkgerrors.Is(err, pkgerrors.CodeSessionNotMutable) {
		t.Fatalf("expected SESSION_NOT_MUTABLE got %v", err)
	}
}

func TestCancelAfterCompleteRejected(t *testing.T) {
	f := newFixture(t, twoItemCart())
	ctx := context.Background()

	session, _ := f.svc.Create(ctx, "session_a")
	if _, err := f.svc.Complete(ctx, session.ID, types.Buyer{FirstName: "Asha"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.Cancel(ctx, session.ID); !pkgerrors.Is(err, pkgerrors.CodeSessionNotMutable) {
		t.Fatalf("expected SESSION_NOT_MUTABLE got %v", err)
	}
}
