package orders

import (
	"context"
	"regexp"
	"testing"

	"gorm.io/gorm"

	"github.com/voicecartlabs/voicecart-backend/pkg/db/models"
	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
	"github.com/voicecartlabs/voicecart-backend/pkg/types"
)

type stubOrdersRepo struct {
	orders    map[string]*models.Order
	createErr error
}

func newStubRepo() *stubOrdersRepo {
	return &stubOrdersRepo{orders: map[string]*models.Order{}}
}

func (s *stubOrdersRepo) WithTx(tx *gorm.DB) Repository {
	return s
}

func (s *stubOrdersRepo) Create(_ context.Context, order *models.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.orders[order.ID] = order
	return nil
}

func (s *stubOrdersRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (s *stubOrdersRepo) FindAll(_ context.Context, filter ListFilter) ([]models.Order, error) {
	rows := []models.Order{}
	for _, order := range s.orders {
		if filter.SessionID != "" && order.SessionID != filter.SessionID {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		rows = append(rows, *order)
	}
	return rows, nil
}

func (s *stubOrdersRepo) FindLastBySession(_ context.Context, sessionID string) (*models.Order, error) {
	for _, order := range s.orders {
		if order.SessionID == sessionID {
			return order, nil
		}
	}
	return nil, nil
}

func (s *stubOrdersRepo) CountAndRevenue(context.Context) (int64, int64, error) {
	var revenue int64
	for _, order := range s.orders {
		revenue += order.Total
	}
	return int64(len(s.orders)), revenue, nil
}

func (s *stubOrdersRepo) CountByStatus(context.Context) (map[string]int64, error) {
	byStatus := map[string]int64{}
	for _, order := range s.orders {
		byStatus[order.Status]++
	}
	return byStatus, nil
}

func (s *stubOrdersRepo) TopProducts(context.Context, int) ([]ProductStat, error) {
	return []ProductStat{}, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newTestService(t *testing.T) (Service, *stubOrdersRepo) {
	t.Helper()
	repo := newStubRepo()
	svc, err := NewService(repo, stubTxRunner{})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}
	return svc, repo
}

func sampleInput() CreateInput {
	return CreateInput{
		CheckoutSessionID: "cs_1f8a4c02d9b37e65",
		SessionID:         "session_3fa1b2c4",
		Currency:          "INR",
		Subtotal:          1597,
		Tax:               159,
		Shipping:          55,
		Total:             1811,
		FulfillmentOption: "fulfillment_standard",
		Carrier:           "India Post",
		EstimatedDelivery: "Arrives in 5-7 business days",
		Buyer:             types.Buyer{FirstName: "Asha", Email: "asha@example.com"},
		Items: []ItemInput{
			{ProductID: "mug-001", ProductName: "Blue Mug", Quantity: 2, UnitPrice: 499},
			{ProductID: "tshirt-001", ProductName: "Black Tee", Size: "M", Quantity: 1, UnitPrice: 599},
		},
	}
}

func TestNewOrderIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)
	id := NewOrderID()
	if !re.MatchString(id) {
		t.Fatalf("unexpected order id %q", id)
	}
}

func TestCreateWritesConfirmedOrder(t *testing.T) {
	svc, repo := newTestService(t)

	order, err := svc.Create(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != StatusConfirmed {
		t.Fatalf("expected confirmed got %s", order.Status)
	}
	if order.ItemCount != 3 {
		t.Fatalf("expected item count 3 got %d", order.ItemCount)
	}
	if order.Total != 1811 {
		t.Fatalf("expected total 1811 got %d", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items got %d", len(order.Items))
	}
	if order.Items[0].LineTotal != 998 {
		t.Fatalf("expected line total 998 got %d", order.Items[0].LineTotal)
	}
	if order.Buyer.FirstName != "Asha" {
		t.Fatalf("buyer not persisted: %+v", order.Buyer)
	}

	stored, ok := repo.orders[order.ID]
	if !ok {
		t.Fatalf("order not written to repo")
	}
	if stored.CheckoutSessionID != "cs_1f8a4c02d9b37e65" {
		t.Fatalf("unexpected checkout session id %q", stored.CheckoutSessionID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	empty := sampleInput()
	empty.Items = nil
	if _, err := svc.Create(ctx, empty); !pkgerrors.Is(err, pkgerrors.CodeEmptyCart) {
		t.Fatalf("expected EMPTY_CART got %v", err)
	}

	badQty := sampleInput()
	badQty.Items[0].Quantity = 0
	if _, err := svc.Create(ctx, badQty); !pkgerrors.Is(err, pkgerrors.CodeInvalidQuantity) {
		t.Fatalf("expected INVALID_QUANTITY got %v", err)
	}

	noIDs := sampleInput()
	noIDs.CheckoutSessionID = ""
	if _, err := svc.Create(ctx, noIDs); !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR got %v", err)
	}
}

func TestCreateWrapsRepoFailure(t *testing.T) {
	svc, repo := newTestService(t)
	repo.createErr = gorm.ErrInvalidTransaction

	_, err := svc.Create(context.Background(), sampleInput())
	if !pkgerrors.Is(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected DEPENDENCY_ERROR got %v", err)
	}
}

func TestGetByIDMapsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "ORD-DEADBEEF")
	if !pkgerrors.Is(err, pkgerrors.CodeOrderNotFound) {
		t.Fatalf("expected ORDER_NOT_FOUND got %v", err)
	}
}

func TestListFiltersBySession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := sampleInput()
	if _, err := svc.Create(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := sampleInput()
	second.CheckoutSessionID = "cs_other"
	second.SessionID = "session_other"
	if _, err := svc.Create(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mine, err := svc.List(ctx, ListFilter{SessionID: "session_3fa1b2c4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 || mine[0].SessionID != "session_3fa1b2c4" {
		t.Fatalf("unexpected listing %+v", mine)
	}

	all, err := svc.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders got %d", len(all))
	}
}

func TestLastBySessionReturnsNilWhenEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	order, err := svc.LastBySession(context.Background(), "session_empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil order got %+v", order)
	}
}

func TestAnalyticsSummary(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := sampleInput()
	if _, err := svc.Create(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := sampleInput()
	second.CheckoutSessionID = "cs_other"
	second.Total = 500
	if _, err := svc.Create(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := svc.AnalyticsSummary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalOrders != 2 {
		t.Fatalf("expected 2 orders got %d", summary.TotalOrders)
	}
	if summary.TotalRevenue != 2311 {
		t.Fatalf("expected revenue 2311 got %d", summary.TotalRevenue)
	}
	if summary.AverageOrderValue != 1155.5 {
		t.Fatalf("expected average 1155.5 got %v", summary.AverageOrderValue)
	}
	if summary.OrdersByStatus[StatusConfirmed] != 2 {
		t.Fatalf("unexpected status breakdown %v", summary.OrdersByStatus)
	}
}

func TestAnalyticsSummaryEmptyLedger(t *testing.T) {
	svc, _ := newTestService(t)

	summary, err := svc.AnalyticsSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalOrders != 0 || summary.AverageOrderValue != 0 {
		t.Fatalf("unexpected empty summary %+v", summary)
	}
}
