package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/voicecartlabs/voicecart-backend/pkg/db/models"
	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
	"github.com/voicecartlabs/voicecart-backend/pkg/types"
)

// StatusConfirmed is the only status the demo ledger writes. Orders never
// change after creation.
const StatusConfirmed = "confirmed"

const topProductsLimit = 10

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds the order ledger service.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// NewOrderID mints a ledger id like ORD-4F2A91C3.
func NewOrderID() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + hex[:8]
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Order, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "order must contain at least one item")
	}
	if input.CheckoutSessionID == "" || input.SessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout session id and session id are required")
	}

	itemCount := 0
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		if in.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidQuantity, "order item quantity must be at least 1")
		}
		itemCount += in.Quantity
		items = append(items, models.OrderItem{
			ProductID: in.ProductID,
			Name:      in.ProductName,
			Size:      in.Size,
			UnitPrice: in.UnitPrice,
			Quantity:  in.Quantity,
			LineTotal: in.UnitPrice * int64(in.Quantity),
		})
	}

	record := &models.Order{
		ID:                NewOrderID(),
		CheckoutSessionID: input.CheckoutSessionID,
		SessionID:         input.SessionID,
		Status:            StatusConfirmed,
		Currency:          input.Currency,
		ItemCount:         itemCount,
		Subtotal:          input.Subtotal,
		Tax:               input.Tax,
		Shipping:          input.Shipping,
		Total:             input.Total,
		FulfillmentOption: input.FulfillmentOption,
		Carrier:           input.Carrier,
		EstimatedDelivery: input.EstimatedDelivery,
		BuyerFirstName:    input.Buyer.FirstName,
		BuyerLastName:     input.Buyer.LastName,
		BuyerEmail:        input.Buyer.Email,
		BuyerPhone:        input.Buyer.PhoneNumber,
		Items:             items,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "writing order")
	}

	return toOrderView(record), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	record, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeOrderNotFound, fmt.Sprintf("order %q not found", id))
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order")
	}
	return toOrderView(record), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Order, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}
	views := make([]Order, 0, len(rows))
	for i := range rows {
		views = append(views, *toOrderView(&rows[i]))
	}
	return views, nil
}

func (s *service) LastBySession(ctx context.Context, sessionID string) (*Order, error) {
	record, err := s.repo.FindLastBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading last order")
	}
	if record == nil {
		return nil, nil
	}
	return toOrderView(record), nil
}

func (s *service) AnalyticsSummary(ctx context.Context) (*Summary, error) {
	count, revenue, err := s.repo.CountAndRevenue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregating orders")
	}

	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "grouping orders by status")
	}

	top, err := s.repo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "ranking products")
	}

	average := 0.0
	if count > 0 {
		average = decimal.NewFromInt(revenue).
			Div(decimal.NewFromInt(count)).
			Round(2).
			InexactFloat64()
	}

	return &Summary{
		TotalOrders:       count,
		TotalRevenue:      revenue,
		AverageOrderValue: average,
		OrdersByStatus:    byStatus,
		TopProducts:       top,
	}, nil
}

func toOrderView(record *models.Order) *Order {
	items := make([]Item, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, Item{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return &Order{
		ID:                record.ID,
		CheckoutSessionID: record.CheckoutSessionID,
		SessionID:         record.SessionID,
		Status:            record.Status,
		Currency:          record.Currency,
		ItemCount:         record.ItemCount,
		Subtotal:          record.Subtotal,
		Tax:               record.Tax,
		Shipping:          record.Shipping,
		Total:             record.Total,
		FulfillmentOption: record.FulfillmentOption,
		Carrier:           record.Carrier,
		EstimatedDelivery: record.EstimatedDelivery,
		Buyer: types.Buyer{
			FirstName:   record.BuyerFirstName,
			LastName:    record.BuyerLastName,
			Email:       record.BuyerEmail,
			PhoneNumber: record.BuyerPhone,
		},
		Items:     items,
		CreatedAt: record.CreatedAt,
	}
}
