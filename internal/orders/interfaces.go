package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/voicecartlabs/voicecart-backend/pkg/db/models"
)

// Repository persists and reads ledger rows.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindAll(ctx context.Context, filter ListFilter) ([]models.Order, error)
	FindLastBySession(ctx context.Context, sessionID string) (*models.Order, error)
	CountAndRevenue(ctx context.Context) (int64, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	TopProducts(ctx context.Context, limit int) ([]ProductStat, error)
}

// Service is the order ledger surface used by the gateway and checkout.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, error)
	LastBySession(ctx context.Context, sessionID string) (*Order, error)
	AnalyticsSummary(ctx context.Context) (*Summary, error)
}
