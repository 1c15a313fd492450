package inventory

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// GetRecord returns nil, nil when no record exists for the pair.
	GetRecord(ctx context.Context, itemID string, loc model.Location) (*model.InventoryRecord, error)
	FindAll(ctx context.Context, filters *dto.InventoryFilters) ([]model.InventoryRecord, int, error)
	SumQuantity(ctx context.Context, itemID string) (decimal.Decimal, error)

	// Core stock operations; record and movement are written atomically
	SaveRecordWithMovement(ctx context.Context, rec *model.InventoryRecord, movement *model.InventoryMovement) error
	DeleteRecordWithMovement(ctx context.Context, rec *model.InventoryRecord, movement *model.InventoryMovement) error
	UpdateRecord(ctx context.Context, rec *model.InventoryRecord) error

	// Movements / Audit
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
}
