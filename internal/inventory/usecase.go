package inventory

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

// UseCase is the InventoryLedger: the authoritative (item, location) -> quantity map.
type UseCase interface {
	GetQuantity(ctx context.Context, itemID string, loc model.Location) (decimal.Decimal, error)
	GetRecord(ctx context.Context, itemID string, loc model.Location) (*model.InventoryRecord, error)

	// ApplyDelta is the only way quantities change. It never lets a quantity go negative.
	ApplyDelta(ctx context.Context, input *dto.DeltaInput) (decimal.Decimal, error)
	// WithLocks runs fn holding the record locks for every pair, taken in a fixed order.
	WithLocks(ctx context.Context, pairs []RecordRef, fn func(tx Tx) error) error

	AdjustStock(ctx context.Context, input *dto.AdjustInventoryInput) (*model.InventoryRecord, error)
	SetMinimumStock(ctx context.Context, input *dto.SetMinimumStockInput) (*model.InventoryRecord, error)
	ListRecords(ctx context.Context, filters *dto.InventoryFilters) ([]model.InventoryRecord, int, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
	TotalQuantity(ctx context.Context, itemID string) (decimal.Decimal, error)

	RegisterObserver(o Observer)
	SetReferenceChecker(c ReferenceChecker)
}

// Tx applies deltas while the caller already holds the record locks.
type Tx interface {
	GetQuantity(ctx context.Context, itemID string, loc model.Location) (decimal.Decimal, error)
	ApplyDelta(ctx context.Context, input *dto.DeltaInput) (decimal.Decimal, error)
}

type RecordRef struct {
	ItemID   string
	Location model.Location
}

func (r RecordRef) LockKey() string { return "inventory:" + model.RecordKey(r.ItemID, r.Location) }

// Observer is notified synchronously after a successful mutation, once the
// record locks are released.
type Observer interface {
	OnQuantityChanged(ctx context.Context, change dto.QuantityChange)
}

// ReferenceChecker reports whether something outstanding still points at a
// record, which keeps an emptied record from being pruned.
type ReferenceChecker interface {
	HasOpenReference(ctx context.Context, itemID string, loc model.Location) (bool, error)
}

type ItemReader interface {
	GetItem(ctx context.Context, id string) (*model.Item, error)
}

type LocationValidator interface {
	Validate(ctx context.Context, loc model.Location) error
}
