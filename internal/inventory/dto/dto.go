package dto

import (
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

type InventoryFilters struct {
	ItemID       string
	LocationType model.LocationType
	KitID        string
	WarehouseID  string
	LowStock     bool // quantity <= minimum_stock_level
	Page         int
	PageSize     int
}

type MovementFilters struct {
	ItemID       string
	Location     *model.Location
	MovementType model.MovementType
	ReferenceID  string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	PageSize     int
}

// QuantityChange is what observers see after a successful mutation. When
// several deltas hit one record inside a single locked section only the net
// change is reported.
type QuantityChange struct {
	ItemID            string
	Location          model.Location
	Before            decimal.Decimal
	After             decimal.Decimal
	MinimumStockLevel decimal.NullDecimal
	MovementType      model.MovementType
}

func (c QuantityChange) Delta() decimal.Decimal { return c.After.Sub(c.Before) }
