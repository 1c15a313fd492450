package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryRecord struct {
	ID                string              `db:"id" json:"id"`
	ItemID            string              `db:"item_id" json:"item_id"`
	Location          Location            `db:"location" json:"location"`
	Quantity          decimal.Decimal     `db:"quantity" json:"quantity"`
	MinimumStockLevel decimal.NullDecimal `db:"minimum_stock_level" json:"minimum_stock_level"`
	CreatedAt         time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at" json:"updated_at"`
}

func (r *InventoryRecord) Key() string { return RecordKey(r.ItemID, r.Location) }

// BelowMinimum reports whether quantity sits at or under the configured minimum.
func (r *InventoryRecord) BelowMinimum() bool {
	return r.MinimumStockLevel.Valid && r.Quantity.LessThanOrEqual(r.MinimumStockLevel.Decimal)
}

// RecordKey identifies the (item, location) pair a record is unique on.
func RecordKey(itemID string, loc Location) string {
	return itemID + "@" + loc.Key()
}

type MovementType string

const (
	MovementAdjustment           MovementType = "adjustment"
	MovementIssuance             MovementType = "issuance"
	MovementTransferOut          MovementType = "transfer_out"
	MovementTransferIn           MovementType = "transfer_in"
	MovementTransferCompensation MovementType = "transfer_compensation"
	MovementReorderFulfillment   MovementType = "reorder_fulfillment"
)

// InventoryMovement is the append-only audit line written with every delta.
type InventoryMovement struct {
	ID             string          `db:"id" json:"id"`
	ItemID         string          `db:"item_id" json:"item_id"`
	Location       Location        `db:"location" json:"location"`
	MovementType   MovementType    `db:"movement_type" json:"movement_type"`
	QuantityChange decimal.Decimal `db:"quantity_change" json:"quantity_change"`
	QuantityBefore decimal.Decimal `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  decimal.Decimal `db:"quantity_after" json:"quantity_after"`
	ReferenceType  *string         `db:"reference_type" json:"reference_type"`
	ReferenceID    *string         `db:"reference_id" json:"reference_id"`
	Notes          string          `db:"notes" json:"notes"`
	CreatedBy      *string         `db:"created_by" json:"created_by"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}
