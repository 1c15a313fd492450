package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ItemKind string

const (
	ItemKindTool       ItemKind = "tool"
	ItemKindChemical   ItemKind = "chemical"
	ItemKindExpendable ItemKind = "expendable"
)

func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindTool, ItemKindChemical, ItemKindExpendable:
		return true
	}
	return false
}

// TrackingType decides how units of an item share an InventoryRecord.
type TrackingType string

const (
	TrackingSerial   TrackingType = "serial"
	TrackingLot      TrackingType = "lot"
	TrackingBoth     TrackingType = "both"
	TrackingQuantity TrackingType = "quantity"
)

func (t TrackingType) Valid() bool {
	switch t {
	case TrackingSerial, TrackingLot, TrackingBoth, TrackingQuantity:
		return true
	}
	return false
}

// RequiresBox reports whether stock moved into a kit must land in a specific box.
func (t TrackingType) RequiresBox() bool {
	return t != TrackingQuantity
}

// AllowsFractional reports whether quantities may carry a fractional part
// (chemicals measured by volume, expendables split from a lot).
func (t TrackingType) AllowsFractional() bool {
	return t == TrackingQuantity || t == TrackingLot
}

// RequiresSerialUniqueness reports whether a single record may hold at most one unit.
func (t TrackingType) RequiresSerialUniqueness() bool {
	return t == TrackingSerial || t == TrackingBoth
}

type Item struct {
	BaseModel
	Kind         ItemKind     `db:"kind" json:"kind"`
	PartNumber   string       `db:"part_number" json:"part_number"`
	SerialNumber *string      `db:"serial_number" json:"serial_number"`
	LotNumber    *string      `db:"lot_number" json:"lot_number"`
	TrackingType TrackingType `db:"tracking_type" json:"tracking_type"`
	Description  string       `db:"description" json:"description"`
	Unit         string       `db:"unit" json:"unit"`
}

// ValidateQuantity checks qty against the item's tracking capabilities.
func (i *Item) ValidateQuantity(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return &InvalidQuantityError{ItemID: i.ID, Quantity: qty, Reason: "quantity must be positive"}
	}
	if !i.TrackingType.AllowsFractional() && !qty.Equal(qty.Truncate(0)) {
		return &InvalidQuantityError{ItemID: i.ID, Quantity: qty, Reason: "item is tracked per unit, fractional quantity not allowed"}
	}
	return nil
}

// NormalizeIdentifier trims and upper-cases part, serial and lot numbers.
func NormalizeIdentifier(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
