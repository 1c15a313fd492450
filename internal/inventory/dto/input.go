package dto

import (
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

// DeltaInput is the single shape every quantity mutation goes through.
type DeltaInput struct {
	ItemID        string
	Location      model.Location
	Delta         decimal.Decimal
	MovementType  model.MovementType
	ReferenceType string
	ReferenceID   string
	Notes         string
	UserID        string
}

type AdjustInventoryInput struct {
	ItemID         string
	Location       model.Location
	QuantityChange decimal.Decimal
	Reason         string
	ReferenceID    string
	UserID         string
}

type SetMinimumStockInput struct {
	ItemID   string
	Location model.Location
	// Level nil clears the minimum.
	Level  *decimal.Decimal
	UserID string
}
