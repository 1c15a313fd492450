package dto

import (
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

type IssueInput struct {
	ItemID      string
	Location    model.Location
	Quantity    decimal.Decimal
	Recipient   string
	Purpose     string
	WorkOrderID string
	UserID      string

	// SourceEventID makes the call idempotent: a repeat returns the issuance already recorded.
	SourceEventID string
}
