package dto

import (
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

type CreateReorderInput struct {
	ItemID string
	// OwningKitID empty means a warehouse-level request.
	OwningKitID string
	Quantity    decimal.Decimal
	Priority    model.ReorderPriority
	Notes       string
	UserID      string
}

type AutomaticReorderInput struct {
	ItemID   string
	KitID    string
	Quantity decimal.Decimal
	Priority model.ReorderPriority
	Notes    string
}

type ApproveInput struct {
	RequestID string
	Notes     string
	UserID    string
}

type MarkOrderedInput struct {
	RequestID       string
	VendorReference string
	UserID          string
}

type FulfillInput struct {
	RequestID string
	// Location is a box of the owning kit, or a warehouse for warehouse-level requests.
	Location model.Location
	UserID   string
}

type CancelInput struct {
	RequestID string
	Reason    string
	UserID    string
}
