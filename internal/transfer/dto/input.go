package dto

import (
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

type CreateTransferInput struct {
	ItemID   string
	From     model.Location
	To       model.Location
	Quantity decimal.Decimal
	Notes    string
	UserID   string
}
