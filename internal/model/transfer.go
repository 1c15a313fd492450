package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferCompleted TransferStatus = "completed"
	TransferCancelled TransferStatus = "cancelled"
)

// Transfer is an audit record; only Status (with its reason and timestamps) changes after creation.
type Transfer struct {
	ID            string          `db:"id" json:"id"`
	ItemID        string          `db:"item_id" json:"item_id"`
	From          Location        `db:"from_location" json:"from_location"`
	To            Location        `db:"to_location" json:"to_location"`
	Quantity      decimal.Decimal `db:"quantity" json:"quantity"`
	Status        TransferStatus  `db:"status" json:"status"`
	Notes         string          `db:"notes" json:"notes"`
	CancelReason  *string         `db:"cancel_reason" json:"cancel_reason"`
	TransferredBy *string         `db:"transferred_by" json:"transferred_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
	CompletedAt   *time.Time      `db:"completed_at" json:"completed_at"`
}
