package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Issuance records consumption from a kit. Never mutated after creation.
type Issuance struct {
	ID          string          `db:"id" json:"id"`
	ItemID      string          `db:"item_id" json:"item_id"`
	Location    Location        `db:"location" json:"location"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	Recipient   string          `db:"recipient" json:"recipient"`
	Purpose     string          `db:"purpose" json:"purpose"`
	WorkOrderID *string         `db:"work_order_id" json:"work_order_id"`
	IssuedBy    *string         `db:"issued_by" json:"issued_by"`
	IssuedAt    time.Time       `db:"issued_at" json:"issued_at"`

	// SourceEventID is the upstream event this issuance was recorded from. Unique when set.
	SourceEventID *string `db:"source_event_id" json:"source_event_id,omitempty"`
}
