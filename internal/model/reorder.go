package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReorderStatus string

const (
	ReorderPending   ReorderStatus = "pending"
	ReorderApproved  ReorderStatus = "approved"
	ReorderOrdered   ReorderStatus = "ordered"
	ReorderFulfilled ReorderStatus = "fulfilled"
	ReorderCancelled ReorderStatus = "cancelled"
)

// Open reports whether the status still counts as an outstanding request.
func (s ReorderStatus) Open() bool {
	return s == ReorderPending || s == ReorderApproved || s == ReorderOrdered
}

func (s ReorderStatus) Terminal() bool {
	return s == ReorderFulfilled || s == ReorderCancelled
}

type ReorderPriority string

const (
	PriorityLow    ReorderPriority = "low"
	PriorityMedium ReorderPriority = "medium"
	PriorityHigh   ReorderPriority = "high"
	PriorityUrgent ReorderPriority = "urgent"
)

func (p ReorderPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type ReorderAction string

const (
	ActionApprove     ReorderAction = "approve"
	ActionMarkOrdered ReorderAction = "mark_ordered"
	ActionFulfill     ReorderAction = "fulfill"
	ActionCancel      ReorderAction = "cancel"
)

// reorderTransitions lists the single legal source state for every forward action.
var reorderTransitions = map[ReorderAction]struct {
	from ReorderStatus
	to   ReorderStatus
}{
	ActionApprove:     {ReorderPending, ReorderApproved},
	ActionMarkOrdered: {ReorderApproved, ReorderOrdered},
	ActionFulfill:     {ReorderOrdered, ReorderFulfilled},
}

// NextReorderStatus returns the status reached by applying action to current.
// Cancel is legal from any open status; everything else follows the linear chain.
func NextReorderStatus(requestID string, current ReorderStatus, action ReorderAction) (ReorderStatus, error) {
	if action == ActionCancel {
		if current.Open() {
			return ReorderCancelled, nil
		}
		return current, &InvalidStateTransitionError{RequestID: requestID, From: current, Action: action}
	}
	t, ok := reorderTransitions[action]
	if !ok || t.from != current {
		return current, &InvalidStateTransitionError{RequestID: requestID, From: current, Action: action}
	}
	return t.to, nil
}

type ReorderRequest struct {
	ID                string          `db:"id" json:"id"`
	ItemID            string          `db:"item_id" json:"item_id"`
	OwningKitID       *string         `db:"owning_kit_id" json:"owning_kit_id"`
	QuantityRequested decimal.Decimal `db:"quantity_requested" json:"quantity_requested"`
	Priority          ReorderPriority `db:"priority" json:"priority"`
	IsAutomatic       bool            `db:"is_automatic" json:"is_automatic"`
	Status            ReorderStatus   `db:"status" json:"status"`
	// FulfillmentBox holds the box id for kit requests and the warehouse id for warehouse-level ones.
	FulfillmentBox  *string    `db:"fulfillment_box" json:"fulfillment_box"`
	Notes           string     `db:"notes" json:"notes"`
	VendorReference *string    `db:"vendor_reference" json:"vendor_reference"`
	CancelReason    *string    `db:"cancel_reason" json:"cancel_reason"`
	RequestedBy     *string    `db:"requested_by" json:"requested_by"`
	ApprovedBy      *string    `db:"approved_by" json:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at" json:"approved_at"`
	OrderedBy       *string    `db:"ordered_by" json:"ordered_by"`
	OrderedAt       *time.Time `db:"ordered_at" json:"ordered_at"`
	FulfilledBy     *string    `db:"fulfilled_by" json:"fulfilled_by"`
	FulfilledAt     *time.Time `db:"fulfilled_at" json:"fulfilled_at"`
	CancelledBy     *string    `db:"cancelled_by" json:"cancelled_by"`
	CancelledAt     *time.Time `db:"cancelled_at" json:"cancelled_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// OwnerKey keys the open-request index on (item, owning kit).
func (r *ReorderRequest) OwnerKey() string {
	kit := ""
	if r.OwningKitID != nil {
		kit = *r.OwningKitID
	}
	return ReorderOwnerKey(r.ItemID, kit)
}

// ReorderOwnerKey builds the index key; an empty kitID means warehouse level.
func ReorderOwnerKey(itemID, kitID string) string {
	if kitID == "" {
		return itemID + "|warehouse"
	}
	return itemID + "|kit/" + kitID
}
