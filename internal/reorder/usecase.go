package reorder

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
)

// UseCase is the ReorderLifecycle.
type UseCase interface {
	Create(ctx context.Context, input *dto.CreateReorderInput) (*model.ReorderRequest, error)
	// CreateAutomatic raises a policy request unless one is already open for
	// (item, kit). The bool reports whether a new request was created.
	CreateAutomatic(ctx context.Context, input *dto.AutomaticReorderInput) (*model.ReorderRequest, bool, error)

	Approve(ctx context.Context, input *dto.ApproveInput) (*model.ReorderRequest, error)
	MarkOrdered(ctx context.Context, input *dto.MarkOrderedInput) (*model.ReorderRequest, error)
	Fulfill(ctx context.Context, input *dto.FulfillInput) (*model.ReorderRequest, error)
	Cancel(ctx context.Context, input *dto.CancelInput) (*model.ReorderRequest, error)
	// CancelAutomaticOnRecovery cancels open automatic requests for (item, kit)
	// that have not been ordered yet and returns how many it cancelled.
	CancelAutomaticOnRecovery(ctx context.Context, itemID, kitID string) (int, error)

	Get(ctx context.Context, id string) (*model.ReorderRequest, error)
	List(ctx context.Context, filters *dto.ReorderFilters) ([]model.ReorderRequest, int, error)
	HasOpenRequest(ctx context.Context, itemID, kitID string) (bool, error)
	// HasOpenReference lets the ledger keep empty records an open request still points at.
	HasOpenReference(ctx context.Context, itemID string, loc model.Location) (bool, error)
}

const (
	EventReorderCreated = "reorder.created"
	// Transition events are "reorder." + the new status.
	EventReorderPrefix = "reorder."
	// EventFulfillmentUnreconciled alerts that a fulfillment credit could not be withdrawn after its status write failed.
	EventFulfillmentUnreconciled = "reorder.fulfillment_unreconciled"
)

const RecoveryCancelReason = "stock recovered above minimum"
