package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInvalidLocation        = errors.New("invalid location")
	ErrMissingDestinationBox  = errors.New("missing destination box")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrTransientFailure       = errors.New("transient failure")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("not found")
	ErrIdentityConflict       = errors.New("identity conflict")
)

type InsufficientStockError struct {
	ItemID    string
	Location  Location
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of item %s at %s: requested %s, available %s",
		e.ItemID, e.Location, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

type InvalidLocationError struct {
	Ref    string
	Reason string
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("invalid location %s: %s", e.Ref, e.Reason)
}

func (e *InvalidLocationError) Is(target error) bool { return target == ErrInvalidLocation }

type MissingDestinationBoxError struct {
	ItemID       string
	KitID        string
	TrackingType TrackingType
}

func (e *MissingDestinationBoxError) Error() string {
	return fmt.Sprintf("item %s (%s tracked) needs a destination box in kit %s", e.ItemID, e.TrackingType, e.KitID)
}

func (e *MissingDestinationBoxError) Is(target error) bool { return target == ErrMissingDestinationBox }

type InvalidStateTransitionError struct {
	RequestID string
	From      ReorderStatus
	Action    ReorderAction
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("reorder request %s: cannot %s from status %s", e.RequestID, e.Action, e.From)
}

func (e *InvalidStateTransitionError) Is(target error) bool { return target == ErrInvalidStateTransition }

type InvalidQuantityError struct {
	ItemID   string
	Quantity decimal.Decimal
	Reason   string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %s for item %s: %s", e.Quantity, e.ItemID, e.Reason)
}

func (e *InvalidQuantityError) Is(target error) bool { return target == ErrInvalidQuantity }

// ConcurrentModificationError is raised when the per-key lock could not be taken.
type ConcurrentModificationError struct {
	Key string
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("concurrent modification on %s", e.Key)
}

func (e *ConcurrentModificationError) Is(target error) bool { return target == ErrConcurrentModification }

// TransientFailureError is surfaced once the single internal retry is exhausted.
type TransientFailureError struct {
	Op    string
	Cause error
}

func (e *TransientFailureError) Error() string {
	return fmt.Sprintf("%s: transient failure: %v", e.Op, e.Cause)
}

func (e *TransientFailureError) Is(target error) bool { return target == ErrTransientFailure }

func (e *TransientFailureError) Unwrap() error { return e.Cause }

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type IdentityConflictError struct {
	Field         string
	Value         string
	ExistingItem  string
	ConflictingOn string
}

func (e *IdentityConflictError) Error() string {
	return fmt.Sprintf("%s %q already belongs to item %s (%s)", e.Field, e.Value, e.ExistingItem, e.ConflictingOn)
}

func (e *IdentityConflictError) Is(target error) bool { return target == ErrIdentityConflict }

// InvalidInput wraps a plain validation message as ErrInvalidInput.
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
