// Package rpc holds the pieces shared by every gRPC handler: mapping domain
// errors onto status codes and converting between wire and domain values.
package rpc

import (
	"context"
	"errors"
	"time"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	locdto "github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Error converts a use case error into a gRPC status error.
func Error(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), err.Error())
}

func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, model.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidLocation),
		errors.Is(err, model.ErrMissingDestinationBox):
		return codes.InvalidArgument
	case errors.Is(err, model.ErrInsufficientStock),
		errors.Is(err, model.ErrInvalidStateTransition):
		return codes.FailedPrecondition
	case errors.Is(err, model.ErrIdentityConflict):
		return codes.AlreadyExists
	case errors.Is(err, model.ErrTransientFailure):
		return codes.Unavailable
	case errors.Is(err, model.ErrConcurrentModification):
		return codes.Aborted
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	}
	return codes.Internal
}

// Decimal parses a quantity sent as a string. An empty value reads as zero
// and is left to the use case to reject.
func Decimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, model.InvalidInput("%s %q is not a number", field, s)
	}
	return d, nil
}

func OptionalDecimal(field string, s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := Decimal(field, *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func Timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func Time(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func String(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func LocationToProto(l model.Location) *kitinventoryv1.Location {
	return &kitinventoryv1.Location{
		Type:        string(l.Type),
		KitId:       l.KitID,
		BoxId:       l.BoxID,
		WarehouseId: l.WarehouseID,
	}
}

func LocationRef(ref *kitinventoryv1.LocationRef) locdto.LocationRef {
	return locdto.LocationRef{
		KitID:       ref.GetKitId(),
		BoxID:       ref.GetBoxId(),
		BoxNumber:   ref.GetBoxNumber(),
		WarehouseID: ref.GetWarehouseId(),
	}
}
