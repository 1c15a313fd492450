package rpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"not found", &model.NotFoundError{Entity: "item", ID: "x"}, codes.NotFound},
		{"invalid input", model.InvalidInput("bad"), codes.InvalidArgument},
		{"invalid location", &model.InvalidLocationError{Ref: "kit K", Reason: "unknown"}, codes.InvalidArgument},
		{"missing box", &model.MissingDestinationBoxError{ItemID: "i"}, codes.InvalidArgument},
		{"insufficient", &model.InsufficientStockError{ItemID: "i"}, codes.FailedPrecondition},
		{"state", &model.InvalidStateTransitionError{RequestID: "r"}, codes.FailedPrecondition},
		{"conflict", &model.IdentityConflictError{Field: "serial_number"}, codes.AlreadyExists},
		{"transient wraps conflict", &model.TransientFailureError{Op: "transfer", Cause: &model.ConcurrentModificationError{Key: "k"}}, codes.Unavailable},
		{"concurrent", &model.ConcurrentModificationError{Key: "k"}, codes.Aborted},
		{"wrapped", fmt.Errorf("outer: %w", &model.NotFoundError{Entity: "kit", ID: "K"}), codes.NotFound},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"unknown", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestErrorKeepsExistingStatus(t *testing.T) {
	in := status.Error(codes.Unauthenticated, "no user")
	assert.Equal(t, codes.Unauthenticated, status.Code(Error(in)))
	assert.NoError(t, Error(nil))
}

func TestDecimal(t *testing.T) {
	d, err := Decimal("quantity", "2.5")
	assert.NoError(t, err)
	assert.Equal(t, "2.5", d.String())

	d, err = Decimal("quantity", "")
	assert.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = Decimal("quantity", "two")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, codes.InvalidArgument, Code(err))

	opt, err := OptionalDecimal("level", nil)
	assert.NoError(t, err)
	assert.Nil(t, opt)
}

func TestLocationConversion(t *testing.T) {
	pb := LocationToProto(model.KitLocation("K1", "B1"))
	assert.Equal(t, "K1", pb.GetKitId())
	assert.Equal(t, "B1", pb.GetBoxId())

	ref := LocationRef(&kitinventoryv1.LocationRef{KitId: "K1", BoxNumber: "2"})
	assert.Equal(t, "K1", ref.KitID)
	assert.Equal(t, "2", ref.BoxNumber)
	assert.Empty(t, LocationRef(nil).WarehouseID)
}

func TestTimestampNil(t *testing.T) {
	assert.Nil(t, Timestamp(nil))
	assert.Nil(t, Time(nil))
	now := time.Now().UTC()
	assert.True(t, now.Equal(*Time(Timestamp(&now))))
}
