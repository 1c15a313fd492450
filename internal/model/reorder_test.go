package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextReorderStatus(t *testing.T) {
	tests := []struct {
		from    ReorderStatus
		action  ReorderAction
		want    ReorderStatus
		wantErr bool
	}{
		{ReorderPending, ActionApprove, ReorderApproved, false},
		{ReorderApproved, ActionMarkOrdered, ReorderOrdered, false},
		{ReorderOrdered, ActionFulfill, ReorderFulfilled, false},
		{ReorderPending, ActionCancel, ReorderCancelled, false},
		{ReorderApproved, ActionCancel, ReorderCancelled, false},
		{ReorderOrdered, ActionCancel, ReorderCancelled, false},

		{ReorderPending, ActionFulfill, "", true},
		{ReorderPending, ActionMarkOrdered, "", true},
		{ReorderApproved, ActionFulfill, "", true},
		{ReorderApproved, ActionApprove, "", true},
		{ReorderFulfilled, ActionCancel, "", true},
		{ReorderCancelled, ActionCancel, "", true},
		{ReorderCancelled, ActionApprove, "", true},
		{ReorderPending, ReorderAction("reopen"), "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			got, err := NextReorderStatus("r1", tt.from, tt.action)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidStateTransition))
				var ite *InvalidStateTransitionError
				require.ErrorAs(t, err, &ite)
				assert.Equal(t, tt.from, ite.From)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReorderOwnerKey(t *testing.T) {
	kit := "K1"
	assert.Equal(t, "i1|kit/K1", (&ReorderRequest{ItemID: "i1", OwningKitID: &kit}).OwnerKey())
	assert.Equal(t, "i1|warehouse", (&ReorderRequest{ItemID: "i1"}).OwnerKey())
}
