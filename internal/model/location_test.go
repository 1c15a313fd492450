package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationKeyRoundTrip(t *testing.T) {
	for _, loc := range []Location{
		KitLocation("K1", "b-7"),
		KitLocation("K1", ""),
		WarehouseLocation("W1"),
	} {
		parsed, err := ParseLocationKey(loc.Key())
		require.NoError(t, err)
		assert.True(t, loc.Equal(parsed), loc.String())
	}

	for _, bad := range []string{"", "kit", "kit//b", "warehouse/", "bin/3", "kit/K1/b/extra"} {
		_, err := ParseLocationKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestLocationScan(t *testing.T) {
	var loc Location
	require.NoError(t, loc.Scan([]byte("warehouse/W1")))
	assert.Equal(t, WarehouseLocation("W1"), loc)

	require.NoError(t, loc.Scan(nil))
	assert.True(t, loc.IsZero())

	assert.Error(t, loc.Scan(42))

	v, err := KitLocation("K1", "b1").Value()
	require.NoError(t, err)
	assert.Equal(t, "kit/K1/b1", v)
}

func TestTrackingCapabilities(t *testing.T) {
	tests := []struct {
		tracking   TrackingType
		box        bool
		fractional bool
		serial     bool
	}{
		{TrackingQuantity, false, true, false},
		{TrackingLot, true, true, false},
		{TrackingSerial, true, false, true},
		{TrackingBoth, true, false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.tracking), func(t *testing.T) {
			assert.Equal(t, tt.box, tt.tracking.RequiresBox())
			assert.Equal(t, tt.fractional, tt.tracking.AllowsFractional())
			assert.Equal(t, tt.serial, tt.tracking.RequiresSerialUniqueness())
		})
	}
}

func TestItemValidateQuantity(t *testing.T) {
	serial := &Item{TrackingType: TrackingSerial}
	chem := &Item{TrackingType: TrackingLot}

	assert.NoError(t, chem.ValidateQuantity(decimal.RequireFromString("0.25")))
	assert.NoError(t, serial.ValidateQuantity(decimal.NewFromInt(1)))
	assert.ErrorIs(t, serial.ValidateQuantity(decimal.RequireFromString("0.5")), ErrInvalidQuantity)
	assert.ErrorIs(t, chem.ValidateQuantity(decimal.Zero), ErrInvalidQuantity)
	assert.ErrorIs(t, chem.ValidateQuantity(decimal.NewFromInt(-2)), ErrInvalidQuantity)
}
