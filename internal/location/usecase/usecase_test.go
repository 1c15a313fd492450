package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/location/repository"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc     *locationUseCase
	box1   *model.Box
	otherB *model.Box
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	uc := NewLocationUseCase(repository.NewMemoryRepository(), logger.NewNop()).(*locationUseCase)

	_, err := uc.RegisterKit(ctx, &dto.RegisterKitInput{KitID: "K737", Name: "737 line kit", AircraftType: "B737"})
	require.NoError(t, err)
	_, err = uc.RegisterKit(ctx, &dto.RegisterKitInput{KitID: "K320", Name: "A320 line kit", AircraftType: "A320"})
	require.NoError(t, err)
	box1, err := uc.AddBox(ctx, &dto.AddBoxInput{KitID: "K737", BoxNumber: "1"})
	require.NoError(t, err)
	otherB, err := uc.AddBox(ctx, &dto.AddBoxInput{KitID: "K320", BoxNumber: "1"})
	require.NoError(t, err)
	_, err = uc.RegisterWarehouse(ctx, &dto.RegisterWarehouseInput{WarehouseID: "W1", Name: "Main stores"})
	require.NoError(t, err)

	return &fixture{uc: uc, box1: box1, otherB: otherB}
}

func TestResolve_KitBoxByNumberAndID(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	byNumber, err := f.uc.Resolve(ctx, dto.LocationRef{KitID: "K737", BoxNumber: "1"})
	require.NoError(t, err)
	assert.Equal(t, model.KitLocation("K737", f.box1.ID), byNumber)

	byID, err := f.uc.Resolve(ctx, dto.LocationRef{KitID: "K737", BoxID: f.box1.ID})
	require.NoError(t, err)
	assert.True(t, byID.Equal(byNumber))
}

func TestResolve_Warehouse(t *testing.T) {
	f := setup(t)
	loc, err := f.uc.Resolve(context.Background(), dto.LocationRef{WarehouseID: "W1"})
	require.NoError(t, err)
	assert.True(t, loc.IsWarehouse())
	assert.Equal(t, "W1", loc.Owner())
}

func TestResolve_Invalid(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	refs := map[string]dto.LocationRef{
		"empty":             {},
		"both":              {KitID: "K737", WarehouseID: "W1"},
		"unknown kit":       {KitID: "NOPE"},
		"unknown warehouse": {WarehouseID: "W9"},
		"box of other kit":  {KitID: "K737", BoxID: f.otherB.ID},
		"unknown box":       {KitID: "K737", BoxNumber: "42"},
		"warehouse box":     {WarehouseID: "W1", BoxNumber: "1"},
	}
	for name, ref := range refs {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Resolve(ctx, ref)
			assert.ErrorIs(t, err, model.ErrInvalidLocation)
		})
	}
}

func TestValidate_DeactivatedKit(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	loc := model.KitLocation("K737", f.box1.ID)
	require.NoError(t, f.uc.Validate(ctx, loc))
	require.NoError(t, f.uc.DeactivateKit(ctx, "K737"))

	err := f.uc.Validate(ctx, loc)
	var invalid *model.InvalidLocationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "inactive")
}

func TestRegisterKit_RejectsBadCodesAndDuplicates(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.RegisterKit(ctx, &dto.RegisterKitInput{KitID: "K/1"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = f.uc.RegisterKit(ctx, &dto.RegisterKitInput{KitID: "K737"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = f.uc.AddBox(ctx, &dto.AddBoxInput{KitID: "K737", BoxNumber: "1"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = f.uc.AddBox(ctx, &dto.AddBoxInput{KitID: "GHOST", BoxNumber: "1"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetKit_IncludesBoxes(t *testing.T) {
	f := setup(t)
	kit, err := f.uc.GetKit(context.Background(), "K737")
	require.NoError(t, err)
	require.Len(t, kit.Boxes, 1)
	assert.Equal(t, f.box1.ID, kit.Boxes[0].ID)
}
