package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/item/repository"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() *itemUseCase {
	return NewItemUseCase(repository.NewMemoryRepository(), logger.NewNop()).(*itemUseCase)
}

func TestRegisterItem_NormalizesIdentifiers(t *testing.T) {
	uc := newUseCase()
	it, err := uc.RegisterItem(context.Background(), &dto.RegisterItemInput{
		Kind:         model.ItemKindTool,
		PartNumber:   " tq-250 ",
		SerialNumber: "sn-001",
		TrackingType: model.TrackingSerial,
	})
	require.NoError(t, err)
	assert.Equal(t, "TQ-250", it.PartNumber)
	require.NotNil(t, it.SerialNumber)
	assert.Equal(t, "SN-001", *it.SerialNumber)
	assert.Nil(t, it.LotNumber)

	got, err := uc.GetItem(context.Background(), it.ID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)
}

func TestRegisterItem_Validation(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	cases := map[string]*dto.RegisterItemInput{
		"unknown kind":      {Kind: "widget", PartNumber: "P1", TrackingType: model.TrackingQuantity},
		"unknown tracking":  {Kind: model.ItemKindTool, PartNumber: "P1", TrackingType: "rfid"},
		"missing part":      {Kind: model.ItemKindTool, TrackingType: model.TrackingQuantity},
		"serial without sn": {Kind: model.ItemKindTool, PartNumber: "P1", TrackingType: model.TrackingSerial},
		"lot without lot":   {Kind: model.ItemKindChemical, PartNumber: "P1", TrackingType: model.TrackingLot},
		"both missing lot":  {Kind: model.ItemKindTool, PartNumber: "P1", SerialNumber: "S", TrackingType: model.TrackingBoth},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.RegisterItem(ctx, in)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestRegisterItem_SerialCollisionAcrossParts(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	first, err := uc.RegisterItem(ctx, &dto.RegisterItemInput{
		Kind: model.ItemKindTool, PartNumber: "TQ-250", SerialNumber: "X1", TrackingType: model.TrackingSerial,
	})
	require.NoError(t, err)

	_, err = uc.RegisterItem(ctx, &dto.RegisterItemInput{
		Kind: model.ItemKindTool, PartNumber: "DRILL-9", SerialNumber: "x1", TrackingType: model.TrackingSerial,
	})
	require.ErrorIs(t, err, model.ErrIdentityConflict)

	var conflict *model.IdentityConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.ExistingItem)
}

func TestRegisterItem_LotRules(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.RegisterItem(ctx, &dto.RegisterItemInput{
		Kind: model.ItemKindChemical, PartNumber: "SEALANT-A", LotNumber: "L77", TrackingType: model.TrackingLot,
	})
	require.NoError(t, err)

	// Same lot on a different part is a conflict.
	_, err = uc.RegisterItem(ctx, &dto.RegisterItemInput{
		Kind: model.ItemKindChemical, PartNumber: "SEALANT-B", LotNumber: "L77", TrackingType: model.TrackingLot,
	})
	assert.ErrorIs(t, err, model.ErrIdentityConflict)

	// Registering the same lot-only item twice is a conflict too.
	_, err = uc.RegisterItem(ctx, &dto.RegisterItemInput{
		Kind: model.ItemKindChemical, PartNumber: "SEALANT-A", LotNumber: "L77", TrackingType: model.TrackingLot,
	})
	assert.ErrorIs(t, err, model.ErrIdentityConflict)
}

func TestRegisterItem_SerializedUnitsShareLot(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	for _, sn := range []string{"A1", "A2"} {
		_, err := uc.RegisterItem(ctx, &dto.RegisterItemInput{
			Kind: model.ItemKindTool, PartNumber: "GAUGE", SerialNumber: sn, LotNumber: "LOT-5", TrackingType: model.TrackingBoth,
		})
		require.NoError(t, err)
	}

	items, total, err := uc.ListItems(ctx, &dto.ItemFilters{PartNumber: "GAUGE"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)
}

func TestRegisterItem_DuplicateQuantityTrackedPart(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	in := &dto.RegisterItemInput{Kind: model.ItemKindExpendable, PartNumber: "RAG-1", TrackingType: model.TrackingQuantity}
	_, err := uc.RegisterItem(ctx, in)
	require.NoError(t, err)
	_, err = uc.RegisterItem(ctx, in)
	assert.ErrorIs(t, err, model.ErrIdentityConflict)
}

func TestGetItem_NotFound(t *testing.T) {
	_, err := newUseCase().GetItem(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
