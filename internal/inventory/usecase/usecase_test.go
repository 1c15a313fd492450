package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/repository"
	itemdto "github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	itemrepo "github.com/fekuna/omnipos-kit-inventory/internal/item/repository"
	itemuc "github.com/fekuna/omnipos-kit-inventory/internal/item/usecase"
	locdto "github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	locrepo "github.com/fekuna/omnipos-kit-inventory/internal/location/repository"
	locuc "github.com/fekuna/omnipos-kit-inventory/internal/location/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/lock"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	uc     inventory.UseCase
	repo   *repository.MemoryRepository
	box1   model.Location
	kit    model.Location // kit level, no box
	wh     model.Location
	wrench *model.Item // serial
	rivets *model.Item // quantity
	sealnt *model.Item // lot
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newEnv(t *testing.T, locker lock.Locker) *env {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()

	items := itemuc.NewItemUseCase(itemrepo.NewMemoryRepository(), log)
	locs := locuc.NewLocationUseCase(locrepo.NewMemoryRepository(), log)

	_, err := locs.RegisterKit(ctx, &locdto.RegisterKitInput{KitID: "K1", Name: "Line kit"})
	require.NoError(t, err)
	box, err := locs.AddBox(ctx, &locdto.AddBoxInput{KitID: "K1", BoxNumber: "1"})
	require.NoError(t, err)
	_, err = locs.RegisterWarehouse(ctx, &locdto.RegisterWarehouseInput{WarehouseID: "W1", Name: "Stores"})
	require.NoError(t, err)

	wrench, err := items.RegisterItem(ctx, &itemdto.RegisterItemInput{Kind: model.ItemKindTool, PartNumber: "TW-1", SerialNumber: "SN-1", TrackingType: model.TrackingSerial})
	require.NoError(t, err)
	rivets, err := items.RegisterItem(ctx, &itemdto.RegisterItemInput{Kind: model.ItemKindExpendable, PartNumber: "MS20470", TrackingType: model.TrackingQuantity})
	require.NoError(t, err)
	sealant, err := items.RegisterItem(ctx, &itemdto.RegisterItemInput{Kind: model.ItemKindChemical, PartNumber: "PR-1422", LotNumber: "L-9", TrackingType: model.TrackingLot})
	require.NoError(t, err)

	if locker == nil {
		locker = lock.NewLocalLocker(2 * time.Second)
	}
	repo := repository.NewMemoryRepository()
	return &env{
		uc:     NewInventoryUseCase(repo, items, locs, locker, nil, log),
		repo:   repo,
		box1:   model.KitLocation("K1", box.ID),
		kit:    model.KitLocation("K1", ""),
		wh:     model.WarehouseLocation("W1"),
		wrench: wrench,
		rivets: rivets,
		sealnt: sealant,
	}
}

func (e *env) delta(itemID string, loc model.Location, qty string) *dto.DeltaInput {
	return &dto.DeltaInput{ItemID: itemID, Location: loc, Delta: d(qty), MovementType: model.MovementAdjustment}
}

type recorder struct {
	mu      sync.Mutex
	changes []dto.QuantityChange
}

func (r *recorder) OnQuantityChanged(_ context.Context, c dto.QuantityChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

type stubRefs struct{ open bool }

func (s stubRefs) HasOpenReference(context.Context, string, model.Location) (bool, error) {
	return s.open, nil
}

func TestApplyDelta_CreatesRecordAndLogsMovement(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	after, err := e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "50"))
	require.NoError(t, err)
	assert.True(t, after.Equal(d("50")))

	after, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "-12"))
	require.NoError(t, err)
	assert.True(t, after.Equal(d("38")))

	mvs, total, err := e.uc.ListMovements(ctx, &dto.MovementFilters{ItemID: e.rivets.ID})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	var sawDecrement bool
	for _, m := range mvs {
		if m.QuantityChange.Equal(d("-12")) {
			sawDecrement = true
			assert.True(t, m.QuantityBefore.Equal(d("50")))
			assert.True(t, m.QuantityAfter.Equal(d("38")))
		}
	}
	assert.True(t, sawDecrement)
}

func TestApplyDelta_RejectsNegativeResult(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()
	_, err := e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.box1, "5"))
	require.NoError(t, err)

	_, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.box1, "-6"))
	var ise *model.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.True(t, ise.Available.Equal(d("5")))
	assert.True(t, ise.Requested.Equal(d("6")))

	qty, err := e.uc.GetQuantity(ctx, e.rivets.ID, e.box1)
	require.NoError(t, err)
	assert.True(t, qty.Equal(d("5")), "rejected delta must leave the record untouched")

	_, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "-1"))
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
}

func TestApplyDelta_QuantityRules(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	_, err := e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "0"))
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = e.uc.ApplyDelta(ctx, e.delta(e.wrench.ID, e.box1, "0.5"))
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = e.uc.ApplyDelta(ctx, e.delta(e.sealnt.ID, e.box1, "0.25"))
	assert.NoError(t, err)
}

func TestApplyDelta_SerializedUnitIsUnique(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	_, err := e.uc.ApplyDelta(ctx, e.delta(e.wrench.ID, e.box1, "1"))
	require.NoError(t, err)

	_, err = e.uc.ApplyDelta(ctx, e.delta(e.wrench.ID, e.box1, "1"))
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	// stocking the same unit somewhere else is a second physical unit
	_, err = e.uc.ApplyDelta(ctx, e.delta(e.wrench.ID, e.wh, "1"))
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
}

func TestApplyDelta_LocationChecks(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	_, err := e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, model.WarehouseLocation("NOPE"), "1"))
	assert.ErrorIs(t, err, model.ErrInvalidLocation)

	_, err = e.uc.ApplyDelta(ctx, e.delta(e.wrench.ID, e.kit, "1"))
	assert.ErrorIs(t, err, model.ErrMissingDestinationBox)

	// quantity tracked stock may sit at kit level
	_, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.kit, "3"))
	assert.NoError(t, err)

	_, err = e.uc.ApplyDelta(ctx, e.delta("missing-item", e.wh, "1"))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestApplyDelta_PrunesEmptyRecords(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	_, err := e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "4"))
	require.NoError(t, err)
	_, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "-4"))
	require.NoError(t, err)
	_, err = e.uc.GetRecord(ctx, e.rivets.ID, e.wh)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// a minimum keeps the record around
	_, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.box1, "4"))
	require.NoError(t, err)
	lvl := d("2")
	_, err = e.uc.SetMinimumStock(ctx, &dto.SetMinimumStockInput{ItemID: e.rivets.ID, Location: e.box1, Level: &lvl})
	require.NoError(t, err)
	_, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.box1, "-4"))
	require.NoError(t, err)
	rec, err := e.uc.GetRecord(ctx, e.rivets.ID, e.box1)
	require.NoError(t, err)
	assert.True(t, rec.Quantity.IsZero())

	// so does an open reference
	e.uc.SetReferenceChecker(stubRefs{open: true})
	_, err = e.uc.ApplyDelta(ctx, e.delta(e.sealnt.ID, e.wh, "1"))
	require.NoError(t, err)
	_, err = e.uc.ApplyDelta(ctx, e.delta(e.sealnt.ID, e.wh, "-1"))
	require.NoError(t, err)
	_, err = e.uc.GetRecord(ctx, e.sealnt.ID, e.wh)
	assert.NoError(t, err)
}

func TestSetMinimumStock(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	lvl := d("3")
	_, err := e.uc.SetMinimumStock(ctx, &dto.SetMinimumStockInput{ItemID: e.rivets.ID, Location: e.box1, Level: &lvl})
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.box1, "2"))
	require.NoError(t, err)

	neg := d("-1")
	_, err = e.uc.SetMinimumStock(ctx, &dto.SetMinimumStockInput{ItemID: e.rivets.ID, Location: e.box1, Level: &neg})
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	rec, err := e.uc.SetMinimumStock(ctx, &dto.SetMinimumStockInput{ItemID: e.rivets.ID, Location: e.box1, Level: &lvl})
	require.NoError(t, err)
	assert.True(t, rec.BelowMinimum())

	low, total, err := e.uc.ListRecords(ctx, &dto.InventoryFilters{LowStock: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, e.rivets.ID, low[0].ItemID)

	rec, err = e.uc.SetMinimumStock(ctx, &dto.SetMinimumStockInput{ItemID: e.rivets.ID, Location: e.box1})
	require.NoError(t, err)
	assert.False(t, rec.MinimumStockLevel.Valid)
}

func TestObserver_SeesNetChangeAfterUnlock(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()
	rec := &recorder{}
	e.uc.RegisterObserver(rec)

	_, err := e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "10"))
	require.NoError(t, err)
	require.Len(t, rec.changes, 1)
	assert.True(t, rec.changes[0].Delta().Equal(d("10")))

	// out and back inside one locked section nets to nothing
	refs := []inventory.RecordRef{{ItemID: e.rivets.ID, Location: e.wh}}
	err = e.uc.WithLocks(ctx, refs, func(tx inventory.Tx) error {
		if _, err := tx.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "-4")); err != nil {
			return err
		}
		_, err := tx.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "4"))
		return err
	})
	require.NoError(t, err)
	assert.Len(t, rec.changes, 1)

	// rejected deltas are never reported
	_, err = e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.wh, "-100"))
	require.Error(t, err)
	assert.Len(t, rec.changes, 1)
}

func TestWithLocks_RejectsUnlockedRecord(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()
	err := e.uc.WithLocks(ctx, []inventory.RecordRef{{ItemID: e.rivets.ID, Location: e.wh}}, func(tx inventory.Tx) error {
		_, err := tx.ApplyDelta(ctx, e.delta(e.rivets.ID, e.box1, "1"))
		return err
	})
	assert.Error(t, err)
	qty, _ := e.uc.GetQuantity(ctx, e.rivets.ID, e.box1)
	assert.True(t, qty.IsZero())
}

type busyLocker struct{}

func (busyLocker) Acquire(_ context.Context, keys ...string) (lock.Release, error) {
	return nil, &lock.NotAcquiredError{Key: keys[0]}
}

func TestApplyDelta_LockUnavailable(t *testing.T) {
	e := newEnv(t, busyLocker{})
	_, err := e.uc.ApplyDelta(context.Background(), e.delta(e.rivets.ID, e.wh, "1"))
	assert.ErrorIs(t, err, model.ErrConcurrentModification)
}

func TestApplyDelta_ConcurrentDecrementsNeverOversell(t *testing.T) {
	e := newEnv(t, lock.NewLocalLocker(10*time.Second))
	ctx := context.Background()
	_, err := e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.box1, "10"))
	require.NoError(t, err)

	var ok, short int32
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.uc.ApplyDelta(ctx, e.delta(e.rivets.ID, e.box1, "-1"))
			switch {
			case err == nil:
				atomic.AddInt32(&ok, 1)
			case errors.Is(err, model.ErrInsufficientStock):
				atomic.AddInt32(&short, 1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 10, ok)
	assert.EqualValues(t, 15, short)
	qty, err := e.uc.GetQuantity(ctx, e.rivets.ID, e.box1)
	require.NoError(t, err)
	assert.True(t, qty.IsZero())
}

func TestRetryOnConflict(t *testing.T) {
	ctx := context.Background()
	conflict := &model.ConcurrentModificationError{Key: "k"}

	calls := 0
	err := inventory.RetryOnConflict(ctx, "op", func(context.Context) error {
		calls++
		if calls == 1 {
			return conflict
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	err = inventory.RetryOnConflict(ctx, "op", func(context.Context) error {
		calls++
		return conflict
	})
	assert.ErrorIs(t, err, model.ErrTransientFailure)
	assert.Equal(t, 2, calls)

	calls = 0
	err = inventory.RetryOnConflict(ctx, "op", func(context.Context) error {
		calls++
		return model.ErrInsufficientStock
	})
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.Equal(t, 1, calls)
}
