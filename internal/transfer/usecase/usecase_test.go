package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	invdto "github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/testkit"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer/repository"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/fekuna/omnipos-kit-inventory/pkg/lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	*testkit.Env
	uc        transfer.UseCase
	repo      *repository.MemoryRepository
	publisher *broker.MemoryPublisher
}

func setup(t *testing.T, opts ...testkit.Option) *fixture {
	t.Helper()
	env := testkit.New(t, opts...)
	repo := repository.NewMemoryRepository()
	pub := broker.NewMemoryPublisher()
	return &fixture{
		Env:       env,
		uc:        NewTransferUseCase(repo, env.Ledger, env.Items, env.Locations, pub, nil, env.Log),
		repo:      repo,
		publisher: pub,
	}
}

func (f *fixture) transfer(itemID string, from, to model.Location, qty string) (*model.Transfer, error) {
	return f.uc.CreateTransfer(context.Background(), &dto.CreateTransferInput{
		ItemID:   itemID,
		From:     from,
		To:       to,
		Quantity: testkit.D(qty),
		UserID:   "tech-1",
	})
}

// failingDestination refuses to write any transfer_in movement.
type failingDestination struct {
	inventory.Repository
}

func (r failingDestination) SaveRecordWithMovement(ctx context.Context, rec *model.InventoryRecord, mv *model.InventoryMovement) error {
	if mv.MovementType == model.MovementTransferIn {
		return errors.New("destination store unavailable")
	}
	return r.Repository.SaveRecordWithMovement(ctx, rec, mv)
}

// flakyLocker refuses the first n acquisitions.
type flakyLocker struct {
	lock.Locker
	failures int32
}

func (l *flakyLocker) Acquire(ctx context.Context, keys ...string) (lock.Release, error) {
	if atomic.AddInt32(&l.failures, -1) >= 0 {
		return nil, &lock.NotAcquiredError{Key: keys[0]}
	}
	return l.Locker.Acquire(ctx, keys...)
}

func TestCreateTransfer_WarehouseToKitBox(t *testing.T) {
	f := setup(t)
	w := f.Warehouse(t, "W")
	boxes := f.Kit(t, "K", "B1")
	it := f.Item(t, model.TrackingLot)
	f.Stock(t, it.ID, w, "20")

	tr, err := f.transfer(it.ID, w, boxes[0], "8")
	require.NoError(t, err)
	assert.Equal(t, model.TransferCompleted, tr.Status)
	assert.NotNil(t, tr.CompletedAt)
	assert.Nil(t, tr.CancelReason)
	assert.True(t, f.Qty(t, it.ID, w).Equal(testkit.D("12")))
	assert.True(t, f.Qty(t, it.ID, boxes[0]).Equal(testkit.D("8")))

	stored, err := f.uc.GetTransfer(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TransferCompleted, stored.Status)
	assert.Len(t, f.publisher.OfType(transfer.EventTransferCompleted), 1)
}

func TestCreateTransfer_InsufficientStock(t *testing.T) {
	f := setup(t)
	w := f.Warehouse(t, "W")
	boxes := f.Kit(t, "K", "B1")
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, boxes[0], "10")

	tr, err := f.transfer(it.ID, boxes[0], w, "15")
	var ise *model.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Nil(t, tr)
	assert.True(t, ise.Available.Equal(testkit.D("10")))
	assert.True(t, ise.Requested.Equal(testkit.D("15")))
	assert.True(t, f.Qty(t, it.ID, boxes[0]).Equal(testkit.D("10")))
	assert.True(t, f.Qty(t, it.ID, w).IsZero())
}

func TestCreateTransfer_Validation(t *testing.T) {
	f := setup(t)
	w := f.Warehouse(t, "W")
	boxes := f.Kit(t, "K", "B1")
	kitLevel := model.KitLocation("K", "")
	serial := f.Item(t, model.TrackingSerial)
	bulk := f.Item(t, model.TrackingQuantity)
	f.Stock(t, serial.ID, w, "1")
	f.Stock(t, bulk.ID, w, "5")

	_, err := f.transfer(bulk.ID, w, w, "1")
	assert.ErrorIs(t, err, model.ErrInvalidLocation)

	_, err = f.transfer(bulk.ID, w, boxes[0], "0")
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = f.transfer(bulk.ID, w, boxes[0], "-2")
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = f.transfer(bulk.ID, w, model.WarehouseLocation("GHOST"), "1")
	assert.ErrorIs(t, err, model.ErrInvalidLocation)

	_, err = f.transfer(serial.ID, w, kitLevel, "1")
	var mdb *model.MissingDestinationBoxError
	require.ErrorAs(t, err, &mdb)
	assert.Equal(t, "K", mdb.KitID)

	// quantity-only stock may land at kit level
	tr, err := f.transfer(bulk.ID, w, kitLevel, "2")
	require.NoError(t, err)
	assert.Equal(t, model.TransferCompleted, tr.Status)

	_, total, err := f.uc.ListTransfers(context.Background(), &dto.TransferFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, total, "rejected requests leave no transfer behind")
}

func TestCreateTransfer_KitToKit(t *testing.T) {
	f := setup(t)
	a := f.Kit(t, "KA", "1")
	b := f.Kit(t, "KB", "1")
	it := f.Item(t, model.TrackingSerial)
	f.Stock(t, it.ID, a[0], "1")

	tr, err := f.transfer(it.ID, a[0], b[0], "1")
	require.NoError(t, err)
	assert.Equal(t, model.TransferCompleted, tr.Status)
	assert.True(t, f.Qty(t, it.ID, a[0]).IsZero())
	assert.True(t, f.Qty(t, it.ID, b[0]).Equal(testkit.D("1")))
}

func TestCreateTransfer_DestinationFailureRestoresSource(t *testing.T) {
	f := setup(t, testkit.WithLedgerRepo(func(r inventory.Repository) inventory.Repository {
		return failingDestination{Repository: r}
	}))
	w := f.Warehouse(t, "W")
	boxes := f.Kit(t, "K", "B1")
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, w, "7.5")

	tr, err := f.transfer(it.ID, w, boxes[0], "2.5")
	require.Error(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, model.TransferCancelled, tr.Status)
	require.NotNil(t, tr.CancelReason)
	assert.Contains(t, *tr.CancelReason, "source restored")
	assert.Nil(t, tr.CompletedAt)

	assert.True(t, f.Qty(t, it.ID, w).Equal(testkit.D("7.5")))
	assert.True(t, f.Qty(t, it.ID, boxes[0]).IsZero())

	mvs, _, err := f.Ledger.ListMovements(context.Background(), &invdto.MovementFilters{ReferenceID: tr.ID})
	require.NoError(t, err)
	var types []model.MovementType
	for _, m := range mvs {
		types = append(types, m.MovementType)
	}
	assert.ElementsMatch(t, []model.MovementType{model.MovementTransferOut, model.MovementTransferCompensation}, types)

	stored, err := f.uc.GetTransfer(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TransferCancelled, stored.Status)
	assert.Len(t, f.publisher.OfType(transfer.EventTransferCancelled), 1)
}

func TestCreateTransfer_RetriesLockConflictOnce(t *testing.T) {
	locker := &flakyLocker{Locker: lock.NewLocalLocker(0)}
	f := setup(t, testkit.WithLocker(locker))
	w := f.Warehouse(t, "W")
	boxes := f.Kit(t, "K", "B1")
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, w, "4")

	atomic.StoreInt32(&locker.failures, 1)
	tr, err := f.transfer(it.ID, w, boxes[0], "1")
	require.NoError(t, err)
	assert.Equal(t, model.TransferCompleted, tr.Status)

	atomic.StoreInt32(&locker.failures, 2)
	tr, err = f.transfer(it.ID, w, boxes[0], "1")
	assert.ErrorIs(t, err, model.ErrTransientFailure)
	require.NotNil(t, tr)
	assert.Equal(t, model.TransferCancelled, tr.Status)
	assert.True(t, f.Qty(t, it.ID, w).Equal(testkit.D("3")))
	assert.True(t, f.Qty(t, it.ID, boxes[0]).Equal(testkit.D("1")))
}

func TestCreateTransfer_ConservesTotals(t *testing.T) {
	f := setup(t)
	locs := append(f.Kit(t, "K1", "1", "2"), f.Warehouse(t, "W1"))
	locs = append(locs, f.Kit(t, "K2", "1")...)
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, locs[0], "30")
	f.Stock(t, it.ID, locs[2], "12")
	start := f.Total(t, it.ID)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		from := locs[rng.Intn(len(locs))]
		to := locs[rng.Intn(len(locs))]
		qty := []string{"1", "2", "5", "13"}[rng.Intn(4)]
		_, err := f.transfer(it.ID, from, to, qty)
		if err != nil {
			assert.True(t, errors.Is(err, model.ErrInsufficientStock) || errors.Is(err, model.ErrInvalidLocation), err)
		}
		for _, l := range locs {
			assert.False(t, f.Qty(t, it.ID, l).IsNegative())
		}
	}
	assert.True(t, f.Total(t, it.ID).Equal(start))
}

func TestCreateTransfer_OpposingTransfersDoNotDeadlock(t *testing.T) {
	f := setup(t)
	a := f.Kit(t, "KA", "1")[0]
	b := f.Warehouse(t, "WB")
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, a, "100")
	f.Stock(t, it.ID, b, "100")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := f.transfer(it.ID, a, b, "3")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := f.transfer(it.ID, b, a, "2")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, f.Qty(t, it.ID, a).Equal(testkit.D("80")))
	assert.True(t, f.Qty(t, it.ID, b).Equal(testkit.D("120")))
}

func TestListTransfers_Filters(t *testing.T) {
	f := setup(t)
	w := f.Warehouse(t, "W")
	boxes := f.Kit(t, "K", "1", "2")
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, w, "10")

	_, err := f.transfer(it.ID, w, boxes[0], "2")
	require.NoError(t, err)
	_, err = f.transfer(it.ID, w, boxes[1], "3")
	require.NoError(t, err)

	list, total, err := f.uc.ListTransfers(context.Background(), &dto.TransferFilters{Location: &boxes[1]})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.True(t, list[0].Quantity.Equal(testkit.D("3")))

	_, total, err = f.uc.ListTransfers(context.Background(), &dto.TransferFilters{Location: &w, Status: model.TransferCompleted})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, err = f.uc.GetTransfer(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// statusOutage fails the first n status writes.
type statusOutage struct {
	*repository.MemoryRepository
	failures int32
	calls    int32
}

func (r *statusOutage) UpdateStatus(ctx context.Context, t *model.Transfer) error {
	atomic.AddInt32(&r.calls, 1)
	if atomic.AddInt32(&r.failures, -1) >= 0 {
		return errors.New("status store down")
	}
	return r.MemoryRepository.UpdateStatus(ctx, t)
}

func TestCreateTransfer_StatusWriteFailure(t *testing.T) {
	t.Run("recovers on retry", func(t *testing.T) {
		env := testkit.New(t)
		repo := &statusOutage{MemoryRepository: repository.NewMemoryRepository(), failures: 1}
		uc := NewTransferUseCase(repo, env.Ledger, env.Items, env.Locations, nil, nil, env.Log)
		w := env.Warehouse(t, "W")
		boxes := env.Kit(t, "K", "1")
		it := env.Item(t, model.TrackingQuantity)
		env.Stock(t, it.ID, w, "20")

		tr, err := uc.CreateTransfer(context.Background(), &dto.CreateTransferInput{
			ItemID: it.ID, From: w, To: boxes[0], Quantity: testkit.D("8"),
		})
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&repo.calls))

		stored, err := uc.GetTransfer(context.Background(), tr.ID)
		require.NoError(t, err)
		assert.Equal(t, model.TransferCompleted, stored.Status)
		assert.NotNil(t, stored.CompletedAt)
	})

	t.Run("returns the completed transfer when the store stays down", func(t *testing.T) {
		env := testkit.New(t)
		repo := &statusOutage{MemoryRepository: repository.NewMemoryRepository(), failures: 100}
		uc := NewTransferUseCase(repo, env.Ledger, env.Items, env.Locations, nil, nil, env.Log)
		w := env.Warehouse(t, "W")
		boxes := env.Kit(t, "K", "1")
		it := env.Item(t, model.TrackingQuantity)
		env.Stock(t, it.ID, w, "20")

		tr, err := uc.CreateTransfer(context.Background(), &dto.CreateTransferInput{
			ItemID: it.ID, From: w, To: boxes[0], Quantity: testkit.D("8"),
		})
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.Equal(t, model.TransferCompleted, tr.Status)
		assert.NotNil(t, tr.CompletedAt)
		assert.Equal(t, int32(outcomeAttempts), atomic.LoadInt32(&repo.calls))

		assert.True(t, env.Qty(t, it.ID, w).Equal(testkit.D("12")))
		assert.True(t, env.Qty(t, it.ID, boxes[0]).Equal(testkit.D("8")))
	})
}
