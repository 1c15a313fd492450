package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	invdto "github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/repository"
	"github.com/fekuna/omnipos-kit-inventory/internal/testkit"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	*testkit.Env
	uc        reorder.UseCase
	repo      reorder.Repository
	publisher *broker.MemoryPublisher
}

func setup(t *testing.T, opts ...testkit.Option) *fixture {
	t.Helper()
	return setupWithRepo(t, repository.NewMemoryRepository(), opts...)
}

func setupWithRepo(t *testing.T, repo reorder.Repository, opts ...testkit.Option) *fixture {
	t.Helper()
	env := testkit.New(t, opts...)
	pub := broker.NewMemoryPublisher()
	uc := NewReorderUseCase(repo, env.Ledger, env.Items, env.Locations, env.Locker, pub, nil, env.Log)
	env.Ledger.SetReferenceChecker(uc)
	return &fixture{Env: env, uc: uc, repo: repo, publisher: pub}
}

func (f *fixture) create(t *testing.T, itemID, kitID, qty string) *model.ReorderRequest {
	t.Helper()
	req, err := f.uc.Create(context.Background(), &dto.CreateReorderInput{
		ItemID:      itemID,
		OwningKitID: kitID,
		Quantity:    testkit.D(qty),
		UserID:      "planner",
	})
	require.NoError(t, err)
	return req
}

func (f *fixture) advanceToOrdered(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.uc.Approve(ctx, &dto.ApproveInput{RequestID: id, UserID: "lead"})
	require.NoError(t, err)
	_, err = f.uc.MarkOrdered(ctx, &dto.MarkOrderedInput{RequestID: id, VendorReference: "PO-1", UserID: "buyer"})
	require.NoError(t, err)
}

// failingUpdate refuses to store fulfilled requests.
type failingUpdate struct {
	reorder.Repository
}

func (r failingUpdate) Update(ctx context.Context, req *model.ReorderRequest) error {
	if req.Status == model.ReorderFulfilled {
		return errors.New("write rejected")
	}
	return r.Repository.Update(ctx, req)
}

func TestCreate_Defaults(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)

	req := f.create(t, it.ID, "K1", "12")

	assert.Equal(t, model.ReorderPending, req.Status)
	assert.Equal(t, model.PriorityMedium, req.Priority)
	assert.False(t, req.IsAutomatic)
	require.NotNil(t, req.OwningKitID)
	assert.Equal(t, "K1", *req.OwningKitID)
	require.NotNil(t, req.RequestedBy)
	assert.Equal(t, "planner", *req.RequestedBy)
	assert.Len(t, f.publisher.OfType(reorder.EventReorderCreated), 1)
}

func TestCreate_Validation(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)
	serial := f.Item(t, model.TrackingSerial)
	ctx := context.Background()

	tests := []struct {
		name  string
		input dto.CreateReorderInput
		want  error
	}{
		{"zero quantity", dto.CreateReorderInput{ItemID: it.ID, Quantity: testkit.D("0")}, model.ErrInvalidQuantity},
		{"serial above one", dto.CreateReorderInput{ItemID: serial.ID, Quantity: testkit.D("2")}, model.ErrInvalidQuantity},
		{"unknown kit", dto.CreateReorderInput{ItemID: it.ID, OwningKitID: "nope", Quantity: testkit.D("1")}, model.ErrInvalidLocation},
		{"unknown item", dto.CreateReorderInput{ItemID: "missing", Quantity: testkit.D("1")}, model.ErrNotFound},
		{"bad priority", dto.CreateReorderInput{ItemID: it.ID, Quantity: testkit.D("1"), Priority: "asap"}, model.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Create(ctx, &tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreate_ManualDuplicatesAllowed(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)

	a := f.create(t, it.ID, "K1", "5")
	b := f.create(t, it.ID, "K1", "5")

	assert.NotEqual(t, a.ID, b.ID)
	open, err := f.repo.FindOpenByOwner(context.Background(), it.ID, "K1")
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestFulfill_RequiresOrderedStatus(t *testing.T) {
	f := setup(t)
	boxes := f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)
	ctx := context.Background()
	req := f.create(t, it.ID, "K1", "6")

	_, err := f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: boxes[0]})
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)

	_, err = f.uc.Approve(ctx, &dto.ApproveInput{RequestID: req.ID, UserID: "lead"})
	require.NoError(t, err)
	_, err = f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: boxes[0]})
	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
	assert.True(t, f.Qty(t, it.ID, boxes[0]).IsZero())

	_, err = f.uc.MarkOrdered(ctx, &dto.MarkOrderedInput{RequestID: req.ID, VendorReference: "PO-77", UserID: "buyer"})
	require.NoError(t, err)
	done, err := f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: boxes[0], UserID: "tech"})
	require.NoError(t, err)

	assert.Equal(t, model.ReorderFulfilled, done.Status)
	require.NotNil(t, done.FulfillmentBox)
	assert.Equal(t, boxes[0].BoxID, *done.FulfillmentBox)
	require.NotNil(t, done.VendorReference)
	assert.Equal(t, "PO-77", *done.VendorReference)
	assert.NotNil(t, done.ApprovedAt)
	assert.NotNil(t, done.OrderedAt)
	assert.NotNil(t, done.FulfilledAt)
	assert.True(t, testkit.D("6").Equal(f.Qty(t, it.ID, boxes[0])))

	movements, _, err := f.Ledger.ListMovements(ctx, &invdto.MovementFilters{ReferenceID: req.ID})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, model.MovementReorderFulfillment, movements[0].MovementType)

	assert.Len(t, f.publisher.OfType(reorder.EventReorderPrefix+"fulfilled"), 1)
}

func TestFulfill_LocationMustMatchOwner(t *testing.T) {
	f := setup(t)
	k1 := f.Kit(t, "K1", "1")
	k2 := f.Kit(t, "K2", "1")
	w := f.Warehouse(t, "W1")
	it := f.Item(t, model.TrackingQuantity)
	ctx := context.Background()
	req := f.create(t, it.ID, "K1", "3")
	f.advanceToOrdered(t, req.ID)

	for name, loc := range map[string]model.Location{
		"other kit":   k2[0],
		"warehouse":   w,
		"kit no box":  model.KitLocation("K1", ""),
		"foreign box": model.KitLocation("K1", k2[0].BoxID),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: loc})
			assert.ErrorIs(t, err, model.ErrInvalidLocation)
		})
	}

	got, err := f.uc.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReorderOrdered, got.Status)
	assert.True(t, f.Qty(t, it.ID, k1[0]).IsZero())
}

func TestFulfill_WarehouseLevel(t *testing.T) {
	f := setup(t)
	boxes := f.Kit(t, "K1", "1")
	w := f.Warehouse(t, "W1")
	it := f.Item(t, model.TrackingQuantity)
	ctx := context.Background()
	req := f.create(t, it.ID, "", "40")
	assert.Nil(t, req.OwningKitID)
	f.advanceToOrdered(t, req.ID)

	_, err := f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: boxes[0]})
	assert.ErrorIs(t, err, model.ErrInvalidLocation)

	done, err := f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: w})
	require.NoError(t, err)
	require.NotNil(t, done.FulfillmentBox)
	assert.Equal(t, "W1", *done.FulfillmentBox)
	assert.True(t, testkit.D("40").Equal(f.Qty(t, it.ID, w)))
}

func TestFulfill_UnrecordedStatusWithdrawsStock(t *testing.T) {
	f := setupWithRepo(t, failingUpdate{repository.NewMemoryRepository()})
	boxes := f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)
	req := f.create(t, it.ID, "K1", "5")
	f.advanceToOrdered(t, req.ID)

	_, err := f.uc.Fulfill(context.Background(), &dto.FulfillInput{RequestID: req.ID, Location: boxes[0]})
	require.Error(t, err)

	assert.True(t, f.Qty(t, it.ID, boxes[0]).IsZero())
	got, err := f.uc.Get(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReorderOrdered, got.Status)
}

// failOnce refuses the first fulfilled write only.
type failOnce struct {
	reorder.Repository
	failed int32
}

func (r *failOnce) Update(ctx context.Context, req *model.ReorderRequest) error {
	if req.Status == model.ReorderFulfilled && atomic.CompareAndSwapInt32(&r.failed, 0, 1) {
		return errors.New("write rejected")
	}
	return r.Repository.Update(ctx, req)
}

// stuckWithdrawal refuses every adjustment out of the ledger.
type stuckWithdrawal struct {
	inventory.Repository
}

func (r stuckWithdrawal) SaveRecordWithMovement(ctx context.Context, rec *model.InventoryRecord, mv *model.InventoryMovement) error {
	if mv.MovementType == model.MovementAdjustment && mv.QuantityChange.IsNegative() {
		return errors.New("ledger store unavailable")
	}
	return r.Repository.SaveRecordWithMovement(ctx, rec, mv)
}

func TestFulfill_FailedWithdrawalIsNotCreditedTwice(t *testing.T) {
	repo := &failOnce{Repository: repository.NewMemoryRepository()}
	f := setupWithRepo(t, repo, testkit.WithLedgerRepo(func(r inventory.Repository) inventory.Repository {
		return stuckWithdrawal{Repository: r}
	}))
	boxes := f.Kit(t, "K1", "1", "2")
	it := f.Item(t, model.TrackingQuantity)
	req := f.create(t, it.ID, "K1", "5")
	f.advanceToOrdered(t, req.ID)
	ctx := context.Background()

	_, err := f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: boxes[0]})
	require.Error(t, err)
	assert.True(t, testkit.D("5").Equal(f.Qty(t, it.ID, boxes[0])))
	require.Len(t, f.publisher.OfType(reorder.EventFulfillmentUnreconciled), 1)

	_, err = f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: boxes[1]})
	assert.ErrorIs(t, err, model.ErrInvalidLocation)

	done, err := f.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.ID, Location: boxes[0]})
	require.NoError(t, err)
	assert.Equal(t, model.ReorderFulfilled, done.Status)
	require.NotNil(t, done.FulfillmentBox)
	assert.Equal(t, boxes[0].BoxID, *done.FulfillmentBox)
	assert.True(t, testkit.D("5").Equal(f.Total(t, it.ID)))
}

func TestCancel(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)
	ctx := context.Background()

	t.Run("from every open status", func(t *testing.T) {
		pending := f.create(t, it.ID, "K1", "1")
		approved := f.create(t, it.ID, "K1", "1")
		_, err := f.uc.Approve(ctx, &dto.ApproveInput{RequestID: approved.ID})
		require.NoError(t, err)
		ordered := f.create(t, it.ID, "K1", "1")
		f.advanceToOrdered(t, ordered.ID)

		for _, id := range []string{pending.ID, approved.ID, ordered.ID} {
			got, err := f.uc.Cancel(ctx, &dto.CancelInput{RequestID: id, Reason: "not needed", UserID: "lead"})
			require.NoError(t, err)
			assert.Equal(t, model.ReorderCancelled, got.Status)
			require.NotNil(t, got.CancelReason)
			assert.Equal(t, "not needed", *got.CancelReason)
		}
	})

	t.Run("terminal states are final", func(t *testing.T) {
		req := f.create(t, it.ID, "K1", "1")
		_, err := f.uc.Cancel(ctx, &dto.CancelInput{RequestID: req.ID})
		require.NoError(t, err)

		_, err = f.uc.Cancel(ctx, &dto.CancelInput{RequestID: req.ID})
		assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
		_, err = f.uc.Approve(ctx, &dto.ApproveInput{RequestID: req.ID})
		assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.uc.Cancel(ctx, &dto.CancelInput{RequestID: "missing"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestApprove_ConcurrentOnlyOneWins(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)
	req := f.create(t, it.ID, "K1", "2")

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ok  int
		bad int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Approve(context.Background(), &dto.ApproveInput{RequestID: req.ID})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, model.ErrInvalidStateTransition) {
				bad++
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
	assert.Equal(t, 7, bad)
}

func TestCreateAutomatic_Deduplicates(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)
	ctx := context.Background()

	in := &dto.AutomaticReorderInput{ItemID: it.ID, KitID: "K1", Quantity: testkit.D("2.4"), Priority: model.PriorityHigh}

	var wg sync.WaitGroup
	results := make([]bool, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, created, err := f.uc.CreateAutomatic(ctx, in)
			assert.NoError(t, err)
			results[i] = created
		}(i)
	}
	wg.Wait()

	created := 0
	for _, c := range results {
		if c {
			created++
		}
	}
	assert.Equal(t, 1, created)

	open, err := f.repo.FindOpenByOwner(ctx, it.ID, "K1")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].IsAutomatic)
	assert.True(t, testkit.D("2.4").Equal(open[0].QuantityRequested))
	assert.Equal(t, model.PriorityHigh, open[0].Priority)
}

func TestCreateAutomatic_RoundsWholeUnitsUp(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	serial := f.Item(t, model.TrackingSerial)

	req, created, err := f.uc.CreateAutomatic(context.Background(), &dto.AutomaticReorderInput{
		ItemID:   serial.ID,
		KitID:    "K1",
		Quantity: testkit.D("0.4"),
		Priority: model.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, testkit.D("1").Equal(req.QuantityRequested))
}

func TestCreateAutomatic_SerializedItemCappedAtOneUnit(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	serial := f.Item(t, model.TrackingSerial)
	ctx := context.Background()

	req, created, err := f.uc.CreateAutomatic(ctx, &dto.AutomaticReorderInput{
		ItemID:   serial.ID,
		KitID:    "K1",
		Quantity: testkit.D("2"),
		Priority: model.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, testkit.D("1").Equal(req.QuantityRequested))

	_, err = f.uc.Create(ctx, &dto.CreateReorderInput{ItemID: serial.ID, OwningKitID: "K1", Quantity: testkit.D("2")})
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
}

func TestCancelAutomaticOnRecovery(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)
	ctx := context.Background()

	manual := f.create(t, it.ID, "K1", "4")
	auto, created, err := f.uc.CreateAutomatic(ctx, &dto.AutomaticReorderInput{ItemID: it.ID, KitID: "K1", Quantity: testkit.D("4"), Priority: model.PriorityMedium})
	require.NoError(t, err)
	require.True(t, created)

	n, err := f.uc.CancelAutomaticOnRecovery(ctx, it.ID, "K1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := f.uc.Get(ctx, auto.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReorderCancelled, got.Status)
	require.NotNil(t, got.CancelReason)
	assert.Equal(t, reorder.RecoveryCancelReason, *got.CancelReason)

	got, err = f.uc.Get(ctx, manual.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReorderPending, got.Status)
}

func TestHasOpenReference_KeepsEmptyRecord(t *testing.T) {
	f := setup(t)
	boxes := f.Kit(t, "K1", "1")
	it := f.Item(t, model.TrackingQuantity)
	ctx := context.Background()

	f.Stock(t, it.ID, boxes[0], "2")
	f.create(t, it.ID, "K1", "5")
	f.Stock(t, it.ID, boxes[0], "-2")

	rec, err := f.Ledger.GetRecord(ctx, it.ID, boxes[0])
	require.NoError(t, err)
	assert.True(t, rec.Quantity.IsZero())

	open, err := f.uc.HasOpenReference(ctx, it.ID, model.WarehouseLocation("W9"))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestList_Filters(t *testing.T) {
	f := setup(t)
	f.Kit(t, "K1", "1")
	f.Kit(t, "K2", "1")
	it := f.Item(t, model.TrackingQuantity)
	ctx := context.Background()

	a := f.create(t, it.ID, "K1", "1")
	f.create(t, it.ID, "K2", "1")
	f.create(t, it.ID, "", "1")
	_, err := f.uc.Cancel(ctx, &dto.CancelInput{RequestID: a.ID})
	require.NoError(t, err)

	_, total, err := f.uc.List(ctx, &dto.ReorderFilters{KitID: "K1"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, total, err = f.uc.List(ctx, &dto.ReorderFilters{WarehouseLevel: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, total, err = f.uc.List(ctx, &dto.ReorderFilters{ItemID: it.ID, OpenOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
