package threshold

import (
	"context"
	"errors"
	"sync"
	"testing"

	invdto "github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance"
	issuancedto "github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	issuancerepo "github.com/fekuna/omnipos-kit-inventory/internal/issuance/repository"
	issuanceuc "github.com/fekuna/omnipos-kit-inventory/internal/issuance/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
	reorderrepo "github.com/fekuna/omnipos-kit-inventory/internal/reorder/repository"
	reorderuc "github.com/fekuna/omnipos-kit-inventory/internal/reorder/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/testkit"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCreator struct {
	mu        sync.Mutex
	created   []dto.AutomaticReorderInput
	cancelled []string
	err       error
}

func (r *recordingCreator) CreateAutomatic(_ context.Context, in *dto.AutomaticReorderInput) (*model.ReorderRequest, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, false, r.err
	}
	r.created = append(r.created, *in)
	return &model.ReorderRequest{ID: "r1", ItemID: in.ItemID}, true, nil
}

func (r *recordingCreator) CancelAutomaticOnRecovery(_ context.Context, itemID, kitID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = append(r.cancelled, itemID+"@"+kitID)
	return 1, nil
}

func change(loc model.Location, before, after, level string) invdto.QuantityChange {
	c := invdto.QuantityChange{
		ItemID:       "item-1",
		Location:     loc,
		Before:       decimal.RequireFromString(before),
		After:        decimal.RequireFromString(after),
		MovementType: model.MovementIssuance,
	}
	if level != "" {
		c.MinimumStockLevel = decimal.NewNullDecimal(decimal.RequireFromString(level))
	}
	return c
}

func TestMonitor_Evaluate(t *testing.T) {
	box := model.KitLocation("K1", "b1")
	ctx := context.Background()

	t.Run("at or below minimum raises a request", func(t *testing.T) {
		rc := &recordingCreator{}
		m := NewMonitor(rc, DefaultPolicy(), logger.NewNop())

		require.NoError(t, m.Evaluate(ctx, change(box, "10", "4", "5")))
		require.NoError(t, m.Evaluate(ctx, change(box, "6", "5", "5")))

		require.Len(t, rc.created, 2)
		assert.Equal(t, "K1", rc.created[0].KitID)
		assert.Equal(t, model.PriorityMedium, rc.created[0].Priority)
		assert.True(t, decimal.NewFromInt(6).Equal(rc.created[0].Quantity))
	})

	t.Run("ignored changes", func(t *testing.T) {
		rc := &recordingCreator{}
		m := NewMonitor(rc, DefaultPolicy(), logger.NewNop())

		require.NoError(t, m.Evaluate(ctx, change(box, "10", "6", "5")))
		require.NoError(t, m.Evaluate(ctx, change(box, "10", "1", "")))
		require.NoError(t, m.Evaluate(ctx, change(model.WarehouseLocation("W1"), "10", "1", "5")))

		assert.Empty(t, rc.created)
		assert.Empty(t, rc.cancelled)
	})

	t.Run("recovery cancels only when enabled", func(t *testing.T) {
		rc := &recordingCreator{}
		NewMonitor(rc, DefaultPolicy(), logger.NewNop()).OnQuantityChanged(ctx, change(box, "3", "9", "5"))
		assert.Empty(t, rc.cancelled)

		p := DefaultPolicy()
		p.AutoCancelOnRecovery = true
		m := NewMonitor(rc, p, logger.NewNop())
		m.OnQuantityChanged(ctx, change(box, "3", "9", "5"))
		m.OnQuantityChanged(ctx, change(box, "7", "9", "5"))
		assert.Equal(t, []string{"item-1@K1"}, rc.cancelled)
	})

	t.Run("creator failure is reported", func(t *testing.T) {
		rc := &recordingCreator{err: errors.New("store down")}
		m := NewMonitor(rc, DefaultPolicy(), logger.NewNop())

		assert.Error(t, m.Evaluate(ctx, change(box, "6", "2", "5")))
		m.OnQuantityChanged(ctx, change(box, "6", "2", "5"))
	})
}

type engine struct {
	*testkit.Env
	reorders  reorder.UseCase
	issuances issuance.UseCase
}

func newEngine(t *testing.T, p Policy) *engine {
	t.Helper()
	env := testkit.New(t)
	reorders := reorderuc.NewReorderUseCase(reorderrepo.NewMemoryRepository(), env.Ledger, env.Items, env.Locations, env.Locker, nil, nil, env.Log)
	env.Ledger.SetReferenceChecker(reorders)
	env.Ledger.RegisterObserver(NewMonitor(reorders, p, env.Log))
	return &engine{
		Env:       env,
		reorders:  reorders,
		issuances: issuanceuc.NewIssuanceUseCase(issuancerepo.NewMemoryRepository(), env.Ledger, env.Items, nil, nil, env.Log),
	}
}

func (e *engine) issue(t *testing.T, itemID string, loc model.Location, qty string) {
	t.Helper()
	_, err := e.issuances.Issue(context.Background(), &issuancedto.IssueInput{
		ItemID:    itemID,
		Location:  loc,
		Quantity:  testkit.D(qty),
		Recipient: "tech-7",
		Purpose:   "line maintenance",
	})
	require.NoError(t, err)
}

func (e *engine) open(t *testing.T, itemID, kitID string) []model.ReorderRequest {
	t.Helper()
	list, _, err := e.reorders.List(context.Background(), &dto.ReorderFilters{ItemID: itemID, KitID: kitID, OpenOnly: true})
	require.NoError(t, err)
	return list
}

func TestIssuanceBelowMinimumRaisesAutomaticReorder(t *testing.T) {
	e := newEngine(t, DefaultPolicy())
	boxes := e.Kit(t, "K1", "1")
	it := e.Item(t, model.TrackingQuantity)
	e.Stock(t, it.ID, boxes[0], "10")
	e.SetMinimum(t, it.ID, boxes[0], "5")

	e.issue(t, it.ID, boxes[0], "6")

	assert.True(t, testkit.D("4").Equal(e.Qty(t, it.ID, boxes[0])))
	open := e.open(t, it.ID, "K1")
	require.Len(t, open, 1)
	assert.True(t, open[0].IsAutomatic)
	assert.Equal(t, model.ReorderPending, open[0].Status)
	assert.Equal(t, model.PriorityMedium, open[0].Priority)

	// further consumption is covered by the open request
	e.issue(t, it.ID, boxes[0], "3")
	assert.Len(t, e.open(t, it.ID, "K1"), 1)
}

func TestRepeatedConsumptionRaisesOneRequest(t *testing.T) {
	e := newEngine(t, DefaultPolicy())
	boxes := e.Kit(t, "K1", "1")
	it := e.Item(t, model.TrackingQuantity)
	e.Stock(t, it.ID, boxes[0], "20")
	e.SetMinimum(t, it.ID, boxes[0], "15")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.issue(t, it.ID, boxes[0], "1")
		}()
	}
	wg.Wait()

	assert.True(t, testkit.D("10").Equal(e.Qty(t, it.ID, boxes[0])))
	assert.Len(t, e.open(t, it.ID, "K1"), 1)
}

func TestRecoveryCancelsPendingAutomaticReorder(t *testing.T) {
	p := DefaultPolicy()
	p.AutoCancelOnRecovery = true
	e := newEngine(t, p)
	boxes := e.Kit(t, "K1", "1")
	it := e.Item(t, model.TrackingQuantity)
	e.Stock(t, it.ID, boxes[0], "10")
	e.SetMinimum(t, it.ID, boxes[0], "5")

	e.issue(t, it.ID, boxes[0], "9")
	open := e.open(t, it.ID, "K1")
	require.Len(t, open, 1)
	assert.Equal(t, model.PriorityUrgent, open[0].Priority)

	e.Stock(t, it.ID, boxes[0], "6")

	assert.Empty(t, e.open(t, it.ID, "K1"))
	got, err := e.reorders.Get(context.Background(), open[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReorderCancelled, got.Status)
}

func TestFulfillmentAboveMinimumLeavesNoOpenRequest(t *testing.T) {
	e := newEngine(t, DefaultPolicy())
	boxes := e.Kit(t, "K1", "1")
	it := e.Item(t, model.TrackingQuantity)
	ctx := context.Background()
	e.Stock(t, it.ID, boxes[0], "10")
	e.SetMinimum(t, it.ID, boxes[0], "5")
	e.issue(t, it.ID, boxes[0], "7")

	open := e.open(t, it.ID, "K1")
	require.Len(t, open, 1)
	id := open[0].ID
	_, err := e.reorders.Approve(ctx, &dto.ApproveInput{RequestID: id})
	require.NoError(t, err)
	_, err = e.reorders.MarkOrdered(ctx, &dto.MarkOrderedInput{RequestID: id, VendorReference: "PO-9"})
	require.NoError(t, err)
	_, err = e.reorders.Fulfill(ctx, &dto.FulfillInput{RequestID: id, Location: boxes[0]})
	require.NoError(t, err)

	// 3 + restock of 7 lands above the minimum
	assert.True(t, testkit.D("10").Equal(e.Qty(t, it.ID, boxes[0])))
	assert.Empty(t, e.open(t, it.ID, "K1"))
}

func TestSerializedToolBelowMinimumRaisesSingleUnitReorder(t *testing.T) {
	for _, tracking := range []model.TrackingType{model.TrackingSerial, model.TrackingBoth} {
		t.Run(string(tracking), func(t *testing.T) {
			e := newEngine(t, DefaultPolicy())
			boxes := e.Kit(t, "K1", "1")
			tool := e.Item(t, tracking)
			e.Stock(t, tool.ID, boxes[0], "1")
			e.SetMinimum(t, tool.ID, boxes[0], "1")

			e.issue(t, tool.ID, boxes[0], "1")

			open := e.open(t, tool.ID, "K1")
			require.Len(t, open, 1)
			assert.True(t, open[0].IsAutomatic)
			assert.Equal(t, model.PriorityUrgent, open[0].Priority)
			assert.True(t, testkit.D("1").Equal(open[0].QuantityRequested))

			ctx := context.Background()
			id := open[0].ID
			_, err := e.reorders.Approve(ctx, &dto.ApproveInput{RequestID: id})
			require.NoError(t, err)
			_, err = e.reorders.MarkOrdered(ctx, &dto.MarkOrderedInput{RequestID: id})
			require.NoError(t, err)
			_, err = e.reorders.Fulfill(ctx, &dto.FulfillInput{RequestID: id, Location: boxes[0]})
			require.NoError(t, err)
			assert.True(t, testkit.D("1").Equal(e.Total(t, tool.ID)))
		})
	}
}
