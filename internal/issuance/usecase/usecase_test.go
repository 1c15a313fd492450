package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-kit-inventory/internal/issuance"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/repository"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/testkit"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	*testkit.Env
	uc        issuance.UseCase
	publisher *broker.MemoryPublisher
}

func setup(t *testing.T, repo issuance.Repository) *fixture {
	t.Helper()
	env := testkit.New(t)
	if repo == nil {
		repo = repository.NewMemoryRepository()
	}
	pub := broker.NewMemoryPublisher()
	return &fixture{
		Env:       env,
		uc:        NewIssuanceUseCase(repo, env.Ledger, env.Items, pub, nil, env.Log),
		publisher: pub,
	}
}

func (f *fixture) issue(itemID string, loc model.Location, qty string) (*model.Issuance, error) {
	return f.uc.Issue(context.Background(), &dto.IssueInput{
		ItemID:    itemID,
		Location:  loc,
		Quantity:  testkit.D(qty),
		Recipient: "J. Rivera",
		Purpose:   "A-check",
		UserID:    "stores-clerk",
	})
}

func TestIssue_RecordsImmutableIssuance(t *testing.T) {
	f := setup(t, nil)
	box := f.Kit(t, "K", "1")[0]
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, box, "10")

	is, err := f.issue(it.ID, box, "6")
	require.NoError(t, err)
	assert.True(t, is.Quantity.Equal(testkit.D("6")))
	assert.Equal(t, "J. Rivera", is.Recipient)
	require.NotNil(t, is.IssuedBy)
	assert.Equal(t, "stores-clerk", *is.IssuedBy)
	assert.False(t, is.IssuedAt.IsZero())
	assert.True(t, f.Qty(t, it.ID, box).Equal(testkit.D("4")))

	got, err := f.uc.GetIssuance(context.Background(), is.ID)
	require.NoError(t, err)
	assert.Equal(t, is.ID, got.ID)
	assert.Len(t, f.publisher.OfType(issuance.EventIssuanceRecorded), 1)
}

func TestIssue_InsufficientStockRecordsNothing(t *testing.T) {
	f := setup(t, nil)
	box := f.Kit(t, "K", "1")[0]
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, box, "3")

	_, err := f.issue(it.ID, box, "4")
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.True(t, f.Qty(t, it.ID, box).Equal(testkit.D("3")))

	_, total, err := f.uc.ListIssuances(context.Background(), &dto.IssuanceFilters{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, f.publisher.Events())
}

func TestIssue_Validation(t *testing.T) {
	f := setup(t, nil)
	box := f.Kit(t, "K", "1")[0]
	w := f.Warehouse(t, "W")
	serial := f.Item(t, model.TrackingSerial)
	f.Stock(t, serial.ID, box, "1")

	_, err := f.issue(serial.ID, w, "1")
	assert.ErrorIs(t, err, model.ErrInvalidLocation)

	_, err = f.issue(serial.ID, box, "0")
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = f.issue(serial.ID, box, "0.5")
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = f.uc.Issue(context.Background(), &dto.IssueInput{ItemID: serial.ID, Location: box, Quantity: testkit.D("1")})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.issue("ghost", box, "1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// Two technicians drawing 6 each from a kit holding 10.
func TestIssue_ConcurrentOverdrawOnlyOneWins(t *testing.T) {
	for run := 0; run < 20; run++ {
		f := setup(t, nil)
		box := f.Kit(t, "K", "1")[0]
		it := f.Item(t, model.TrackingQuantity)
		f.Stock(t, it.ID, box, "10")

		errs := make([]error, 2)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				_, errs[i] = f.issue(it.ID, box, "6")
			}(i)
		}
		close(start)
		wg.Wait()

		var ok, short int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, model.ErrInsufficientStock):
				short++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, ok)
		require.Equal(t, 1, short)
		require.True(t, f.Qty(t, it.ID, box).Equal(testkit.D("4")))

		_, total, err := f.uc.ListIssuances(context.Background(), &dto.IssuanceFilters{ItemID: it.ID})
		require.NoError(t, err)
		require.Equal(t, 1, total)
	}
}

type brokenRepo struct{ issuance.Repository }

func (brokenRepo) Create(context.Context, *model.Issuance) error { return errors.New("write failed") }

func TestIssue_RecordFailureReturnsStock(t *testing.T) {
	f := setup(t, brokenRepo{Repository: repository.NewMemoryRepository()})
	box := f.Kit(t, "K", "1")[0]
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, box, "5")

	_, err := f.issue(it.ID, box, "2")
	require.Error(t, err)
	assert.True(t, f.Qty(t, it.ID, box).Equal(testkit.D("5")))
}

func TestListIssuances_Filters(t *testing.T) {
	f := setup(t, nil)
	a := f.Kit(t, "KA", "1")[0]
	b := f.Kit(t, "KB", "1")[0]
	it := f.Item(t, model.TrackingQuantity)
	f.Stock(t, it.ID, a, "5")
	f.Stock(t, it.ID, b, "5")

	_, err := f.issue(it.ID, a, "1")
	require.NoError(t, err)
	_, err = f.issue(it.ID, b, "2")
	require.NoError(t, err)
	_, err = f.uc.Issue(context.Background(), &dto.IssueInput{
		ItemID: it.ID, Location: b, Quantity: testkit.D("1"), Recipient: "T. Okafor", WorkOrderID: "WO-9",
	})
	require.NoError(t, err)

	_, total, err := f.uc.ListIssuances(context.Background(), &dto.IssuanceFilters{KitID: "KB"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	list, total, err := f.uc.ListIssuances(context.Background(), &dto.IssuanceFilters{WorkOrderID: "WO-9"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "T. Okafor", list[0].Recipient)
}
