// Package testkit wires the catalog, location registry and ledger on memory
// repositories for use case tests further up the stack.
package testkit

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	invdto "github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	invrepo "github.com/fekuna/omnipos-kit-inventory/internal/inventory/repository"
	invuc "github.com/fekuna/omnipos-kit-inventory/internal/inventory/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/item"
	itemdto "github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	itemrepo "github.com/fekuna/omnipos-kit-inventory/internal/item/repository"
	itemuc "github.com/fekuna/omnipos-kit-inventory/internal/item/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/location"
	locdto "github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	locrepo "github.com/fekuna/omnipos-kit-inventory/internal/location/repository"
	locuc "github.com/fekuna/omnipos-kit-inventory/internal/location/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/lock"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type Env struct {
	Items      item.UseCase
	Locations  location.UseCase
	Ledger     inventory.UseCase
	LedgerRepo *invrepo.MemoryRepository
	Locker     lock.Locker
	Log        logger.ZapLogger
}

type options struct {
	wrapRepo func(inventory.Repository) inventory.Repository
	locker   lock.Locker
}

type Option func(*options)

// WithLedgerRepo lets a test put a wrapper (e.g. fault injection) in front of
// the in-memory ledger repository.
func WithLedgerRepo(wrap func(inventory.Repository) inventory.Repository) Option {
	return func(o *options) { o.wrapRepo = wrap }
}

func WithLocker(l lock.Locker) Option {
	return func(o *options) { o.locker = l }
}

func New(t testing.TB, opts ...Option) *Env {
	t.Helper()
	o := &options{locker: lock.NewLocalLocker(5 * time.Second)}
	for _, opt := range opts {
		opt(o)
	}

	log := logger.NewNop()
	items := itemuc.NewItemUseCase(itemrepo.NewMemoryRepository(), log)
	locs := locuc.NewLocationUseCase(locrepo.NewMemoryRepository(), log)

	mem := invrepo.NewMemoryRepository()
	var repo inventory.Repository = mem
	if o.wrapRepo != nil {
		repo = o.wrapRepo(mem)
	}

	return &Env{
		Items:      items,
		Locations:  locs,
		Ledger:     invuc.NewInventoryUseCase(repo, items, locs, o.locker, nil, log),
		LedgerRepo: mem,
		Locker:     o.locker,
		Log:        log,
	}
}

func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Kit registers a kit with numbered boxes and returns the box locations in order.
func (e *Env) Kit(t testing.TB, kitID string, boxNumbers ...string) []model.Location {
	t.Helper()
	ctx := context.Background()
	_, err := e.Locations.RegisterKit(ctx, &locdto.RegisterKitInput{KitID: kitID, Name: kitID + " kit"})
	require.NoError(t, err)
	out := make([]model.Location, 0, len(boxNumbers))
	for _, n := range boxNumbers {
		b, err := e.Locations.AddBox(ctx, &locdto.AddBoxInput{KitID: kitID, BoxNumber: n})
		require.NoError(t, err)
		out = append(out, model.KitLocation(kitID, b.ID))
	}
	return out
}

func (e *Env) Warehouse(t testing.TB, id string) model.Location {
	t.Helper()
	_, err := e.Locations.RegisterWarehouse(context.Background(), &locdto.RegisterWarehouseInput{WarehouseID: id, Name: id})
	require.NoError(t, err)
	return model.WarehouseLocation(id)
}

// Item registers an item of the given tracking type with fresh identifiers.
func (e *Env) Item(t testing.TB, tracking model.TrackingType) *model.Item {
	t.Helper()
	in := &itemdto.RegisterItemInput{
		Kind:         model.ItemKindExpendable,
		PartNumber:   "P-" + uuid.NewString()[:8],
		TrackingType: tracking,
	}
	switch tracking {
	case model.TrackingSerial:
		in.Kind = model.ItemKindTool
		in.SerialNumber = "SN-" + uuid.NewString()[:8]
	case model.TrackingLot:
		in.Kind = model.ItemKindChemical
		in.LotNumber = "LOT-" + uuid.NewString()[:8]
	case model.TrackingBoth:
		in.Kind = model.ItemKindTool
		in.SerialNumber = "SN-" + uuid.NewString()[:8]
		in.LotNumber = "LOT-" + uuid.NewString()[:8]
	}
	it, err := e.Items.RegisterItem(context.Background(), in)
	require.NoError(t, err)
	return it
}

func (e *Env) Stock(t testing.TB, itemID string, loc model.Location, qty string) {
	t.Helper()
	_, err := e.Ledger.ApplyDelta(context.Background(), &invdto.DeltaInput{
		ItemID:       itemID,
		Location:     loc,
		Delta:        D(qty),
		MovementType: model.MovementAdjustment,
	})
	require.NoError(t, err)
}

func (e *Env) SetMinimum(t testing.TB, itemID string, loc model.Location, level string) {
	t.Helper()
	lvl := D(level)
	_, err := e.Ledger.SetMinimumStock(context.Background(), &invdto.SetMinimumStockInput{ItemID: itemID, Location: loc, Level: &lvl})
	require.NoError(t, err)
}

func (e *Env) Qty(t testing.TB, itemID string, loc model.Location) decimal.Decimal {
	t.Helper()
	q, err := e.Ledger.GetQuantity(context.Background(), itemID, loc)
	require.NoError(t, err)
	return q
}

func (e *Env) Total(t testing.TB, itemID string) decimal.Decimal {
	t.Helper()
	q, err := e.Ledger.TotalQuantity(context.Background(), itemID)
	require.NoError(t, err)
	return q
}
