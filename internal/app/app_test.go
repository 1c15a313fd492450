package app

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/config"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/fekuna/omnipos-kit-inventory/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
		Lock:  config.LockConfig{Driver: config.LockDriverLocal, LocalWait: 2 * time.Second},
		Reorder: config.ReorderPolicyConfig{
			UrgentRatio:       0.25,
			HighRatio:         0.5,
			RestockMultiplier: 2,
		},
	}
}

type harness struct {
	c         *Container
	publisher *broker.MemoryPublisher
	registry  *prometheus.Registry

	items     kitinventoryv1.ItemServiceClient
	locations kitinventoryv1.LocationServiceClient
	inventory kitinventoryv1.InventoryServiceClient
	transfers kitinventoryv1.TransferServiceClient
	issuances kitinventoryv1.IssuanceServiceClient
	reorders  kitinventoryv1.ReorderServiceClient
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	pub := broker.NewMemoryPublisher()
	reg := prometheus.NewRegistry()
	log := logger.NewNop()
	c, err := New(memoryConfig(), Deps{Publisher: pub, Registerer: reg}, log)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		middleware.ContextInterceptor(),
		middleware.TracingInterceptor(),
		middleware.LoggingInterceptor(log),
	))
	c.RegisterServices(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &harness{
		c:         c,
		publisher: pub,
		registry:  reg,
		items:     kitinventoryv1.NewItemServiceClient(conn),
		locations: kitinventoryv1.NewLocationServiceClient(conn),
		inventory: kitinventoryv1.NewInventoryServiceClient(conn),
		transfers: kitinventoryv1.NewTransferServiceClient(conn),
		issuances: kitinventoryv1.NewIssuanceServiceClient(conn),
		reorders:  kitinventoryv1.NewReorderServiceClient(conn),
	}
}

// ctx carries the acting technician the way the gateway forwards it.
func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(c, "x-user-id", "tech-42")
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seed registers kit K1 with box 1, warehouse W1 and a quantity-tracked item.
func seed(t *testing.T, h *harness) (itemID string, box, wh *kitinventoryv1.LocationRef) {
	t.Helper()
	_, err := h.locations.RegisterKit(ctx(t), &kitinventoryv1.RegisterKitRequest{KitId: "K1", Name: "Line kit", AircraftType: "A320"})
	require.NoError(t, err)
	_, err = h.locations.AddBox(ctx(t), &kitinventoryv1.AddBoxRequest{KitId: "K1", BoxNumber: "1"})
	require.NoError(t, err)
	_, err = h.locations.RegisterWarehouse(ctx(t), &kitinventoryv1.RegisterWarehouseRequest{WarehouseId: "W1", Name: "Main stores"})
	require.NoError(t, err)
	it, err := h.items.RegisterItem(ctx(t), &kitinventoryv1.RegisterItemRequest{
		Kind:         string(model.ItemKindExpendable),
		PartNumber:   "MS20995C32",
		TrackingType: string(model.TrackingQuantity),
		Unit:         "ea",
	})
	require.NoError(t, err)
	return it.Id, &kitinventoryv1.LocationRef{KitId: "K1", BoxNumber: "1"}, &kitinventoryv1.LocationRef{WarehouseId: "W1"}
}

func stock(t *testing.T, h *harness, itemID string, loc *kitinventoryv1.LocationRef, qty string) {
	t.Helper()
	_, err := h.inventory.AdjustStock(ctx(t), &kitinventoryv1.AdjustStockRequest{
		ItemId:         itemID,
		Location:       loc,
		QuantityChange: qty,
		Reason:         "initial count",
	})
	require.NoError(t, err)
}

func quantity(t *testing.T, h *harness, itemID string, loc *kitinventoryv1.LocationRef) decimal.Decimal {
	t.Helper()
	resp, err := h.inventory.GetQuantity(ctx(t), &kitinventoryv1.GetQuantityRequest{ItemId: itemID, Location: loc})
	require.NoError(t, err)
	return d(resp.Quantity)
}

func TestIssueBelowMinimumOverGRPC(t *testing.T) {
	h := newHarness(t)
	itemID, box, _ := seed(t, h)
	stock(t, h, itemID, box, "10")
	rec, err := h.inventory.SetMinimumStock(ctx(t), &kitinventoryv1.SetMinimumStockRequest{ItemId: itemID, Location: box, Level: proto.String("5")})
	require.NoError(t, err)
	assert.Equal(t, "5", rec.MinimumStockLevel)

	is, err := h.issuances.Issue(ctx(t), &kitinventoryv1.IssueRequest{
		ItemId:    itemID,
		Location:  box,
		Quantity:  "6",
		Recipient: "J. Doe",
		Purpose:   "panel fasteners",
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-42", is.IssuedBy)
	assert.True(t, d("4").Equal(quantity(t, h, itemID, box)))

	open, err := h.reorders.ListReorders(ctx(t), &kitinventoryv1.ListReordersRequest{ItemId: itemID, KitId: "K1", OpenOnly: true})
	require.NoError(t, err)
	require.Len(t, open.Requests, 1)
	assert.True(t, open.Requests[0].IsAutomatic)
	assert.Equal(t, string(model.ReorderPending), open.Requests[0].Status)
	assert.Equal(t, string(model.PriorityMedium), open.Requests[0].Priority)
}

func TestInsufficientTransferOverGRPC(t *testing.T) {
	h := newHarness(t)
	itemID, box, wh := seed(t, h)
	stock(t, h, itemID, wh, "10")

	_, err := h.transfers.CreateTransfer(ctx(t), &kitinventoryv1.CreateTransferRequest{
		ItemId:   itemID,
		From:     wh,
		To:       box,
		Quantity: "15",
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.True(t, d("10").Equal(quantity(t, h, itemID, wh)))
}

func TestWarehouseToBoxTransferOverGRPC(t *testing.T) {
	h := newHarness(t)
	itemID, box, wh := seed(t, h)
	stock(t, h, itemID, wh, "20")

	tr, err := h.transfers.CreateTransfer(ctx(t), &kitinventoryv1.CreateTransferRequest{
		ItemId:   itemID,
		From:     wh,
		To:       box,
		Quantity: "8",
		Notes:    "restock line kit",
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.TransferCompleted), tr.Status)
	assert.NotNil(t, tr.CompletedAt)
	assert.Equal(t, "K1", tr.To.KitId)
	assert.True(t, d("12").Equal(quantity(t, h, itemID, wh)))
	assert.True(t, d("8").Equal(quantity(t, h, itemID, box)))

	got, err := h.transfers.GetTransfer(ctx(t), &kitinventoryv1.GetTransferRequest{Id: tr.Id})
	require.NoError(t, err)
	assert.Equal(t, tr.Id, got.Id)
	assert.Len(t, h.publisher.Events(), 1)
}

func TestReorderLifecycleOverGRPC(t *testing.T) {
	h := newHarness(t)
	itemID, box, _ := seed(t, h)

	req, err := h.reorders.CreateReorder(ctx(t), &kitinventoryv1.CreateReorderRequest{
		ItemId:      itemID,
		OwningKitId: "K1",
		Quantity:    "25",
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-42", req.RequestedBy)

	_, err = h.reorders.FulfillReorder(ctx(t), &kitinventoryv1.FulfillReorderRequest{Id: req.Id, Location: box})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = h.reorders.ApproveReorder(ctx(t), &kitinventoryv1.ApproveReorderRequest{Id: req.Id})
	require.NoError(t, err)
	ordered, err := h.reorders.MarkOrdered(ctx(t), &kitinventoryv1.MarkOrderedRequest{Id: req.Id, VendorReference: "PO-4411"})
	require.NoError(t, err)
	assert.NotNil(t, ordered.OrderedAt)
	done, err := h.reorders.FulfillReorder(ctx(t), &kitinventoryv1.FulfillReorderRequest{Id: req.Id, Location: box})
	require.NoError(t, err)

	assert.Equal(t, string(model.ReorderFulfilled), done.Status)
	assert.NotEmpty(t, done.FulfillmentBox)
	assert.True(t, d("25").Equal(quantity(t, h, itemID, box)))

	_, err = h.reorders.CancelReorder(ctx(t), &kitinventoryv1.CancelReorderRequest{Id: req.Id, Reason: "late"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	assert.Equal(t, float64(1), h.counter(t, "kit_inventory_reorder_transitions_total", "status", string(model.ReorderFulfilled)))
}

// counter reads one labelled counter from the harness registry.
func (h *harness) counter(t *testing.T, name, label, value string) float64 {
	t.Helper()
	families, err := h.registry.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestConcurrentIssuances(t *testing.T) {
	h := newHarness(t)
	itemID, box, _ := seed(t, h)
	stock(t, h, itemID, box, "10")

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got []codes.Code
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.issuances.Issue(ctx(t), &kitinventoryv1.IssueRequest{
				ItemId:    itemID,
				Location:  box,
				Quantity:  "6",
				Recipient: "night shift",
			})
			mu.Lock()
			got = append(got, status.Code(err))
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.ElementsMatch(t, []codes.Code{codes.OK, codes.FailedPrecondition}, got)
	assert.True(t, d("4").Equal(quantity(t, h, itemID, box)))
}

func TestUnknownLocationIsInvalidArgument(t *testing.T) {
	h := newHarness(t)
	itemID, _, _ := seed(t, h)

	_, err := h.inventory.GetQuantity(ctx(t), &kitinventoryv1.GetQuantityRequest{
		ItemId:   itemID,
		Location: &kitinventoryv1.LocationRef{KitId: "K404", BoxNumber: "1"},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMalformedQuantityIsInvalidArgument(t *testing.T) {
	h := newHarness(t)
	itemID, box, _ := seed(t, h)

	_, err := h.inventory.AdjustStock(ctx(t), &kitinventoryv1.AdjustStockRequest{
		ItemId:         itemID,
		Location:       box,
		QuantityChange: "ten",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDeactivateKitReturnsEmpty(t *testing.T) {
	h := newHarness(t)
	seed(t, h)

	_, err := h.locations.DeactivateKit(ctx(t), &kitinventoryv1.DeactivateKitRequest{KitId: "K1"})
	require.NoError(t, err)

	kit, err := h.locations.GetKit(ctx(t), &kitinventoryv1.GetKitRequest{KitId: "K1"})
	require.NoError(t, err)
	assert.False(t, kit.IsActive)
	assert.Len(t, kit.Boxes, 1)
}

func TestNewRejectsUnknownStore(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = "sqlite"
	_, err := New(cfg, Deps{}, logger.NewNop())
	assert.Error(t, err)

	cfg.Store.Driver = config.StoreDriverPostgres
	_, err = New(cfg, Deps{}, logger.NewNop())
	assert.Error(t, err)
}
