package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/metrics"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/lock"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/fekuna/omnipos-kit-inventory/internal/inventory")

type inventoryUseCase struct {
	repo      inventory.Repository
	items     inventory.ItemReader
	locations inventory.LocationValidator
	locker    lock.Locker
	metrics   *metrics.Metrics
	logger    logger.ZapLogger

	mu        sync.RWMutex
	observers []inventory.Observer
	refs      inventory.ReferenceChecker
}

func NewInventoryUseCase(
	repo inventory.Repository,
	items inventory.ItemReader,
	locations inventory.LocationValidator,
	locker lock.Locker,
	m *metrics.Metrics,
	log logger.ZapLogger,
) inventory.UseCase {
	return &inventoryUseCase{
		repo:      repo,
		items:     items,
		locations: locations,
		locker:    locker,
		metrics:   m,
		logger:    log,
	}
}

func (uc *inventoryUseCase) RegisterObserver(o inventory.Observer) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.observers = append(uc.observers, o)
}

func (uc *inventoryUseCase) SetReferenceChecker(c inventory.ReferenceChecker) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.refs = c
}

func (uc *inventoryUseCase) GetQuantity(ctx context.Context, itemID string, loc model.Location) (decimal.Decimal, error) {
	rec, err := uc.repo.GetRecord(ctx, itemID, loc)
	if err != nil {
		return decimal.Zero, err
	}
	if rec == nil {
		return decimal.Zero, nil
	}
	return rec.Quantity, nil
}

func (uc *inventoryUseCase) GetRecord(ctx context.Context, itemID string, loc model.Location) (*model.InventoryRecord, error) {
	rec, err := uc.repo.GetRecord(ctx, itemID, loc)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &model.NotFoundError{Entity: "inventory record", ID: model.RecordKey(itemID, loc)}
	}
	return rec, nil
}

func (uc *inventoryUseCase) TotalQuantity(ctx context.Context, itemID string) (decimal.Decimal, error) {
	return uc.repo.SumQuantity(ctx, itemID)
}

func (uc *inventoryUseCase) ListRecords(ctx context.Context, filters *dto.InventoryFilters) ([]model.InventoryRecord, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

func (uc *inventoryUseCase) ApplyDelta(ctx context.Context, input *dto.DeltaInput) (decimal.Decimal, error) {
	var after decimal.Decimal
	ref := inventory.RecordRef{ItemID: input.ItemID, Location: input.Location}
	err := uc.WithLocks(ctx, []inventory.RecordRef{ref}, func(tx inventory.Tx) error {
		var err error
		after, err = tx.ApplyDelta(ctx, input)
		return err
	})
	return after, err
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustInventoryInput) (*model.InventoryRecord, error) {
	delta := &dto.DeltaInput{
		ItemID:        input.ItemID,
		Location:      input.Location,
		Delta:         input.QuantityChange,
		MovementType:  model.MovementAdjustment,
		ReferenceType: "adjustment",
		ReferenceID:   input.ReferenceID,
		Notes:         input.Reason,
		UserID:        input.UserID,
	}
	if _, err := uc.ApplyDelta(ctx, delta); err != nil {
		return nil, err
	}

	rec, err := uc.repo.GetRecord(ctx, input.ItemID, input.Location)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		// pruned at zero
		return &model.InventoryRecord{ItemID: input.ItemID, Location: input.Location, Quantity: decimal.Zero}, nil
	}
	uc.logger.Info("stock adjusted",
		zap.String("item_id", input.ItemID),
		zap.String("location", input.Location.Key()),
		zap.String("change", input.QuantityChange.String()),
		zap.String("quantity", rec.Quantity.String()))
	return rec, nil
}

func (uc *inventoryUseCase) SetMinimumStock(ctx context.Context, input *dto.SetMinimumStockInput) (*model.InventoryRecord, error) {
	if input.Level != nil && input.Level.IsNegative() {
		return nil, &model.InvalidQuantityError{ItemID: input.ItemID, Quantity: *input.Level, Reason: "minimum stock level cannot be negative"}
	}

	var out *model.InventoryRecord
	ref := inventory.RecordRef{ItemID: input.ItemID, Location: input.Location}
	err := uc.WithLocks(ctx, []inventory.RecordRef{ref}, func(_ inventory.Tx) error {
		rec, err := uc.repo.GetRecord(ctx, input.ItemID, input.Location)
		if err != nil {
			return err
		}
		if rec == nil {
			return &model.NotFoundError{Entity: "inventory record", ID: ref.LockKey()}
		}
		if input.Level == nil {
			rec.MinimumStockLevel = decimal.NullDecimal{}
		} else {
			rec.MinimumStockLevel = decimal.NewNullDecimal(*input.Level)
		}
		rec.UpdatedAt = time.Now()
		if err := uc.repo.UpdateRecord(ctx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WithLocks takes every record lock up front, runs fn, releases, and only
// then tells observers about the net change per record.
func (uc *inventoryUseCase) WithLocks(ctx context.Context, refs []inventory.RecordRef, fn func(tx inventory.Tx) error) error {
	ctx, span := tracer.Start(ctx, "inventory.WithLocks")
	defer span.End()

	keys := make([]string, 0, len(refs))
	for _, r := range refs {
		keys = append(keys, r.LockKey())
	}
	span.SetAttributes(attribute.StringSlice("inventory.lock_keys", keys))

	start := time.Now()
	release, err := uc.locker.Acquire(ctx, keys...)
	uc.metrics.ObserveLockWait(time.Since(start).Seconds())
	if err != nil {
		span.SetStatus(codes.Error, "lock")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var nae *lock.NotAcquiredError
		if errors.As(err, &nae) {
			return &model.ConcurrentModificationError{Key: nae.Key}
		}
		return &model.ConcurrentModificationError{Key: fmt.Sprint(keys)}
	}

	tx := &ledgerTx{uc: uc, held: make(map[string]struct{}, len(keys)), changes: map[string]*dto.QuantityChange{}}
	for _, k := range keys {
		tx.held[k] = struct{}{}
	}

	fnErr := fn(tx)
	release()

	if fnErr != nil {
		span.RecordError(fnErr)
		span.SetStatus(codes.Error, fnErr.Error())
	}
	uc.notify(ctx, tx.netChanges())
	return fnErr
}

func (uc *inventoryUseCase) notify(ctx context.Context, changes []dto.QuantityChange) {
	if len(changes) == 0 {
		return
	}
	uc.mu.RLock()
	observers := append([]inventory.Observer(nil), uc.observers...)
	uc.mu.RUnlock()
	for _, c := range changes {
		for _, o := range observers {
			o.OnQuantityChanged(ctx, c)
		}
	}
}

func (uc *inventoryUseCase) referenceChecker() inventory.ReferenceChecker {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.refs
}

type ledgerTx struct {
	uc      *inventoryUseCase
	held    map[string]struct{}
	changes map[string]*dto.QuantityChange
	order   []string
}

func (tx *ledgerTx) GetQuantity(ctx context.Context, itemID string, loc model.Location) (decimal.Decimal, error) {
	return tx.uc.GetQuantity(ctx, itemID, loc)
}

func (tx *ledgerTx) ApplyDelta(ctx context.Context, input *dto.DeltaInput) (decimal.Decimal, error) {
	ref := inventory.RecordRef{ItemID: input.ItemID, Location: input.Location}
	if _, ok := tx.held[ref.LockKey()]; !ok {
		return decimal.Zero, fmt.Errorf("apply delta: record %s is not locked by this call", ref.LockKey())
	}

	rec, before, err := tx.uc.apply(ctx, input)
	if err != nil {
		result := "error"
		if errors.Is(err, model.ErrInsufficientStock) || errors.Is(err, model.ErrInvalidQuantity) ||
			errors.Is(err, model.ErrInvalidLocation) || errors.Is(err, model.ErrMissingDestinationBox) {
			result = "rejected"
		}
		tx.uc.metrics.LedgerDelta(string(input.MovementType), result)
		return decimal.Zero, err
	}
	tx.uc.metrics.LedgerDelta(string(input.MovementType), "ok")

	key := rec.Key()
	c, ok := tx.changes[key]
	if !ok {
		c = &dto.QuantityChange{ItemID: rec.ItemID, Location: rec.Location, Before: before}
		tx.changes[key] = c
		tx.order = append(tx.order, key)
	}
	c.After = rec.Quantity
	c.MinimumStockLevel = rec.MinimumStockLevel
	c.MovementType = input.MovementType
	return rec.Quantity, nil
}

func (tx *ledgerTx) netChanges() []dto.QuantityChange {
	var out []dto.QuantityChange
	for _, k := range tx.order {
		c := tx.changes[k]
		if c.After.Equal(c.Before) {
			continue
		}
		out = append(out, *c)
	}
	return out
}

// apply must run with the record lock held. It returns the record after the
// change (quantity zero when pruned) and the quantity before it.
func (uc *inventoryUseCase) apply(ctx context.Context, input *dto.DeltaInput) (*model.InventoryRecord, decimal.Decimal, error) {
	if input.ItemID == "" {
		return nil, decimal.Zero, model.InvalidInput("item id is required")
	}
	if input.MovementType == "" {
		return nil, decimal.Zero, model.InvalidInput("movement type is required")
	}
	if input.Delta.IsZero() {
		return nil, decimal.Zero, &model.InvalidQuantityError{ItemID: input.ItemID, Quantity: input.Delta, Reason: "delta must be non-zero"}
	}

	if err := uc.locations.Validate(ctx, input.Location); err != nil {
		return nil, decimal.Zero, err
	}
	item, err := uc.items.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if err := item.ValidateQuantity(input.Delta.Abs()); err != nil {
		return nil, decimal.Zero, err
	}
	if input.Delta.IsPositive() && input.Location.IsKit() && input.Location.BoxID == "" && item.TrackingType.RequiresBox() {
		return nil, decimal.Zero, &model.MissingDestinationBoxError{ItemID: item.ID, KitID: input.Location.KitID, TrackingType: item.TrackingType}
	}

	rec, err := uc.repo.GetRecord(ctx, input.ItemID, input.Location)
	if err != nil {
		return nil, decimal.Zero, err
	}
	now := time.Now()
	if rec == nil {
		rec = &model.InventoryRecord{
			ID:        uuid.New().String(),
			ItemID:    input.ItemID,
			Location:  input.Location,
			Quantity:  decimal.Zero,
			CreatedAt: now,
		}
	}

	before := rec.Quantity
	after := before.Add(input.Delta)
	if after.IsNegative() {
		uc.logger.Warn("delta rejected, insufficient stock",
			zap.String("item_id", input.ItemID),
			zap.String("location", input.Location.Key()),
			zap.String("requested", input.Delta.Abs().String()),
			zap.String("available", before.String()))
		return nil, before, &model.InsufficientStockError{
			ItemID:    input.ItemID,
			Location:  input.Location,
			Requested: input.Delta.Abs(),
			Available: before,
		}
	}
	if err := uc.checkSerialUnits(ctx, item, input, after); err != nil {
		return nil, before, err
	}

	rec.Quantity = after
	rec.UpdatedAt = now

	movement := &model.InventoryMovement{
		ID:             uuid.New().String(),
		ItemID:         input.ItemID,
		Location:       input.Location,
		MovementType:   input.MovementType,
		QuantityChange: input.Delta,
		QuantityBefore: before,
		QuantityAfter:  after,
		ReferenceType:  optional(input.ReferenceType),
		ReferenceID:    optional(input.ReferenceID),
		Notes:          input.Notes,
		CreatedBy:      optional(input.UserID),
		CreatedAt:      now,
	}

	prune, err := uc.shouldPrune(ctx, rec)
	if err != nil {
		return nil, before, err
	}
	if prune {
		err = uc.repo.DeleteRecordWithMovement(ctx, rec, movement)
	} else {
		err = uc.repo.SaveRecordWithMovement(ctx, rec, movement)
	}
	if err != nil {
		uc.logger.Error("failed to persist ledger delta",
			zap.String("item_id", input.ItemID),
			zap.String("location", input.Location.Key()),
			zap.Error(err))
		return nil, before, err
	}

	uc.logger.Debug("ledger delta applied",
		zap.String("item_id", input.ItemID),
		zap.String("location", input.Location.Key()),
		zap.String("movement_type", string(input.MovementType)),
		zap.String("before", before.String()),
		zap.String("after", after.String()),
		zap.Bool("pruned", prune))
	return rec, before, nil
}

// checkSerialUnits keeps a serialized unit to a single piece: one per record,
// and one in total when stock enters from outside the kit network.
func (uc *inventoryUseCase) checkSerialUnits(ctx context.Context, item *model.Item, input *dto.DeltaInput, after decimal.Decimal) error {
	if !item.TrackingType.RequiresSerialUniqueness() || !input.Delta.IsPositive() {
		return nil
	}
	one := decimal.NewFromInt(1)
	if after.GreaterThan(one) {
		return &model.InvalidQuantityError{ItemID: item.ID, Quantity: after, Reason: "serialized item can hold at most one unit per location"}
	}
	switch input.MovementType {
	case model.MovementAdjustment, model.MovementReorderFulfillment:
		total, err := uc.repo.SumQuantity(ctx, item.ID)
		if err != nil {
			return err
		}
		if total.Add(input.Delta).GreaterThan(one) {
			return &model.InvalidQuantityError{ItemID: item.ID, Quantity: input.Delta, Reason: "serialized unit already on hand elsewhere"}
		}
	}
	return nil
}

// shouldPrune drops a record that reached zero once nothing else depends on it.
func (uc *inventoryUseCase) shouldPrune(ctx context.Context, rec *model.InventoryRecord) (bool, error) {
	if !rec.Quantity.IsZero() || rec.MinimumStockLevel.Valid {
		return false, nil
	}
	refs := uc.referenceChecker()
	if refs == nil {
		return true, nil
	}
	open, err := refs.HasOpenReference(ctx, rec.ItemID, rec.Location)
	if err != nil {
		return false, err
	}
	return !open, nil
}

func optional(s string) *string {
	if s == "" || s == "unknown" {
		return nil
	}
	return &s
}
