package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	invdto "github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/metrics"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/fekuna/omnipos-kit-inventory/pkg/lock"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/fekuna/omnipos-kit-inventory/internal/reorder")

const referenceType = "reorder"

// BoxChecker confirms a box is part of a kit.
type BoxChecker interface {
	inventory.LocationValidator
	BoxBelongsToKit(ctx context.Context, boxID, kitID string) (bool, error)
}

type reorderUseCase struct {
	repo      reorder.Repository
	ledger    inventory.UseCase
	items     inventory.ItemReader
	locations BoxChecker
	locker    lock.Locker
	publisher broker.Publisher
	metrics   *metrics.Metrics
	logger    logger.ZapLogger
}

func NewReorderUseCase(
	repo reorder.Repository,
	ledger inventory.UseCase,
	items inventory.ItemReader,
	locations BoxChecker,
	locker lock.Locker,
	publisher broker.Publisher,
	m *metrics.Metrics,
	log logger.ZapLogger,
) reorder.UseCase {
	if publisher == nil {
		publisher = broker.NopPublisher{}
	}
	return &reorderUseCase{
		repo:      repo,
		ledger:    ledger,
		items:     items,
		locations: locations,
		locker:    locker,
		publisher: publisher,
		metrics:   m,
		logger:    log,
	}
}

func requestLockKey(id string) string { return "reorder:" + id }

func ownerLockKey(itemID, kitID string) string { return "reorder-owner:" + model.ReorderOwnerKey(itemID, kitID) }

// withLock runs fn holding key, retrying a lost lock race once.
func (uc *reorderUseCase) withLock(ctx context.Context, op, key string, fn func() error) error {
	return inventory.RetryOnConflict(ctx, op, func(ctx context.Context) error {
		release, err := uc.locker.Acquire(ctx, key)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return &model.ConcurrentModificationError{Key: key}
		}
		defer release()
		return fn()
	})
}

func (uc *reorderUseCase) Create(ctx context.Context, input *dto.CreateReorderInput) (*model.ReorderRequest, error) {
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return nil, model.InvalidInput("unknown priority %q", input.Priority)
	}
	req, err := uc.newRequest(ctx, input.ItemID, input.OwningKitID, input.Quantity, false)
	if err != nil {
		return nil, err
	}
	req.Priority = priority
	req.Notes = input.Notes
	req.RequestedBy = optional(input.UserID)

	if err := uc.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create reorder request: %w", err)
	}
	uc.logger.Info("reorder request created",
		zap.String("request_id", req.ID),
		zap.String("item_id", req.ItemID),
		zap.String("owner", req.OwnerKey()),
		zap.String("quantity", req.QuantityRequested.String()))
	uc.metrics.ReorderTransition(string(model.ReorderPending))
	uc.publish(ctx, reorder.EventReorderCreated, req)
	return req, nil
}

// newRequest validates the item, quantity and owner shared by both creation
// paths. Automatic requests for serialized items are cut to a single unit.
func (uc *reorderUseCase) newRequest(ctx context.Context, itemID, kitID string, qty decimal.Decimal, automatic bool) (*model.ReorderRequest, error) {
	it, err := uc.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.TrackingType.AllowsFractional() {
		qty = qty.Ceil()
	}
	one := decimal.NewFromInt(1)
	if automatic && it.TrackingType.RequiresSerialUniqueness() && qty.GreaterThan(one) {
		qty = one
	}
	if err := it.ValidateQuantity(qty); err != nil {
		return nil, err
	}
	if it.TrackingType.RequiresSerialUniqueness() && qty.GreaterThan(one) {
		return nil, &model.InvalidQuantityError{ItemID: it.ID, Quantity: qty, Reason: "serialized item is reordered one unit at a time"}
	}

	var owner *string
	if kitID != "" {
		if err := uc.locations.Validate(ctx, model.KitLocation(kitID, "")); err != nil {
			return nil, err
		}
		owner = &kitID
	}

	now := time.Now()
	return &model.ReorderRequest{
		ID:                uuid.New().String(),
		ItemID:            itemID,
		OwningKitID:       owner,
		QuantityRequested: qty,
		Status:            model.ReorderPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (uc *reorderUseCase) CreateAutomatic(ctx context.Context, input *dto.AutomaticReorderInput) (*model.ReorderRequest, bool, error) {
	ctx, span := tracer.Start(ctx, "reorder.CreateAutomatic")
	defer span.End()
	span.SetAttributes(attribute.String("item.id", input.ItemID), attribute.String("kit.id", input.KitID))

	var (
		req     *model.ReorderRequest
		created bool
	)
	err := uc.withLock(ctx, "create automatic reorder", ownerLockKey(input.ItemID, input.KitID), func() error {
		open, err := uc.repo.FindOpenByOwner(ctx, input.ItemID, input.KitID)
		if err != nil {
			return err
		}
		if len(open) > 0 {
			req = &open[0]
			return nil
		}

		req, err = uc.newRequest(ctx, input.ItemID, input.KitID, input.Quantity, true)
		if err != nil {
			return err
		}
		req.IsAutomatic = true
		req.Priority = input.Priority
		req.Notes = input.Notes
		if err := uc.repo.Create(ctx, req); err != nil {
			return fmt.Errorf("create reorder request: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}
	if created {
		uc.logger.Info("automatic reorder raised",
			zap.String("request_id", req.ID),
			zap.String("item_id", req.ItemID),
			zap.String("kit_id", input.KitID),
			zap.String("priority", string(req.Priority)),
			zap.String("quantity", req.QuantityRequested.String()))
		uc.metrics.AutomaticReorder(string(req.Priority))
		uc.metrics.ReorderTransition(string(model.ReorderPending))
		uc.publish(ctx, reorder.EventReorderCreated, req)
	}
	return req, created, nil
}

func (uc *reorderUseCase) Approve(ctx context.Context, input *dto.ApproveInput) (*model.ReorderRequest, error) {
	return uc.transition(ctx, input.RequestID, model.ActionApprove, func(req *model.ReorderRequest, now time.Time) error {
		req.ApprovedBy = optional(input.UserID)
		req.ApprovedAt = &now
		if input.Notes != "" {
			req.Notes = strings.TrimSpace(req.Notes + "\n" + input.Notes)
		}
		return nil
	})
}

func (uc *reorderUseCase) MarkOrdered(ctx context.Context, input *dto.MarkOrderedInput) (*model.ReorderRequest, error) {
	return uc.transition(ctx, input.RequestID, model.ActionMarkOrdered, func(req *model.ReorderRequest, now time.Time) error {
		req.OrderedBy = optional(input.UserID)
		req.OrderedAt = &now
		req.VendorReference = optional(input.VendorReference)
		return nil
	})
}

func (uc *reorderUseCase) Cancel(ctx context.Context, input *dto.CancelInput) (*model.ReorderRequest, error) {
	return uc.transition(ctx, input.RequestID, model.ActionCancel, func(req *model.ReorderRequest, now time.Time) error {
		req.CancelledBy = optional(input.UserID)
		req.CancelledAt = &now
		req.CancelReason = optional(input.Reason)
		return nil
	})
}

// Fulfill stocks the requested quantity into the chosen location and only
// then marks the request fulfilled.
func (uc *reorderUseCase) Fulfill(ctx context.Context, input *dto.FulfillInput) (*model.ReorderRequest, error) {
	ctx, span := tracer.Start(ctx, "reorder.Fulfill")
	defer span.End()

	req, err := uc.transitionWith(ctx, input.RequestID, model.ActionFulfill, func(req *model.ReorderRequest, now time.Time) (func(), error) {
		if err := uc.checkFulfillmentLocation(ctx, req, input.Location); err != nil {
			return nil, err
		}
		received, err := uc.receivedAt(ctx, req)
		if err != nil {
			return nil, err
		}
		if received != nil {
			// An earlier attempt credited the stock but never recorded the status.
			if !received.Equal(input.Location) {
				return nil, &model.InvalidLocationError{
					Ref:    input.Location.String(),
					Reason: "stock for this request was already received at " + received.String(),
				}
			}
			uc.logger.Warn("reorder stock already received, recording fulfillment only",
				zap.String("request_id", req.ID),
				zap.String("location", received.Key()))
			uc.markFulfilled(req, *received, input.UserID, now)
			return nil, nil
		}

		delta := &invdto.DeltaInput{
			ItemID:        req.ItemID,
			Location:      input.Location,
			Delta:         req.QuantityRequested,
			MovementType:  model.MovementReorderFulfillment,
			ReferenceType: referenceType,
			ReferenceID:   req.ID,
			UserID:        input.UserID,
		}
		if _, err := uc.ledger.ApplyDelta(ctx, delta); err != nil {
			return nil, err
		}

		uc.markFulfilled(req, input.Location, input.UserID, now)

		undo := func() {
			back := *delta
			back.Delta = delta.Delta.Neg()
			back.MovementType = model.MovementAdjustment
			back.Notes = "fulfillment not recorded, stock withdrawn"
			if _, err := uc.ledger.ApplyDelta(ctx, &back); err != nil {
				// The credit stays; the next Fulfill finds it and records the status without crediting again.
				uc.logger.Error("failed to withdraw stock for unrecorded fulfillment",
					zap.String("request_id", req.ID),
					zap.String("location", input.Location.Key()),
					zap.Error(err))
				uc.publish(ctx, reorder.EventFulfillmentUnreconciled, req)
			}
		}
		return undo, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return req, nil
}

func (uc *reorderUseCase) markFulfilled(req *model.ReorderRequest, loc model.Location, userID string, now time.Time) {
	target := loc.BoxID
	if loc.IsWarehouse() {
		target = loc.WarehouseID
	}
	req.FulfillmentBox = &target
	req.FulfilledBy = optional(userID)
	req.FulfilledAt = &now
}

// receivedAt returns where stock for req already sits when the ledger holds a
// net credit referencing it, or nil.
func (uc *reorderUseCase) receivedAt(ctx context.Context, req *model.ReorderRequest) (*model.Location, error) {
	mvs, _, err := uc.ledger.ListMovements(ctx, &invdto.MovementFilters{ItemID: req.ItemID, ReferenceID: req.ID})
	if err != nil {
		return nil, fmt.Errorf("read movements for reorder request %s: %w", req.ID, err)
	}
	net := make(map[string]decimal.Decimal)
	locs := make(map[string]model.Location)
	for _, mv := range mvs {
		if mv.ReferenceType == nil || *mv.ReferenceType != referenceType {
			continue
		}
		key := mv.Location.Key()
		net[key] = net[key].Add(mv.QuantityChange)
		locs[key] = mv.Location
	}
	for key, qty := range net {
		if qty.IsPositive() {
			loc := locs[key]
			return &loc, nil
		}
	}
	return nil, nil
}

func (uc *reorderUseCase) checkFulfillmentLocation(ctx context.Context, req *model.ReorderRequest, loc model.Location) error {
	if req.OwningKitID == nil {
		if !loc.IsWarehouse() {
			return &model.InvalidLocationError{Ref: loc.String(), Reason: "warehouse-level request must be fulfilled into a warehouse"}
		}
		return uc.locations.Validate(ctx, loc)
	}

	kitID := *req.OwningKitID
	if !loc.IsKit() || loc.KitID != kitID {
		return &model.InvalidLocationError{Ref: loc.String(), Reason: "fulfillment box must belong to kit " + kitID}
	}
	if loc.BoxID == "" {
		return &model.InvalidLocationError{Ref: loc.String(), Reason: "fulfillment requires a box"}
	}
	ok, err := uc.locations.BoxBelongsToKit(ctx, loc.BoxID, kitID)
	if err != nil {
		return err
	}
	if !ok {
		return &model.InvalidLocationError{Ref: loc.String(), Reason: "box does not belong to kit " + kitID}
	}
	return uc.locations.Validate(ctx, loc)
}

func (uc *reorderUseCase) transition(ctx context.Context, id string, action model.ReorderAction, apply func(*model.ReorderRequest, time.Time) error) (*model.ReorderRequest, error) {
	return uc.transitionWith(ctx, id, action, func(req *model.ReorderRequest, now time.Time) (func(), error) {
		return nil, apply(req, now)
	})
}

// transitionWith moves request id along action under the request lock. apply
// may return an undo func, run when the new state cannot be saved.
func (uc *reorderUseCase) transitionWith(ctx context.Context, id string, action model.ReorderAction, apply func(*model.ReorderRequest, time.Time) (func(), error)) (*model.ReorderRequest, error) {
	var out *model.ReorderRequest
	err := uc.withLock(ctx, string(action), requestLockKey(id), func() error {
		req, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if req == nil {
			return &model.NotFoundError{Entity: "reorder request", ID: id}
		}

		next, err := model.NextReorderStatus(req.ID, req.Status, action)
		if err != nil {
			return err
		}

		now := time.Now()
		undo, err := apply(req, now)
		if err != nil {
			return err
		}
		req.Status = next
		req.UpdatedAt = now
		if err := uc.repo.Update(ctx, req); err != nil {
			if undo != nil {
				undo()
			}
			return fmt.Errorf("update reorder request: %w", err)
		}
		out = req
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidStateTransition) {
			uc.logger.Warn("reorder transition rejected",
				zap.String("request_id", id),
				zap.String("action", string(action)),
				zap.Error(err))
		}
		return nil, err
	}

	uc.logger.Info("reorder request transitioned",
		zap.String("request_id", out.ID),
		zap.String("action", string(action)),
		zap.String("status", string(out.Status)))
	uc.metrics.ReorderTransition(string(out.Status))
	uc.publish(ctx, reorder.EventReorderPrefix+string(out.Status), out)
	return out, nil
}

func (uc *reorderUseCase) CancelAutomaticOnRecovery(ctx context.Context, itemID, kitID string) (int, error) {
	open, err := uc.repo.FindOpenByOwner(ctx, itemID, kitID)
	if err != nil {
		return 0, err
	}
	cancelled := 0
	for _, req := range open {
		if !req.IsAutomatic || req.Status == model.ReorderOrdered {
			continue
		}
		_, err := uc.Cancel(ctx, &dto.CancelInput{RequestID: req.ID, Reason: reorder.RecoveryCancelReason})
		if err != nil {
			// moved on concurrently; not ours to cancel any more
			if errors.Is(err, model.ErrInvalidStateTransition) {
				continue
			}
			return cancelled, err
		}
		cancelled++
	}
	return cancelled, nil
}

func (uc *reorderUseCase) Get(ctx context.Context, id string) (*model.ReorderRequest, error) {
	req, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &model.NotFoundError{Entity: "reorder request", ID: id}
	}
	return req, nil
}

func (uc *reorderUseCase) List(ctx context.Context, filters *dto.ReorderFilters) ([]model.ReorderRequest, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *reorderUseCase) HasOpenRequest(ctx context.Context, itemID, kitID string) (bool, error) {
	open, err := uc.repo.FindOpenByOwner(ctx, itemID, kitID)
	if err != nil {
		return false, err
	}
	return len(open) > 0, nil
}

func (uc *reorderUseCase) HasOpenReference(ctx context.Context, itemID string, loc model.Location) (bool, error) {
	if loc.IsKit() {
		return uc.HasOpenRequest(ctx, itemID, loc.KitID)
	}
	return uc.HasOpenRequest(ctx, itemID, "")
}

func (uc *reorderUseCase) publish(ctx context.Context, eventType string, req *model.ReorderRequest) {
	evt, err := broker.NewEvent(eventType, req)
	if err == nil {
		err = uc.publisher.Publish(ctx, req.ItemID, evt)
	}
	if err != nil {
		uc.logger.Warn("failed to publish reorder event",
			zap.String("request_id", req.ID),
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
