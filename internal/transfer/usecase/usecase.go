package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	invdto "github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/metrics"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer/dto"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/fekuna/omnipos-kit-inventory/internal/transfer")

const referenceType = "transfer"

type transferUseCase struct {
	repo      transfer.Repository
	ledger    inventory.UseCase
	items     inventory.ItemReader
	locations inventory.LocationValidator
	publisher broker.Publisher
	metrics   *metrics.Metrics
	logger    logger.ZapLogger
}

func NewTransferUseCase(
	repo transfer.Repository,
	ledger inventory.UseCase,
	items inventory.ItemReader,
	locations inventory.LocationValidator,
	publisher broker.Publisher,
	m *metrics.Metrics,
	log logger.ZapLogger,
) transfer.UseCase {
	if publisher == nil {
		publisher = broker.NopPublisher{}
	}
	return &transferUseCase{
		repo:      repo,
		ledger:    ledger,
		items:     items,
		locations: locations,
		publisher: publisher,
		metrics:   m,
		logger:    log,
	}
}

// destinationError marks a phase two failure whose phase one was rolled back.
type destinationError struct {
	err           error
	compensateErr error
}

func (e *destinationError) Error() string {
	if e.compensateErr != nil {
		return fmt.Sprintf("destination failed: %v; compensation failed: %v", e.err, e.compensateErr)
	}
	return fmt.Sprintf("destination failed: %v; source restored", e.err)
}

func (e *destinationError) Unwrap() error { return e.err }

func (uc *transferUseCase) CreateTransfer(ctx context.Context, input *dto.CreateTransferInput) (*model.Transfer, error) {
	ctx, span := tracer.Start(ctx, "transfer.CreateTransfer")
	defer span.End()
	span.SetAttributes(
		attribute.String("item.id", input.ItemID),
		attribute.String("transfer.from", input.From.Key()),
		attribute.String("transfer.to", input.To.Key()),
	)

	if err := uc.validate(ctx, input); err != nil {
		span.SetStatus(codes.Error, err.Error())
		uc.metrics.Transfer("rejected")
		return nil, err
	}

	now := time.Now()
	t := &model.Transfer{
		ID:            uuid.New().String(),
		ItemID:        input.ItemID,
		From:          input.From,
		To:            input.To,
		Quantity:      input.Quantity,
		Status:        model.TransferPending,
		Notes:         input.Notes,
		TransferredBy: optional(input.UserID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create transfer: %w", err)
	}

	execErr := inventory.RetryOnConflict(ctx, "transfer", func(ctx context.Context) error {
		return uc.execute(ctx, t, input.UserID)
	})

	t.UpdatedAt = time.Now()
	if execErr == nil {
		t.Status = model.TransferCompleted
		t.CompletedAt = &t.UpdatedAt
	} else {
		reason := execErr.Error()
		t.Status = model.TransferCancelled
		t.CancelReason = &reason
	}
	if err := uc.recordOutcome(ctx, t); err != nil {
		// The ledger already reflects the outcome; the caller still gets the settled transfer.
		uc.logger.Error("failed to record transfer outcome",
			zap.String("transfer_id", t.ID),
			zap.String("status", string(t.Status)),
			zap.Error(err))
	}
	uc.metrics.Transfer(string(t.Status))

	if execErr != nil {
		var de *destinationError
		if errors.As(execErr, &de) && de.compensateErr != nil {
			uc.logger.Error("transfer compensation failed",
				zap.String("transfer_id", t.ID),
				zap.String("item_id", t.ItemID),
				zap.String("from", t.From.Key()),
				zap.Error(de.compensateErr))
		}
		uc.logger.Warn("transfer cancelled",
			zap.String("transfer_id", t.ID),
			zap.String("item_id", t.ItemID),
			zap.Error(execErr))
		span.RecordError(execErr)
		span.SetStatus(codes.Error, "cancelled")
		uc.publish(ctx, transfer.EventTransferCancelled, t)
		return t, execErr
	}

	uc.logger.Info("transfer completed",
		zap.String("transfer_id", t.ID),
		zap.String("item_id", t.ItemID),
		zap.String("from", t.From.Key()),
		zap.String("to", t.To.Key()),
		zap.String("quantity", t.Quantity.String()))
	uc.publish(ctx, transfer.EventTransferCompleted, t)
	return t, nil
}

const (
	outcomeAttempts = 3
	outcomeBackoff  = 20 * time.Millisecond
)

// recordOutcome persists the final status, retrying a failing store a bounded number of times.
func (uc *transferUseCase) recordOutcome(ctx context.Context, t *model.Transfer) error {
	ctx = context.WithoutCancel(ctx)
	var err error
	for attempt := 1; attempt <= outcomeAttempts; attempt++ {
		if err = uc.repo.UpdateStatus(ctx, t); err == nil {
			return nil
		}
		uc.logger.Warn("retrying transfer outcome write",
			zap.String("transfer_id", t.ID),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < outcomeAttempts {
			time.Sleep(time.Duration(attempt) * outcomeBackoff)
		}
	}
	return fmt.Errorf("record transfer outcome: %w", err)
}

func (uc *transferUseCase) validate(ctx context.Context, input *dto.CreateTransferInput) error {
	it, err := uc.items.GetItem(ctx, input.ItemID)
	if err != nil {
		return err
	}
	if err := it.ValidateQuantity(input.Quantity); err != nil {
		return err
	}
	if input.From.IsZero() || input.To.IsZero() {
		return &model.InvalidLocationError{Ref: "transfer", Reason: "source and destination are required"}
	}
	if input.From.Equal(input.To) {
		return &model.InvalidLocationError{Ref: input.To.String(), Reason: "source and destination are the same"}
	}
	if err := uc.locations.Validate(ctx, input.From); err != nil {
		return err
	}
	if err := uc.locations.Validate(ctx, input.To); err != nil {
		return err
	}
	if input.To.IsKit() && input.To.BoxID == "" && it.TrackingType.RequiresBox() {
		return &model.MissingDestinationBoxError{ItemID: it.ID, KitID: input.To.KitID, TrackingType: it.TrackingType}
	}

	available, err := uc.ledger.GetQuantity(ctx, input.ItemID, input.From)
	if err != nil {
		return err
	}
	if input.Quantity.GreaterThan(available) {
		return &model.InsufficientStockError{
			ItemID:    input.ItemID,
			Location:  input.From,
			Requested: input.Quantity,
			Available: available,
		}
	}
	return nil
}

// execute runs both phases under the locks of both records. Phase two
// failing rolls phase one back before the locks are released.
func (uc *transferUseCase) execute(ctx context.Context, t *model.Transfer, userID string) error {
	refs := []inventory.RecordRef{
		{ItemID: t.ItemID, Location: t.From},
		{ItemID: t.ItemID, Location: t.To},
	}
	return uc.ledger.WithLocks(ctx, refs, func(tx inventory.Tx) error {
		out := uc.delta(t, t.From, t.Quantity.Neg(), model.MovementTransferOut, userID)
		if _, err := tx.ApplyDelta(ctx, out); err != nil {
			return err
		}

		in := uc.delta(t, t.To, t.Quantity, model.MovementTransferIn, userID)
		if _, err := tx.ApplyDelta(ctx, in); err != nil {
			back := uc.delta(t, t.From, t.Quantity, model.MovementTransferCompensation, userID)
			back.Notes = "restored after destination failure"
			_, cerr := tx.ApplyDelta(ctx, back)
			return &destinationError{err: err, compensateErr: cerr}
		}
		return nil
	})
}

func (uc *transferUseCase) delta(t *model.Transfer, loc model.Location, qty decimal.Decimal, mt model.MovementType, userID string) *invdto.DeltaInput {
	return &invdto.DeltaInput{
		ItemID:        t.ItemID,
		Location:      loc,
		Delta:         qty,
		MovementType:  mt,
		ReferenceType: referenceType,
		ReferenceID:   t.ID,
		Notes:         t.Notes,
		UserID:        userID,
	}
}

func (uc *transferUseCase) publish(ctx context.Context, eventType string, t *model.Transfer) {
	evt, err := broker.NewEvent(eventType, t)
	if err == nil {
		err = uc.publisher.Publish(ctx, t.ItemID, evt)
	}
	if err != nil {
		uc.logger.Warn("failed to publish transfer event",
			zap.String("transfer_id", t.ID),
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}

func (uc *transferUseCase) GetTransfer(ctx context.Context, id string) (*model.Transfer, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &model.NotFoundError{Entity: "transfer", ID: id}
	}
	return t, nil
}

func (uc *transferUseCase) ListTransfers(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
