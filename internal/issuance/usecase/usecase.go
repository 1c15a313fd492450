package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	invdto "github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/metrics"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/fekuna/omnipos-kit-inventory/internal/issuance")

type issuanceUseCase struct {
	repo      issuance.Repository
	ledger    inventory.UseCase
	items     inventory.ItemReader
	publisher broker.Publisher
	metrics   *metrics.Metrics
	logger    logger.ZapLogger
}

func NewIssuanceUseCase(
	repo issuance.Repository,
	ledger inventory.UseCase,
	items inventory.ItemReader,
	publisher broker.Publisher,
	m *metrics.Metrics,
	log logger.ZapLogger,
) issuance.UseCase {
	if publisher == nil {
		publisher = broker.NopPublisher{}
	}
	return &issuanceUseCase{
		repo:      repo,
		ledger:    ledger,
		items:     items,
		publisher: publisher,
		metrics:   m,
		logger:    log,
	}
}

func (uc *issuanceUseCase) Issue(ctx context.Context, input *dto.IssueInput) (*model.Issuance, error) {
	ctx, span := tracer.Start(ctx, "issuance.Issue")
	defer span.End()
	span.SetAttributes(
		attribute.String("item.id", input.ItemID),
		attribute.String("issuance.location", input.Location.Key()),
	)

	if input.SourceEventID != "" {
		span.SetAttributes(attribute.String("issuance.source_event", input.SourceEventID))
		prior, err := uc.findBySourceEvent(ctx, input.SourceEventID)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if prior != nil {
			uc.logger.Info("issuance already recorded for event",
				zap.String("event_id", input.SourceEventID),
				zap.String("issuance_id", prior.ID))
			uc.metrics.Issuance("duplicate")
			return prior, nil
		}
	}

	is, err := uc.issue(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.metrics.Issuance("rejected")
		return nil, err
	}
	uc.metrics.Issuance("ok")
	return is, nil
}

func (uc *issuanceUseCase) issue(ctx context.Context, input *dto.IssueInput) (*model.Issuance, error) {
	if !input.Location.IsKit() {
		return nil, &model.InvalidLocationError{Ref: input.Location.String(), Reason: "issuance draws from a kit location"}
	}
	recipient := strings.TrimSpace(input.Recipient)
	if recipient == "" {
		return nil, model.InvalidInput("recipient is required")
	}
	it, err := uc.items.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if err := it.ValidateQuantity(input.Quantity); err != nil {
		return nil, err
	}

	available, err := uc.ledger.GetQuantity(ctx, input.ItemID, input.Location)
	if err != nil {
		return nil, err
	}
	if input.Quantity.GreaterThan(available) {
		return nil, &model.InsufficientStockError{
			ItemID:    input.ItemID,
			Location:  input.Location,
			Requested: input.Quantity,
			Available: available,
		}
	}

	is := &model.Issuance{
		ID:          uuid.New().String(),
		ItemID:      input.ItemID,
		Location:    input.Location,
		Quantity:    input.Quantity,
		Recipient:   recipient,
		Purpose:     input.Purpose,
		WorkOrderID: optional(input.WorkOrderID),
		IssuedBy:    optional(input.UserID),

		SourceEventID: optional(input.SourceEventID),
	}

	delta := &invdto.DeltaInput{
		ItemID:        is.ItemID,
		Location:      is.Location,
		Delta:         is.Quantity.Neg(),
		MovementType:  model.MovementIssuance,
		ReferenceType: "issuance",
		ReferenceID:   is.ID,
		Notes:         input.Purpose,
		UserID:        input.UserID,
	}
	err = inventory.RetryOnConflict(ctx, "issue", func(ctx context.Context) error {
		_, err := uc.ledger.ApplyDelta(ctx, delta)
		return err
	})
	if err != nil {
		return nil, err
	}

	is.IssuedAt = time.Now()
	if err := uc.repo.Create(ctx, is); err != nil {
		uc.logger.Error("failed to record issuance, returning stock",
			zap.String("issuance_id", is.ID),
			zap.String("item_id", is.ItemID),
			zap.Error(err))
		uc.restore(ctx, is, input.UserID)
		return nil, fmt.Errorf("record issuance: %w", err)
	}

	uc.logger.Info("issuance recorded",
		zap.String("issuance_id", is.ID),
		zap.String("item_id", is.ItemID),
		zap.String("location", is.Location.Key()),
		zap.String("quantity", is.Quantity.String()),
		zap.String("recipient", is.Recipient))

	evt, err := broker.NewEvent(issuance.EventIssuanceRecorded, is)
	if err == nil {
		err = uc.publisher.Publish(ctx, is.ItemID, evt)
	}
	if err != nil {
		uc.logger.Warn("failed to publish issuance event", zap.String("issuance_id", is.ID), zap.Error(err))
	}
	return is, nil
}

// restore puts stock back when the issuance itself could not be persisted,
// so no stock leaves the kit without an issuance record.
func (uc *issuanceUseCase) restore(ctx context.Context, is *model.Issuance, userID string) {
	_, err := uc.ledger.ApplyDelta(ctx, &invdto.DeltaInput{
		ItemID:        is.ItemID,
		Location:      is.Location,
		Delta:         is.Quantity,
		MovementType:  model.MovementAdjustment,
		ReferenceType: "issuance",
		ReferenceID:   is.ID,
		Notes:         "issuance not recorded, stock returned",
		UserID:        userID,
	})
	if err != nil {
		uc.logger.Error("failed to return stock for unrecorded issuance",
			zap.String("issuance_id", is.ID),
			zap.Error(err))
	}
}

func (uc *issuanceUseCase) findBySourceEvent(ctx context.Context, eventID string) (*model.Issuance, error) {
	list, _, err := uc.repo.FindAll(ctx, &dto.IssuanceFilters{SourceEventID: eventID, PageSize: 1})
	if err != nil {
		return nil, fmt.Errorf("look up issuance for event %s: %w", eventID, err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (uc *issuanceUseCase) GetIssuance(ctx context.Context, id string) (*model.Issuance, error) {
	is, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if is == nil {
		return nil, &model.NotFoundError{Entity: "issuance", ID: id}
	}
	return is, nil
}

func (uc *issuanceUseCase) ListIssuances(ctx context.Context, filters *dto.IssuanceFilters) ([]model.Issuance, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
