package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/item"
	"github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type itemUseCase struct {
	repo   item.Repository
	logger logger.ZapLogger
}

func NewItemUseCase(repo item.Repository, log logger.ZapLogger) item.UseCase {
	return &itemUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *itemUseCase) RegisterItem(ctx context.Context, input *dto.RegisterItemInput) (*model.Item, error) {
	partNumber := model.NormalizeIdentifier(input.PartNumber)
	serial := model.NormalizeIdentifier(input.SerialNumber)
	lot := model.NormalizeIdentifier(input.LotNumber)

	if !input.Kind.Valid() {
		return nil, model.InvalidInput("unknown item kind %q", input.Kind)
	}
	if !input.TrackingType.Valid() {
		return nil, model.InvalidInput("unknown tracking type %q", input.TrackingType)
	}
	if partNumber == "" {
		return nil, model.InvalidInput("part number is required")
	}
	switch input.TrackingType {
	case model.TrackingSerial:
		if serial == "" {
			return nil, model.InvalidInput("serial tracked item needs a serial number")
		}
	case model.TrackingLot:
		if lot == "" {
			return nil, model.InvalidInput("lot tracked item needs a lot number")
		}
	case model.TrackingBoth:
		if serial == "" || lot == "" {
			return nil, model.InvalidInput("serial+lot tracked item needs both numbers")
		}
	}

	if err := uc.checkIdentity(ctx, input.Kind, partNumber, serial, lot); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	it := &model.Item{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Kind:         input.Kind,
		PartNumber:   partNumber,
		SerialNumber: optional(serial),
		LotNumber:    optional(lot),
		TrackingType: input.TrackingType,
		Description:  input.Description,
		Unit:         input.Unit,
	}
	if err := uc.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	uc.logger.Info("item registered",
		zap.String("item_id", it.ID),
		zap.String("kind", string(it.Kind)),
		zap.String("part_number", it.PartNumber),
		zap.String("tracking_type", string(it.TrackingType)),
	)
	return it, nil
}

// checkIdentity refuses to register an item whose serial or lot already
// identifies a different item. Colliding identities are never merged.
func (uc *itemUseCase) checkIdentity(ctx context.Context, kind model.ItemKind, partNumber, serial, lot string) error {
	if serial != "" {
		existing, err := uc.repo.FindBySerial(ctx, serial)
		if err != nil {
			return err
		}
		if existing != nil {
			return &model.IdentityConflictError{
				Field: "serial_number", Value: serial, ExistingItem: existing.ID,
				ConflictingOn: "serial numbers are unique across all items",
			}
		}
	}

	if lot != "" {
		siblings, err := uc.repo.FindByLot(ctx, lot)
		if err != nil {
			return err
		}
		for _, s := range siblings {
			if s.PartNumber != partNumber || s.Kind != kind {
				return &model.IdentityConflictError{
					Field: "lot_number", Value: lot, ExistingItem: s.ID,
					ConflictingOn: "lot already assigned to part " + s.PartNumber,
				}
			}
			// Serialized units may share a lot; a second lot-only record may not.
			if serial == "" && s.SerialNumber == nil {
				return &model.IdentityConflictError{
					Field: "lot_number", Value: lot, ExistingItem: s.ID,
					ConflictingOn: "lot already registered for this part",
				}
			}
		}
	}

	if serial == "" && lot == "" {
		existing, err := uc.repo.FindUntracked(ctx, kind, partNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return &model.IdentityConflictError{
				Field: "part_number", Value: partNumber, ExistingItem: existing.ID,
				ConflictingOn: "quantity tracked part already registered",
			}
		}
	}
	return nil
}

func (uc *itemUseCase) GetItem(ctx context.Context, id string) (*model.Item, error) {
	it, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, &model.NotFoundError{Entity: "item", ID: id}
	}
	return it, nil
}

func (uc *itemUseCase) ListItems(ctx context.Context, filters *dto.ItemFilters) ([]model.Item, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
