package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/location"
	"github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type locationUseCase struct {
	repo   location.Repository
	logger logger.ZapLogger
}

func NewLocationUseCase(repo location.Repository, log logger.ZapLogger) location.UseCase {
	return &locationUseCase{
		repo:   repo,
		logger: log,
	}
}

// validCode guards identifiers that end up inside serialized location keys.
func validCode(code string) bool {
	return code != "" && !strings.ContainsAny(code, "/@| ")
}

func (uc *locationUseCase) RegisterKit(ctx context.Context, input *dto.RegisterKitInput) (*model.Kit, error) {
	if !validCode(input.KitID) {
		return nil, model.InvalidInput("kit id %q must be non-empty without '/', '@', '|' or spaces", input.KitID)
	}
	existing, err := uc.repo.FindKitByID(ctx, input.KitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.InvalidInput("kit %s already registered", input.KitID)
	}

	now := time.Now().UTC()
	kit := &model.Kit{
		BaseModel:    model.BaseModel{ID: input.KitID, CreatedAt: now, UpdatedAt: now},
		Name:         input.Name,
		AircraftType: input.AircraftType,
		IsActive:     true,
	}
	if err := uc.repo.CreateKit(ctx, kit); err != nil {
		return nil, err
	}
	uc.logger.Info("kit registered", zap.String("kit_id", kit.ID), zap.String("aircraft_type", kit.AircraftType))
	return kit, nil
}

func (uc *locationUseCase) AddBox(ctx context.Context, input *dto.AddBoxInput) (*model.Box, error) {
	kit, err := uc.repo.FindKitByID(ctx, input.KitID)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, &model.NotFoundError{Entity: "kit", ID: input.KitID}
	}
	if strings.TrimSpace(input.BoxNumber) == "" {
		return nil, model.InvalidInput("box number is required")
	}
	dup, err := uc.repo.FindBoxByNumber(ctx, kit.ID, input.BoxNumber)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, model.InvalidInput("kit %s already has box %s", kit.ID, input.BoxNumber)
	}

	now := time.Now().UTC()
	box := &model.Box{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		KitID:       kit.ID,
		BoxNumber:   input.BoxNumber,
		Description: input.Description,
	}
	if err := uc.repo.CreateBox(ctx, box); err != nil {
		return nil, err
	}
	uc.logger.Info("box added", zap.String("kit_id", kit.ID), zap.String("box_id", box.ID), zap.String("box_number", box.BoxNumber))
	return box, nil
}

func (uc *locationUseCase) RegisterWarehouse(ctx context.Context, input *dto.RegisterWarehouseInput) (*model.Warehouse, error) {
	if !validCode(input.WarehouseID) {
		return nil, model.InvalidInput("warehouse id %q must be non-empty without '/', '@', '|' or spaces", input.WarehouseID)
	}
	existing, err := uc.repo.FindWarehouseByID(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.InvalidInput("warehouse %s already registered", input.WarehouseID)
	}

	now := time.Now().UTC()
	w := &model.Warehouse{
		BaseModel: model.BaseModel{ID: input.WarehouseID, CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		Address:   input.Address,
		IsActive:  true,
	}
	if err := uc.repo.CreateWarehouse(ctx, w); err != nil {
		return nil, err
	}
	uc.logger.Info("warehouse registered", zap.String("warehouse_id", w.ID))
	return w, nil
}

func (uc *locationUseCase) DeactivateKit(ctx context.Context, kitID string) error {
	kit, err := uc.repo.FindKitByID(ctx, kitID)
	if err != nil {
		return err
	}
	if kit == nil {
		return &model.NotFoundError{Entity: "kit", ID: kitID}
	}
	kit.IsActive = false
	kit.UpdatedAt = time.Now().UTC()
	return uc.repo.UpdateKit(ctx, kit)
}

func (uc *locationUseCase) DeactivateWarehouse(ctx context.Context, warehouseID string) error {
	w, err := uc.repo.FindWarehouseByID(ctx, warehouseID)
	if err != nil {
		return err
	}
	if w == nil {
		return &model.NotFoundError{Entity: "warehouse", ID: warehouseID}
	}
	w.IsActive = false
	w.UpdatedAt = time.Now().UTC()
	return uc.repo.UpdateWarehouse(ctx, w)
}

func (uc *locationUseCase) GetKit(ctx context.Context, kitID string) (*model.Kit, error) {
	kit, err := uc.repo.FindKitByID(ctx, kitID)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, &model.NotFoundError{Entity: "kit", ID: kitID}
	}
	boxes, err := uc.repo.ListBoxes(ctx, kitID)
	if err != nil {
		return nil, err
	}
	kit.Boxes = boxes
	return kit, nil
}

func (uc *locationUseCase) ListKits(ctx context.Context, filters *dto.KitFilters) ([]model.Kit, int, error) {
	return uc.repo.FindAllKits(ctx, filters)
}

func (uc *locationUseCase) ListWarehouses(ctx context.Context, filters *dto.WarehouseFilters) ([]model.Warehouse, int, error) {
	return uc.repo.FindAllWarehouses(ctx, filters)
}

func (uc *locationUseCase) Resolve(ctx context.Context, ref dto.LocationRef) (model.Location, error) {
	refStr := describe(ref)
	switch {
	case ref.WarehouseID != "" && ref.KitID != "":
		return model.Location{}, &model.InvalidLocationError{Ref: refStr, Reason: "reference names both a kit and a warehouse"}
	case ref.WarehouseID != "":
		if ref.BoxID != "" || ref.BoxNumber != "" {
			return model.Location{}, &model.InvalidLocationError{Ref: refStr, Reason: "warehouses have no boxes"}
		}
		loc := model.WarehouseLocation(ref.WarehouseID)
		return loc, uc.Validate(ctx, loc)
	case ref.KitID != "":
		boxID := ref.BoxID
		if boxID == "" && ref.BoxNumber != "" {
			box, err := uc.repo.FindBoxByNumber(ctx, ref.KitID, ref.BoxNumber)
			if err != nil {
				return model.Location{}, err
			}
			if box == nil {
				return model.Location{}, &model.InvalidLocationError{Ref: refStr, Reason: "no such box in kit"}
			}
			boxID = box.ID
		}
		loc := model.KitLocation(ref.KitID, boxID)
		return loc, uc.Validate(ctx, loc)
	}
	return model.Location{}, &model.InvalidLocationError{Ref: refStr, Reason: "empty reference"}
}

func (uc *locationUseCase) Validate(ctx context.Context, loc model.Location) error {
	switch loc.Type {
	case model.LocationTypeWarehouse:
		w, err := uc.repo.FindWarehouseByID(ctx, loc.WarehouseID)
		if err != nil {
			return err
		}
		if w == nil {
			return &model.InvalidLocationError{Ref: loc.String(), Reason: "unknown warehouse"}
		}
		if !w.IsActive {
			return &model.InvalidLocationError{Ref: loc.String(), Reason: "warehouse is inactive"}
		}
		return nil
	case model.LocationTypeKit:
		kit, err := uc.repo.FindKitByID(ctx, loc.KitID)
		if err != nil {
			return err
		}
		if kit == nil {
			return &model.InvalidLocationError{Ref: loc.String(), Reason: "unknown kit"}
		}
		if !kit.IsActive {
			return &model.InvalidLocationError{Ref: loc.String(), Reason: "kit is inactive"}
		}
		if loc.BoxID == "" {
			return nil
		}
		ok, err := uc.BoxBelongsToKit(ctx, loc.BoxID, loc.KitID)
		if err != nil {
			return err
		}
		if !ok {
			return &model.InvalidLocationError{Ref: loc.String(), Reason: "box does not belong to kit"}
		}
		return nil
	}
	return &model.InvalidLocationError{Ref: loc.Key(), Reason: "unknown location type"}
}

func (uc *locationUseCase) BoxBelongsToKit(ctx context.Context, boxID, kitID string) (bool, error) {
	box, err := uc.repo.FindBoxByID(ctx, boxID)
	if err != nil {
		return false, err
	}
	return box != nil && box.KitID == kitID, nil
}

func describe(ref dto.LocationRef) string {
	switch {
	case ref.WarehouseID != "" && ref.KitID == "":
		return "warehouse " + ref.WarehouseID
	case ref.KitID != "":
		s := "kit " + ref.KitID
		if ref.BoxID != "" {
			s += " box " + ref.BoxID
		} else if ref.BoxNumber != "" {
			s += " box #" + ref.BoxNumber
		}
		if ref.WarehouseID != "" {
			s += " warehouse " + ref.WarehouseID
		}
		return s
	}
	return "<empty>"
}
