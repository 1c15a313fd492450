package handler

import (
	"context"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/internal/auth"
	"github.com/fekuna/omnipos-kit-inventory/internal/inventory"
	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/location"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/rpc"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type InventoryHandler struct {
	kitinventoryv1.UnimplementedInventoryServiceServer
	uc        inventory.UseCase
	locations location.UseCase
	logger    logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, locations location.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:        uc,
		locations: locations,
		logger:    log,
	}
}

func (h *InventoryHandler) GetQuantity(ctx context.Context, req *kitinventoryv1.GetQuantityRequest) (*kitinventoryv1.GetQuantityResponse, error) {
	loc, err := h.locations.Resolve(ctx, rpc.LocationRef(req.Location))
	if err != nil {
		return nil, rpc.Error(err)
	}
	qty, err := h.uc.GetQuantity(ctx, req.ItemId, loc)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return &kitinventoryv1.GetQuantityResponse{
		ItemId:   req.ItemId,
		Location: rpc.LocationToProto(loc),
		Quantity: qty.String(),
	}, nil
}

func (h *InventoryHandler) AdjustStock(ctx context.Context, req *kitinventoryv1.AdjustStockRequest) (*kitinventoryv1.InventoryRecord, error) {
	change, err := rpc.Decimal("quantity_change", req.QuantityChange)
	if err != nil {
		return nil, rpc.Error(err)
	}
	loc, err := h.locations.Resolve(ctx, rpc.LocationRef(req.Location))
	if err != nil {
		return nil, rpc.Error(err)
	}

	rec, err := h.uc.AdjustStock(ctx, &dto.AdjustInventoryInput{
		ItemID:         req.ItemId,
		Location:       loc,
		QuantityChange: change,
		Reason:         req.Reason,
		ReferenceID:    req.ReferenceId,
		UserID:         auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapRecordToProto(rec), nil
}

func (h *InventoryHandler) SetMinimumStock(ctx context.Context, req *kitinventoryv1.SetMinimumStockRequest) (*kitinventoryv1.InventoryRecord, error) {
	level, err := rpc.OptionalDecimal("level", req.Level)
	if err != nil {
		return nil, rpc.Error(err)
	}
	loc, err := h.locations.Resolve(ctx, rpc.LocationRef(req.Location))
	if err != nil {
		return nil, rpc.Error(err)
	}

	rec, err := h.uc.SetMinimumStock(ctx, &dto.SetMinimumStockInput{
		ItemID:   req.ItemId,
		Location: loc,
		Level:    level,
		UserID:   auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapRecordToProto(rec), nil
}

func (h *InventoryHandler) ListRecords(ctx context.Context, req *kitinventoryv1.ListRecordsRequest) (*kitinventoryv1.ListRecordsResponse, error) {
	records, count, err := h.uc.ListRecords(ctx, &dto.InventoryFilters{
		ItemID:       req.ItemId,
		LocationType: model.LocationType(req.LocationType),
		KitID:        req.KitId,
		WarehouseID:  req.WarehouseId,
		LowStock:     req.LowStock,
		Page:         int(req.Page),
		PageSize:     int(req.PageSize),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}

	protoRecords := make([]*kitinventoryv1.InventoryRecord, len(records))
	for i := range records {
		protoRecords[i] = mapRecordToProto(&records[i])
	}
	return &kitinventoryv1.ListRecordsResponse{Records: protoRecords, Total: int32(count)}, nil
}

func (h *InventoryHandler) ListMovements(ctx context.Context, req *kitinventoryv1.ListMovementsRequest) (*kitinventoryv1.ListMovementsResponse, error) {
	filters := &dto.MovementFilters{
		ItemID:       req.ItemId,
		MovementType: model.MovementType(req.MovementType),
		ReferenceID:  req.ReferenceId,
		StartDate:    rpc.Time(req.StartDate),
		EndDate:      rpc.Time(req.EndDate),
		Page:         int(req.Page),
		PageSize:     int(req.PageSize),
	}
	if req.Location != nil {
		loc, err := h.locations.Resolve(ctx, rpc.LocationRef(req.Location))
		if err != nil {
			return nil, rpc.Error(err)
		}
		filters.Location = &loc
	}

	mvs, count, err := h.uc.ListMovements(ctx, filters)
	if err != nil {
		return nil, rpc.Error(err)
	}

	protoMovements := make([]*kitinventoryv1.InventoryMovement, len(mvs))
	for i := range mvs {
		protoMovements[i] = mapMovementToProto(&mvs[i])
	}
	return &kitinventoryv1.ListMovementsResponse{Movements: protoMovements, Total: int32(count)}, nil
}

func mapRecordToProto(m *model.InventoryRecord) *kitinventoryv1.InventoryRecord {
	if m == nil {
		return nil
	}
	minLevel := ""
	if m.MinimumStockLevel.Valid {
		minLevel = m.MinimumStockLevel.Decimal.String()
	}
	return &kitinventoryv1.InventoryRecord{
		Id:                m.ID,
		ItemId:            m.ItemID,
		Location:          rpc.LocationToProto(m.Location),
		Quantity:          m.Quantity.String(),
		MinimumStockLevel: minLevel,
		CreatedAt:         timestamppb.New(m.CreatedAt),
		UpdatedAt:         timestamppb.New(m.UpdatedAt),
	}
}

func mapMovementToProto(m *model.InventoryMovement) *kitinventoryv1.InventoryMovement {
	if m == nil {
		return nil
	}
	return &kitinventoryv1.InventoryMovement{
		Id:             m.ID,
		ItemId:         m.ItemID,
		Location:       rpc.LocationToProto(m.Location),
		MovementType:   string(m.MovementType),
		QuantityChange: m.QuantityChange.String(),
		QuantityBefore: m.QuantityBefore.String(),
		QuantityAfter:  m.QuantityAfter.String(),
		ReferenceType:  rpc.String(m.ReferenceType),
		ReferenceId:    rpc.String(m.ReferenceID),
		Notes:          m.Notes,
		CreatedBy:      rpc.String(m.CreatedBy),
		CreatedAt:      timestamppb.New(m.CreatedAt),
	}
}
