package handler

import (
	"context"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/internal/location"
	"github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/rpc"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type LocationHandler struct {
	kitinventoryv1.UnimplementedLocationServiceServer
	uc     location.UseCase
	logger logger.ZapLogger
}

func NewLocationHandler(uc location.UseCase, log logger.ZapLogger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *LocationHandler) RegisterKit(ctx context.Context, req *kitinventoryv1.RegisterKitRequest) (*kitinventoryv1.Kit, error) {
	kit, err := h.uc.RegisterKit(ctx, &dto.RegisterKitInput{KitID: req.KitId, Name: req.Name, AircraftType: req.AircraftType})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapKitToProto(kit), nil
}

func (h *LocationHandler) AddBox(ctx context.Context, req *kitinventoryv1.AddBoxRequest) (*kitinventoryv1.Box, error) {
	box, err := h.uc.AddBox(ctx, &dto.AddBoxInput{KitID: req.KitId, BoxNumber: req.BoxNumber, Description: req.Description})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapBoxToProto(box), nil
}

func (h *LocationHandler) RegisterWarehouse(ctx context.Context, req *kitinventoryv1.RegisterWarehouseRequest) (*kitinventoryv1.Warehouse, error) {
	w, err := h.uc.RegisterWarehouse(ctx, &dto.RegisterWarehouseInput{WarehouseID: req.WarehouseId, Name: req.Name, Address: req.Address})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapWarehouseToProto(w), nil
}

func (h *LocationHandler) DeactivateKit(ctx context.Context, req *kitinventoryv1.DeactivateKitRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeactivateKit(ctx, req.KitId); err != nil {
		return nil, rpc.Error(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *LocationHandler) DeactivateWarehouse(ctx context.Context, req *kitinventoryv1.DeactivateWarehouseRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeactivateWarehouse(ctx, req.WarehouseId); err != nil {
		return nil, rpc.Error(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *LocationHandler) GetKit(ctx context.Context, req *kitinventoryv1.GetKitRequest) (*kitinventoryv1.Kit, error) {
	kit, err := h.uc.GetKit(ctx, req.KitId)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapKitToProto(kit), nil
}

func (h *LocationHandler) ListKits(ctx context.Context, req *kitinventoryv1.ListKitsRequest) (*kitinventoryv1.ListKitsResponse, error) {
	kits, count, err := h.uc.ListKits(ctx, &dto.KitFilters{
		AircraftType: req.AircraftType,
		IsActive:     req.IsActive,
		Page:         int(req.Page),
		PageSize:     int(req.PageSize),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}

	protoKits := make([]*kitinventoryv1.Kit, len(kits))
	for i := range kits {
		protoKits[i] = mapKitToProto(&kits[i])
	}
	return &kitinventoryv1.ListKitsResponse{Kits: protoKits, Total: int32(count)}, nil
}

func (h *LocationHandler) ListWarehouses(ctx context.Context, req *kitinventoryv1.ListWarehousesRequest) (*kitinventoryv1.ListWarehousesResponse, error) {
	list, count, err := h.uc.ListWarehouses(ctx, &dto.WarehouseFilters{
		IsActive: req.IsActive,
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}

	protoWarehouses := make([]*kitinventoryv1.Warehouse, len(list))
	for i := range list {
		protoWarehouses[i] = mapWarehouseToProto(&list[i])
	}
	return &kitinventoryv1.ListWarehousesResponse{Warehouses: protoWarehouses, Total: int32(count)}, nil
}

// ResolveLocation lets callers check a reference before submitting stock operations.
func (h *LocationHandler) ResolveLocation(ctx context.Context, req *kitinventoryv1.LocationRef) (*kitinventoryv1.Location, error) {
	loc, err := h.uc.Resolve(ctx, rpc.LocationRef(req))
	if err != nil {
		return nil, rpc.Error(err)
	}
	return rpc.LocationToProto(loc), nil
}

func mapKitToProto(m *model.Kit) *kitinventoryv1.Kit {
	if m == nil {
		return nil
	}
	boxes := make([]*kitinventoryv1.Box, len(m.Boxes))
	for i := range m.Boxes {
		boxes[i] = mapBoxToProto(&m.Boxes[i])
	}
	return &kitinventoryv1.Kit{
		Id:           m.ID,
		Name:         m.Name,
		AircraftType: m.AircraftType,
		IsActive:     m.IsActive,
		Boxes:        boxes,
		CreatedAt:    timestamppb.New(m.CreatedAt),
		UpdatedAt:    timestamppb.New(m.UpdatedAt),
	}
}

func mapBoxToProto(m *model.Box) *kitinventoryv1.Box {
	if m == nil {
		return nil
	}
	return &kitinventoryv1.Box{
		Id:          m.ID,
		KitId:       m.KitID,
		BoxNumber:   m.BoxNumber,
		Description: m.Description,
		CreatedAt:   timestamppb.New(m.CreatedAt),
		UpdatedAt:   timestamppb.New(m.UpdatedAt),
	}
}

func mapWarehouseToProto(m *model.Warehouse) *kitinventoryv1.Warehouse {
	if m == nil {
		return nil
	}
	return &kitinventoryv1.Warehouse{
		Id:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		IsActive:  m.IsActive,
		CreatedAt: timestamppb.New(m.CreatedAt),
		UpdatedAt: timestamppb.New(m.UpdatedAt),
	}
}
