package handler

import (
	"context"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/internal/item"
	"github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/rpc"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type ItemHandler struct {
	kitinventoryv1.UnimplementedItemServiceServer
	uc     item.UseCase
	logger logger.ZapLogger
}

func NewItemHandler(uc item.UseCase, log logger.ZapLogger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ItemHandler) RegisterItem(ctx context.Context, req *kitinventoryv1.RegisterItemRequest) (*kitinventoryv1.Item, error) {
	it, err := h.uc.RegisterItem(ctx, &dto.RegisterItemInput{
		Kind:         model.ItemKind(req.Kind),
		PartNumber:   req.PartNumber,
		SerialNumber: req.SerialNumber,
		LotNumber:    req.LotNumber,
		TrackingType: model.TrackingType(req.TrackingType),
		Description:  req.Description,
		Unit:         req.Unit,
	})
	if err != nil {
		h.logger.Warn("register item rejected", zap.String("part_number", req.PartNumber), zap.Error(err))
		return nil, rpc.Error(err)
	}
	return mapItemToProto(it), nil
}

func (h *ItemHandler) GetItem(ctx context.Context, req *kitinventoryv1.GetItemRequest) (*kitinventoryv1.Item, error) {
	it, err := h.uc.GetItem(ctx, req.Id)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapItemToProto(it), nil
}

func (h *ItemHandler) ListItems(ctx context.Context, req *kitinventoryv1.ListItemsRequest) (*kitinventoryv1.ListItemsResponse, error) {
	items, count, err := h.uc.ListItems(ctx, &dto.ItemFilters{
		Kind:         model.ItemKind(req.Kind),
		PartNumber:   req.PartNumber,
		TrackingType: model.TrackingType(req.TrackingType),
		Page:         int(req.Page),
		PageSize:     int(req.PageSize),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}

	protoItems := make([]*kitinventoryv1.Item, len(items))
	for i := range items {
		protoItems[i] = mapItemToProto(&items[i])
	}
	return &kitinventoryv1.ListItemsResponse{Items: protoItems, Total: int32(count)}, nil
}

func mapItemToProto(m *model.Item) *kitinventoryv1.Item {
	if m == nil {
		return nil
	}
	return &kitinventoryv1.Item{
		Id:           m.ID,
		Kind:         string(m.Kind),
		PartNumber:   m.PartNumber,
		SerialNumber: rpc.String(m.SerialNumber),
		LotNumber:    rpc.String(m.LotNumber),
		TrackingType: string(m.TrackingType),
		Description:  m.Description,
		Unit:         m.Unit,
		CreatedAt:    timestamppb.New(m.CreatedAt),
		UpdatedAt:    timestamppb.New(m.UpdatedAt),
	}
}
