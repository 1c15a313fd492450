package handler

import (
	"context"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/internal/auth"
	"github.com/fekuna/omnipos-kit-inventory/internal/location"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/rpc"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type ReorderHandler struct {
	kitinventoryv1.UnimplementedReorderServiceServer
	uc        reorder.UseCase
	locations location.UseCase
	logger    logger.ZapLogger
}

func NewReorderHandler(uc reorder.UseCase, locations location.UseCase, log logger.ZapLogger) *ReorderHandler {
	return &ReorderHandler{
		uc:        uc,
		locations: locations,
		logger:    log,
	}
}

func (h *ReorderHandler) CreateReorder(ctx context.Context, req *kitinventoryv1.CreateReorderRequest) (*kitinventoryv1.ReorderRequest, error) {
	qty, err := rpc.Decimal("quantity", req.Quantity)
	if err != nil {
		return nil, rpc.Error(err)
	}
	r, err := h.uc.Create(ctx, &dto.CreateReorderInput{
		ItemID:      req.ItemId,
		OwningKitID: req.OwningKitId,
		Quantity:    qty,
		Priority:    model.ReorderPriority(req.Priority),
		Notes:       req.Notes,
		UserID:      auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapReorderToProto(r), nil
}

func (h *ReorderHandler) ApproveReorder(ctx context.Context, req *kitinventoryv1.ApproveReorderRequest) (*kitinventoryv1.ReorderRequest, error) {
	r, err := h.uc.Approve(ctx, &dto.ApproveInput{RequestID: req.Id, Notes: req.Notes, UserID: auth.GetUserID(ctx)})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapReorderToProto(r), nil
}

func (h *ReorderHandler) MarkOrdered(ctx context.Context, req *kitinventoryv1.MarkOrderedRequest) (*kitinventoryv1.ReorderRequest, error) {
	r, err := h.uc.MarkOrdered(ctx, &dto.MarkOrderedInput{
		RequestID:       req.Id,
		VendorReference: req.VendorReference,
		UserID:          auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapReorderToProto(r), nil
}

func (h *ReorderHandler) FulfillReorder(ctx context.Context, req *kitinventoryv1.FulfillReorderRequest) (*kitinventoryv1.ReorderRequest, error) {
	loc, err := h.locations.Resolve(ctx, rpc.LocationRef(req.Location))
	if err != nil {
		return nil, rpc.Error(err)
	}
	r, err := h.uc.Fulfill(ctx, &dto.FulfillInput{RequestID: req.Id, Location: loc, UserID: auth.GetUserID(ctx)})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapReorderToProto(r), nil
}

func (h *ReorderHandler) CancelReorder(ctx context.Context, req *kitinventoryv1.CancelReorderRequest) (*kitinventoryv1.ReorderRequest, error) {
	r, err := h.uc.Cancel(ctx, &dto.CancelInput{RequestID: req.Id, Reason: req.Reason, UserID: auth.GetUserID(ctx)})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapReorderToProto(r), nil
}

func (h *ReorderHandler) GetReorder(ctx context.Context, req *kitinventoryv1.GetReorderRequest) (*kitinventoryv1.ReorderRequest, error) {
	r, err := h.uc.Get(ctx, req.Id)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapReorderToProto(r), nil
}

func (h *ReorderHandler) ListReorders(ctx context.Context, req *kitinventoryv1.ListReordersRequest) (*kitinventoryv1.ListReordersResponse, error) {
	list, count, err := h.uc.List(ctx, &dto.ReorderFilters{
		ItemID:         req.ItemId,
		KitID:          req.KitId,
		WarehouseLevel: req.WarehouseLevel,
		Status:         model.ReorderStatus(req.Status),
		OpenOnly:       req.OpenOnly,
		IsAutomatic:    req.IsAutomatic,
		Page:           int(req.Page),
		PageSize:       int(req.PageSize),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}

	protoRequests := make([]*kitinventoryv1.ReorderRequest, len(list))
	for i := range list {
		protoRequests[i] = mapReorderToProto(&list[i])
	}
	return &kitinventoryv1.ListReordersResponse{Requests: protoRequests, Total: int32(count)}, nil
}

func mapReorderToProto(m *model.ReorderRequest) *kitinventoryv1.ReorderRequest {
	if m == nil {
		return nil
	}
	return &kitinventoryv1.ReorderRequest{
		Id:                m.ID,
		ItemId:            m.ItemID,
		OwningKitId:       rpc.String(m.OwningKitID),
		QuantityRequested: m.QuantityRequested.String(),
		Priority:          string(m.Priority),
		IsAutomatic:       m.IsAutomatic,
		Status:            string(m.Status),
		FulfillmentBox:    rpc.String(m.FulfillmentBox),
		Notes:             m.Notes,
		VendorReference:   rpc.String(m.VendorReference),
		CancelReason:      rpc.String(m.CancelReason),
		RequestedBy:       rpc.String(m.RequestedBy),
		ApprovedBy:        rpc.String(m.ApprovedBy),
		ApprovedAt:        rpc.Timestamp(m.ApprovedAt),
		OrderedBy:         rpc.String(m.OrderedBy),
		OrderedAt:         rpc.Timestamp(m.OrderedAt),
		FulfilledBy:       rpc.String(m.FulfilledBy),
		FulfilledAt:       rpc.Timestamp(m.FulfilledAt),
		CancelledBy:       rpc.String(m.CancelledBy),
		CancelledAt:       rpc.Timestamp(m.CancelledAt),
		CreatedAt:         timestamppb.New(m.CreatedAt),
		UpdatedAt:         timestamppb.New(m.UpdatedAt),
	}
}
