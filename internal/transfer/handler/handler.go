package handler

import (
	"context"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/internal/auth"
	"github.com/fekuna/omnipos-kit-inventory/internal/location"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/rpc"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer/dto"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type TransferHandler struct {
	kitinventoryv1.UnimplementedTransferServiceServer
	uc        transfer.UseCase
	locations location.UseCase
	logger    logger.ZapLogger
}

func NewTransferHandler(uc transfer.UseCase, locations location.UseCase, log logger.ZapLogger) *TransferHandler {
	return &TransferHandler{
		uc:        uc,
		locations: locations,
		logger:    log,
	}
}

func (h *TransferHandler) CreateTransfer(ctx context.Context, req *kitinventoryv1.CreateTransferRequest) (*kitinventoryv1.Transfer, error) {
	qty, err := rpc.Decimal("quantity", req.Quantity)
	if err != nil {
		return nil, rpc.Error(err)
	}
	from, err := h.locations.Resolve(ctx, rpc.LocationRef(req.From))
	if err != nil {
		return nil, rpc.Error(err)
	}
	to, err := h.locations.Resolve(ctx, rpc.LocationRef(req.To))
	if err != nil {
		return nil, rpc.Error(err)
	}

	t, err := h.uc.CreateTransfer(ctx, &dto.CreateTransferInput{
		ItemID:   req.ItemId,
		From:     from,
		To:       to,
		Quantity: qty,
		Notes:    req.Notes,
		UserID:   auth.GetUserID(ctx),
	})
	if err != nil {
		if t != nil {
			h.logger.Info("transfer ended cancelled", zap.String("transfer_id", t.ID))
		}
		return nil, rpc.Error(err)
	}
	return mapTransferToProto(t), nil
}

func (h *TransferHandler) GetTransfer(ctx context.Context, req *kitinventoryv1.GetTransferRequest) (*kitinventoryv1.Transfer, error) {
	t, err := h.uc.GetTransfer(ctx, req.Id)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapTransferToProto(t), nil
}

func (h *TransferHandler) ListTransfers(ctx context.Context, req *kitinventoryv1.ListTransfersRequest) (*kitinventoryv1.ListTransfersResponse, error) {
	filters := &dto.TransferFilters{
		ItemID:   req.ItemId,
		Status:   model.TransferStatus(req.Status),
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	}
	if req.Location != nil {
		loc, err := h.locations.Resolve(ctx, rpc.LocationRef(req.Location))
		if err != nil {
			return nil, rpc.Error(err)
		}
		filters.Location = &loc
	}

	list, count, err := h.uc.ListTransfers(ctx, filters)
	if err != nil {
		return nil, rpc.Error(err)
	}

	protoTransfers := make([]*kitinventoryv1.Transfer, len(list))
	for i := range list {
		protoTransfers[i] = mapTransferToProto(&list[i])
	}
	return &kitinventoryv1.ListTransfersResponse{Transfers: protoTransfers, Total: int32(count)}, nil
}

func mapTransferToProto(m *model.Transfer) *kitinventoryv1.Transfer {
	if m == nil {
		return nil
	}
	return &kitinventoryv1.Transfer{
		Id:            m.ID,
		ItemId:        m.ItemID,
		From:          rpc.LocationToProto(m.From),
		To:            rpc.LocationToProto(m.To),
		Quantity:      m.Quantity.String(),
		Status:        string(m.Status),
		Notes:         m.Notes,
		CancelReason:  rpc.String(m.CancelReason),
		TransferredBy: rpc.String(m.TransferredBy),
		CreatedAt:     timestamppb.New(m.CreatedAt),
		UpdatedAt:     timestamppb.New(m.UpdatedAt),
		CompletedAt:   rpc.Timestamp(m.CompletedAt),
	}
}
