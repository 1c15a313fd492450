package handler

import (
	"context"

	kitinventoryv1 "github.com/fekuna/omnipos-kit-inventory/api/kitinventory/v1"
	"github.com/fekuna/omnipos-kit-inventory/internal/auth"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/location"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/rpc"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type IssuanceHandler struct {
	kitinventoryv1.UnimplementedIssuanceServiceServer
	uc        issuance.UseCase
	locations location.UseCase
	logger    logger.ZapLogger
}

func NewIssuanceHandler(uc issuance.UseCase, locations location.UseCase, log logger.ZapLogger) *IssuanceHandler {
	return &IssuanceHandler{
		uc:        uc,
		locations: locations,
		logger:    log,
	}
}

func (h *IssuanceHandler) Issue(ctx context.Context, req *kitinventoryv1.IssueRequest) (*kitinventoryv1.Issuance, error) {
	qty, err := rpc.Decimal("quantity", req.Quantity)
	if err != nil {
		return nil, rpc.Error(err)
	}
	loc, err := h.locations.Resolve(ctx, rpc.LocationRef(req.Location))
	if err != nil {
		return nil, rpc.Error(err)
	}

	is, err := h.uc.Issue(ctx, &dto.IssueInput{
		ItemID:      req.ItemId,
		Location:    loc,
		Quantity:    qty,
		Recipient:   req.Recipient,
		Purpose:     req.Purpose,
		WorkOrderID: req.WorkOrderId,
		UserID:      auth.GetUserID(ctx),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapIssuanceToProto(is), nil
}

func (h *IssuanceHandler) GetIssuance(ctx context.Context, req *kitinventoryv1.GetIssuanceRequest) (*kitinventoryv1.Issuance, error) {
	is, err := h.uc.GetIssuance(ctx, req.Id)
	if err != nil {
		return nil, rpc.Error(err)
	}
	return mapIssuanceToProto(is), nil
}

func (h *IssuanceHandler) ListIssuances(ctx context.Context, req *kitinventoryv1.ListIssuancesRequest) (*kitinventoryv1.ListIssuancesResponse, error) {
	list, count, err := h.uc.ListIssuances(ctx, &dto.IssuanceFilters{
		ItemID:      req.ItemId,
		KitID:       req.KitId,
		WorkOrderID: req.WorkOrderId,
		Recipient:   req.Recipient,
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	})
	if err != nil {
		return nil, rpc.Error(err)
	}

	protoIssuances := make([]*kitinventoryv1.Issuance, len(list))
	for i := range list {
		protoIssuances[i] = mapIssuanceToProto(&list[i])
	}
	return &kitinventoryv1.ListIssuancesResponse{Issuances: protoIssuances, Total: int32(count)}, nil
}

func mapIssuanceToProto(m *model.Issuance) *kitinventoryv1.Issuance {
	if m == nil {
		return nil
	}
	return &kitinventoryv1.Issuance{
		Id:          m.ID,
		ItemId:      m.ItemID,
		Location:    rpc.LocationToProto(m.Location),
		Quantity:    m.Quantity.String(),
		Recipient:   m.Recipient,
		Purpose:     m.Purpose,
		WorkOrderId: rpc.String(m.WorkOrderID),
		IssuedBy:    rpc.String(m.IssuedBy),
		IssuedAt:    timestamppb.New(m.IssuedAt),
	}
}
