package transfer

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer/dto"
)

type Repository interface {
	Create(ctx context.Context, t *model.Transfer) error
	// UpdateStatus persists the status, reason and completion stamp; nothing else on a transfer changes.
	UpdateStatus(ctx context.Context, t *model.Transfer) error
	FindByID(ctx context.Context, id string) (*model.Transfer, error)
	FindAll(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error)
}
