package reorder

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
)

type Repository interface {
	Create(ctx context.Context, r *model.ReorderRequest) error
	Update(ctx context.Context, r *model.ReorderRequest) error
	FindByID(ctx context.Context, id string) (*model.ReorderRequest, error)
	FindAll(ctx context.Context, filters *dto.ReorderFilters) ([]model.ReorderRequest, int, error)
	// FindOpenByOwner backs the (item, kit) open-request index. Empty kitID means warehouse level.
	FindOpenByOwner(ctx context.Context, itemID, kitID string) ([]model.ReorderRequest, error)
}
