package location

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

// Repository lookups return nil, nil when nothing matches.
type Repository interface {
	CreateKit(ctx context.Context, kit *model.Kit) error
	UpdateKit(ctx context.Context, kit *model.Kit) error
	FindKitByID(ctx context.Context, id string) (*model.Kit, error)
	FindAllKits(ctx context.Context, filters *dto.KitFilters) ([]model.Kit, int, error)

	CreateBox(ctx context.Context, box *model.Box) error
	FindBoxByID(ctx context.Context, id string) (*model.Box, error)
	FindBoxByNumber(ctx context.Context, kitID, boxNumber string) (*model.Box, error)
	ListBoxes(ctx context.Context, kitID string) ([]model.Box, error)

	CreateWarehouse(ctx context.Context, w *model.Warehouse) error
	UpdateWarehouse(ctx context.Context, w *model.Warehouse) error
	FindWarehouseByID(ctx context.Context, id string) (*model.Warehouse, error)
	FindAllWarehouses(ctx context.Context, filters *dto.WarehouseFilters) ([]model.Warehouse, int, error)
}
