package location

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

type UseCase interface {
	RegisterKit(ctx context.Context, input *dto.RegisterKitInput) (*model.Kit, error)
	AddBox(ctx context.Context, input *dto.AddBoxInput) (*model.Box, error)
	RegisterWarehouse(ctx context.Context, input *dto.RegisterWarehouseInput) (*model.Warehouse, error)
	DeactivateKit(ctx context.Context, kitID string) error
	DeactivateWarehouse(ctx context.Context, warehouseID string) error

	GetKit(ctx context.Context, kitID string) (*model.Kit, error)
	ListKits(ctx context.Context, filters *dto.KitFilters) ([]model.Kit, int, error)
	ListWarehouses(ctx context.Context, filters *dto.WarehouseFilters) ([]model.Warehouse, int, error)

	// Resolve turns a logical reference into a validated location identity.
	Resolve(ctx context.Context, ref dto.LocationRef) (model.Location, error)
	// Validate re-checks an already resolved location (still exists, still active).
	Validate(ctx context.Context, loc model.Location) error
	BoxBelongsToKit(ctx context.Context, boxID, kitID string) (bool, error)
}
