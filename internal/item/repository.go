package item

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

type Repository interface {
	Create(ctx context.Context, item *model.Item) error
	// FindByID returns nil, nil when the item does not exist.
	FindByID(ctx context.Context, id string) (*model.Item, error)
	FindAll(ctx context.Context, filters *dto.ItemFilters) ([]model.Item, int, error)

	// Identity lookups backing collision checks
	FindBySerial(ctx context.Context, serial string) (*model.Item, error)
	FindByLot(ctx context.Context, lot string) ([]model.Item, error)
	FindUntracked(ctx context.Context, kind model.ItemKind, partNumber string) (*model.Item, error)
}
