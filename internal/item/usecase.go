package item

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

type UseCase interface {
	RegisterItem(ctx context.Context, input *dto.RegisterItemInput) (*model.Item, error)
	GetItem(ctx context.Context, id string) (*model.Item, error)
	ListItems(ctx context.Context, filters *dto.ItemFilters) ([]model.Item, int, error)
}
