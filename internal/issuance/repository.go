package issuance

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

// Repository is append-only: issuances are never updated or deleted.
type Repository interface {
	Create(ctx context.Context, is *model.Issuance) error
	FindByID(ctx context.Context, id string) (*model.Issuance, error)
	FindAll(ctx context.Context, filters *dto.IssuanceFilters) ([]model.Issuance, int, error)
}
