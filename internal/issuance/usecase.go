package issuance

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

// UseCase is the IssuanceProcessor.
type UseCase interface {
	Issue(ctx context.Context, input *dto.IssueInput) (*model.Issuance, error)
	GetIssuance(ctx context.Context, id string) (*model.Issuance, error)
	ListIssuances(ctx context.Context, filters *dto.IssuanceFilters) ([]model.Issuance, int, error)
}

const EventIssuanceRecorded = "issuance.recorded"
