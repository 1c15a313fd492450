package transfer

import (
	"context"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer/dto"
)

// UseCase is the TransferCoordinator.
type UseCase interface {
	// CreateTransfer moves stock between two locations. It returns a transfer
	// that is either completed or cancelled; a cancelled transfer comes back
	// together with the error that caused it.
	CreateTransfer(ctx context.Context, input *dto.CreateTransferInput) (*model.Transfer, error)
	GetTransfer(ctx context.Context, id string) (*model.Transfer, error)
	ListTransfers(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error)
}

const (
	EventTransferCompleted = "transfer.completed"
	EventTransferCancelled = "transfer.cancelled"
)
