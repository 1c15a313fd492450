package dto

import "github.com/fekuna/omnipos-kit-inventory/internal/model"

type TransferFilters struct {
	ItemID string
	// Location matches either end of the transfer.
	Location *model.Location
	Status   model.TransferStatus
	Page     int
	PageSize int
}
