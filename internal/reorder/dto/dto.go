package dto

import "github.com/fekuna/omnipos-kit-inventory/internal/model"

type ReorderFilters struct {
	ItemID string
	// KitID filters on the owning kit; WarehouseLevel selects requests without one.
	KitID          string
	WarehouseLevel bool
	Status         model.ReorderStatus
	OpenOnly       bool
	IsAutomatic    *bool
	Page           int
	PageSize       int
}
