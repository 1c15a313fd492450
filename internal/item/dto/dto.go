package dto

import "github.com/fekuna/omnipos-kit-inventory/internal/model"

type ItemFilters struct {
	Kind         model.ItemKind
	PartNumber   string
	TrackingType model.TrackingType
	Page         int
	PageSize     int
}
