package dto

import "github.com/fekuna/omnipos-kit-inventory/internal/model"

type RegisterItemInput struct {
	Kind         model.ItemKind
	PartNumber   string
	SerialNumber string
	LotNumber    string
	TrackingType model.TrackingType
	Description  string
	Unit         string
}
