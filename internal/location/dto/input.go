package dto

type RegisterKitInput struct {
	KitID        string
	Name         string
	AircraftType string
}

type AddBoxInput struct {
	KitID       string
	BoxNumber   string
	Description string
}

type RegisterWarehouseInput struct {
	WarehouseID string
	Name        string
	Address     string
}

// LocationRef is a logical reference: "kit X box Y" or "warehouse Z".
// A box may be named by id or by its number within the kit.
type LocationRef struct {
	KitID       string `json:"kit_id,omitempty"`
	BoxID       string `json:"box_id,omitempty"`
	BoxNumber   string `json:"box_number,omitempty"`
	WarehouseID string `json:"warehouse_id,omitempty"`
}
