package dto

type KitFilters struct {
	AircraftType string
	IsActive     *bool
	Page         int
	PageSize     int
}

type WarehouseFilters struct {
	IsActive *bool
	Page     int
	PageSize int
}
