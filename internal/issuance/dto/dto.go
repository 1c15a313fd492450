package dto

type IssuanceFilters struct {
	ItemID        string
	KitID         string
	WorkOrderID   string
	Recipient     string
	SourceEventID string
	Page          int
	PageSize      int
}
