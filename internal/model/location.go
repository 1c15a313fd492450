package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

type LocationType string

const (
	LocationTypeKit       LocationType = "kit"
	LocationTypeWarehouse LocationType = "warehouse"
)

// Location is either a kit (optionally narrowed to a box) or a warehouse.
// Kits and warehouses are peers for transfer purposes.
type Location struct {
	Type        LocationType `json:"type"`
	KitID       string       `json:"kit_id,omitempty"`
	BoxID       string       `json:"box_id,omitempty"`
	WarehouseID string       `json:"warehouse_id,omitempty"`
}

func KitLocation(kitID, boxID string) Location {
	return Location{Type: LocationTypeKit, KitID: kitID, BoxID: boxID}
}

func WarehouseLocation(warehouseID string) Location {
	return Location{Type: LocationTypeWarehouse, WarehouseID: warehouseID}
}

func (l Location) IsKit() bool       { return l.Type == LocationTypeKit }
func (l Location) IsWarehouse() bool { return l.Type == LocationTypeWarehouse }
func (l Location) IsZero() bool      { return l.Type == "" }

// Owner returns the kit id for kit locations and the warehouse id otherwise.
func (l Location) Owner() string {
	if l.IsKit() {
		return l.KitID
	}
	return l.WarehouseID
}

// Key is the serialized identity used for storage and lock ordering.
func (l Location) Key() string {
	switch l.Type {
	case LocationTypeKit:
		return "kit/" + l.KitID + "/" + l.BoxID
	case LocationTypeWarehouse:
		return "warehouse/" + l.WarehouseID
	}
	return ""
}

func (l Location) String() string {
	switch l.Type {
	case LocationTypeKit:
		if l.BoxID == "" {
			return "kit " + l.KitID
		}
		return fmt.Sprintf("kit %s box %s", l.KitID, l.BoxID)
	case LocationTypeWarehouse:
		return "warehouse " + l.WarehouseID
	}
	return "<unset>"
}

func (l Location) Equal(o Location) bool { return l.Key() == o.Key() }

func ParseLocationKey(key string) (Location, error) {
	parts := strings.Split(key, "/")
	switch {
	case len(parts) == 3 && parts[0] == string(LocationTypeKit) && parts[1] != "":
		return KitLocation(parts[1], parts[2]), nil
	case len(parts) == 2 && parts[0] == string(LocationTypeWarehouse) && parts[1] != "":
		return WarehouseLocation(parts[1]), nil
	}
	return Location{}, fmt.Errorf("malformed location key %q", key)
}

// Value stores a location as its key.
func (l Location) Value() (driver.Value, error) {
	if l.IsZero() {
		return nil, nil
	}
	return l.Key(), nil
}

func (l *Location) Scan(src interface{}) error {
	var key string
	switch v := src.(type) {
	case nil:
		*l = Location{}
		return nil
	case string:
		key = v
	case []byte:
		key = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Location", src)
	}
	parsed, err := ParseLocationKey(key)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

type Kit struct {
	BaseModel
	Name         string `db:"name" json:"name"`
	AircraftType string `db:"aircraft_type" json:"aircraft_type"`
	IsActive     bool   `db:"is_active" json:"is_active"`
	Boxes        []Box  `db:"-" json:"boxes"`
}

type Box struct {
	BaseModel
	KitID       string `db:"kit_id" json:"kit_id"`
	BoxNumber   string `db:"box_number" json:"box_number"`
	Description string `db:"description" json:"description"`
}

type Warehouse struct {
	BaseModel
	Name     string `db:"name" json:"name"`
	Address  string `db:"address" json:"address"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
