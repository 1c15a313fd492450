package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	records   map[string]model.InventoryRecord
	movements []model.InventoryMovement
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]model.InventoryRecord)}
}

func (r *MemoryRepository) GetRecord(_ context.Context, itemID string, loc model.Location) (*model.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[model.RecordKey(itemID, loc)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.InventoryFilters) ([]model.InventoryRecord, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.InventoryRecord
	for _, rec := range r.records {
		if matchRecord(&rec, f) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	total := len(out)
	return paginate(out, f.Page, f.PageSize), total, nil
}

func matchRecord(rec *model.InventoryRecord, f *dto.InventoryFilters) bool {
	if f.ItemID != "" && rec.ItemID != f.ItemID {
		return false
	}
	if f.LocationType != "" && rec.Location.Type != f.LocationType {
		return false
	}
	if f.KitID != "" && (!rec.Location.IsKit() || rec.Location.KitID != f.KitID) {
		return false
	}
	if f.WarehouseID != "" && (!rec.Location.IsWarehouse() || rec.Location.WarehouseID != f.WarehouseID) {
		return false
	}
	if f.LowStock && !rec.BelowMinimum() {
		return false
	}
	return true
}

func (r *MemoryRepository) SumQuantity(_ context.Context, itemID string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, rec := range r.records {
		if rec.ItemID == itemID {
			total = total.Add(rec.Quantity)
		}
	}
	return total, nil
}

func (r *MemoryRepository) SaveRecordWithMovement(_ context.Context, rec *model.InventoryRecord, movement *model.InventoryMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.Key()] = *rec
	r.movements = append(r.movements, *movement)
	return nil
}

func (r *MemoryRepository) DeleteRecordWithMovement(_ context.Context, rec *model.InventoryRecord, movement *model.InventoryMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, rec.Key())
	r.movements = append(r.movements, *movement)
	return nil
}

func (r *MemoryRepository) UpdateRecord(_ context.Context, rec *model.InventoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.Key()] = *rec
	return nil
}

func (r *MemoryRepository) ListMovements(_ context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.InventoryMovement
	for _, m := range r.movements {
		if f.ItemID != "" && m.ItemID != f.ItemID {
			continue
		}
		if f.Location != nil && !m.Location.Equal(*f.Location) {
			continue
		}
		if f.MovementType != "" && m.MovementType != f.MovementType {
			continue
		}
		if f.ReferenceID != "" && (m.ReferenceID == nil || *m.ReferenceID != f.ReferenceID) {
			continue
		}
		if f.StartDate != nil && m.CreatedAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && m.CreatedAt.After(*f.EndDate) {
			continue
		}
		out = append(out, m)
	}
	// newest first, insertion order breaks ties
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	return paginate(out, f.Page, f.PageSize), total, nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

