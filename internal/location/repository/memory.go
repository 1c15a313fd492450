package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

type MemoryRepository struct {
	mu         sync.RWMutex
	kits       map[string]model.Kit
	boxes      map[string]model.Box
	warehouses map[string]model.Warehouse
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		kits:       make(map[string]model.Kit),
		boxes:      make(map[string]model.Box),
		warehouses: make(map[string]model.Warehouse),
	}
}

func (r *MemoryRepository) CreateKit(_ context.Context, kit *model.Kit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := *kit
	k.Boxes = nil
	r.kits[k.ID] = k
	return nil
}

func (r *MemoryRepository) UpdateKit(ctx context.Context, kit *model.Kit) error {
	return r.CreateKit(ctx, kit)
}

func (r *MemoryRepository) FindKitByID(_ context.Context, id string) (*model.Kit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kits[id]
	if !ok {
		return nil, nil
	}
	return &k, nil
}

func (r *MemoryRepository) FindAllKits(_ context.Context, f *dto.KitFilters) ([]model.Kit, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Kit
	for _, k := range r.kits {
		if f.AircraftType != "" && k.AircraftType != f.AircraftType {
			continue
		}
		if f.IsActive != nil && k.IsActive != *f.IsActive {
			continue
		}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, f.Page, f.PageSize), len(out), nil
}

func (r *MemoryRepository) CreateBox(_ context.Context, box *model.Box) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boxes[box.ID] = *box
	return nil
}

func (r *MemoryRepository) FindBoxByID(_ context.Context, id string) (*model.Box, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.boxes[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *MemoryRepository) FindBoxByNumber(_ context.Context, kitID, boxNumber string) (*model.Box, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.boxes {
		if b.KitID == kitID && b.BoxNumber == boxNumber {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) ListBoxes(_ context.Context, kitID string) ([]model.Box, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Box
	for _, b := range r.boxes {
		if b.KitID == kitID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BoxNumber < out[j].BoxNumber })
	return out, nil
}

func (r *MemoryRepository) CreateWarehouse(_ context.Context, w *model.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warehouses[w.ID] = *w
	return nil
}

func (r *MemoryRepository) UpdateWarehouse(ctx context.Context, w *model.Warehouse) error {
	return r.CreateWarehouse(ctx, w)
}

func (r *MemoryRepository) FindWarehouseByID(_ context.Context, id string) (*model.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *MemoryRepository) FindAllWarehouses(_ context.Context, f *dto.WarehouseFilters) ([]model.Warehouse, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Warehouse
	for _, w := range r.warehouses {
		if f.IsActive != nil && w.IsActive != *f.IsActive {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, f.Page, f.PageSize), len(out), nil
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
