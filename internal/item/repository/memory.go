package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]model.Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]model.Item)}
}

func (r *MemoryRepository) Create(_ context.Context, it *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[it.ID] = *it
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.ItemFilters) ([]model.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Item
	for _, it := range r.items {
		if f.Kind != "" && it.Kind != f.Kind {
			continue
		}
		if f.PartNumber != "" && it.PartNumber != f.PartNumber {
			continue
		}
		if f.TrackingType != "" && it.TrackingType != f.TrackingType {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	return paginate(out, f.Page, f.PageSize), total, nil
}

func (r *MemoryRepository) FindBySerial(_ context.Context, serial string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.SerialNumber != nil && *it.SerialNumber == serial {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindByLot(_ context.Context, lot string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Item
	for _, it := range r.items {
		if it.LotNumber != nil && *it.LotNumber == lot {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *MemoryRepository) FindUntracked(_ context.Context, kind model.ItemKind, partNumber string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.Kind == kind && it.PartNumber == partNumber && it.SerialNumber == nil && it.LotNumber == nil {
			found := it
			return &found, nil
		}
	}
	return nil, nil
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
