package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	requests map[string]model.ReorderRequest
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{requests: make(map[string]model.ReorderRequest)}
}

func (r *MemoryRepository) Create(_ context.Context, req *model.ReorderRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[req.ID] = *req
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, req *model.ReorderRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[req.ID]; !ok {
		return &model.NotFoundError{Entity: "reorder request", ID: req.ID}
	}
	r.requests[req.ID] = *req
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.ReorderRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.ReorderFilters) ([]model.ReorderRequest, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.ReorderRequest
	for _, req := range r.requests {
		if matches(&req, f) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start > total {
			start = total
		}
		end := start + f.PageSize
		if end > total {
			end = total
		}
		out = out[start:end]
	}
	return out, total, nil
}

func matches(req *model.ReorderRequest, f *dto.ReorderFilters) bool {
	if f.ItemID != "" && req.ItemID != f.ItemID {
		return false
	}
	if f.KitID != "" && (req.OwningKitID == nil || *req.OwningKitID != f.KitID) {
		return false
	}
	if f.WarehouseLevel && req.OwningKitID != nil {
		return false
	}
	if f.Status != "" && req.Status != f.Status {
		return false
	}
	if f.OpenOnly && !req.Status.Open() {
		return false
	}
	if f.IsAutomatic != nil && req.IsAutomatic != *f.IsAutomatic {
		return false
	}
	return true
}

func (r *MemoryRepository) FindOpenByOwner(_ context.Context, itemID, kitID string) ([]model.ReorderRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key := model.ReorderOwnerKey(itemID, kitID)
	var out []model.ReorderRequest
	for _, req := range r.requests {
		if req.Status.Open() && req.OwnerKey() == key {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
