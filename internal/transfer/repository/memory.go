package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/transfer/dto"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	transfers map[string]model.Transfer
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{transfers: make(map[string]model.Transfer)}
}

func (r *MemoryRepository) Create(_ context.Context, t *model.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers[t.ID] = *t
	return nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, t *model.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.transfers[t.ID]
	if !ok {
		return &model.NotFoundError{Entity: "transfer", ID: t.ID}
	}
	cur.Status = t.Status
	cur.CancelReason = t.CancelReason
	cur.CompletedAt = t.CompletedAt
	cur.UpdatedAt = t.UpdatedAt
	r.transfers[t.ID] = cur
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transfers[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.TransferFilters) ([]model.Transfer, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Transfer
	for _, t := range r.transfers {
		if f.ItemID != "" && t.ItemID != f.ItemID {
			continue
		}
		if f.Location != nil && !t.From.Equal(*f.Location) && !t.To.Equal(*f.Location) {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		out = append(out, t)
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
