package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	issuances []model.Issuance
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, is *model.Issuance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if is.SourceEventID != nil {
		for _, cur := range r.issuances {
			if cur.SourceEventID != nil && *cur.SourceEventID == *is.SourceEventID {
				return fmt.Errorf("%w: event %s already recorded as issuance %s", model.ErrIdentityConflict, *is.SourceEventID, cur.ID)
			}
		}
	}
	r.issuances = append(r.issuances, *is)
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Issuance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, is := range r.issuances {
		if is.ID == id {
			found := is
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.IssuanceFilters) ([]model.Issuance, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Issuance
	for _, is := range r.issuances {
		if f.ItemID != "" && is.ItemID != f.ItemID {
			continue
		}
		if f.KitID != "" && is.Location.KitID != f.KitID {
			continue
		}
		if f.WorkOrderID != "" && (is.WorkOrderID == nil || *is.WorkOrderID != f.WorkOrderID) {
			continue
		}
		if f.Recipient != "" && is.Recipient != f.Recipient {
			continue
		}
		if f.SourceEventID != "" && (is.SourceEventID == nil || *is.SourceEventID != f.SourceEventID) {
			continue
		}
		out = append(out, is)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
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
