package threshold

import (
	"context"
	"fmt"

	invdto "github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"go.uber.org/zap"
)

// ReorderCreator is the slice of the reorder lifecycle the monitor drives.
type ReorderCreator interface {
	CreateAutomatic(ctx context.Context, input *dto.AutomaticReorderInput) (*model.ReorderRequest, bool, error)
	CancelAutomaticOnRecovery(ctx context.Context, itemID, kitID string) (int, error)
}

type Monitor struct {
	reorders ReorderCreator
	policy   Policy
	logger   logger.ZapLogger
}

func NewMonitor(reorders ReorderCreator, policy Policy, log logger.ZapLogger) *Monitor {
	return &Monitor{reorders: reorders, policy: policy, logger: log}
}

// OnQuantityChanged runs after every committed ledger change. Failures are
// logged; the stock change that triggered them stands.
func (m *Monitor) OnQuantityChanged(ctx context.Context, change invdto.QuantityChange) {
	if err := m.Evaluate(ctx, change); err != nil {
		m.logger.Error("threshold evaluation failed",
			zap.String("item_id", change.ItemID),
			zap.String("location", change.Location.Key()),
			zap.Error(err))
	}
}

// Evaluate applies the reorder policy to one change.
func (m *Monitor) Evaluate(ctx context.Context, change invdto.QuantityChange) error {
	if !change.Location.IsKit() || !change.MinimumStockLevel.Valid {
		return nil
	}
	level := change.MinimumStockLevel.Decimal
	kitID := change.Location.KitID

	if change.After.LessThanOrEqual(level) {
		req, created, err := m.reorders.CreateAutomatic(ctx, &dto.AutomaticReorderInput{
			ItemID:   change.ItemID,
			KitID:    kitID,
			Quantity: m.policy.RestockQuantity(change.After, level),
			Priority: m.policy.Priority(change.After, level),
			Notes:    fmt.Sprintf("quantity %s at or below minimum %s", change.After, level),
		})
		if err != nil {
			return fmt.Errorf("create automatic reorder: %w", err)
		}
		if !created {
			m.logger.Debug("open reorder already covers item",
				zap.String("item_id", change.ItemID),
				zap.String("kit_id", kitID),
				zap.String("request_id", req.ID))
		}
		return nil
	}

	if m.policy.AutoCancelOnRecovery && change.Before.LessThanOrEqual(level) {
		n, err := m.reorders.CancelAutomaticOnRecovery(ctx, change.ItemID, kitID)
		if err != nil {
			return fmt.Errorf("cancel recovered reorders: %w", err)
		}
		if n > 0 {
			m.logger.Info("automatic reorders cancelled on recovery",
				zap.String("item_id", change.ItemID),
				zap.String("kit_id", kitID),
				zap.Int("cancelled", n))
		}
	}
	return nil
}
