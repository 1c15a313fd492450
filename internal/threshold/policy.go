// Package threshold watches ledger changes on kit locations and raises
// automatic reorder requests when a record falls to its minimum level.
package threshold

import (
	"github.com/fekuna/omnipos-kit-inventory/config"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
)

type Policy struct {
	// UrgentRatio and HighRatio are fractions of the minimum level.
	UrgentRatio          float64
	HighRatio            float64
	RestockMultiplier    float64
	AutoCancelOnRecovery bool
}

func DefaultPolicy() Policy {
	return Policy{UrgentRatio: 0.25, HighRatio: 0.5, RestockMultiplier: 2}
}

func PolicyFromConfig(c config.ReorderPolicyConfig) Policy {
	return Policy{
		UrgentRatio:          c.UrgentRatio,
		HighRatio:            c.HighRatio,
		RestockMultiplier:    c.RestockMultiplier,
		AutoCancelOnRecovery: c.AutoCancelOnRecovery,
	}
}

// Priority grades how far qty has dropped relative to the minimum.
func (p Policy) Priority(qty, level decimal.Decimal) model.ReorderPriority {
	if !level.IsPositive() {
		return model.PriorityUrgent
	}
	ratio := qty.Div(level)
	switch {
	case ratio.LessThanOrEqual(decimal.NewFromFloat(p.UrgentRatio)):
		return model.PriorityUrgent
	case ratio.LessThanOrEqual(decimal.NewFromFloat(p.HighRatio)):
		return model.PriorityHigh
	default:
		return model.PriorityMedium
	}
}

// RestockQuantity tops the record up to level*RestockMultiplier.
func (p Policy) RestockQuantity(qty, level decimal.Decimal) decimal.Decimal {
	if !level.IsPositive() {
		return decimal.NewFromInt(1)
	}
	need := level.Mul(decimal.NewFromFloat(p.RestockMultiplier)).Sub(qty)
	if !need.IsPositive() {
		return level
	}
	return need
}
