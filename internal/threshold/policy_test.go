package threshold

import (
	"testing"

	"github.com/fekuna/omnipos-kit-inventory/config"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPolicy_Priority(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		qty, level string
		want       model.ReorderPriority
	}{
		{"4", "5", model.PriorityMedium},
		{"5", "5", model.PriorityMedium},
		{"2.5", "5", model.PriorityHigh},
		{"1.3", "5", model.PriorityHigh},
		{"1.25", "5", model.PriorityUrgent},
		{"0", "5", model.PriorityUrgent},
		{"0", "0", model.PriorityUrgent},
		{"30", "100", model.PriorityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.qty+"/"+tt.level, func(t *testing.T) {
			got := p.Priority(decimal.RequireFromString(tt.qty), decimal.RequireFromString(tt.level))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_PriorityUsesConfiguredCutoffs(t *testing.T) {
	p := PolicyFromConfig(config.ReorderPolicyConfig{UrgentRatio: 0.1, HighRatio: 0.9, RestockMultiplier: 1})
	five := decimal.NewFromInt(5)

	assert.Equal(t, model.PriorityHigh, p.Priority(decimal.NewFromInt(1), five))
	assert.Equal(t, model.PriorityHigh, p.Priority(decimal.NewFromInt(4), five))
	assert.Equal(t, model.PriorityMedium, p.Priority(decimal.NewFromInt(5), five))
}

func TestPolicy_RestockQuantity(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		qty, level, want string
	}{
		{"4", "5", "6"},
		{"0", "5", "10"},
		{"0.5", "1.5", "2.5"},
		{"12", "5", "5"},
		{"0", "0", "1"},
	}
	for _, tt := range tests {
		got := p.RestockQuantity(decimal.RequireFromString(tt.qty), decimal.RequireFromString(tt.level))
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "qty %s level %s: got %s", tt.qty, tt.level, got)
	}
}
