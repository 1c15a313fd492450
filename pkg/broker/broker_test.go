package broker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	evt, err := NewEvent("transfer.completed", map[string]string{"id": "t1"})
	require.NoError(t, err)

	assert.NotEmpty(t, evt.EventID)
	assert.False(t, evt.Timestamp.IsZero())

	var payload map[string]string
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))
	assert.Equal(t, "t1", payload["id"])

	_, err = NewEvent("bad", make(chan int))
	assert.Error(t, err)
}

func TestMemoryPublisher(t *testing.T) {
	p := NewMemoryPublisher()
	ctx := context.Background()
	for _, typ := range []string{"a", "b", "a"} {
		evt, err := NewEvent(typ, nil)
		require.NoError(t, err)
		require.NoError(t, p.Publish(ctx, "key", evt))
	}

	assert.Len(t, p.Events(), 3)
	assert.Len(t, p.OfType("a"), 2)
	assert.Empty(t, p.OfType("c"))
	assert.NoError(t, NopPublisher{}.Publish(ctx, "key", nil))
}
