package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/web-bg/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventFoodEaten, Frame: 1})
	q.Push(GameEvent{Type: EventWallHit, Frame: 2})
	q.Push(GameEvent{Type: EventTilesStreamed, Frame: 3})
	require.Equal(t, 3, q.Len())

	got := q.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, EventFoodEaten, got[0].Type)
	assert.Equal(t, EventWallHit, got[1].Type)
	assert.Equal(t, EventTilesStreamed, got[2].Type)
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Consume())
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 5
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventWallHit, Frame: int64(i)})
	}

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, int64(5), got[0].Frame)
	assert.Equal(t, int64(total-1), got[len(got)-1].Frame)
	assert.Equal(t, uint64(5), q.Dropped())
}

func TestQueueWrapAround(t *testing.T) {
	q := NewEventQueue()
	for round := 0; round < 3; round++ {
		for i := 0; i < parameter.EventQueueSize-1; i++ {
			q.Push(GameEvent{Frame: int64(i)})
		}
		got := q.Consume()
		require.Len(t, got, parameter.EventQueueSize-1)
		assert.Equal(t, int64(0), got[0].Frame)
	}
	assert.Zero(t, q.Dropped())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "FoodEaten", EventFoodEaten.String())
	assert.Equal(t, "Unknown", EventType(999).String())
}
