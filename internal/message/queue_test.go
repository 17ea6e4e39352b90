package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueuePreservesOrder(t *testing.T) {
	q := NewQueue(4)
	require.NoError(t, q.Post(Status{Text: "a"}))
	require.True(t, q.TryPost(Status{Text: "b"}))

	first, ok := q.TryReceive()
	require.True(t, ok)
	second, ok := q.Receive()
	require.True(t, ok)
	assert.Equal(t, Status{Text: "a"}, first)
	assert.Equal(t, Status{Text: "b"}, second)

	_, ok = q.TryReceive()
	assert.False(t, ok)
}

func TestQueueTryPostWhenFull(t *testing.T) {
	q := NewQueue(1)
	assert.True(t, q.TryPost(HistoryCleared{}))
	assert.False(t, q.TryPost(HistoryCleared{}))
	assert.Equal(t, 1, q.Len())
}

func TestQueueCloseDrainsThenStops(t *testing.T) {
	q := NewQueue(2)
	require.NoError(t, q.Post(ShowURLDialog{}))
	q.Close()
	q.Close()

	assert.ErrorIs(t, q.Post(ShowURLDialog{}), ErrQueueClosed)
	assert.False(t, q.TryPost(ShowURLDialog{}))

	msg, ok := q.Receive()
	require.True(t, ok)
	assert.Equal(t, ShowURLDialog{}, msg)
	_, ok = q.Receive()
	assert.False(t, ok)
}
