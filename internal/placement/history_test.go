package placement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryPopIsLIFO(t *testing.T) {
	h := NewHistory()
	first := &Record{ID: uuid.New()}
	second := &Record{ID: uuid.New()}
	third := &Record{ID: uuid.New()}
	h.Push(first)
	h.Push(second)
	h.Push(third)
	require.Equal(t, 3, h.Len())

	for _, want := range []*Record{third, second, first} {
		got, err := h.Pop()
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
	}
	_, err := h.Pop()
	assert.ErrorIs(t, err, ErrEmptyHistory)
	assert.Equal(t, 0, h.Len())
}

func TestHistoryPopEmpty(t *testing.T) {
	h := NewHistory()
	rec, err := h.Pop()
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrEmptyHistory)
	// Failure must leave the history unchanged and usable.
	h.Push(&Record{ID: uuid.New()})
	assert.Equal(t, 1, h.Len())
}

func TestHistoryClearAllDestroysNewestFirst(t *testing.T) {
	h := NewHistory()
	a := &Record{ID: uuid.New()}
	b := &Record{ID: uuid.New()}
	h.Push(a)
	h.Push(b)

	var destroyed []uuid.UUID
	h.ClearAll(func(r *Record) {
		destroyed = append(destroyed, r.ID)
	})
	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, destroyed)
	assert.Equal(t, 0, h.Len())
}

func TestHistoryClearAllNilDestroy(t *testing.T) {
	h := NewHistory()
	h.Push(&Record{ID: uuid.New()})
	h.ClearAll(nil)
	assert.Equal(t, 0, h.Len())
}
