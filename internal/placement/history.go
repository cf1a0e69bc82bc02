package placement

import (
	"time"

	"github.com/google/uuid"

	"gridwright/internal/placeable"
	"gridwright/internal/pose"
)

// Record is one committed placement: the instance that was spawned and where.
// History is the sole owner of records; destroying one must release the
// underlying scene bodies.
type Record struct {
	ID          uuid.UUID
	Object      placeable.Placeable
	Pose        pose.Pose
	CommittedAt time.Time
}

// History is the undo stack of committed placements. Append-only except for
// pop-from-end; unbounded.
type History struct {
	records []*Record
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Push appends a record.
func (h *History) Push(r *Record) {
	h.records = append(h.records, r)
}

// Pop removes and returns the most recently pushed record, or ErrEmptyHistory.
// Pop does not destroy the record's scene object; the caller decides whether
// to destroy or repurpose it.
func (h *History) Pop() (*Record, error) {
	if len(h.records) == 0 {
		return nil, ErrEmptyHistory
	}
	r := h.records[len(h.records)-1]
	h.records = h.records[:len(h.records)-1]
	return r, nil
}

// Len returns the number of committed placements on the stack.
func (h *History) Len() int {
	return len(h.records)
}

// ClearAll empties the stack, passing each record (newest first) to destroy
// so its scene object is released. Used for full-session reset.
func (h *History) ClearAll(destroy func(*Record)) {
	for i := len(h.records) - 1; i >= 0; i-- {
		if destroy != nil {
			destroy(h.records[i])
		}
		h.records[i] = nil
	}
	h.records = h.records[:0]
}
