package grid

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultCellSize is the lattice spacing used when no configuration overrides it.
const DefaultCellSize = float32(4)

// ErrInvalidCellSize is returned when a Spec is built with a non-positive cell size.
// A bad cell size is a configuration error and is rejected up front, never clamped.
var ErrInvalidCellSize = errors.New("grid: cell size must be positive")

// Spec describes the placement lattice on the XZ plane. CellSize is the distance
// between adjacent lattice points on X and Z; Y is not part of the lattice.
// A Spec is immutable once built; replace it wholesale to change the cell size.
type Spec struct {
	CellSize float32
}

// NewSpec returns a Spec with the given cell size, or ErrInvalidCellSize when
// cellSize <= 0.
func NewSpec(cellSize float32) (Spec, error) {
	if cellSize <= 0 {
		return Spec{}, fmt.Errorf("%w: got %v", ErrInvalidCellSize, cellSize)
	}
	return Spec{CellSize: cellSize}, nil
}

// Quantize snaps X and Z to the nearest multiple of CellSize using round-half-up
// (floor(v/cell + 0.5) * cell). Y passes through unchanged: vertical placement
// comes from the resolved surface height plus a rest offset, not from the lattice.
func (s Spec) Quantize(p rl.Vector3) rl.Vector3 {
	return rl.NewVector3(snap(p.X, s.CellSize), p.Y, snap(p.Z, s.CellSize))
}

func snap(v, cell float32) float32 {
	return math32.Floor(v/cell+0.5) * cell
}
