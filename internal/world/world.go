package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// World holds the scene's bodies and answers the two spatial queries the
// placement pipeline needs: box overlap (QueryBox) and ray-surface
// intersection (CastRay). Everything runs on the main simulation thread;
// queries see the scene exactly as it is at call time.
type World struct {
	bodies []*Body
	// GroundPlane, when true, makes rays land on the infinite Y=0 plane in
	// addition to bodies, so placement works before any terrain exists.
	GroundPlane bool
}

// New returns an empty world with the ground plane enabled.
func New() *World {
	return &World{GroundPlane: true}
}

// Add appends a body to the world. Order is preserved for rendering.
func (w *World) Add(b *Body) {
	w.bodies = append(w.bodies, b)
}

// Remove deletes the body with the given id. Returns false when no body
// matches.
func (w *World) Remove(id uuid.UUID) bool {
	for i, b := range w.bodies {
		if b.ID == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Bodies returns the live body slice. Callers must not mutate it; it is
// exposed for rendering and iteration only.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// QueryBox returns every body whose AABB overlaps the given box, skipping ids
// in exclude. The scan is a full re-evaluation each call: the scene may have
// changed since the last frame.
func (w *World) QueryBox(box rl.BoundingBox, exclude map[uuid.UUID]struct{}) []*Body {
	var hits []*Body
	for _, b := range w.bodies {
		if _, skip := exclude[b.ID]; skip {
			continue
		}
		if boxesOverlap(box, b.Box()) {
			hits = append(hits, b)
		}
	}
	return hits
}

// BoxAround builds the world-space AABB for a box of the given full extents
// centered at center. Exported for the overlap validator, which sizes its
// query box from a pose and a shrunk extent.
func BoxAround(center, size rl.Vector3) rl.BoundingBox {
	return boxAround(center, size)
}
