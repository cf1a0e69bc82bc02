package placement

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"gridwright/internal/pose"
	"gridwright/internal/world"
)

// DefaultOverlapShrink is the factor applied to the query extent on every
// axis. Slightly under 1 so placements sharing an edge with a neighbor do not
// register as colliding.
const DefaultOverlapShrink = float32(0.9)

// Validator answers "would a placement at this pose intersect something it
// must not". It queries the live scene each call; results are never cached.
type Validator struct {
	World  *world.World
	Shrink float32
	// nonBlocking holds categories that never block a placement even though
	// their bodies are collision-solid (terrain, ground).
	nonBlocking map[string]struct{}
}

// NewValidator returns a validator over w with the default shrink factor and
// the terrain and ground categories non-blocking.
func NewValidator(w *world.World) *Validator {
	return &Validator{
		World:  w,
		Shrink: DefaultOverlapShrink,
		nonBlocking: map[string]struct{}{
			world.CategoryTerrain: {},
			world.CategoryGround:  {},
		},
	}
}

// SetNonBlockingCategories replaces the category set the validator ignores.
func (v *Validator) SetNonBlockingCategories(categories []string) {
	v.nonBlocking = make(map[string]struct{}, len(categories))
	for _, c := range categories {
		v.nonBlocking[c] = struct{}{}
	}
}

// IsBlocked reports whether a box of the given extent, shrunk by the
// configured factor, oriented by the pose's yaw and centered at its position,
// intersects any solid body outside the non-blocking categories. Bodies whose
// id is in exclude (the preview's own parts, the avatar) are skipped.
func (v *Validator) IsBlocked(p pose.Pose, extent pose.Extent, exclude map[uuid.UUID]struct{}) bool {
	shrink := v.Shrink
	if shrink <= 0 {
		shrink = DefaultOverlapShrink
	}
	shrunk := extent.Scaled(shrink)
	width, depth := shrunk.Footprint(p.YawDegrees)
	box := world.BoxAround(p.Position, rl.NewVector3(width, shrunk.Height, depth))

	for _, b := range v.World.QueryBox(box, exclude) {
		if !b.Solid {
			continue
		}
		if _, ok := v.nonBlocking[b.Category]; ok {
			continue
		}
		if b.Category == world.CategoryAvatar {
			continue
		}
		return true
	}
	return false
}
