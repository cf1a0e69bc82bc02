package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"gridwright/internal/world"
)

// PointerResolver turns a screen-space pointer position into a world surface
// hit by casting a camera ray into the world, bounded by MaxDistance. It is
// the scene-side implementation of the placement session's SurfaceResolver.
type PointerResolver struct {
	Scene       *Scene
	World       *world.World
	MaxDistance float32
}

// Resolve casts the pointer ray and returns the first surface within range,
// skipping excluded bodies (the preview's parts, the avatar). ok is false
// when nothing is struck.
func (r *PointerResolver) Resolve(pointer rl.Vector2, exclude map[uuid.UUID]struct{}) (world.Hit, bool) {
	ray := rl.GetMouseRay(pointer, r.Scene.Camera)
	return r.World.CastRay(ray, r.MaxDistance, exclude)
}
