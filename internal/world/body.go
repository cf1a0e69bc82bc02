package world

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Well-known body categories. Terrain and ground bodies are collision-solid
// (rays land on them) but never block a placement.
const (
	CategoryTerrain = "terrain"
	CategoryGround  = "ground"
	CategoryProp    = "prop"
	CategoryAvatar  = "avatar"
)

// Body is a static axis-oriented box in the scene: placed objects, terrain
// tiles, and the operator avatar are all bodies. Size is the full extent on
// each axis at identity rotation; YawDegrees rotates the box about +Y.
type Body struct {
	ID         uuid.UUID
	Position   rl.Vector3
	Size       rl.Vector3
	YawDegrees float32
	Category   string
	Solid      bool
	Shape      string
	Color      rl.Color
}

// NewBody returns a solid body of the given category with a fresh id.
// Zero size components default to 1 so a degenerate box still occupies space.
func NewBody(position, size rl.Vector3, category string) *Body {
	if size.X == 0 {
		size.X = 1
	}
	if size.Y == 0 {
		size.Y = 1
	}
	if size.Z == 0 {
		size.Z = 1
	}
	return &Body{
		ID:       uuid.New(),
		Position: position,
		Size:     size,
		Category: category,
		Solid:    true,
		Shape:    "cube",
	}
}

// Box returns the body's world-space AABB. Yawed bodies contribute the
// conservative AABB of their rotated footprint; height is yaw-invariant.
func (b *Body) Box() rl.BoundingBox {
	w, d := footprint(b.Size.X, b.Size.Z, b.YawDegrees)
	return boxAround(b.Position, rl.NewVector3(w, b.Size.Y, d))
}

// footprint returns the axis-aligned width/depth enclosing a w-by-d box
// rotated by yaw degrees about +Y.
func footprint(w, d, yawDegrees float32) (float32, float32) {
	if yawDegrees == 0 {
		return w, d
	}
	sin, cos := math32.Sincos(yawDegrees * rl.Deg2rad)
	sin, cos = math32.Abs(sin), math32.Abs(cos)
	return w*cos + d*sin, w*sin + d*cos
}

// boxAround builds an AABB from a center and full extents.
func boxAround(center, size rl.Vector3) rl.BoundingBox {
	half := rl.NewVector3(size.X*0.5, size.Y*0.5, size.Z*0.5)
	return rl.NewBoundingBox(
		rl.NewVector3(center.X-half.X, center.Y-half.Y, center.Z-half.Z),
		rl.NewVector3(center.X+half.X, center.Y+half.Y, center.Z+half.Z),
	)
}

// boxesOverlap reports whether two AABBs intersect with positive volume on
// every axis. Touching faces do not count as overlap.
func boxesOverlap(a, b rl.BoundingBox) bool {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)
	return overlapX > 0 && overlapY > 0 && overlapZ > 0
}
