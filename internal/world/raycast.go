package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Hit is the first surface a cast ray strikes: the world-space point, the
// surface normal there, and the body that was struck (nil for the ground
// plane).
type Hit struct {
	Point  rl.Vector3
	Normal rl.Vector3
	Body   *Body
}

// CastRay intersects the ray with every solid body (and the ground plane when
// enabled) and returns the nearest hit within maxDistance. ok is false when
// nothing is struck; that is a normal per-frame condition, not an error.
// Bodies whose id is in exclude are skipped so the caster's avatar and the
// live preview never occlude the cast.
func (w *World) CastRay(ray rl.Ray, maxDistance float32, exclude map[uuid.UUID]struct{}) (Hit, bool) {
	best := maxDistance
	var hit Hit
	found := false

	for _, b := range w.bodies {
		if !b.Solid {
			continue
		}
		if _, skip := exclude[b.ID]; skip {
			continue
		}
		t, normal, ok := rayBox(ray, b.Box())
		if !ok || t > best {
			continue
		}
		best = t
		hit = Hit{Point: rayPoint(ray, t), Normal: normal, Body: b}
		found = true
	}

	if w.GroundPlane {
		if t, ok := rayPlaneY0(ray); ok && t <= best {
			best = t
			hit = Hit{Point: rayPoint(ray, t), Normal: rl.NewVector3(0, 1, 0), Body: nil}
			found = true
		}
	}
	return hit, found
}

func rayPoint(ray rl.Ray, t float32) rl.Vector3 {
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
}

// rayBox is the slab-method ray/AABB test. Returns the entry distance along
// the ray and the outward normal of the face that was entered.
func rayBox(ray rl.Ray, box rl.BoundingBox) (t float32, normal rl.Vector3, ok bool) {
	tMin := float32(0)
	tMax := float32(3.4e38)
	axis := -1
	sign := float32(0)

	origin := [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, normal, false
			}
			continue
		}
		inv := 1 / dir[i]
		tNear := (lo[i] - origin[i]) * inv
		tFar := (hi[i] - origin[i]) * inv
		side := float32(-1)
		if tNear > tFar {
			tNear, tFar = tFar, tNear
			side = 1
		}
		if tNear > tMin {
			tMin = tNear
			axis = i
			sign = side
		}
		if tFar < tMax {
			tMax = tFar
		}
		if tMin > tMax {
			return 0, normal, false
		}
	}
	if axis < 0 {
		// Ray started inside the box; treat as landing on its top face.
		return 0, rl.NewVector3(0, 1, 0), true
	}
	switch axis {
	case 0:
		normal = rl.NewVector3(sign, 0, 0)
	case 1:
		normal = rl.NewVector3(0, sign, 0)
	default:
		normal = rl.NewVector3(0, 0, sign)
	}
	return tMin, normal, true
}

// rayPlaneY0 intersects the ray with the infinite Y=0 plane.
func rayPlaneY0(ray rl.Ray) (float32, bool) {
	if ray.Direction.Y == 0 {
		return 0, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	if t < 0 {
		return 0, false
	}
	return t, true
}
