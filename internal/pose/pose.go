package pose

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is a placement transform: a position plus a yaw-only rotation about the
// vertical (Y) axis, in degrees. No roll or pitch is ever produced; placed
// objects sit flat regardless of the surface slope under them.
type Pose struct {
	Position   rl.Vector3
	YawDegrees float32
}

// Compose builds a Pose from a (typically grid-quantized) position and a yaw
// in degrees.
func Compose(position rl.Vector3, yawDegrees float32) Pose {
	return Pose{Position: position, YawDegrees: yawDegrees}
}

// Matrix returns the rigid transform T(position) * R_y(yaw): the rotation is
// intrinsic to the object at the translated location, so the object spins in
// place rather than orbiting the world origin. With raylib's row-major helpers
// that is MatrixMultiply(rotate, translate): rotation applies first in the
// object's local frame.
func (p Pose) Matrix() rl.Matrix {
	rot := rl.MatrixRotateY(p.YawDegrees * rl.Deg2rad)
	trans := rl.MatrixTranslate(p.Position.X, p.Position.Y, p.Position.Z)
	return rl.MatrixMultiply(rot, trans)
}

// RotateOffset rotates a local-space offset by the pose's yaw and returns the
// world-space position of a sub-part anchored at that offset.
func (p Pose) RotateOffset(offset rl.Vector3) rl.Vector3 {
	rad := p.YawDegrees * rl.Deg2rad
	sin, cos := math32.Sincos(rad)
	// Yaw about +Y: x' = x*cos + z*sin, z' = -x*sin + z*cos.
	return rl.NewVector3(
		p.Position.X+offset.X*cos+offset.Z*sin,
		p.Position.Y+offset.Y,
		p.Position.Z-offset.X*sin+offset.Z*cos,
	)
}
