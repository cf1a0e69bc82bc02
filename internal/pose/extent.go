package pose

import "github.com/chewxy/math32"

// Default extent (per axis, world units) used when a template's size cannot be
// derived from any of its parts.
const defaultExtentSide = float32(4)

// Extent is the axis-aligned bounding size of a placeable at identity rotation.
// All components are positive.
type Extent struct {
	Width  float32
	Height float32
	Depth  float32
}

// DefaultExtent returns the fallback extent (4x4x4) for templates with no
// derivable size.
func DefaultExtent() Extent {
	return Extent{Width: defaultExtentSide, Height: defaultExtentSide, Depth: defaultExtentSide}
}

// Scaled returns the extent with every axis multiplied by f.
func (e Extent) Scaled(f float32) Extent {
	return Extent{Width: e.Width * f, Height: e.Height * f, Depth: e.Depth * f}
}

// Footprint returns the axis-aligned width and depth that enclose the extent
// once rotated by yaw degrees about the vertical axis. For yaw multiples of
// 90 this is an exact width/depth swap; for other angles it is the conservative
// AABB of the rotated box. Height is unaffected by yaw.
func (e Extent) Footprint(yawDegrees float32) (width, depth float32) {
	rad := yawDegrees * (math32.Pi / 180)
	sin, cos := math32.Sincos(rad)
	sin, cos = math32.Abs(sin), math32.Abs(cos)
	return e.Width*cos + e.Depth*sin, e.Width*sin + e.Depth*cos
}
