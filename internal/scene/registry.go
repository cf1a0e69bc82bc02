package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridwright/internal/pose"
	"gridwright/internal/world"
)

// cached holds mesh and material for a shape. Created lazily on first draw so
// GPU resources are allocated after the window/OpenGL context exists.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps shape names to unit mesh + material. Bodies carry their own
// size, yaw, and tint; the registry scales, rotates, and tints the shared
// unit mesh per draw.
type Registry struct {
	cache map[string]cached
}

// NewRegistry returns a registry with no shapes; "cube" is created on first
// use.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[string]cached)}
}

func (r *Registry) ensure(shape string) (cached, bool) {
	if c, ok := r.cache[shape]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch shape {
	case "cube":
		mesh = rl.GenMeshCube(1, 1, 1)
	case "cylinder":
		mesh = rl.GenMeshCylinder(0.5, 1, 16)
	default:
		return cached{}, false
	}
	c := cached{mesh: mesh, mtl: rl.LoadMaterialDefault()}
	r.cache[shape] = c
	return c, true
}

// DrawBody draws one body as its shape's unit mesh scaled to the body's size,
// rotated by its yaw, translated to its position, and tinted with its color.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawBody(b *world.Body) {
	tint := b.Color
	if tint.A == 0 {
		tint = rl.NewColor(128, 128, 128, 255)
	}
	r.DrawShape(b.Shape, pose.Pose{Position: b.Position, YawDegrees: b.YawDegrees}, b.Size, tint)
}

// DrawShape draws a unit mesh of the given shape at the pose, scaled to size
// and tinted. Translucent tints (alpha < 255) render as ghosts.
func (r *Registry) DrawShape(shape string, p pose.Pose, size rl.Vector3, tint rl.Color) {
	if shape == "" {
		shape = "cube"
	}
	c, ok := r.ensure(shape)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	scale := rl.MatrixScale(size.X, size.Y, size.Z)
	// Scale in local space first, then the pose's rotate-then-translate.
	transform := rl.MatrixMultiply(scale, p.Matrix())
	if shape == "cylinder" {
		// Raylib cylinder: base Y=0, top Y=height. Center the unit mesh first
		// so the pose position is the shape's center, like the cube.
		center := rl.MatrixTranslate(0, -0.5, 0)
		transform = rl.MatrixMultiply(center, transform)
	}
	rl.DrawMesh(c.mesh, c.mtl, transform)
}
