package preview

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridwright/internal/placeable"
	"gridwright/internal/pose"
	"gridwright/internal/scene"
)

// Ghost tints: translucent green when the pending placement is valid,
// translucent red when blocked.
var (
	validTint   = rl.NewColor(90, 220, 110, 140)
	blockedTint = rl.NewColor(230, 80, 80, 140)
)

// Ghost is the raylib implementation of the placement session's PreviewSink:
// the non-solid visual stand-in for the pending placement. It never adds
// bodies to the world, so it can neither block placements nor occlude the
// pointer ray.
type Ghost struct {
	template *placeable.Template
	pose     pose.Pose
	visible  bool
	valid    bool
}

// New returns an empty ghost with nothing to draw.
func New() *Ghost {
	return &Ghost{}
}

// CreatePreview adopts the template whose shape the ghost mirrors.
func (g *Ghost) CreatePreview(t *placeable.Template) {
	g.template = t
	g.visible = false
	g.valid = false
}

// ShowPreview moves the ghost to the pose and makes it visible.
func (g *Ghost) ShowPreview(p pose.Pose) {
	g.pose = p
	g.visible = true
}

// SetPreviewValid switches the ghost tint between valid and blocked.
func (g *Ghost) SetPreviewValid(valid bool) {
	g.valid = valid
}

// HidePreview hides the ghost without discarding the template; the next
// ShowPreview brings it back.
func (g *Ghost) HidePreview() {
	g.visible = false
}

// DestroyPreview discards the ghost entirely.
func (g *Ghost) DestroyPreview() {
	g.template = nil
	g.visible = false
	g.valid = false
}

// Draw renders the ghost's parts as translucent shapes at the current pose.
// Must be called between BeginMode3D and EndMode3D, after opaque geometry so
// blending reads correct depth.
func (g *Ghost) Draw(reg *scene.Registry) {
	if !g.visible || g.template == nil {
		return
	}
	tint := blockedTint
	if g.valid {
		tint = validTint
	}
	ext := placeable.ResolveExtent(g.template)
	drewAny := false
	for _, part := range g.template.Parts {
		if part.Size[0] <= 0 || part.Size[1] <= 0 || part.Size[2] <= 0 {
			continue
		}
		partPose := pose.Pose{
			Position:   g.pose.RotateOffset(rl.NewVector3(part.Offset[0], part.Offset[1], part.Offset[2])),
			YawDegrees: g.pose.YawDegrees,
		}
		reg.DrawShape(part.Shape, partPose, rl.NewVector3(part.Size[0], part.Size[1], part.Size[2]), tint)
		drewAny = true
	}
	if !drewAny {
		// No sized parts: draw the fallback extent so the operator still sees
		// where the placement would land.
		reg.DrawShape("cube", g.pose, rl.NewVector3(ext.Width, ext.Height, ext.Depth), tint)
	}
}
