package placeable

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"gridwright/internal/pose"
	"gridwright/internal/world"
)

// Style controls how an instance presents itself in the scene: solid
// instances participate in collision queries, ghost ones do not.
type Style struct {
	Solid bool
	Tint  rl.Color
}

// Placeable is a placed (or placeable) instance in the world. The two
// variants are SingleBody for one-part templates and Group for composites;
// the placement core only talks to this interface, never to the part layout.
type Placeable interface {
	// Extent is the instance's axis-aligned bounding size at identity rotation.
	Extent() pose.Extent
	// SetPose moves the instance so its origin sits at the pose's position,
	// parts rotated by the pose's yaw.
	SetPose(p pose.Pose)
	// SetStyle switches solidity and tint on every part.
	SetStyle(s Style)
	// BodyIDs lists the world body ids belonging to this instance, for
	// exclusion sets in spatial queries.
	BodyIDs() []uuid.UUID
	// Release removes the instance's bodies from the world.
	Release(w *world.World)
}

// SingleBody is a Placeable backed by exactly one world body.
type SingleBody struct {
	body   *world.Body
	extent pose.Extent
}

func (s *SingleBody) Extent() pose.Extent { return s.extent }

func (s *SingleBody) SetPose(p pose.Pose) {
	s.body.Position = p.Position
	s.body.YawDegrees = p.YawDegrees
}

func (s *SingleBody) SetStyle(st Style) {
	s.body.Solid = st.Solid
	s.body.Color = st.Tint
}

func (s *SingleBody) BodyIDs() []uuid.UUID { return []uuid.UUID{s.body.ID} }

func (s *SingleBody) Release(w *world.World) { w.Remove(s.body.ID) }

// Group is a Placeable backed by several world bodies that move as one unit.
// offsets holds each part's center relative to the group origin at identity
// rotation; SetPose re-derives world positions from them, so repeated moves
// never accumulate drift.
type Group struct {
	bodies  []*world.Body
	offsets []rl.Vector3
	extent  pose.Extent
}

func (g *Group) Extent() pose.Extent { return g.extent }

func (g *Group) SetPose(p pose.Pose) {
	for i, b := range g.bodies {
		b.Position = p.RotateOffset(g.offsets[i])
		b.YawDegrees = p.YawDegrees
	}
}

func (g *Group) SetStyle(st Style) {
	for _, b := range g.bodies {
		b.Solid = st.Solid
		b.Color = st.Tint
	}
}

func (g *Group) BodyIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(g.bodies))
	for i, b := range g.bodies {
		ids[i] = b.ID
	}
	return ids
}

func (g *Group) Release(w *world.World) {
	for _, b := range g.bodies {
		w.Remove(b.ID)
	}
}

// Provider instantiates templates into world bodies. It is the asset-side
// collaborator of the placement session: Clone materializes a template as a
// new Placeable added to the world, Destroy releases one.
type Provider struct {
	World *world.World
}

// NewProvider returns a Provider that spawns into w.
func NewProvider(w *world.World) *Provider {
	return &Provider{World: w}
}

// Clone deep-copies the template's part definitions and materializes them as
// solid bodies in the world, one per part, at the world origin. Callers
// position the result with SetPose. The template itself is never mutated.
func (p *Provider) Clone(t *Template) (Placeable, error) {
	if t == nil || len(t.Parts) == 0 {
		return nil, fmt.Errorf("clone: template %q has no parts", templateName(t))
	}
	var parts []PartDef
	if err := copier.CopyWithOption(&parts, &t.Parts, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone template %q: %w", t.Name, err)
	}
	extent := ResolveExtent(t)

	bodies := make([]*world.Body, len(parts))
	offsets := make([]rl.Vector3, len(parts))
	for i, def := range parts {
		size := rl.NewVector3(def.Size[0], def.Size[1], def.Size[2])
		b := world.NewBody(rl.NewVector3(0, 0, 0), size, world.CategoryProp)
		if def.Shape != "" {
			b.Shape = def.Shape
		}
		b.Color = NamedColor(def.Color)
		bodies[i] = b
		offsets[i] = rl.NewVector3(def.Offset[0], def.Offset[1], def.Offset[2])
		p.World.Add(b)
	}

	if len(bodies) == 1 && offsets[0] == (rl.Vector3{}) {
		return &SingleBody{body: bodies[0], extent: extent}, nil
	}
	return &Group{bodies: bodies, offsets: offsets, extent: extent}, nil
}

// Destroy releases every body of the instance from the world.
func (p *Provider) Destroy(obj Placeable) {
	if obj != nil {
		obj.Release(p.World)
	}
}

func templateName(t *Template) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name
}

// NamedColor maps catalog color names to render tints. Unknown names fall
// back to the default gray used by untinted parts.
func NamedColor(name string) rl.Color {
	switch name {
	case "red":
		return rl.NewColor(200, 70, 70, 255)
	case "brown":
		return rl.NewColor(130, 95, 60, 255)
	case "green":
		return rl.NewColor(80, 170, 90, 255)
	case "blue":
		return rl.NewColor(80, 110, 200, 255)
	default:
		return rl.NewColor(128, 128, 128, 255)
	}
}
