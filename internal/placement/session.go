package placement

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"gridwright/internal/grid"
	"gridwright/internal/logger"
	"gridwright/internal/placeable"
	"gridwright/internal/pose"
	"gridwright/internal/world"
)

// DefaultRotateStep is the yaw increment applied per rotate input, in degrees.
const DefaultRotateStep = 90

// Mode is the session's state: Idle (nothing selected) or Placing (a template
// is active and the per-frame pipeline runs).
type Mode int

const (
	Idle Mode = iota
	Placing
)

func (m Mode) String() string {
	if m == Placing {
		return "placing"
	}
	return "idle"
}

// SurfaceResolver casts a ray from the viewpoint through a screen-space
// pointer location and reports the first surface it strikes. ok is false when
// nothing within the maximum placement distance is hit; the session treats
// that as "no preview this frame", never as an error. Implementations must
// exclude the ids in exclude (the preview's own bodies, the avatar) from
// candidate surfaces.
type SurfaceResolver interface {
	Resolve(pointer rl.Vector2, exclude map[uuid.UUID]struct{}) (world.Hit, bool)
}

// PreviewSink is the rendering collaborator's side of the pipeline. It owns
// all visual styling of the ghost preview; the session only tells it what to
// show where and whether the pending placement is valid.
type PreviewSink interface {
	CreatePreview(t *placeable.Template)
	ShowPreview(p pose.Pose)
	SetPreviewValid(valid bool)
	HidePreview()
	DestroyPreview()
}

// Session is the placement state machine. It owns the active template
// reference, the rotation state, and the transient preview pose, and it
// orchestrates the per-frame pipeline: resolve surface, offset for surface
// rest, quantize, compose, resolve extent, validate overlap, publish.
//
// All operations lock the session, so input events arriving between ticks
// apply atomically even if a future host moves input onto another goroutine;
// the published (pose, validity) pair is always internally consistent.
type Session struct {
	mu sync.Mutex

	mode     Mode
	template *placeable.Template
	rotation int

	lastPose  pose.Pose
	hasPose   bool
	lastValid bool

	grid       grid.Spec
	rotateStep int

	resolver  SurfaceResolver
	sink      PreviewSink
	provider  *placeable.Provider
	validator *Validator
	history   *History
	log       *logger.Logger

	// exclude is the id set passed to spatial queries: the avatar plus the
	// preview's own bodies, so neither ever blocks or occludes a placement.
	exclude map[uuid.UUID]struct{}
}

// Deps bundles the session's collaborators. Grid must come from a validated
// configuration; RotateStep defaults to DefaultRotateStep when zero.
type Deps struct {
	Grid       grid.Spec
	RotateStep int
	Resolver   SurfaceResolver
	Sink       PreviewSink
	Provider   *placeable.Provider
	Validator  *Validator
	History    *History
	Log        *logger.Logger
}

// NewSession returns an Idle session built from deps.
func NewSession(deps Deps) *Session {
	step := deps.RotateStep
	if step == 0 {
		step = DefaultRotateStep
	}
	return &Session{
		mode:       Idle,
		grid:       deps.Grid,
		rotateStep: step,
		resolver:   deps.Resolver,
		sink:       deps.Sink,
		provider:   deps.Provider,
		validator:  deps.Validator,
		history:    deps.History,
		log:        deps.Log,
		exclude:    make(map[uuid.UUID]struct{}),
	}
}

// Mode returns the current state.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Rotation returns the current yaw in degrees, always in [0, 360).
func (s *Session) Rotation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation
}

// LastValid reports whether the most recent tick produced a valid placement.
func (s *Session) LastValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastValid
}

// Template returns the active template, or nil when Idle.
func (s *Session) Template() *placeable.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// ExcludeBody adds a body id (e.g. the operator avatar) to the exclusion set
// used by surface resolution and overlap validation.
func (s *Session) ExcludeBody(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exclude[id] = struct{}{}
}

// Begin enters Placing with the given template: rotation resets to 0, any
// previous preview state is discarded, and the rendering collaborator is
// asked to create a fresh ghost. Beginning while already Placing switches
// templates in place.
func (s *Session) Begin(t *placeable.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == Placing {
		s.sink.DestroyPreview()
	}
	s.mode = Placing
	s.template = t
	s.rotation = 0
	s.hasPose = false
	s.lastValid = false
	s.sink.CreatePreview(t)
	s.logf("begin %s", t.Name)
}

// Cancel returns to Idle, clearing the template and rotation and destroying
// the preview. Cancel while Idle is a no-op.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == Idle {
		return
	}
	s.mode = Idle
	s.template = nil
	s.rotation = 0
	s.hasPose = false
	s.lastValid = false
	s.sink.DestroyPreview()
	s.logf("cancel")
}

// Rotate adds stepDegrees to the rotation, normalized into [0, 360). Any
// integer step works, including negative and above 360. Returns
// ErrNoActiveTemplate while Idle.
func (s *Session) Rotate(stepDegrees int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != Placing {
		return ErrNoActiveTemplate
	}
	s.rotation = ((s.rotation+stepDegrees)%360 + 360) % 360
	return nil
}

// RotateStep rotates by the configured step.
func (s *Session) RotateStep() error {
	return s.Rotate(s.rotateStep)
}

// Tick runs the per-frame pipeline at the given screen-space pointer
// position. Outside Placing it does nothing. When the cast ray strikes no
// surface within range the preview is hidden and validity forced false;
// otherwise the hit point is rested on the surface (half the extent's height
// above it), grid-quantized on X/Z, composed with the current yaw, validated
// against the scene, and published to the preview sink.
func (s *Session) Tick(pointer rl.Vector2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != Placing {
		return
	}

	hit, ok := s.resolver.Resolve(pointer, s.exclude)
	if !ok {
		s.lastValid = false
		s.sink.HidePreview()
		return
	}

	extent := placeable.ResolveExtent(s.template)
	position := hit.Point
	position.Y += extent.Height * 0.5
	position = s.grid.Quantize(position)

	p := pose.Compose(position, float32(s.rotation))
	blocked := s.validator.IsBlocked(p, extent, s.exclude)

	s.lastPose = p
	s.hasPose = true
	s.lastValid = !blocked

	s.sink.ShowPreview(p)
	s.sink.SetPreviewValid(s.lastValid)
}

// Commit turns the last validated pose into a permanent, solid instance and
// pushes it onto the history. The session stays in Placing so the operator
// can keep stamping. Fails with ErrNoActiveTemplate while Idle and with
// ErrPlacementBlocked when the last validity was false or no pose has been
// computed yet; in both cases nothing is mutated.
func (s *Session) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != Placing {
		return ErrNoActiveTemplate
	}
	if !s.hasPose || !s.lastValid {
		return ErrPlacementBlocked
	}

	// Clone materializes solid, fully opaque bodies with their catalog tints.
	obj, err := s.provider.Clone(s.template)
	if err != nil {
		return err
	}
	obj.SetPose(s.lastPose)

	s.history.Push(&Record{
		ID:          uuid.New(),
		Object:      obj,
		Pose:        s.lastPose,
		CommittedAt: time.Now(),
	})
	s.logf("commit %s at (%.1f, %.1f, %.1f) yaw %d",
		s.template.Name, s.lastPose.Position.X, s.lastPose.Position.Y, s.lastPose.Position.Z, s.rotation)
	return nil
}

// Undo pops the most recent committed placement and destroys its scene
// object. Works in any mode. Returns ErrEmptyHistory when there is nothing
// to undo, leaving everything unchanged.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.history.Pop()
	if err != nil {
		return err
	}
	s.provider.Destroy(rec.Object)
	s.logf("undo placement %s", rec.ID)
	return nil
}

// ClearAll destroys every committed placement and empties the history.
func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.history.Len()
	s.history.ClearAll(func(r *Record) {
		s.provider.Destroy(r.Object)
	})
	if n > 0 {
		s.logf("clear %d placements", n)
	}
}

// History returns the session's undo stack.
func (s *Session) History() *History {
	return s.history
}

func (s *Session) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Logf(format, args...)
	}
}
