package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridwright/internal/world"
)

const (
	gridExtentCells = 25
	gridMajorEvery  = 5
	gridMinorAlpha  = 50
	gridMajorAlpha  = 120
	axisLineAlpha   = 220
)

// Scene holds a 3D camera and draws the 3D world: placement lattice, terrain,
// and placed bodies. Update runs camera logic (free camera); Draw renders
// between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	// CellSize aligns the drawn lattice with the placement grid; major lines
	// land every gridMajorEvery cells.
	CellSize   float32
	cursorDone bool
	reg        *Registry
}

// New returns a scene with a perspective camera looking at the origin and the
// lattice drawn at the given cell size.
func New(cellSize float32) *Scene {
	s := &Scene{CellSize: cellSize, GridVisible: true, reg: NewRegistry()}
	s.Camera.Position = rl.NewVector3(24, 28, 24)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the placement lattice is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame. Uses raylib UpdateCamera with CameraFree so the
// operator can move the camera with mouse and keyboard. The cursor stays
// enabled: the pointer drives placement, not the camera look direction.
// suspended pauses camera movement while the terminal is capturing input.
func (s *Scene) Update(suspended bool) {
	if !s.cursorDone {
		rl.EnableCursor()
		s.cursorDone = true
	}
	if suspended {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		rl.UpdateCamera(&s.Camera, rl.CameraThirdPerson)
	}
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		forward := rl.Vector3Normalize(rl.Vector3Subtract(s.Camera.Target, s.Camera.Position))
		s.Camera.Position = rl.Vector3Add(s.Camera.Position, rl.Vector3Scale(forward, wheel*2))
	}
}

// Draw renders the 3D scene: lattice (when visible), then every world body,
// then extra (e.g. the ghost preview), all inside one 3D mode block so depth
// testing covers the preview too.
func (s *Scene) Draw(w *world.World, extra func(reg *Registry)) {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		s.drawLattice()
	}
	for _, b := range w.Bodies() {
		s.reg.DrawBody(b)
	}
	if extra != nil {
		extra(s.reg)
	}
	rl.EndMode3D()
}

// drawLattice draws the placement grid on the XZ plane (Y=0) with minor lines
// every cell, major lines every gridMajorEvery cells, and axis lines through
// the origin.
func (s *Scene) drawLattice() {
	cell := s.CellSize
	if cell <= 0 {
		cell = 1
	}
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	extent := float32(gridExtentCells) * cell
	var start, end rl.Vector3
	for i := -gridExtentCells; i <= gridExtentCells; i++ {
		c := minor
		if i%gridMajorEvery == 0 {
			c = major
		}
		v := float32(i) * cell
		start.X, start.Y, start.Z = v, 0, -extent
		end.X, end.Y, end.Z = v, 0, extent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -extent, 0, v
		end.X, end.Y, end.Z = extent, 0, v
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Z=blue).
	rl.DrawLine3D(rl.NewVector3(-extent, 0, 0), rl.NewVector3(extent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, 0, -extent), rl.NewVector3(0, 0, extent), axisZ)
}
