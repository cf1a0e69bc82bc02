package pose

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestComposeIsYawOnly(t *testing.T) {
	p := Compose(rl.NewVector3(4, 2, 8), 90)
	assert.Equal(t, rl.NewVector3(4, 2, 8), p.Position)
	assert.Equal(t, float32(90), p.YawDegrees)
}

func TestMatrixRotatesThenTranslates(t *testing.T) {
	// A point one unit along local +X, under a 90 degree yaw, must end up one
	// unit along world -Z from the pose position: the rotation is intrinsic to
	// the object, not a rotation about the world origin.
	p := Compose(rl.NewVector3(10, 0, 10), 90)
	got := rl.Vector3Transform(rl.NewVector3(1, 0, 0), p.Matrix())
	assert.InDelta(t, 10, got.X, 1e-5)
	assert.InDelta(t, 0, got.Y, 1e-5)
	assert.InDelta(t, 9, got.Z, 1e-5)
}

func TestMatrixIdentityYaw(t *testing.T) {
	p := Compose(rl.NewVector3(-3, 5, 7), 0)
	got := rl.Vector3Transform(rl.NewVector3(2, 1, -1), p.Matrix())
	assert.InDelta(t, -1, got.X, 1e-5)
	assert.InDelta(t, 6, got.Y, 1e-5)
	assert.InDelta(t, 6, got.Z, 1e-5)
}

func TestRotateOffsetMatchesMatrix(t *testing.T) {
	p := Compose(rl.NewVector3(4, 0, -8), 270)
	offset := rl.NewVector3(1.5, 2, -0.5)
	viaHelper := p.RotateOffset(offset)
	viaMatrix := rl.Vector3Transform(offset, p.Matrix())
	assert.InDelta(t, viaMatrix.X, viaHelper.X, 1e-4)
	assert.InDelta(t, viaMatrix.Y, viaHelper.Y, 1e-4)
	assert.InDelta(t, viaMatrix.Z, viaHelper.Z, 1e-4)
}

func TestFootprintSwapsAtNinetyDegrees(t *testing.T) {
	e := Extent{Width: 2, Height: 5, Depth: 6}
	w, d := e.Footprint(90)
	assert.InDelta(t, 6, w, 1e-4)
	assert.InDelta(t, 2, d, 1e-4)

	w, d = e.Footprint(0)
	assert.InDelta(t, 2, w, 1e-4)
	assert.InDelta(t, 6, d, 1e-4)

	w, d = e.Footprint(180)
	assert.InDelta(t, 2, w, 1e-4)
	assert.InDelta(t, 6, d, 1e-4)
}

func TestDefaultExtent(t *testing.T) {
	e := DefaultExtent()
	assert.Equal(t, Extent{Width: 4, Height: 4, Depth: 4}, e)
}

func TestScaled(t *testing.T) {
	e := Extent{Width: 10, Height: 20, Depth: 30}.Scaled(0.9)
	assert.InDelta(t, 9, e.Width, 1e-5)
	assert.InDelta(t, 18, e.Height, 1e-5)
	assert.InDelta(t, 27, e.Depth, 1e-5)
}
