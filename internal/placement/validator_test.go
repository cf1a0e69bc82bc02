package placement

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"gridwright/internal/pose"
	"gridwright/internal/world"
)

func poseAt(x, y, z, yaw float32) pose.Pose {
	return pose.Compose(rl.NewVector3(x, y, z), yaw)
}

func TestValidatorIgnoresTerrain(t *testing.T) {
	w := world.New()
	w.Add(world.NewBody(rl.NewVector3(0, 0.5, 0), rl.NewVector3(4, 1, 4), world.CategoryTerrain))
	v := NewValidator(w)

	ext := pose.Extent{Width: 4, Height: 4, Depth: 4}
	assert.False(t, v.IsBlocked(poseAt(0, 1, 0, 0), ext, nil),
		"a pose intersecting only terrain must not be blocked")
}

func TestValidatorBlocksOnSolidProp(t *testing.T) {
	w := world.New()
	w.Add(world.NewBody(rl.NewVector3(0, 2, 0), rl.NewVector3(4, 4, 4), world.CategoryProp))
	v := NewValidator(w)

	ext := pose.Extent{Width: 4, Height: 4, Depth: 4}
	assert.True(t, v.IsBlocked(poseAt(0, 2, 0, 0), ext, nil))
	assert.False(t, v.IsBlocked(poseAt(20, 2, 0, 0), ext, nil))
}

func TestValidatorIgnoresNonSolidBodies(t *testing.T) {
	w := world.New()
	ghost := world.NewBody(rl.NewVector3(0, 2, 0), rl.NewVector3(4, 4, 4), world.CategoryProp)
	ghost.Solid = false
	w.Add(ghost)
	v := NewValidator(w)

	assert.False(t, v.IsBlocked(poseAt(0, 2, 0, 0), pose.Extent{Width: 4, Height: 4, Depth: 4}, nil))
}

func TestValidatorShrinkAllowsAbuttingPlacements(t *testing.T) {
	w := world.New()
	// Existing placement occupying x in [-2, 2].
	w.Add(world.NewBody(rl.NewVector3(0, 2, 0), rl.NewVector3(4, 4, 4), world.CategoryProp))
	v := NewValidator(w)

	ext := pose.Extent{Width: 4, Height: 4, Depth: 4}
	// Abutting neighbor centered at x=4 occupies [2, 6]; the shrunk query box
	// covers [2.2, 5.8], so the shared edge does not collide.
	assert.False(t, v.IsBlocked(poseAt(4, 2, 0, 0), ext, nil))
	// A clearly overlapping pose is still blocked even after shrink.
	assert.True(t, v.IsBlocked(poseAt(3, 2, 0, 0), ext, nil))
}

func TestValidatorHonorsExcludeSet(t *testing.T) {
	w := world.New()
	b := world.NewBody(rl.NewVector3(0, 2, 0), rl.NewVector3(4, 4, 4), world.CategoryProp)
	w.Add(b)
	v := NewValidator(w)

	ext := pose.Extent{Width: 4, Height: 4, Depth: 4}
	assert.True(t, v.IsBlocked(poseAt(0, 2, 0, 0), ext, nil))
	assert.False(t, v.IsBlocked(poseAt(0, 2, 0, 0), ext, excludeIDs(b)))
}

func TestValidatorYawedFootprint(t *testing.T) {
	w := world.New()
	// Obstacle sits along +Z where a 90 degree yawed long extent will reach.
	w.Add(world.NewBody(rl.NewVector3(0, 2, 5), rl.NewVector3(2, 4, 2), world.CategoryProp))
	v := NewValidator(w)

	long := pose.Extent{Width: 12, Height: 4, Depth: 2}
	// At identity yaw the extent spans x in [-6, 6], z in [-1, 1]: clear.
	assert.False(t, v.IsBlocked(poseAt(0, 2, 0, 0), long, nil))
	// Rotated 90 degrees it spans z in [-6, 6]: hits the obstacle.
	assert.True(t, v.IsBlocked(poseAt(0, 2, 0, 90), long, nil))
}

func TestValidatorCustomNonBlockingCategories(t *testing.T) {
	w := world.New()
	w.Add(world.NewBody(rl.NewVector3(0, 2, 0), rl.NewVector3(4, 4, 4), "scaffold"))
	v := NewValidator(w)

	ext := pose.Extent{Width: 4, Height: 4, Depth: 4}
	assert.True(t, v.IsBlocked(poseAt(0, 2, 0, 0), ext, nil))

	v.SetNonBlockingCategories([]string{"scaffold"})
	assert.False(t, v.IsBlocked(poseAt(0, 2, 0, 0), ext, nil))
}
