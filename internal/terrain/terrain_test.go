package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridwright/internal/world"
)

func TestGenerateProducesTerrainBodies(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	bodies := Generate(opts)
	require.Len(t, bodies, opts.Width*opts.Depth)

	for _, b := range bodies {
		assert.Equal(t, world.CategoryTerrain, b.Category)
		assert.True(t, b.Solid, "terrain is collision-solid so rays land on it")
		assert.Greater(t, b.Size.Y, float32(0))
		assert.LessOrEqual(t, b.Size.Y, opts.HeightScale)
		// Tiles sit on Y=0: center height is half the tile height.
		assert.InDelta(t, b.Size.Y*0.5, b.Position.Y, 1e-4)
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7

	a := Generate(opts)
	b := Generate(opts)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Position, b[i].Position, "tile %d", i)
		assert.Equal(t, a[i].Size, b[i].Size, "tile %d", i)
	}
}

func TestGenerateCentersFieldOnOrigin(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	opts.Width = 2
	opts.Depth = 2
	opts.TileSize = 4

	bodies := Generate(opts)
	require.Len(t, bodies, 4)
	var sumX, sumZ float32
	for _, b := range bodies {
		sumX += b.Position.X
		sumZ += b.Position.Z
	}
	assert.InDelta(t, 0, sumX, 1e-4)
	assert.InDelta(t, 0, sumZ, 1e-4)
}

func TestGenerateRejectsEmptyField(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 0
	assert.Nil(t, Generate(opts))
}
