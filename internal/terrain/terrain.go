package terrain

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridwright/internal/world"
)

// Options controls procedural terrain generation. Width/Depth are in tiles;
// TileSize is the world size of one tile on X/Z. HeightScale is the maximum
// terrain height in world units. Seed == 0 uses a time-based seed. Octaves,
// Frequency, Lacunarity, and Gain control the fractal noise shape.
type Options struct {
	Width       int
	Depth       int
	TileSize    float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a sane default configuration: a 16x16 tile field of
// 4-unit tiles, matching the default placement cell size.
func DefaultOptions() Options {
	return Options{
		Width:       16,
		Depth:       16,
		TileSize:    4.0,
		HeightScale: 3.0,
		Seed:        0,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// Generate builds the terrain as a grid of solid cube bodies sitting on Y=0,
// centered around the world origin on XZ, all in the terrain category so the
// overlap validator never counts them as blocking. Rays still land on them,
// which is how placements rest on the terrain surface.
func Generate(opts Options) []*world.Body {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil
	}
	if opts.TileSize <= 0 {
		opts.TileSize = 1
	}
	if opts.HeightScale <= 0 {
		opts.HeightScale = 1
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.05
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Center the field around the origin. First tile center is at
	// (-extentX + halfTile, -extentZ + halfTile).
	halfTile := opts.TileSize * 0.5
	extentX := float32(opts.Width) * opts.TileSize * 0.5
	extentZ := float32(opts.Depth) * opts.TileSize * 0.5
	startX := -extentX + halfTile
	startZ := -extentZ + halfTile

	bodies := make([]*world.Body, 0, opts.Width*opts.Depth)
	baseFreq := opts.Frequency
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(float32(x)*baseFreq, float32(z)*baseFreq, seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			// Map [0,1] noise to [minHeight, HeightScale].
			minHeight := float32(0.15)
			height := minHeight + h*(opts.HeightScale-minHeight)
			if !isFinite(height) || height <= 0 {
				height = minHeight
			}

			worldX := startX + float32(x)*opts.TileSize
			worldZ := startZ + float32(z)*opts.TileSize
			worldY := height * 0.5 // bottom at Y=0

			b := world.NewBody(
				rl.NewVector3(worldX, worldY, worldZ),
				rl.NewVector3(opts.TileSize, height, opts.TileSize),
				world.CategoryTerrain,
			)
			b.Color = tileColor(h)
			bodies = append(bodies, b)
		}
	}
	return bodies
}

// tileColor shades tiles from dark lowland to pale highland by noise value.
func tileColor(h float32) rl.Color {
	base := uint8(60 + h*80)
	return rl.NewColor(base/2, base, base/2, 255)
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value
// noise with configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32 = 0
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] using a hash-based lattice and
// cubic easing.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math.Floor(float64(x)))
	y0 := int32(math.Floor(float64(y)))
	tx := x - float32(x0)
	ty := y - float32(y0)

	// Lattice values at cell corners.
	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := lerp(v00, v10, sx)
	ix1 := lerp(v01, v11, sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random
// float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
