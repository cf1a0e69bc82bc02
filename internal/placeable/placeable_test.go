package placeable

import (
	"os"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridwright/internal/pose"
	"gridwright/internal/world"
)

func TestResolveExtentPolicy(t *testing.T) {
	tests := []struct {
		name     string
		template *Template
		want     pose.Extent
	}{
		{
			"single rigid part uses its declared size",
			&Template{Name: "block", Parts: []PartDef{{Size: [3]float32{2, 3, 4}}}},
			pose.Extent{Width: 2, Height: 3, Depth: 4},
		},
		{
			"composite with anchor uses the anchor size",
			&Template{Name: "tower", Anchor: "base", Parts: []PartDef{
				{Name: "base", Size: [3]float32{4, 6, 4}},
				{Name: "roof", Size: [3]float32{5, 1, 5}, Offset: [3]float32{0, 3.5, 0}},
			}},
			pose.Extent{Width: 4, Height: 6, Depth: 4},
		},
		{
			"composite without anchor aggregates part bounds",
			&Template{Name: "pair", Parts: []PartDef{
				{Size: [3]float32{2, 2, 2}, Offset: [3]float32{-2, 0, 0}},
				{Size: [3]float32{2, 2, 2}, Offset: [3]float32{2, 0, 0}},
			}},
			pose.Extent{Width: 6, Height: 2, Depth: 2},
		},
		{
			"no derivable size falls back to default",
			&Template{Name: "marker", Parts: []PartDef{{Name: "flag"}}},
			pose.DefaultExtent(),
		},
		{
			"nil template falls back to default",
			nil,
			pose.DefaultExtent(),
		},
		{
			"anchor naming an unsized part falls back to default",
			&Template{Name: "odd", Anchor: "ghostpart", Parts: []PartDef{
				{Name: "ghostpart"},
				{Name: "other"},
			}},
			pose.DefaultExtent(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveExtent(tt.template))
		})
	}
}

func TestCloneMaterializesSolidBodies(t *testing.T) {
	w := world.New()
	p := NewProvider(w)
	tmpl := &Template{Name: "tower", Anchor: "base", Parts: []PartDef{
		{Name: "base", Size: [3]float32{4, 6, 4}, Color: "brown"},
		{Name: "roof", Size: [3]float32{5, 1, 5}, Offset: [3]float32{0, 3.5, 0}, Color: "red"},
	}}

	obj, err := p.Clone(tmpl)
	require.NoError(t, err)
	require.Len(t, w.Bodies(), 2)
	assert.Len(t, obj.BodyIDs(), 2)
	for _, b := range w.Bodies() {
		assert.True(t, b.Solid)
		assert.Equal(t, world.CategoryProp, b.Category)
	}
	assert.Equal(t, pose.Extent{Width: 4, Height: 6, Depth: 4}, obj.Extent())
}

func TestCloneDoesNotShareTemplateParts(t *testing.T) {
	w := world.New()
	p := NewProvider(w)
	tmpl := &Template{Name: "block", Parts: []PartDef{{Name: "body", Size: [3]float32{4, 4, 4}}}}

	obj, err := p.Clone(tmpl)
	require.NoError(t, err)

	// Mutating the spawned body must never write back into the catalog.
	w.Bodies()[0].Size = rl.NewVector3(99, 99, 99)
	assert.Equal(t, [3]float32{4, 4, 4}, tmpl.Parts[0].Size)
	_ = obj
}

func TestCloneEmptyTemplateFails(t *testing.T) {
	p := NewProvider(world.New())
	_, err := p.Clone(&Template{Name: "void"})
	assert.Error(t, err)
	_, err = p.Clone(nil)
	assert.Error(t, err)
}

func TestGroupSetPoseRotatesOffsets(t *testing.T) {
	w := world.New()
	p := NewProvider(w)
	tmpl := &Template{Name: "ell", Parts: []PartDef{
		{Name: "a", Size: [3]float32{2, 2, 2}},
		{Name: "b", Size: [3]float32{2, 2, 2}, Offset: [3]float32{4, 0, 0}},
	}}
	obj, err := p.Clone(tmpl)
	require.NoError(t, err)

	obj.SetPose(pose.Compose(rl.NewVector3(10, 1, 10), 90))
	bodies := w.Bodies()
	require.Len(t, bodies, 2)
	assert.InDelta(t, 10, bodies[0].Position.X, 1e-4)
	assert.InDelta(t, 10, bodies[0].Position.Z, 1e-4)
	// Local +X offset under 90 degree yaw lands at world -Z.
	assert.InDelta(t, 10, bodies[1].Position.X, 1e-4)
	assert.InDelta(t, 6, bodies[1].Position.Z, 1e-4)

	// Repeated SetPose must not accumulate drift.
	obj.SetPose(pose.Compose(rl.NewVector3(10, 1, 10), 90))
	assert.InDelta(t, 6, bodies[1].Position.Z, 1e-4)
}

func TestSingleBodySetStyle(t *testing.T) {
	w := world.New()
	p := NewProvider(w)
	obj, err := p.Clone(&Template{Name: "block", Parts: []PartDef{{Size: [3]float32{4, 4, 4}}}})
	require.NoError(t, err)

	obj.SetStyle(Style{Solid: false, Tint: rl.NewColor(1, 2, 3, 120)})
	b := w.Bodies()[0]
	assert.False(t, b.Solid)
	assert.Equal(t, uint8(120), b.Color.A)
}

func TestReleaseRemovesBodies(t *testing.T) {
	w := world.New()
	p := NewProvider(w)
	obj, err := p.Clone(DefaultCatalog().Find("watchtower"))
	require.NoError(t, err)
	require.Len(t, w.Bodies(), 2)

	obj.Release(w)
	assert.Empty(t, w.Bodies())
}

func TestCatalogFind(t *testing.T) {
	c := DefaultCatalog()
	require.NotNil(t, c.Find("block"))
	require.NotNil(t, c.Find("watchtower"))
	assert.Nil(t, c.Find("missing"))
}

func TestLoadCatalogMissingFileFallsBack(t *testing.T) {
	c, err := LoadCatalog("testdata/does-not-exist.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Templates)
}

func TestLoadCatalogParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/catalog.yaml"
	data := []byte(`templates:
  - name: crate
    parts:
      - name: body
        size: [2, 2, 2]
        color: brown
  - name: gate
    anchor: frame
    parts:
      - name: frame
        size: [6, 5, 1]
      - name: door
        size: [2, 4, 1]
        offset: [0, -0.5, 0]
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Templates, 2)
	crate := c.Find("crate")
	require.NotNil(t, crate)
	assert.Equal(t, [3]float32{2, 2, 2}, crate.Parts[0].Size)
	gate := c.Find("gate")
	require.NotNil(t, gate)
	assert.Equal(t, "frame", gate.Anchor)
	assert.Equal(t, pose.Extent{Width: 6, Height: 5, Depth: 1}, ResolveExtent(gate))
}
