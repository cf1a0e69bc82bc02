package engineconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridwright/internal/grid"
)

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Prefs)
	}{
		{"zero cell size", func(p *Prefs) { p.CellSize = 0 }},
		{"negative cell size", func(p *Prefs) { p.CellSize = -4 }},
		{"zero shrink", func(p *Prefs) { p.OverlapShrink = 0 }},
		{"shrink above one", func(p *Prefs) { p.OverlapShrink = 1.5 }},
		{"zero place distance", func(p *Prefs) { p.MaxPlaceDistance = 0 }},
		{"zero rotate step", func(p *Prefs) { p.RotateStepDegrees = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	// No config/engine.json exists relative to the test working directory.
	p, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestValidateCellSizeWrapsGridError(t *testing.T) {
	p := Default()
	p.CellSize = -1
	assert.ErrorIs(t, p.Validate(), grid.ErrInvalidCellSize)
}
