package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gridwright/internal/grid"
)

// EngineConfigPath is the path to the engine config file, relative to the
// process working directory.
const EngineConfigPath = "config/engine.json"

// Prefs holds the placement editor's tunables and overlay toggles. Persisted
// across runs. Committed placements themselves are not persisted.
type Prefs struct {
	CellSize          float32  `json:"cell_size"`
	RotateStepDegrees int      `json:"rotate_step_degrees"`
	OverlapShrink     float32  `json:"overlap_shrink"`
	MaxPlaceDistance  float32  `json:"max_place_distance"`
	NonBlocking       []string `json:"non_blocking_categories,omitempty"`
	GridVisible       bool     `json:"grid_visible"`
	ShowFPS           bool     `json:"show_fps"`
	ShowMemAlloc      bool     `json:"show_memalloc"`
	CatalogPath       string   `json:"catalog_path,omitempty"`
}

// Default returns default preferences: 4-unit cells, 90 degree rotation steps,
// 0.9 overlap shrink, 200-unit placement reach, grid on, overlays off.
func Default() Prefs {
	return Prefs{
		CellSize:          grid.DefaultCellSize,
		RotateStepDegrees: 90,
		OverlapShrink:     0.9,
		MaxPlaceDistance:  200,
		GridVisible:       true,
		ShowFPS:           false,
		ShowMemAlloc:      false,
	}
}

// Load reads preferences from config/engine.json. If the file is missing or
// invalid, returns Default() and does not create a file. Validation is the
// caller's job (Validate), so a bad stored cell size still fails loudly at
// startup rather than being silently replaced.
func Load() (Prefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/engine.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}

// Validate rejects configurations the placement core cannot run with. A
// non-positive cell size is fatal at configuration time, before any session
// starts.
func (p Prefs) Validate() error {
	if p.CellSize <= 0 {
		return fmt.Errorf("engineconfig: %w", grid.ErrInvalidCellSize)
	}
	if p.OverlapShrink <= 0 || p.OverlapShrink > 1 {
		return fmt.Errorf("engineconfig: overlap_shrink must be in (0, 1], got %v", p.OverlapShrink)
	}
	if p.MaxPlaceDistance <= 0 {
		return fmt.Errorf("engineconfig: max_place_distance must be positive, got %v", p.MaxPlaceDistance)
	}
	if p.RotateStepDegrees == 0 {
		return fmt.Errorf("engineconfig: rotate_step_degrees must be non-zero")
	}
	return nil
}
