package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce
	// allocations.
	updateInterval = 30
)

// Debug holds runtime overlays: FPS, heap allocation, and the placement
// status line (mode, rotation, validity). Overlays are off by default except
// the status line.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStatus   bool

	statusText   string
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with FPS/Mem hidden and the status line shown.
func New() *Debug {
	return &Debug{ShowStatus: true}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn
// (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetStatus sets the placement status line drawn at the top-left, e.g.
// "placing block  yaw 90  ok". Set each frame by the host.
func (d *Debug) SetStatus(text string) {
	d.statusText = text
}

// Draw renders any enabled overlays. Call after the scene and terminal in the
// draw loop. Text is only recomputed every updateInterval frames to limit
// allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)

	if d.ShowStatus && d.statusText != "" {
		rl.DrawText(d.statusText, overlayPadding, int32(overlayPadding), overlayFontSize, rl.RayWhite)
	}

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if d.lastFpsText != "" {
			w := rl.MeasureText(d.lastFpsText, overlayFontSize)
			rl.DrawText(d.lastFpsText, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
		}
		y += overlayLineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		if d.lastMemText != "" {
			w := rl.MeasureText(d.lastMemText, overlayFontSize)
			rl.DrawText(d.lastMemText, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
		}
	}
}
