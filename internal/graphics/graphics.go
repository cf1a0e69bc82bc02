package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1600
	windowHeight = 900
	targetFPS    = 60
)

// Run starts the window and main loop. Each frame it calls update (input,
// session tick), then clears the screen and calls draw (scene, overlays).
// ESC is reserved for the in-game terminal, so the window closes via its
// close button only.
func Run(title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 20, 26, 255))
		draw()
		rl.EndDrawing()
	}
}
