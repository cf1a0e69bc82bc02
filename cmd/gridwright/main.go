package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridwright/internal/commands"
	"gridwright/internal/debug"
	"gridwright/internal/engineconfig"
	"gridwright/internal/env"
	"gridwright/internal/graphics"
	"gridwright/internal/grid"
	"gridwright/internal/logger"
	"gridwright/internal/placeable"
	"gridwright/internal/placement"
	"gridwright/internal/preview"
	"gridwright/internal/scene"
	"gridwright/internal/terminal"
	"gridwright/internal/terrain"
	"gridwright/internal/world"
)

func main() {
	log := logger.New()

	prefs, _ := engineconfig.Load()
	if err := prefs.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gridSpec, err := grid.NewSpec(prefs.CellSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_ = env.Load(".env")
	catalogPath := prefs.CatalogPath
	if catalogPath == "" {
		catalogPath = placeable.CatalogPath
	}
	if v := os.Getenv("GRIDWRIGHT_CATALOG"); v != "" {
		catalogPath = v
	}
	catalog, err := placeable.LoadCatalog(catalogPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w := world.New()
	opts := terrain.DefaultOptions()
	opts.TileSize = prefs.CellSize
	for _, b := range terrain.Generate(opts) {
		w.Add(b)
	}

	scn := scene.New(prefs.CellSize)
	scn.SetGridVisible(prefs.GridVisible)

	ghost := preview.New()
	validator := placement.NewValidator(w)
	validator.Shrink = prefs.OverlapShrink
	if len(prefs.NonBlocking) > 0 {
		validator.SetNonBlockingCategories(prefs.NonBlocking)
	}

	session := placement.NewSession(placement.Deps{
		Grid:       gridSpec,
		RotateStep: prefs.RotateStepDegrees,
		Resolver:   &scene.PointerResolver{Scene: scn, World: w, MaxDistance: prefs.MaxPlaceDistance},
		Sink:       ghost,
		Provider:   placeable.NewProvider(w),
		Validator:  validator,
		History:    placement.NewHistory(),
		Log:        log,
	})

	reg := buildCommands(session, catalog, scn, log, &prefs)
	term := terminal.New(log, reg)
	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	update := func() {
		term.Update()
		scn.Update(term.IsOpen())
		if !term.IsOpen() {
			handleInput(session, log)
			session.Tick(rl.GetMousePosition())
		}
		dbg.SetStatus(statusLine(session))
	}
	draw := func() {
		scn.Draw(w, ghost.Draw)
		term.Draw()
		dbg.Draw()
	}
	graphics.Run("gridwright", update, draw)
}

// handleInput maps raw key/mouse events to session operations. The session
// itself stays free of any input-device coupling.
func handleInput(s *placement.Session, log *logger.Logger) {
	if rl.IsKeyPressed(rl.KeyR) {
		if err := s.RotateStep(); err != nil {
			log.Log(err.Error())
		}
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		s.Cancel()
	}
	if rl.IsKeyPressed(rl.KeyU) {
		if err := s.Undo(); err != nil {
			log.Log(err.Error())
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && s.Mode() == placement.Placing {
		if err := s.Commit(); err != nil {
			log.Log(err.Error())
		}
	}
}

// statusLine renders the top-left overlay: mode, active template, yaw, and
// whether the pending placement is currently valid.
func statusLine(s *placement.Session) string {
	if s.Mode() != placement.Placing {
		return fmt.Sprintf("idle | %d placed | ESC terminal, 'place <name>' to start", s.History().Len())
	}
	state := "blocked"
	if s.LastValid() {
		state = "ok"
	}
	return fmt.Sprintf("placing %s | yaw %d | %s | %d placed",
		s.Template().Name, s.Rotation(), state, s.History().Len())
}

// buildCommands registers the editor's terminal commands against the session
// and scene.
func buildCommands(s *placement.Session, catalog *placeable.Catalog, scn *scene.Scene, log *logger.Logger, prefs *engineconfig.Prefs) *commands.Registry {
	reg := commands.NewRegistry()

	reg.Register("place", "start placing a template: place <name>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: place <name>")
		}
		t := catalog.Find(args[0])
		if t == nil {
			return fmt.Errorf("no template named %q", args[0])
		}
		s.Begin(t)
		return nil
	})
	reg.Register("cancel", "stop placing", nil, func([]string) error {
		s.Cancel()
		return nil
	})
	reg.Register("rotate", "rotate the pending placement by the configured step", nil, func([]string) error {
		return s.RotateStep()
	})
	reg.Register("undo", "remove the most recent placement", nil, func([]string) error {
		return s.Undo()
	})
	reg.Register("clear", "remove every placement", nil, func([]string) error {
		s.ClearAll()
		return nil
	})
	reg.Register("grid", "toggle the placement lattice", nil, func([]string) error {
		scn.SetGridVisible(!scn.GridVisible)
		prefs.GridVisible = scn.GridVisible
		return engineconfig.Save(*prefs)
	})
	reg.Register("templates", "list placeable templates", nil, func([]string) error {
		for _, t := range catalog.Templates {
			log.Logf("  %s (%d parts)", t.Name, len(t.Parts))
		}
		return nil
	})
	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			log.Log(line)
		}
		return nil
	})
	return reg
}
