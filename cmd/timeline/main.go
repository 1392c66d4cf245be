// cmd/timeline/main.go
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"cosmic-timeline/internal/app"
	"cosmic-timeline/internal/assets"
	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/defs"
	"cosmic-timeline/internal/event"
	"cosmic-timeline/internal/scheduler"
	"cosmic-timeline/internal/settings"
	"cosmic-timeline/internal/state"
	"cosmic-timeline/internal/ui"
	"cosmic-timeline/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/joho/godotenv"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	controller     *app.RevealController
	viewport       *ui.Viewport
	settings       *settings.Manager
	watcher        *config.Watcher
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		a.settings.SetFullscreen(full)
	}
	a.pollTuning()

	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) pollTuning() {
	if a.watcher == nil {
		return
	}
	select {
	case t := <-a.watcher.Updates:
		a.controller.SetTuning(t)
	case err := <-a.watcher.Errors:
		log.Printf("[config] %v", err)
	default:
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.viewport.SetSize(outsideWidth, outsideHeight) {
		a.controller.Resize(outsideWidth, outsideHeight)
		if !ebiten.IsFullscreen() {
			a.settings.SetWindowSize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: .env not loaded: %v", err)
	}

	tuningPath := flag.String("tuning", envOr("TIMELINE_TUNING", ""), "path to a tuning YAML file")
	contentPath := flag.String("content", envOr("TIMELINE_CONTENT", ""), "path to timeline content (YAML or JSON)")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	start := flag.String("start", "home", "section to open first: home or timeline")
	seedFlag := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	seed := *seedFlag
	if s := os.Getenv("TIMELINE_SEED"); s != "" && seed == 0 {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = v
		}
	}

	tuning, err := config.ParseTuning(assets.TuningYAML)
	if err != nil {
		log.Fatal(err)
	}
	if *tuningPath != "" {
		if tuning, err = config.LoadTuning(*tuningPath); err != nil {
			log.Printf("Warning: %v (using defaults)", err)
		}
	}

	timeline, err := defs.LoadTimelineOr(*contentPath, assets.TimelineYAML)
	if err != nil {
		log.Fatal(err)
	}

	store := settings.Open("cosmic_timeline", settings.DefaultWindowSettings(config.ScreenWidth, config.ScreenHeight))
	ws := store.Settings()

	face := ui.DefaultFace()
	viewport := &ui.Viewport{W: ws.Width, H: ws.Height}
	clock := scheduler.NewClock()
	dispatcher := event.NewDispatcher()

	var controller *app.RevealController
	overlay := ui.NewOverlay(timeline, face, func() { controller.Reset() })
	controller = app.NewRevealController(viewport, overlay, clock, utils.NewPRNGService(seed), dispatcher, tuning)

	sm := state.NewStateMachine() // Создаём машину состояний
	nav := state.NewNavigation(sm, controller, overlay, clock, dispatcher, face)
	nav.AttachBar(face)
	if *start == "timeline" {
		nav.GoTimeline()
	} else {
		nav.GoHome()
	}

	game := &AppGame{
		stateMachine:   sm,
		controller:     controller,
		viewport:       viewport,
		settings:       store,
		lastUpdateTime: time.Now(),
	}
	if *watch && *tuningPath != "" {
		w, err := config.NewWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: tuning watcher disabled: %v", err)
		} else {
			game.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(ws.Width, ws.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(ws.Fullscreen)

	runErr := ebiten.RunGame(game)
	if err := store.Save(); err != nil {
		log.Printf("Warning: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
