package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/eco-clicker/audio"
	"github.com/lixenwraith/eco-clicker/config"
	"github.com/lixenwraith/eco-clicker/constants"
	"github.com/lixenwraith/eco-clicker/content"
	"github.com/lixenwraith/eco-clicker/engine"
	"github.com/lixenwraith/eco-clicker/events"
	"github.com/lixenwraith/eco-clicker/game"
	"github.com/lixenwraith/eco-clicker/input"
	"github.com/lixenwraith/eco-clicker/render"
	"github.com/lixenwraith/eco-clicker/status"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to the configured log file")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound effects")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.EnableDebug()
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}

	logger, logFile := setupLogging(cfg.Log, cfg.MaxLogBytes(), uuid.NewString())
	if logFile != nil {
		defer logFile.Close()
	}

	catalog := content.Default()
	if cfg.Content.Path != "" {
		if catalog, err = content.LoadFile(cfg.Content.Path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load content: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	crash := func(where string, r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash("ECO-CLICKER", r)
		}
	}()

	// Audio is optional: a missing device leaves the game silent
	player := audio.NewPlayer(cfg.AudioSettings(), logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer player.Close()

	// Game time stops while the command line is open
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	sched := engine.NewScheduler(clock)
	queue := events.NewEventQueue()
	reg := status.NewRegistry()

	opts := []game.Option{
		game.WithSound(player),
		game.WithLogger(logger),
		game.WithStatus(reg),
	}
	if seed := cfg.Game.Seed; seed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))))
	}
	session := game.NewSession(catalog, sched, cfg.GameSettings(), opts...)

	loop, _ := engine.NewLoop(session, clock, sched, queue, reg, cfg.Game.Tick.Duration)
	loop.RegisterEventHandler(game.NewEventHandler())
	loop.SetCrashHandler(func(r any) { crash("GAME LOOP", r) })
	loop.RunSafe(func(s *game.Session) { s.Start() })
	loop.Start()
	defer loop.Stop()

	logger.Info("eco-clicker started", "tick", cfg.Game.Tick.Duration, "audio", player.Enabled())

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	eventChan := make(chan tcell.Event, 256)
	// Input polling runs until the screen is finalized
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case eventChan <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	run(screen, loop, clock, queue, reg, cfg.Game.PopupDuration.Duration, eventChan)

	cancel()
	screen.Fini()
	if err := g.Wait(); err != nil {
		logger.Error("event poller failed", "error", err)
	}
	logger.Info("eco-clicker stopped",
		"ticks", loop.Ticks(),
		"dropped_events", queue.Dropped())
}

// run drives input and rendering on the main goroutine until the user quits
func run(
	screen tcell.Screen,
	loop *engine.Loop[*game.Session],
	clock *engine.PausableClock,
	queue *events.EventQueue,
	reg *status.Registry,
	popupLifetime time.Duration,
	eventChan <-chan tcell.Event,
) {
	renderer := render.NewRenderer(popupLifetime)
	w, h := screen.Size()
	buf := render.NewBuffer(w, h, renderer.Palette().Background)
	handler := input.NewHandler(queue, time.Now)
	handler.SetPauser(clock)

	var snap game.Snapshot
	view := input.View{Snapshot: &snap}

	draw := func() {
		loop.RunSafe(func(s *game.Session) {
			snap = s.Snapshot(clock.Now())
		})
		ui := handler.UIState(snap.Quiz.Visible, reg.Entries())
		view.Layout = renderer.Draw(buf, &snap, ui)
		buf.Flush(screen)
		screen.Show()
	}
	draw()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				buf.Resize(w, h)
				screen.Sync()
				draw()
				continue
			}
			if !handler.HandleEvent(ev, view) {
				return
			}
			// Apply input now instead of waiting for the next tick
			loop.DispatchEventsImmediately()

		case <-frameTicker.C:
			draw()
		}
	}
}
