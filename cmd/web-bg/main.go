package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/web-bg/audio"
	"github.com/lixenwraith/web-bg/config"
	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/event"
	"github.com/lixenwraith/web-bg/game"
	"github.com/lixenwraith/web-bg/input"
	"github.com/lixenwraith/web-bg/logging"
	"github.com/lixenwraith/web-bg/metrics"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/render"
)

const gameName = "web-bg"

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file (default $"+config.EnvPath+")")
	seedFlag    = flag.Uint64("seed", 0, "Generation seed, 0 picks one from the clock")
	modeFlag    = flag.String("mode", "", "Generation mode: random, maze, cave")
	debugFlag   = flag.Bool("debug", false, "Write logs to the log directory")
	metricsFlag = flag.String("metrics", "", "Serve Prometheus metrics on this address, e.g. :9090")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// applyFlags overlays explicitly set flags on cfg
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "mode":
			cfg.Maze.Mode = *modeFlag
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "metrics":
			cfg.Metrics.Addr = *metricsFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		}
	})
}

func run() int {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 2
	}
	applyFlags(&cfg)

	root, closer, err := logging.Setup(logging.Options{
		Debug:  cfg.Log.Debug,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Dir:    cfg.Log.Dir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		return 1
	}
	defer closer.Close()

	log, sessionID := logging.Session(root)
	log.WithField("config", cfg.Summary()).Info("starting")

	clock := engine.NewTimeProvider()
	lifecycle := event.NewLifecycle(log, clock.Now)
	lifecycle.Loaded(gameName)

	m := metrics.New()
	if cfg.Metrics.Addr != "" {
		srv, err := m.Serve(cfg.Metrics.Addr, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Metrics endpoint failed: %v\n", err)
			return 1
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("metrics shutdown")
			}
		}()
	}

	// Audio is optional, the game runs silent when the device is unavailable
	var player engine.AudioPlayer
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("audio initialization failed, continuing without sound")
		} else {
			player = sm
			defer sm.Cleanup()
		}
	}

	sess, err := game.NewSession(game.Options{
		Config:  cfg,
		Log:     log,
		Metrics: m,
		Audio:   player,
		Clock:   clock,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		return 2
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	crash := func(where string, r any) {
		screen.Fini()
		lifecycle.Panicked(fmt.Sprint(r))
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash("WEB-BG", r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()
	screen.Clear()

	sess.SetViewport(render.ViewHalfExtents(screen.Size()))
	renderer := render.NewTerminalRenderer(int64(sess.Seed))
	poller := input.NewPoller(parameter.InputHoldWindow)

	lifecycle.Initialized()
	log.WithFields(logrus.Fields{
		"seed":    sess.Seed,
		"session": sessionID,
	}).Info("initialized")

	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(cfg.FrameInterval.Duration)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch poller.Handle(ev, clock.Now()) {
			case input.ActionQuit:
				log.WithFields(logrus.Fields{
					"score":  sess.Score(),
					"frames": sess.Resources().Time.FrameNumber,
				}).Info("quit")
				return 0
			case input.ActionResize:
				screen.Sync()
				sess.SetViewport(render.ViewHalfExtents(screen.Size()))
			}

		case <-ticker.C:
			sess.Tick(poller.Input(clock.Now()))

			renderer.RenderFrame(screen, sess.Resources())
			screen.Show()
			lifecycle.Started()
		}
	}
}
