package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-volley/audio"
	"github.com/lixenwraith/vi-volley/config"
	"github.com/lixenwraith/vi-volley/parameter"
)

var (
	configPath = flag.String("config", "", "TOML config file overriding defaults")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to "+parameter.LogDir)
	workers    = flag.Int("workers", 0, "Collision workers, 1 runs single-threaded (0 keeps config)")
	seed       = flag.Uint64("seed", 0, "Enemy spawn seed (0 uses the clock)")
	mute       = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := loadConfig(logger)
	if *workers > 0 {
		cfg.Projectile.Workers = *workers
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVOLLEY-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	spawnSeed := *seed
	if spawnSeed == 0 {
		spawnSeed = uint64(time.Now().UnixNano())
	}
	sb := newSandbox(cfg, logger, spawnSeed)

	sound := audio.NewSoundManager(soundConfig(cfg.Audio))
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the sandbox runs without sound
		logger.Warn("audio initialization failed", "err", err)
	} else {
		defer sound.Cleanup()
	}
	sb.register(sound)

	run(screen, sb)

	logger.Info("sandbox exit",
		"frames", sb.frame,
		"kills", sb.kills,
		"deaths", sb.deaths,
		"dropped_events", sb.queue.Dropped(),
	)
}

// loadConfig falls back to defaults when the file is missing or invalid
func loadConfig(logger *slog.Logger) config.Config {
	if *configPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config rejected, using defaults", "path", *configPath, "err", err)
		return config.Default()
	}
	return cfg
}

// run drives input and fixed-interval frames until the player quits
func run(screen tcell.Screen, sb *sandbox) {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	autoFire := false

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, toggle := handleKey(sb, ev, time.Now())
				if quit {
					return
				}
				if toggle {
					autoFire = !autoFire
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), parameter.MaxFrameDelta)
			last = now

			if autoFire {
				sb.fire(now)
			}
			sb.step(dt, now)
			draw(screen, sb)
		}
	}
}

// handleKey applies one key press; returns quit and auto-fire toggle requests
func handleKey(sb *sandbox, ev *tcell.EventKey, now time.Time) (quit, toggleAuto bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, false
	case tcell.KeyLeft:
		sb.rotateAim(-parameter.AimStepDeg)
	case tcell.KeyRight:
		sb.rotateAim(parameter.AimStepDeg)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true, false
		case 'h':
			sb.rotateAim(-parameter.AimStepDeg)
		case 'l':
			sb.rotateAim(parameter.AimStepDeg)
		case ' ':
			sb.fire(now)
		case 'f':
			return false, true
		case '+', '=':
			sb.adjustSpread(1)
		case '-':
			sb.adjustSpread(-1)
		}
	}
	return false, false
}

// soundConfig maps the [audio] section onto the playback settings
func soundConfig(a config.AudioConfig) audio.Config {
	return audio.Config{
		Enabled:      a.Enabled,
		SampleRate:   a.SampleRate,
		MasterVolume: a.MasterVolume,
		KillVolume:   a.KillVolume,
		ShotVolume:   a.ShotVolume,
		MaxCues:      a.MaxCues,
	}
}
