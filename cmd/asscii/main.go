// Command asscii runs the rocket demo on the depth-composited ANSI sprite runtime
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/asscii/audio"
	"github.com/lixenwraith/asscii/config"
	"github.com/lixenwraith/asscii/console"
	"github.com/lixenwraith/asscii/core"
	"github.com/lixenwraith/asscii/demo"
	"github.com/lixenwraith/asscii/engine"
	"github.com/lixenwraith/asscii/input"
	"github.com/lixenwraith/asscii/status"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config (default: ./"+config.DefaultConfigPath+" if present)")
	fpsFlag    = flag.Int("fps", 0, "Target frame rate, overrides config")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/"+logFileName)
	modeFlag   = flag.String("mode", "", "Draw path: buffer or steps, overrides config")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: restore the terminal even if the driver goroutine crashes
	defer func() {
		if r := recover(); r != nil {
			console.CloseScreen()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mASSCII CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		console.CloseScreen()
		fmt.Fprintf(os.Stderr, "asscii: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges file settings with command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *fpsFlag > 0 {
		cfg.FPS = *fpsFlag
	}
	if *modeFlag != "" {
		cfg.DrawMode = *modeFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio = false
	}
	return cfg, cfg.Validate()
}

func run(cfg *config.Config) error {
	// Assets first so a missing file fails before the terminal is taken over
	assets, err := demo.LoadAssets(cfg.Assets)
	if err != nil {
		return err
	}

	keys := input.DefaultKeyTable()
	if err := keys.Bind(cfg.Keys); err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	screen, err := console.OpenScreen()
	if err != nil {
		return err
	}
	defer console.CloseScreen()

	// Engine goroutines restore the terminal before reporting a crash
	core.SetCrashHandler(console.CloseScreen)

	termW, termH := console.ScreenSize()
	if fitField(cfg, termW, termH) {
		log.Printf("asscii: field clamped to %dx%d for a %dx%d terminal", cfg.Width, cfg.Height, termW, termH)
	}

	mode, rule, colors := cfg.RenderOptions()
	con := console.New(screen, cfg.Width, cfg.Height, console.Options{
		X:         cfg.OffsetX,
		Y:         cfg.OffsetY,
		Rule:      rule,
		Mode:      mode,
		ColorMode: colors,
	})

	metrics := status.NewRegistry()
	scene := engine.NewScene(con, engine.Options{
		FPS:       cfg.FPS,
		CarryOver: cfg.CarryOver,
		Metrics:   metrics,
	})

	sounds := audio.NewSoundManager()
	if cfg.Audio {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		}
		defer sounds.Cleanup()
	}
	metrics.Texts.Get("audio.state").Store(audioState(cfg.Audio, sounds))

	kb := input.NewKeyboardWith(keys, cfg.KeyHold(), nil)
	if _, err := demo.Populate(scene, &demo.Game{Assets: assets, Keys: kb, Sounds: sounds}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core.Go(func() {
		input.Poll(ctx, screen, kb, func() {
			sounds.Play(audio.SoundQuit)
			scene.Stop()
		})
	})

	log.Printf("asscii: %dx%d field, draw=%s depth=%s", cfg.Width, cfg.Height, mode, rule)
	if err := scene.Run(ctx); err != nil {
		return err
	}
	log.Printf("asscii: final metrics %s", metrics)
	return nil
}

// fitField shrinks the field so that it plus its offset fits the terminal
// The field never drops below one cell; it reports whether anything changed
func fitField(cfg *config.Config, termW, termH int) bool {
	if termW <= 0 || termH <= 0 {
		return false
	}
	w := min(cfg.Width, max(termW-cfg.OffsetX, 1))
	h := min(cfg.Height, max(termH-cfg.OffsetY, 1))
	if w == cfg.Width && h == cfg.Height {
		return false
	}
	cfg.Width, cfg.Height = w, h
	return true
}

func audioState(enabled bool, sounds *audio.SoundManager) string {
	switch {
	case !enabled:
		return "off"
	case sounds.Initialized():
		return "on"
	default:
		return "unavailable"
	}
}
