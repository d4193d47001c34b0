// Command skyhook runs the climbing game in a terminal with a side-view renderer
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/skyhook/config"
	"github.com/lixenwraith/skyhook/core"
	"github.com/lixenwraith/skyhook/engine"
	"github.com/lixenwraith/skyhook/input"
	"github.com/lixenwraith/skyhook/manifest"
	"github.com/lixenwraith/skyhook/telemetry"
)

type options struct {
	configPath  string
	debug       bool
	seed        uint64
	metricsAddr string
}

func main() {
	// Panic Recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML tuning file layered over defaults")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging to logs/skyhook.log")
	flag.Uint64Var(&opts.seed, "seed", 0, "RNG seed, 0 seeds from time")
	flag.StringVar(&opts.metricsAddr, "metrics", "", "Serve Prometheus metrics on this address, e.g. 127.0.0.1:9090")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "skyhook: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the tuning file and applies flag overrides
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	return cfg, nil
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	world := engine.NewWorld(engine.NewResource(cfg, log))
	game := engine.NewGame(world)
	if _, err := manifest.Assemble(game); err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var exporter *telemetry.Exporter
	if cfg.Metrics.Addr != "" {
		exporter = telemetry.New(world.Resource.Status)
		core.Go(func() {
			if err := exporter.Serve(ctx, cfg.Metrics.Addr, log); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		})
	}

	screen, err := newScreen()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashReset(screen.Fini)

	collector := input.NewCollector(input.DefaultHoldTimeout)
	pump := newEventPump(screen, input.DefaultKeyTable(), collector)
	core.Go(pump.run)

	view := &sideView{screen: screen}
	timer := engine.NewFrameTimer(engine.NewMonotonicTimeProvider())
	timer.Tick()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	log.Info().Int("tick_rate", cfg.TickRate).Uint64("seed", cfg.Seed).Msg("skyhook started")
	for {
		select {
		case <-pump.Done():
			log.Info().Int64("frames", world.Resource.Time.FrameNumber).Msg("skyhook exiting")
			return nil

		case <-ticker.C:
			start := time.Now()
			if err := game.Tick(timer.Tick(), collector.Snapshot(time.Now())); err != nil {
				return fmt.Errorf("tick: %w", err)
			}
			if exporter != nil {
				exporter.ObserveTick(time.Since(start))
			}

			if game.Mode() == core.ModeMenu {
				view.drawMenu()
			} else {
				view.drawPlaying(world)
			}
		}
	}
}
