package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/config"
	"github.com/lixenwraith/tilestream/content"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/service"
	"github.com/lixenwraith/tilestream/status"
	"github.com/lixenwraith/tilestream/system"
)

const frameInterval = 33 * time.Millisecond

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs under logs/")
	statusFlag = flag.String("status", "", "Serve /status and /healthz on this address, e.g. :8080")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := setupLogging(*debugFlag, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before any crash report reaches it
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCHUNK SANDBOX CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	core.SetCrashHandler(crash)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	world := engine.NewWorld(engine.WithLogger(logger))
	system.InstallStreaming(world)

	scheduler := engine.NewClockScheduler(world, cfg.Engine.TickInterval)
	scheduler.SetSettleRounds(cfg.Engine.SettleIterations)

	svc, err := content.NewService(world, nil, cfg.ContentServiceConfig())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "content: %v\n", err)
		os.Exit(1)
	}
	scheduler.RegisterEventHandler(svc)

	var spawnErr error
	world.RunSafe(func() {
		for _, tc := range cfg.TilemapConfigs() {
			if _, err := engine.SpawnTilemap(world, tc); err != nil {
				spawnErr = err
				return
			}
		}
	})
	if spawnErr != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "tilemap: %v\n", spawnErr)
		os.Exit(1)
	}

	services := []service.Service{svc, &service.Func{
		ID:       "scheduler",
		Requires: []string{svc.Name()},
		OnStart: func(ctx context.Context) error {
			scheduler.Start(ctx)
			return nil
		},
		OnStop: func() error {
			scheduler.Stop()
			return nil
		},
	}}
	if *statusFlag != "" {
		services = append(services, statusService(*statusFlag, world.Resource.Status, logger))
	}

	hub := service.NewHub()
	if err := registerAll(hub, services...); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "services: %v\n", err)
		os.Exit(1)
	}

	if err := hub.Start(ctx); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "services: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := hub.Stop(); err != nil {
			logger.WithError(err).Warn("service shutdown")
		}
	}()

	v := newView(screen, world)

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-frameTicker.C:
			v.draw()
		}
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.FromEnv()
	}
	return config.Load(path)
}

// registerAll adds services to the hub, stopping at the first rejection
func registerAll(hub *service.Hub, services ...service.Service) error {
	for _, svc := range services {
		if err := hub.Register(svc); err != nil {
			return fmt.Errorf("register %s: %w", svc.Name(), err)
		}
	}
	return nil
}

// statusService serves the metrics registry once the scheduler runs
func statusService(addr string, reg *status.Registry, logger logrus.FieldLogger) service.Service {
	srv := &http.Server{
		Addr:              addr,
		Handler:           status.NewHandler(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &service.Func{
		ID:       "status",
		Requires: []string{"scheduler"},
		OnStart: func(context.Context) error {
			core.Go(func() {
				logger.WithField("addr", addr).Info("status server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.WithError(err).Error("status server stopped")
				}
			})
			return nil
		},
		OnStop: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
}
