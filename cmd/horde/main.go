package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/horde/internal/config"
	"github.com/zeusync/horde/internal/core/observability/log"
	"github.com/zeusync/horde/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	frames := flag.Uint64("frames", 0, "stop after this many frames (0 runs until interrupted)")
	flag.Parse()

	if err := run(*configPath, *frames); err != nil {
		fmt.Fprintln(os.Stderr, "horde:", err)
		os.Exit(1)
	}
}

func run(configPath string, frames uint64) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	logger := app.Logger
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if addr := cfg.Spectator.Addr; addr != "" {
		srv := &http.Server{Addr: addr, Handler: app.Spectator.Handler()}
		g.Go(func() error {
			logger.Info("spectator listening", log.String("addr", addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer stop()
		frameTime := cfg.World.FrameTime()
		ticker := time.NewTicker(time.Duration(frameTime * float64(time.Second)))
		defer ticker.Stop()

		w := app.World
		for frames == 0 || w.Frame() < frames {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			if err := w.Step(ctx, frameTime); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			if err := app.Spectator.Publish(w.Snapshot()); err != nil {
				logger.Warn("publish snapshot", log.Error(err))
			}
		}
		s := w.Snapshot()
		logger.Info("simulation finished",
			log.Uint64("frames", s.Frame),
			log.Int("boy_balls", s.Boy.Balls),
			log.Int("balls_left", len(s.Balls)),
		)
		return nil
	})

	return g.Wait()
}
