package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/zeusync/impulse/internal/core/observability/log"
	"github.com/zeusync/impulse/internal/injector"
	"github.com/zeusync/impulse/internal/scenario"
	"github.com/zeusync/impulse/pkg/concurrent"
)

const usage = `usage:
  physim run -f scenario.yaml [-f more.yaml] [-level info] [-workers 0]
  physim serve -f scenario.yaml [-addr 127.0.0.1:8080] [-fps 60] [-level info]`

type files []string

func (f *files) String() string { return strings.Join(*f, ",") }

func (f *files) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "physim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch args[0] {
	case "run":
		return runScenarios(ctx, args[1:])
	case "serve":
		return serveScenario(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runScenarios(ctx context.Context, args []string) error {
	var paths files
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.Var(&paths, "f", "scenario file, repeatable")
	level := fs.String("level", "info", "log level")
	workers := fs.Int("workers", 0, "scenarios simulated at once, 0 for all")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("run: at least one -f is required")
	}

	logger, err := log.New(log.Config{Level: *level})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	results, err := concurrent.Map(ctx, paths, *workers, func(ctx context.Context, path string) (scenario.Stats, error) {
		sc, err := scenario.LoadFile(path)
		if err != nil {
			return scenario.Stats{}, err
		}
		sim, err := sc.Build(logger)
		if err != nil {
			return scenario.Stats{}, err
		}
		return sim.Run(sc.Duration, sc.Steps)
	})
	if err != nil {
		return err
	}

	for i, stats := range results {
		logger.Info("scenario finished",
			log.String("file", paths[i]),
			log.Uint64("ticks", stats.Ticks),
			log.Float64("elapsed", stats.Elapsed),
			log.Int("collisions", stats.Collisions),
			log.Int("pegs_hit", stats.PegsHit),
			log.Int("balls_caught", stats.BallsCaught),
			log.Int("balls_lost", stats.BallsLost),
			log.Int("bodies", stats.Bodies),
		)
	}
	return nil
}

func serveScenario(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	path := fs.String("f", "", "scenario file")
	addr := fs.String("addr", "127.0.0.1:8080", "listen address")
	fps := fs.Int("fps", 60, "ticks per wall-clock second")
	level := fs.String("level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" || *fps <= 0 {
		return errors.New("serve: -f is required and -fps must be positive")
	}

	sc, err := scenario.LoadFile(*path)
	if err != nil {
		return err
	}
	app, cleanup, err := injector.InitializeSimulator(sc, log.Config{Level: *level})
	if err != nil {
		return err
	}
	defer cleanup()

	if err := app.Streamer.Start(*addr); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Streamer.Stop(stopCtx); err != nil {
			app.Logger.Warn("stopping streamer", log.Error(err))
		}
	}()

	dt := sc.Duration / float64(sc.Steps)
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	for i := 0; i < sc.Steps; i++ {
		select {
		case <-ctx.Done():
			app.Logger.Info("shutting down")
			return nil
		case <-ticker.C:
			app.Simulation.Step(dt)
		}
	}

	stats := app.Simulation.Stats()
	app.Logger.Info("scenario finished, still serving",
		log.Uint64("ticks", stats.Ticks),
		log.Int("collisions", stats.Collisions),
	)
	<-ctx.Done()
	app.Logger.Info("shutting down")
	return nil
}
