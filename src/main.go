package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"scanvator/src/config"
	"scanvator/src/sim"
	"scanvator/src/timer"
	"scanvator/src/utils"
)

func main() {
	settings := config.Default()
	flag.IntVar(&settings.NumFloors, "floors", settings.NumFloors, "Number of floors in the building")
	flag.IntVar(&settings.NumElevators, "elevators", settings.NumElevators, "Number of elevators")
	flag.IntVar(&settings.Ticks, "ticks", settings.Ticks, "Number of simulation ticks to run")
	flag.Uint64Var(&settings.Seed, "seed", settings.Seed, "Seed for passenger spawning")
	flag.Float64Var(&settings.SpawnRate, "spawn", settings.SpawnRate, "Probability of a new passenger per tick")
	flag.StringVar(&settings.ClaimMode, "mode", settings.ClaimMode, "Claim check within a tick: snapshot or sequential")
	flag.DurationVar(&settings.TickInterval, "interval", settings.TickInterval, "Wall time between ticks")
	flag.StringVar(&settings.LogFile, "log", "", "Also write the log to this file")
	flag.BoolVar(&settings.Debug, "debug", false, "Log every decision")
	flag.Parse()

	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}
	closeLog, err := utils.InitLogger(settings.LogFile, level)
	if err != nil {
		slog.Error("Logger setup failed", "err", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(settings); err != nil {
		slog.Error("Simulation failed", "err", err)
		closeLog()
		os.Exit(1)
	}
}

func run(settings config.Settings) error {
	simulator, err := sim.New(settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tickCh := make(chan struct{})
	clockAction := make(chan timer.TimerAction)
	go timer.Clock(ctx, settings.TickInterval, tickCh, clockAction)
	clockAction <- timer.Start

	for simulator.Tick() < settings.Ticks {
		select {
		case <-ctx.Done():
			slog.Info("Interrupted", "tick", simulator.Tick())
			report(simulator)
			return nil
		case <-tickCh:
			decisions, err := simulator.Step(ctx)
			if err != nil {
				return err
			}
			status := make([]string, len(decisions))
			for i, d := range decisions {
				status[i] = utils.FormatDecision(d)
			}
			slog.Debug("Tick", "tick", simulator.Tick(), "waiting", simulator.Waiting(), "cars", strings.Join(status, " "))
		}
	}
	report(simulator)
	return nil
}

func report(simulator *sim.Simulator) {
	stats := simulator.Stats()
	slog.Info("Simulation finished",
		"ticks", simulator.Tick(),
		"spawned", stats.Spawned,
		"delivered", stats.Delivered,
		"waiting", simulator.Waiting(),
		"avgWaitOutside", stats.AvgWaitOutside(),
		"avgWaitInside", stats.AvgWaitInside())
}
