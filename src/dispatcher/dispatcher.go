package dispatcher

import (
	"context"
	"fmt"
	"log/slog"

	"scanvator/src/elev"
	"scanvator/src/types"
)

// Dispatcher runs one Scheduler per car and drives them once per tick.
type Dispatcher struct {
	mode       ClaimMode
	schedulers []*elev.Scheduler
}

func New(mode ClaimMode, numCars int) *Dispatcher {
	d := &Dispatcher{mode: mode}
	for id := range numCars {
		d.schedulers = append(d.schedulers, elev.NewScheduler(id))
	}
	slog.Debug("Dispatcher initialized", "mode", mode, "cars", numCars)
	return d
}

func (d *Dispatcher) Mode() ClaimMode { return d.mode }

// Scheduler returns the scheduler of car id.
func (d *Dispatcher) Scheduler(id int) *elev.Scheduler {
	return d.schedulers[id]
}

// Tick decides for every car in fleet and commits the resulting destinations.
// The returned decisions are indexed like fleet.Cars().
func (d *Dispatcher) Tick(ctx context.Context, fleet Fleet) ([]types.Decision, error) {
	cars := fleet.Cars()
	if len(cars) != len(d.schedulers) {
		return nil, fmt.Errorf("tick: fleet has %d cars, dispatcher has %d schedulers", len(cars), len(d.schedulers))
	}
	if d.mode == ClaimSequential {
		return d.tickSequential(ctx, fleet, cars)
	}
	return d.tickSnapshot(ctx, fleet, cars)
}

func (d *Dispatcher) tickSequential(ctx context.Context, fleet Fleet, cars []elev.Car) ([]types.Decision, error) {
	decisions := make([]types.Decision, len(cars))
	for i, car := range cars {
		decision, err := d.schedulers[i].Step(ctx, car, fleet)
		if err != nil {
			return decisions, fmt.Errorf("tick: %w", err)
		}
		decisions[i] = decision
	}
	return decisions, nil
}

// tickSnapshot captures all cars before any of them commits.
func (d *Dispatcher) tickSnapshot(ctx context.Context, fleet Fleet, cars []elev.Car) ([]types.Decision, error) {
	snaps := make([]types.Snapshot, len(cars))
	for i, car := range cars {
		snap, err := elev.Capture(car, fleet)
		if err != nil {
			return nil, fmt.Errorf("tick: car %d: %w", i, err)
		}
		snaps[i] = snap
	}

	decisions := make([]types.Decision, len(cars))
	for i, snap := range snaps {
		decision, err := d.schedulers[i].Decide(ctx, snap)
		if err != nil {
			return decisions, fmt.Errorf("tick: %w", err)
		}
		decisions[i] = decision
	}
	for i, decision := range decisions {
		if decision.Behaviour == types.Moving {
			cars[i].CommitDestination(decision.Floor)
		}
	}
	return decisions, nil
}
