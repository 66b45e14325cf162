// Package sim is a small host for the dispatch policy: a building, a fleet of
// cars and passengers that appear on random floors.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"scanvator/src/config"
	"scanvator/src/dispatcher"
	"scanvator/src/elev"
	"scanvator/src/types"
)

type Simulator struct {
	building   Building
	cars       []*Car
	waiting    []*Passenger // in arrival order, one request per passenger
	dispatcher *dispatcher.Dispatcher
	rng        *rand.Rand
	spawnRate  float64
	tick       int
	stats      Stats
}

func New(settings config.Settings) (*Simulator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	mode, err := dispatcher.ParseClaimMode(settings.ClaimMode)
	if err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}

	s := &Simulator{
		building:   Building{NumFloors: settings.NumFloors, FloorHeight: config.FloorHeight},
		dispatcher: dispatcher.New(mode, settings.NumElevators),
		rng:        rand.New(rand.NewPCG(settings.Seed, settings.Seed)),
		spawnRate:  settings.SpawnRate,
	}
	for id := range settings.NumElevators {
		s.cars = append(s.cars, NewCar(id, s.building, config.CarSpeed))
	}
	slog.Info("Simulator initialized",
		"floors", settings.NumFloors,
		"elevators", settings.NumElevators,
		"mode", mode,
		"seed", settings.Seed)
	return s, nil
}

func (s *Simulator) PendingCalls() []int {
	calls := make([]int, len(s.waiting))
	for i, p := range s.waiting {
		calls[i] = p.Floor
	}
	return calls
}

func (s *Simulator) Fleet() []elev.ElevatorView {
	views := make([]elev.ElevatorView, len(s.cars))
	for i, c := range s.cars {
		views[i] = c
	}
	return views
}

func (s *Simulator) Cars() []elev.Car {
	cars := make([]elev.Car, len(s.cars))
	for i, c := range s.cars {
		cars[i] = c
	}
	return cars
}

func (s *Simulator) Car(id int) *Car    { return s.cars[id] }
func (s *Simulator) Tick() int          { return s.tick }
func (s *Simulator) Stats() Stats       { return s.stats }
func (s *Simulator) Waiting() int       { return len(s.waiting) }
func (s *Simulator) Building() Building { return s.building }

// Spawn adds a passenger waiting at floor for destination.
func (s *Simulator) Spawn(floor, destination int) (*Passenger, error) {
	if !s.building.Contains(floor) || !s.building.Contains(destination) || floor == destination {
		return nil, fmt.Errorf("spawn: invalid trip %d -> %d in %d floors", floor, destination, s.building.NumFloors)
	}
	p := NewPassenger(floor, destination, s.tick)
	s.waiting = append(s.waiting, p)
	s.stats.Spawned++
	slog.Debug("Passenger waiting", "id", p.ID, "floor", floor, "destination", destination)
	return p, nil
}

func (s *Simulator) spawnRandom() error {
	if s.rng.Float64() >= s.spawnRate {
		return nil
	}
	floor := s.rng.IntN(s.building.NumFloors) + 1
	destination := s.rng.IntN(s.building.NumFloors-1) + 1
	if destination >= floor {
		destination++
	}
	_, err := s.Spawn(floor, destination)
	return err
}

// Step advances the simulation by one tick: spawn, decide, move, then let
// passengers leave and enter cars that stand on a floor.
func (s *Simulator) Step(ctx context.Context) ([]types.Decision, error) {
	if err := s.spawnRandom(); err != nil {
		return nil, err
	}
	decisions, err := s.dispatcher.Tick(ctx, s)
	if err != nil {
		return decisions, fmt.Errorf("step %d: %w", s.tick, err)
	}
	for _, c := range s.cars {
		c.move()
		if floor, ok := c.StoppedAt(); ok {
			s.alight(c, floor)
			s.board(c, floor)
		}
	}
	s.tick++
	return decisions, nil
}

// Run steps the simulation ticks times or until ctx is done.
func (s *Simulator) Run(ctx context.Context, ticks int) error {
	for range ticks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) alight(c *Car, floor int) {
	kept := c.passengers[:0]
	for _, p := range c.passengers {
		if p.Destination != floor {
			kept = append(kept, p)
			continue
		}
		s.stats.Delivered++
		s.stats.TotalWaitOutside += p.BoardTick - p.SpawnTick
		s.stats.TotalWaitInside += s.tick - p.BoardTick
		slog.Debug("Passenger delivered", "id", p.ID, "car", c.ID, "floor", floor)
	}
	c.passengers = kept
}

func (s *Simulator) board(c *Car, floor int) {
	kept := s.waiting[:0]
	for _, p := range s.waiting {
		if p.Floor != floor {
			kept = append(kept, p)
			continue
		}
		p.BoardTick = s.tick
		c.passengers = append(c.passengers, p)
		slog.Debug("Passenger boarded", "id", p.ID, "car", c.ID, "floor", floor)
	}
	s.waiting = kept
}
