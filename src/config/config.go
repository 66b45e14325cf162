package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	FloorHeight         = 50.0
	CarSpeed            = FloorHeight / 5 // position units per tick
	DefaultNumFloors    = 10
	DefaultNumElevators = 2
	DefaultTicks        = 500
	DefaultSpawnRate    = 0.1 // probability of a new passenger per tick
	DefaultTickInterval = 10 * time.Millisecond
	DefaultSeed         = 1
)

// Settings are the run-time knobs of the simulation, filled from flags in main.
type Settings struct {
	NumFloors    int
	NumElevators int
	Ticks        int
	Seed         uint64
	SpawnRate    float64
	ClaimMode    string
	TickInterval time.Duration
	LogFile      string
	Debug        bool
}

func Default() Settings {
	return Settings{
		NumFloors:    DefaultNumFloors,
		NumElevators: DefaultNumElevators,
		Ticks:        DefaultTicks,
		Seed:         DefaultSeed,
		SpawnRate:    DefaultSpawnRate,
		ClaimMode:    "snapshot",
		TickInterval: DefaultTickInterval,
	}
}

var ErrInvalidSettings = errors.New("invalid settings")

// Validate reports the first setting that the simulator cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.NumFloors < 2:
		return fmt.Errorf("%w: need at least 2 floors, got %d", ErrInvalidSettings, s.NumFloors)
	case s.NumElevators < 1:
		return fmt.Errorf("%w: need at least 1 elevator, got %d", ErrInvalidSettings, s.NumElevators)
	case s.Ticks < 0:
		return fmt.Errorf("%w: negative tick count %d", ErrInvalidSettings, s.Ticks)
	case s.SpawnRate < 0 || s.SpawnRate > 1:
		return fmt.Errorf("%w: spawn rate %.2f outside [0, 1]", ErrInvalidSettings, s.SpawnRate)
	case s.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidSettings, s.TickInterval)
	}
	return nil
}
