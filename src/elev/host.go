package elev

import (
	"errors"
	"fmt"

	"scanvator/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Host is the part of the simulation the policy reads every tick.
type Host interface {
	PendingCalls() []int
	Fleet() []ElevatorView
}

type ElevatorView interface {
	// DestinationFloor returns false when the car has no destination yet.
	DestinationFloor() (int, bool)
}

type PassengerView interface {
	DestinationFloor() int
}

// Car is the elevator a Scheduler decides for. CommitDestination is the only
// way the policy acts on the host.
type Car interface {
	ElevatorView
	Position() float64
	FloorHeight() float64
	BoardedPassengers() []PassengerView
	CommitDestination(floor int)
}

var ErrInvalidFloorHeight = errors.New("floor height must be positive")

// Capture reads car and host into a Snapshot that no later host update can reach.
func Capture(car Car, host Host) (types.Snapshot, error) {
	raw := types.Snapshot{
		Position:     car.Position(),
		FloorHeight:  car.FloorHeight(),
		PendingCalls: host.PendingCalls(),
	}
	if raw.FloorHeight <= 0 {
		return types.Snapshot{}, fmt.Errorf("capture: %w, got %v", ErrInvalidFloorHeight, raw.FloorHeight)
	}
	for _, p := range car.BoardedPassengers() {
		raw.Boarded = append(raw.Boarded, p.DestinationFloor())
	}
	for _, e := range host.Fleet() {
		floor, ok := e.DestinationFloor()
		raw.Fleet = append(raw.Fleet, types.Target{Floor: floor, Valid: ok})
	}

	snap := types.Snapshot{}
	if err := deepcopy.Copy(&snap, &raw); err != nil {
		return types.Snapshot{}, fmt.Errorf("capture: copy host state: %w", err)
	}
	return snap, nil
}
