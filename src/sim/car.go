package sim

import (
	"log/slog"
	"math"

	"scanvator/src/elev"
)

// Car is a simulated elevator. It travels at a fixed speed toward the last
// destination committed to it and stops exactly on that floor.
type Car struct {
	ID          int
	building    Building
	speed       float64
	position    float64
	destination int
	hasDest     bool
	passengers  []*Passenger
}

func NewCar(id int, building Building, speed float64) *Car {
	return &Car{ID: id, building: building, speed: speed}
}

func (c *Car) Position() float64    { return c.position }
func (c *Car) FloorHeight() float64 { return c.building.FloorHeight }

func (c *Car) DestinationFloor() (int, bool) {
	return c.destination, c.hasDest
}

func (c *Car) BoardedPassengers() []elev.PassengerView {
	views := make([]elev.PassengerView, len(c.passengers))
	for i, p := range c.passengers {
		views[i] = p
	}
	return views
}

func (c *Car) CommitDestination(floor int) {
	if !c.building.Contains(floor) {
		slog.Warn("Ignoring destination outside building", "car", c.ID, "floor", floor)
		return
	}
	if !c.hasDest || c.destination != floor {
		slog.Debug("New destination", "car", c.ID, "floor", floor)
	}
	c.destination, c.hasDest = floor, true
}

// Load is the number of passengers aboard.
func (c *Car) Load() int { return len(c.passengers) }

// StoppedAt returns the floor the car stands still on. A car between floors,
// or still travelling, is not stopped.
func (c *Car) StoppedAt() (int, bool) {
	if c.hasDest {
		if c.position == c.building.PositionOf(c.destination) {
			return c.destination, true
		}
		return 0, false
	}
	floor := c.position/c.building.FloorHeight + 1
	if floor != math.Trunc(floor) {
		return 0, false
	}
	return int(floor), true
}

// move advances the car one tick toward its destination.
func (c *Car) move() {
	if !c.hasDest {
		return
	}
	target := c.building.PositionOf(c.destination)
	switch {
	case math.Abs(target-c.position) <= c.speed:
		c.position = target
	case target > c.position:
		c.position += c.speed
	default:
		c.position -= c.speed
	}
}
