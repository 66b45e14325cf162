package types

// Direction is the committed travel direction of a car.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

type Behaviour int

const (
	Parked Behaviour = iota
	Moving
)

func (b Behaviour) String() string {
	if b == Moving {
		return "moving"
	}
	return "parked"
}

// Decision pairs the floor chosen for a car with the direction it commits to.
// A Parked decision carries no floor and means the host should leave the car as is.
type Decision struct {
	Floor     int
	Dir       Direction
	Behaviour Behaviour
}

// Target is the destination a fleet member is currently travelling toward.
type Target struct {
	Floor int
	Valid bool
}

// Snapshot is a read-only copy of the host state one decision is made from.
type Snapshot struct {
	Position     float64
	FloorHeight  float64
	Boarded      []int // destination floors of passengers aboard
	PendingCalls []int // floors with someone waiting, claimed or not
	Fleet        []Target
}
