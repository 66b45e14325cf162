package sim

// Building numbers its floors 1..NumFloors. Position 0 is floor 1.
type Building struct {
	NumFloors   int
	FloorHeight float64
}

func (b Building) PositionOf(floor int) float64 {
	return float64(floor-1) * b.FloorHeight
}

func (b Building) Contains(floor int) bool {
	return floor >= 1 && floor <= b.NumFloors
}
