package sim

import "github.com/google/uuid"

type Passenger struct {
	ID          uuid.UUID
	Floor       int
	Destination int
	SpawnTick   int
	BoardTick   int
}

func NewPassenger(floor, destination, tick int) *Passenger {
	return &Passenger{
		ID:          uuid.New(),
		Floor:       floor,
		Destination: destination,
		SpawnTick:   tick,
		BoardTick:   -1,
	}
}

func (p *Passenger) DestinationFloor() int { return p.Destination }
