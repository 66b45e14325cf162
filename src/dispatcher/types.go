package dispatcher

import (
	"fmt"

	"scanvator/src/elev"
)

// ClaimMode controls what the claim check of each car sees within one tick.
type ClaimMode int

const (
	// ClaimSnapshot lets every car decide against the destinations the fleet had
	// when the tick started. Two idle cars may pick the same unclaimed call.
	ClaimSnapshot ClaimMode = iota
	// ClaimSequential decides the cars in fleet order, each one seeing the
	// destinations committed before it in the same tick.
	ClaimSequential
)

func (m ClaimMode) String() string {
	if m == ClaimSequential {
		return "sequential"
	}
	return "snapshot"
}

func ParseClaimMode(s string) (ClaimMode, error) {
	switch s {
	case "snapshot", "":
		return ClaimSnapshot, nil
	case "sequential":
		return ClaimSequential, nil
	}
	return ClaimSnapshot, fmt.Errorf("unknown claim mode %q", s)
}

// Fleet is a host that also hands out the cars to decide for, in a stable order.
type Fleet interface {
	elev.Host
	Cars() []elev.Car
}
