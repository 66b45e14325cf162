// Directional (SCAN) scheduling for a single car.
package elev

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"scanvator/src/types"

	"github.com/looplab/fsm"
)

// Scheduler decides for one car. Its direction is the only state kept between decisions.
type Scheduler struct {
	CarID int
	dir   *fsm.FSM
}

func NewScheduler(carID int) *Scheduler {
	return &Scheduler{CarID: carID, dir: newDirectionFSM(carID)}
}

func (s *Scheduler) Direction() types.Direction {
	return stateDirection[s.dir.Current()]
}

// Reset returns the car to idle. Resetting an idle car does nothing.
func (s *Scheduler) Reset(ctx context.Context) error {
	if !s.dir.Can(eventReset) {
		return nil
	}
	if err := s.dir.Event(ctx, eventReset); err != nil {
		return fmt.Errorf("car %d: reset direction: %w", s.CarID, err)
	}
	return nil
}

// Decide picks the next destination from snap and commits to the resulting direction.
func (s *Scheduler) Decide(ctx context.Context, snap types.Snapshot) (types.Decision, error) {
	atFloor := CurrentFloor(snap.Position, snap.FloorHeight)
	requests := CollectRequests(snap)
	decision := ChooseDestination(s.Direction(), atFloor, requests)

	if err := s.setDirection(ctx, decision.Dir); err != nil {
		return types.Decision{Floor: -1, Dir: s.Direction(), Behaviour: types.Parked}, err
	}
	slog.Debug("Decision",
		"car", s.CarID,
		"atFloor", atFloor,
		"requests", requests,
		"floor", decision.Floor,
		"dir", decision.Dir,
		"behaviour", decision.Behaviour)
	return decision, nil
}

// Step captures the host state, decides, and commits the destination to the car
// unless the decision is to stay parked.
func (s *Scheduler) Step(ctx context.Context, car Car, host Host) (types.Decision, error) {
	snap, err := Capture(car, host)
	if err != nil {
		return types.Decision{Floor: -1, Dir: s.Direction(), Behaviour: types.Parked}, fmt.Errorf("car %d: %w", s.CarID, err)
	}
	decision, err := s.Decide(ctx, snap)
	if err != nil {
		return decision, err
	}
	if decision.Behaviour == types.Moving {
		car.CommitDestination(decision.Floor)
	}
	return decision, nil
}

func (s *Scheduler) setDirection(ctx context.Context, dir types.Direction) error {
	current := s.Direction()
	if dir == current {
		return nil
	}
	if err := s.dir.Event(ctx, transitionEvent(current, dir)); err != nil {
		return fmt.Errorf("car %d: direction %s -> %s: %w", s.CarID, current, dir, err)
	}
	return nil
}

// CurrentFloor derives the floor from the car's position, which the host keeps
// valid while the car is between floors. The result is fractional in transit.
func CurrentFloor(position, floorHeight float64) float64 {
	return position/floorHeight + 1
}

// FilterGreaterOrEqual keeps the floors at or above threshold.
func FilterGreaterOrEqual(floors []int, threshold float64) []int {
	var result []int
	for _, floor := range floors {
		if float64(floor) >= threshold {
			result = append(result, floor)
		}
	}
	return result
}

// FilterLessOrEqual keeps the floors at or below threshold.
func FilterLessOrEqual(floors []int, threshold float64) []int {
	var result []int
	for _, floor := range floors {
		if float64(floor) <= threshold {
			result = append(result, floor)
		}
	}
	return result
}

// ChooseDestination is the SCAN rule.
//  1. Idle: go up if anything is at or above the car, otherwise down.
//  2. Moving: keep the direction while requests remain ahead, otherwise reverse.
//  3. Take the nearest request in the chosen direction.
//
// Without any request the car stays parked and keeps its direction.
func ChooseDestination(dir types.Direction, atFloor float64, requests []int) types.Decision {
	upper := FilterGreaterOrEqual(requests, atFloor)
	lower := FilterLessOrEqual(requests, atFloor)

	var candidates []int
	next := dir
	switch dir {
	case types.DirUp:
		candidates = upper
		if len(candidates) == 0 {
			candidates, next = lower, types.DirDown
		}
	case types.DirDown:
		candidates = lower
		if len(candidates) == 0 {
			candidates, next = upper, types.DirUp
		}
	default:
		if len(upper) > 0 {
			candidates, next = upper, types.DirUp
		} else {
			candidates, next = lower, types.DirDown
		}
	}

	if len(candidates) == 0 {
		return types.Decision{Floor: -1, Dir: dir, Behaviour: types.Parked}
	}

	slices.Sort(candidates)
	if next == types.DirDown {
		slices.Reverse(candidates)
	}
	return types.Decision{Floor: candidates[0], Dir: next, Behaviour: types.Moving}
}
