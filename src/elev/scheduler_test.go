package elev

import (
	"context"
	"testing"

	"scanvator/src/types"
)

const testFloorHeight = 10.0

// positionOf places a car exactly at floor.
func positionOf(floor int) float64 {
	return float64(floor-1) * testFloorHeight
}

func snapshotAt(floor int, boarded []int, calls []int) types.Snapshot {
	return types.Snapshot{
		Position:     positionOf(floor),
		FloorHeight:  testFloorHeight,
		Boarded:      boarded,
		PendingCalls: calls,
	}
}

// schedulerHeading drives a fresh scheduler into dir.
func schedulerHeading(t *testing.T, dir types.Direction) *Scheduler {
	t.Helper()
	s := NewScheduler(0)
	if dir == types.DirNone {
		return s
	}
	if err := s.setDirection(context.Background(), dir); err != nil {
		t.Fatalf("setDirection(%s): %v", dir, err)
	}
	return s
}

func TestCurrentFloor(t *testing.T) {
	if got := CurrentFloor(0, testFloorHeight); got != 1 {
		t.Errorf("position 0 should be floor 1, got %v", got)
	}
	if got := CurrentFloor(45, testFloorHeight); got != 5.5 {
		t.Errorf("position 45 should be floor 5.5, got %v", got)
	}
}

func TestFiltersAreInclusive(t *testing.T) {
	floors := []int{2, 5, 8}
	if got := FilterGreaterOrEqual(floors, 5); len(got) != 2 || got[0] != 5 || got[1] != 8 {
		t.Errorf("FilterGreaterOrEqual = %v, want [5 8]", got)
	}
	if got := FilterLessOrEqual(floors, 5); len(got) != 2 || got[0] != 2 || got[1] != 5 {
		t.Errorf("FilterLessOrEqual = %v, want [2 5]", got)
	}
	if got := FilterGreaterOrEqual(floors, 5.5); len(got) != 1 || got[0] != 8 {
		t.Errorf("FilterGreaterOrEqual between floors = %v, want [8]", got)
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name       string
		dir        types.Direction
		requests   []int
		wantFloor  int
		wantDir    types.Direction
		wantParked bool
	}{
		{name: "A idle prefers up", dir: types.DirNone, requests: []int{7, 3, 2}, wantFloor: 7, wantDir: types.DirUp},
		{name: "B up reverses", dir: types.DirUp, requests: []int{2}, wantFloor: 2, wantDir: types.DirDown},
		{name: "C down takes current floor", dir: types.DirDown, requests: []int{5, 8}, wantFloor: 5, wantDir: types.DirDown},
		{name: "D nothing to do", dir: types.DirUp, requests: nil, wantDir: types.DirUp, wantParked: true},
		{name: "D idle nothing to do", dir: types.DirNone, requests: nil, wantDir: types.DirNone, wantParked: true},
		{name: "idle goes down when nothing above", dir: types.DirNone, requests: []int{1, 3}, wantFloor: 3, wantDir: types.DirDown},
		{name: "idle up even if more below", dir: types.DirNone, requests: []int{1, 2, 3, 9}, wantFloor: 9, wantDir: types.DirUp},
		{name: "down reverses", dir: types.DirDown, requests: []int{9, 6}, wantFloor: 6, wantDir: types.DirUp},
		{name: "up takes nearest above", dir: types.DirUp, requests: []int{9, 6, 2}, wantFloor: 6, wantDir: types.DirUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schedulerHeading(t, tt.dir)
			got, err := s.Decide(context.Background(), snapshotAt(5, tt.requests, nil))
			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if tt.wantParked {
				if got.Behaviour != types.Parked {
					t.Errorf("expected parked, got %+v", got)
				}
			} else if got.Behaviour != types.Moving || got.Floor != tt.wantFloor {
				t.Errorf("expected move to %d, got %+v", tt.wantFloor, got)
			}
			if got.Dir != tt.wantDir || s.Direction() != tt.wantDir {
				t.Errorf("direction: decision %s, scheduler %s, want %s", got.Dir, s.Direction(), tt.wantDir)
			}
		})
	}
}

func TestNearestInDirection(t *testing.T) {
	requests := []int{1, 3, 4, 6, 7, 10, 4, 6}
	for at := 1; at <= 10; at++ {
		up := ChooseDestination(types.DirUp, float64(at), requests)
		if lo, ok := minAtOrAbove(requests, at); ok && (up.Floor != lo || up.Dir != types.DirUp) {
			t.Errorf("at %d going up: got %+v, want floor %d", at, up, lo)
		}
		down := ChooseDestination(types.DirDown, float64(at), requests)
		if hi, ok := maxAtOrBelow(requests, at); ok && (down.Floor != hi || down.Dir != types.DirDown) {
			t.Errorf("at %d going down: got %+v, want floor %d", at, down, hi)
		}
	}
}

func minAtOrAbove(floors []int, at int) (int, bool) {
	best, found := 0, false
	for _, f := range floors {
		if f >= at && (!found || f < best) {
			best, found = f, true
		}
	}
	return best, found
}

func maxAtOrBelow(floors []int, at int) (int, bool) {
	best, found := 0, false
	for _, f := range floors {
		if f <= at && (!found || f > best) {
			best, found = f, true
		}
	}
	return best, found
}

func TestRepeatedDecisionIsStable(t *testing.T) {
	s := NewScheduler(0)
	snap := snapshotAt(3, []int{6}, []int{1, 8})
	// Car is halfway to its destination and still heading there.
	snap.Position += testFloorHeight / 2

	first, err := s.Decide(context.Background(), snap)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		again, err := s.Decide(context.Background(), snap)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("decision changed from %+v to %+v", first, again)
		}
	}
	if first.Floor != 6 || s.Direction() != types.DirUp {
		t.Errorf("expected up to 6, got %+v dir %s", first, s.Direction())
	}
}

func TestBoardedDestinationAlwaysServed(t *testing.T) {
	// Another car already heads for 2, so only the boarded passenger's floor remains.
	snap := snapshotAt(5, []int{2}, []int{2})
	snap.Fleet = []types.Target{{Floor: 2, Valid: true}}

	s := schedulerHeading(t, types.DirUp)
	got, err := s.Decide(context.Background(), snap)
	if err != nil {
		t.Fatal(err)
	}
	if got.Floor != 2 || got.Dir != types.DirDown {
		t.Errorf("boarded destination not served: %+v", got)
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	ctx := context.Background()
	s := schedulerHeading(t, types.DirDown)
	if err := s.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Direction() != types.DirNone {
		t.Errorf("expected none after reset, got %s", s.Direction())
	}
	if err := s.Reset(ctx); err != nil {
		t.Errorf("reset of idle car should be a no-op, got %v", err)
	}
}

func TestIdleCannotReverse(t *testing.T) {
	s := schedulerHeading(t, types.DirUp)
	if err := s.setDirection(context.Background(), types.DirNone); err != nil {
		t.Fatalf("reset through setDirection: %v", err)
	}
	// Idle cannot reverse.
	if s.dir.Can(eventReverse) {
		t.Error("idle car should not accept reverse")
	}
}
