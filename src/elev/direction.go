package elev

import (
	"context"
	"log/slog"

	"scanvator/src/types"

	"github.com/looplab/fsm"
)

const (
	stateIdle = "idle"
	stateUp   = "moving_up"
	stateDown = "moving_down"

	eventDepartUp   = "depart_up"
	eventDepartDown = "depart_down"
	eventReverse    = "reverse"
	eventReset      = "reset"
)

var stateDirection = map[string]types.Direction{
	stateIdle: types.DirNone,
	stateUp:   types.DirUp,
	stateDown: types.DirDown,
}

// newDirectionFSM only allows leaving idle once; after that the car flips
// between up and down until the host resets it.
func newDirectionFSM(carID int) *fsm.FSM {
	return fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: eventDepartUp, Src: []string{stateIdle}, Dst: stateUp},
			{Name: eventDepartDown, Src: []string{stateIdle}, Dst: stateDown},
			{Name: eventReverse, Src: []string{stateUp}, Dst: stateDown},
			{Name: eventReverse, Src: []string{stateDown}, Dst: stateUp},
			{Name: eventReset, Src: []string{stateUp, stateDown}, Dst: stateIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				slog.Debug("Direction changed", "car", carID, "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
}

// transitionEvent names the event taking the machine from one direction to another.
func transitionEvent(from, to types.Direction) string {
	switch {
	case to == types.DirNone:
		return eventReset
	case from == types.DirNone && to == types.DirUp:
		return eventDepartUp
	case from == types.DirNone && to == types.DirDown:
		return eventDepartDown
	default:
		return eventReverse
	}
}
