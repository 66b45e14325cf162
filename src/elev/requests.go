package elev

import (
	"slices"

	"scanvator/src/types"
)

// CollectRequests merges everything the car could serve next:
//   - destinations of passengers aboard, always
//   - pending calls no car in the fleet is heading for
//
// Duplicates are kept; only the nearest floor in the travel direction is used.
func CollectRequests(snap types.Snapshot) []int {
	requests := make([]int, 0, len(snap.Boarded)+len(snap.PendingCalls))
	requests = append(requests, snap.Boarded...)
	for _, call := range snap.PendingCalls {
		if !IsClaimed(call, snap.Fleet) {
			requests = append(requests, call)
		}
	}
	return requests
}

// IsClaimed reports whether some car, the deciding one included, already targets the call's floor.
func IsClaimed(call int, fleet []types.Target) bool {
	return slices.ContainsFunc(fleet, func(t types.Target) bool {
		return t.Valid && t.Floor == call
	})
}
