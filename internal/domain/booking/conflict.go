package booking

import "github.com/google/uuid"

// FindConflicts returns the ids of every active booking whose slot
// overlaps the candidate. The exclude id (reserved for rescheduling) skips
// one booking from consideration. Linear in the walker's active booking
// count, which stays small in practice.
func FindConflicts(candidate TimeSlot, existing []*Booking, excludeID *uuid.UUID) []uuid.UUID {
	var conflicts []uuid.UUID
	for _, b := range existing {
		if excludeID != nil && b.ID() == *excludeID {
			continue
		}
		if !b.Status().IsActive() {
			continue
		}
		if candidate.Overlaps(b.Slot()) {
			conflicts = append(conflicts, b.ID())
		}
	}
	return conflicts
}

// HasConflict short-circuits on the first overlapping active booking.
func HasConflict(candidate TimeSlot, existing []*Booking, excludeID *uuid.UUID) bool {
	for _, b := range existing {
		if excludeID != nil && b.ID() == *excludeID {
			continue
		}
		if !b.Status().IsActive() {
			continue
		}
		if candidate.Overlaps(b.Slot()) {
			return true
		}
	}
	return false
}
