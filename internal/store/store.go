// Package store owns the only mutable state in the system: the set of
// booked (serviceID, slotID) keys. Backends differ in where the set
// lives; all of them give the same per-key guarantee — of two concurrent
// TryClaim calls for the same key, exactly one wins.
package store

import (
	"context"
	"fmt"
)

type Store interface {
	// IsBooked is a pure membership lookup.
	IsBooked(ctx context.Context, serviceID, slotID string) (bool, error)

	// MarkBooked inserts the key. Marking an already-booked slot again
	// is a no-op, not an error.
	MarkBooked(ctx context.Context, serviceID, slotID string) error

	// TryClaim atomically checks and inserts the key. It returns true
	// when this call transitioned the slot from available to booked,
	// false when the slot was already booked. Booked is terminal.
	TryClaim(ctx context.Context, serviceID, slotID string) (bool, error)
}

// Key derives the booked-set identity for a slot.
func Key(serviceID, slotID string) string {
	return fmt.Sprintf("%s-%s", serviceID, slotID)
}
