package timeline

import "github.com/google/uuid"

type (
	// ID identifies an Event. Fragments and replacements always receive a
	// new ID, so two Events with the same bounds and payload are distinct
	ID uuid.UUID

	// Compare orders two instants on a time axis, returning a negative
	// number, zero, or a positive number like cmp.Compare
	Compare[T any] func(a, b T) int
)

func newID() ID {
	return ID(uuid.New())
}

// String returns the canonical UUID form of the ID
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the ID was never assigned
func (id ID) IsZero() bool {
	return id == ID(uuid.Nil)
}
