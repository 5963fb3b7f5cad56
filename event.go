package timeline

import (
	"cmp"
	"fmt"
	"time"
)

// Event is an immutable half-open interval [start, end) carrying an opaque
// payload. Events are values: copies handed out by a Timeline never alias
// its storage
type Event[T, P any] struct {
	start   T
	end     T
	payload P
	id      ID
	compare Compare[T]
}

// NewEvent creates an Event on a scalar time axis
func NewEvent[T cmp.Ordered, P any](
	start, end T, payload P,
) (Event[T, P], error) {
	return NewEventFunc(cmp.Compare[T], start, end, payload)
}

// NewTimeEvent creates an Event bounded by two instants
func NewTimeEvent[P any](
	start, end time.Time, payload P,
) (Event[time.Time, P], error) {
	return NewEventFunc(time.Time.Compare, start, end, payload)
}

// NewEventFunc creates an Event on a time axis ordered by compare. It fails
// with ErrInvalidInterval unless start is strictly before end
func NewEventFunc[T, P any](
	compare Compare[T], start, end T, payload P,
) (Event[T, P], error) {
	if err := checkInterval(compare, start, end); err != nil {
		return Event[T, P]{}, err
	}
	return Event[T, P]{
		start:   start,
		end:     end,
		payload: payload,
		id:      newID(),
		compare: compare,
	}, nil
}

// Start returns the inclusive lower bound
func (e Event[T, _]) Start() T {
	return e.start
}

// End returns the exclusive upper bound
func (e Event[T, _]) End() T {
	return e.end
}

// Payload returns the data carried by the Event
func (e Event[_, P]) Payload() P {
	return e.payload
}

// ID returns the Event's identity
func (e Event[_, _]) ID() ID {
	return e.id
}

// IsZero reports whether the Event was never constructed
func (e Event[_, _]) IsZero() bool {
	return e.compare == nil
}

// Equal compares identities. Bounds and payload are not considered
func (e Event[T, P]) Equal(other Event[T, P]) bool {
	return e.id == other.id
}

// Overlaps reports whether the two intervals intersect under half-open
// semantics. Touching intervals such as [0,10) and [10,20) do not overlap
func (e Event[T, P]) Overlaps(other Event[T, P]) bool {
	if e.IsZero() || other.IsZero() {
		return false
	}
	return e.compare(e.start, other.end) < 0 &&
		e.compare(other.start, e.end) < 0
}

// Contains reports whether the instant t falls within [start, end)
func (e Event[T, _]) Contains(t T) bool {
	if e.IsZero() {
		return false
	}
	return e.compare(e.start, t) <= 0 && e.compare(t, e.end) < 0
}

// Compare orders Events by start, then by end
func (e Event[T, P]) Compare(other Event[T, P]) int {
	compare := e.compare
	if compare == nil {
		compare = other.compare
	}
	if compare == nil {
		return 0
	}
	if c := compare(e.start, other.start); c != 0 {
		return c
	}
	return compare(e.end, other.end)
}

func (e Event[T, P]) String() string {
	return fmt.Sprintf("Event[%v - %v: %v]", e.start, e.end, e.payload)
}

// fragment carves [start, end) out of e, keeping its payload and time axis
// but assigning a new identity
func (e Event[T, P]) fragment(start, end T) Event[T, P] {
	res, err := NewEventFunc(e.compare, start, end, e.payload)
	if err != nil {
		panic(fmt.Errorf("fragment of %s: %w", e, err))
	}
	return res
}
