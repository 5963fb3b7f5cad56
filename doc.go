// Package timeline implements an interval timeline engine. A Timeline holds
// half-open [start, end) Events that never overlap, so at most one Event is
// active at any instant. Inserting an Event gives it priority over anything
// it overlaps: displaced Events are removed, and whatever part of them lies
// outside the new Event survives as freshly identified fragments.
//
// Typical usage looks like:
//   - Create a Timeline for a time axis (NewTimeline for ordered scalars,
//     NewTimeTimeline for time.Time, NewTimelineFunc for anything else)
//   - Construct Events with the matching NewEvent constructor
//   - Insert Events and inspect the displaced ones it returns
//   - Query with EventAt and EventsInRange, or check Validate
//
// A Timeline does no locking of its own. Wrap it in a Synchronized when it
// must be shared between goroutines.
//
// The cmd/timeline executable runs scripted scenarios against the engine.
package timeline
