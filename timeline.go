package timeline

import (
	"cmp"
	"slices"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Timeline is an ordered set of Events in which no two Events overlap. It
// is not safe for concurrent use; see Synchronized
type Timeline[T, P any] struct {
	events  []Event[T, P]
	compare Compare[T]
	logger  *zap.Logger
}

// NewTimeline creates an empty Timeline over a scalar time axis
func NewTimeline[T cmp.Ordered, P any](cfg Config) *Timeline[T, P] {
	return NewTimelineFunc[T, P](cmp.Compare[T], cfg)
}

// NewTimeTimeline creates an empty Timeline over time.Time instants
func NewTimeTimeline[P any](cfg Config) *Timeline[time.Time, P] {
	return NewTimelineFunc[time.Time, P](time.Time.Compare, cfg)
}

// NewTimelineFunc creates an empty Timeline over a time axis ordered by
// compare
func NewTimelineFunc[T, P any](
	compare Compare[T], cfg Config,
) *Timeline[T, P] {
	return &Timeline[T, P]{
		events:  make([]Event[T, P], 0, cfg.capacity()),
		compare: compare,
		logger:  cfg.logger(),
	}
}

// Insert adds ev to the Timeline. Any stored Event that overlaps ev is
// removed, and the portions of it lying before or after ev are stored again
// as fragments with fresh identities. The displaced Events are returned in
// their original form, in timeline order
func (t *Timeline[T, P]) Insert(ev Event[T, P]) ([]Event[T, P], error) {
	if ev.IsZero() {
		return nil, &IntervalError{Start: ev.start, End: ev.end}
	}

	lo, hi := t.overlapping(ev.start, ev.end)
	affected := slices.Clone(t.events[lo:hi])

	var left, right []Event[T, P]
	for _, e := range affected {
		if t.compare(e.start, ev.start) < 0 {
			left = append(left, e.fragment(e.start, ev.start))
		}
		if t.compare(e.end, ev.end) > 0 {
			right = append(right, e.fragment(ev.end, e.end))
		}
	}

	repl := make([]Event[T, P], 0, len(left)+len(right)+1)
	repl = append(repl, left...)
	repl = append(repl, ev)
	repl = append(repl, right...)
	t.events = slices.Replace(t.events, lo, hi, repl...)

	t.logger.Debug("event inserted",
		zap.Stringer("event", ev),
		zap.Int("affected", len(affected)),
		zap.Int("fragments", len(left)+len(right)),
		zap.Int("size", len(t.events)),
	)
	return affected, nil
}

// EventAt returns the Event active at instant at, if any
func (t *Timeline[T, P]) EventAt(at T) (Event[T, P], bool) {
	i := sort.Search(len(t.events), func(i int) bool {
		return t.compare(t.events[i].end, at) > 0
	})
	if i < len(t.events) && t.events[i].Contains(at) {
		return t.events[i], true
	}
	return Event[T, P]{}, false
}

// EventsInRange returns every Event that overlaps [start, end), in timeline
// order. The range follows the same rule as Event construction, so an empty
// or inverted range fails with ErrInvalidInterval
func (t *Timeline[T, P]) EventsInRange(start, end T) ([]Event[T, P], error) {
	if err := checkInterval(t.compare, start, end); err != nil {
		return nil, err
	}
	lo, hi := t.overlapping(start, end)
	return slices.Clone(t.events[lo:hi]), nil
}

// Remove deletes the stored Event sharing ev's identity, reporting whether
// one was found. No other Event is affected
func (t *Timeline[T, P]) Remove(ev Event[T, P]) bool {
	if ev.IsZero() {
		return false
	}
	i := sort.Search(len(t.events), func(i int) bool {
		return t.compare(t.events[i].start, ev.start) >= 0
	})
	if i == len(t.events) || t.events[i].id != ev.id {
		return false
	}
	t.events = slices.Delete(t.events, i, i+1)
	t.logger.Debug("event removed",
		zap.Stringer("event", ev),
		zap.Int("size", len(t.events)),
	)
	return true
}

// Validate confirms that the stored Events are ordered and that no two of
// them overlap. Checking adjacent pairs is sufficient for a sorted sequence
func (t *Timeline[_, _]) Validate() bool {
	for i := 1; i < len(t.events); i++ {
		prev, curr := t.events[i-1], t.events[i]
		if prev.Compare(curr) >= 0 || prev.Overlaps(curr) {
			return false
		}
	}
	return true
}

// Events returns a copy of the stored Events in timeline order
func (t *Timeline[T, P]) Events() []Event[T, P] {
	return slices.Clone(t.events)
}

// Clear removes every Event
func (t *Timeline[_, _]) Clear() {
	clear(t.events)
	t.events = t.events[:0]
}

// Len returns the number of stored Events
func (t *Timeline[_, _]) Len() int {
	return len(t.events)
}

func (t *Timeline[_, _]) String() string {
	var sb strings.Builder
	sb.WriteString("EventTimeline:\n")
	for _, e := range t.events {
		sb.WriteString("  ")
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// overlapping locates the run of stored Events that overlap [start, end).
// At rest the Events are disjoint and sorted, so both their starts and
// their ends ascend and the run is contiguous
func (t *Timeline[T, P]) overlapping(start, end T) (int, int) {
	lo := sort.Search(len(t.events), func(i int) bool {
		return t.compare(t.events[i].end, start) > 0
	})
	hi := lo + sort.Search(len(t.events)-lo, func(i int) bool {
		return t.compare(t.events[lo+i].start, end) >= 0
	})
	return lo, hi
}
