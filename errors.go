package timeline

import (
	"errors"
	"fmt"
)

// IntervalError reports the bounds that failed interval validation
type IntervalError struct {
	Start any
	End   any
}

// ErrInvalidInterval is returned when an interval's start is not strictly
// before its end
var ErrInvalidInterval = errors.New("start must be before end")

func (e *IntervalError) Error() string {
	return fmt.Sprintf(
		"invalid interval [%v, %v): %s", e.Start, e.End, ErrInvalidInterval,
	)
}

func (e *IntervalError) Unwrap() error {
	return ErrInvalidInterval
}

func checkInterval[T any](compare Compare[T], start, end T) error {
	if compare(start, end) >= 0 {
		return &IntervalError{Start: start, End: end}
	}
	return nil
}
