package timeslot

import "fmt"

// ParseError means a time string or schedule payload could not be interpreted.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// InvalidIntervalError means an interval with start >= end was passed in.
// Such intervals are rejected, not normalized.
type InvalidIntervalError struct {
	Start int
	End   int
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: start %d >= end %d", e.Start, e.End)
}
