package timeslot

import (
	"fmt"
	"sort"
)

// Interval is a half-open time range [Start, End) in minutes since midnight.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewInterval builds an interval, rejecting start >= end.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if start >= end {
		return Interval{}, &InvalidIntervalError{Start: start, End: end}
	}
	return Interval{Start: start, End: end}, nil
}

// Length returns the interval length in minutes.
func (iv Interval) Length() int {
	return iv.End - iv.Start
}

// Label renders the interval as "9:00 AM - 10:30 AM" for display.
func (iv Interval) Label() string {
	return fmt.Sprintf("%s - %s", FormatTime12(iv.Start), FormatTime12(iv.End))
}

// Overlaps reports whether two half-open intervals strictly overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// OverlapMinutes returns the length of the overlap between two intervals, 0 if disjoint.
func (iv Interval) OverlapMinutes(other Interval) int {
	start := max(iv.Start, other.Start)
	end := min(iv.End, other.End)
	if end <= start {
		return 0
	}
	return end - start
}

func validate(intervals []Interval) error {
	for _, iv := range intervals {
		if iv.Start >= iv.End {
			return &InvalidIntervalError{Start: iv.Start, End: iv.End}
		}
	}
	return nil
}

// Merge sorts the intervals and coalesces them into a minimal sorted
// non-overlapping set. Touching intervals (next start == previous end)
// are merged so adjacent slivers never survive.
func Merge(intervals []Interval) ([]Interval, error) {
	if err := validate(intervals); err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return []Interval{}, nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged, nil
}

// Subtract removes every portion of base covered by any subtract interval.
// Subtrahends may partially overlap a base interval or lie entirely outside
// it; only remaining sub-intervals with positive length are emitted, in base
// order then by start time.
func Subtract(base, subtract []Interval) ([]Interval, error) {
	if err := validate(base); err != nil {
		return nil, err
	}

	blocked, err := Merge(subtract)
	if err != nil {
		return nil, err
	}

	remaining := []Interval{}
	for _, iv := range base {
		cursor := iv.Start
		for _, block := range blocked {
			if block.End <= cursor || block.Start >= iv.End {
				continue
			}
			if block.Start > cursor {
				remaining = append(remaining, Interval{Start: cursor, End: block.Start})
			}
			if block.End > cursor {
				cursor = block.End
			}
		}
		if cursor < iv.End {
			remaining = append(remaining, Interval{Start: cursor, End: iv.End})
		}
	}

	return remaining, nil
}

// IntersectsAny reports whether iv strictly overlaps any interval in the set.
func IntersectsAny(iv Interval, set []Interval) bool {
	for _, other := range set {
		if iv.Overlaps(other) {
			return true
		}
	}
	return false
}

// TotalMinutes sums the lengths of the given intervals.
func TotalMinutes(intervals []Interval) int {
	total := 0
	for _, iv := range intervals {
		total += iv.Length()
	}
	return total
}
