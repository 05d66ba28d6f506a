package availability

import (
	"field-service-api/internal/models"
	"field-service-api/pkg/timeslot"
)

// ComputeRemaining turns base availability plus the worker's assigned jobs
// into the remaining bookable picture for the day: busy intervals, driving
// buffers, what is left after subtracting both, aggregate totals, and the
// fit verdict for an optional candidate job.
//
// drivingMinutes is the effective per-worker buffer applied before and
// after every job. Buffers are computed per job (before the busy merge) and
// clamped to the day's outer bound across the base intervals.
//
// The engine applies no minimum-slot filter; that policy belongs to the
// caller (see FilterShortSlots).
func ComputeRemaining(base models.BaseAvailability, jobs []models.Job, drivingMinutes int, candidate *models.Candidate) (models.AvailabilityResult, error) {
	result := models.AvailabilityResult{
		BaseIntervals:      []timeslot.Interval{},
		BusyIntervals:      []timeslot.Interval{},
		DrivingIntervals:   []timeslot.Interval{},
		RemainingIntervals: []timeslot.Interval{},
	}

	// Unavailable day: nothing to compute, candidate never fits.
	if !base.Available {
		return result, nil
	}

	result.BaseIntervals = base.Intervals

	jobIntervals := make([]timeslot.Interval, 0, len(jobs))
	for _, job := range jobs {
		jobIntervals = append(jobIntervals, job.Interval())
	}

	// Jobs outside nominal hours still count as busy time; they just have
	// nothing to be subtracted from.
	busy, err := timeslot.Merge(jobIntervals)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	result.BusyIntervals = busy

	if drivingMinutes > 0 && len(busy) > 0 && len(base.Intervals) > 0 {
		driving, err := drivingBuffers(jobIntervals, base.Intervals, drivingMinutes)
		if err != nil {
			return models.AvailabilityResult{}, err
		}
		result.DrivingIntervals = driving
	}

	blocked := make([]timeslot.Interval, 0, len(busy)+len(result.DrivingIntervals))
	blocked = append(blocked, busy...)
	blocked = append(blocked, result.DrivingIntervals...)

	remaining, err := timeslot.Subtract(base.Intervals, blocked)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	result.RemainingIntervals = remaining

	result.TotalBusyMinutes = timeslot.TotalMinutes(busy)
	result.TotalDrivingMinutes = drivingTotal(result.DrivingIntervals, busy)
	result.TotalFreeMinutes = timeslot.TotalMinutes(remaining)

	if candidate != nil {
		result.IsAvailableForCandidate = candidateFits(*candidate, base, remaining)
	}

	return result, nil
}

// drivingBuffers emits a before/after buffer per job, clamped to the day's
// outer bound [dayStart, dayEnd], then merges them.
func drivingBuffers(jobIntervals, baseIntervals []timeslot.Interval, drivingMinutes int) ([]timeslot.Interval, error) {
	dayStart := baseIntervals[0].Start
	dayEnd := baseIntervals[0].End
	for _, iv := range baseIntervals[1:] {
		if iv.Start < dayStart {
			dayStart = iv.Start
		}
		if iv.End > dayEnd {
			dayEnd = iv.End
		}
	}

	buffers := make([]timeslot.Interval, 0, 2*len(jobIntervals))
	for _, job := range jobIntervals {
		beforeStart := max(job.Start-drivingMinutes, dayStart)
		beforeEnd := min(job.Start, dayEnd)
		if beforeStart < beforeEnd {
			buffers = append(buffers, timeslot.Interval{Start: beforeStart, End: beforeEnd})
		}

		afterStart := max(job.End, dayStart)
		afterEnd := min(job.End+drivingMinutes, dayEnd)
		if afterStart < afterEnd {
			buffers = append(buffers, timeslot.Interval{Start: afterStart, End: afterEnd})
		}
	}

	return timeslot.Merge(buffers)
}

// drivingTotal counts driving minutes without double-counting time that
// coincides with a job: each buffer's length minus its overlap with busy
// time, clamped to >= 0 before summing.
func drivingTotal(driving, busy []timeslot.Interval) int {
	total := 0
	for _, buffer := range driving {
		overlap := 0
		for _, b := range busy {
			overlap += buffer.OverlapMinutes(b)
		}
		minutes := buffer.Length() - overlap
		if minutes < 0 {
			minutes = 0
		}
		total += minutes
	}
	return total
}

func candidateFits(candidate models.Candidate, base models.BaseAvailability, remaining []timeslot.Interval) bool {
	// Open schedule with no declared hours: any candidate fits.
	if len(remaining) == 0 && len(base.Intervals) == 0 {
		return base.Available
	}

	end := candidate.StartMinute + candidate.DurationMinutes
	for _, iv := range remaining {
		if candidate.StartMinute >= iv.Start && end <= iv.End {
			return true
		}
	}
	return false
}

// FilterShortSlots drops remaining intervals shorter than minMinutes. This
// is the caller-side policy the engine deliberately does not apply; the
// booking views use the company's minimum bookable slot here.
func FilterShortSlots(intervals []timeslot.Interval, minMinutes int) []timeslot.Interval {
	if minMinutes <= 0 {
		return intervals
	}
	filtered := make([]timeslot.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Length() >= minMinutes {
			filtered = append(filtered, iv)
		}
	}
	return filtered
}
