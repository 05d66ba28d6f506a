package models

import (
	"field-service-api/pkg/timeslot"
)

// Candidate is a hypothetical job (start + duration) tested for fit against
// a worker's remaining availability.
type Candidate struct {
	StartMinute     int `json:"start_minute"`
	DurationMinutes int `json:"duration_minutes"`
}

// BaseAvailability is a worker's nominal open hours for one date, before
// subtracting assigned jobs or driving buffers. Available=true with empty
// Intervals means an open schedule: the worker declared no explicit hours
// but is not off either.
type BaseAvailability struct {
	Available bool                `json:"available"`
	Intervals []timeslot.Interval `json:"intervals"`
}

// AvailabilityResult is the fully derived availability picture for one
// (worker, date) pair. Never persisted; recomputed on every query.
type AvailabilityResult struct {
	BaseIntervals      []timeslot.Interval `json:"base_intervals"`
	BusyIntervals      []timeslot.Interval `json:"busy_intervals"`
	DrivingIntervals   []timeslot.Interval `json:"driving_intervals"`
	RemainingIntervals []timeslot.Interval `json:"remaining_intervals"`

	TotalFreeMinutes    int `json:"total_free_minutes"`
	TotalBusyMinutes    int `json:"total_busy_minutes"`
	TotalDrivingMinutes int `json:"total_driving_minutes"`

	IsAvailableForCandidate bool `json:"is_available_for_candidate"`
}
