package models

import (
	"field-service-api/pkg/timeslot"
)

// DateLayout is the calendar-date format used everywhere in the system.
const DateLayout = "2006-01-02"

// DaySchedule is one day of a recurring weekly pattern. When Enabled is
// false the day has zero availability regardless of Slots.
type DaySchedule struct {
	Enabled bool                `json:"enabled"`
	Slots   []timeslot.Interval `json:"slots"`
}

// WeeklyPattern maps canonical lowercase day names ("sunday".."saturday")
// to day schedules. Keys are canonicalized at the normalization boundary.
type WeeklyPattern map[string]DaySchedule

// DateOverride is a date-specific availability entry that takes precedence
// over the weekly pattern. Available=false forces zero availability for the
// date irrespective of Slots.
type DateOverride struct {
	Date      string              `json:"date"` // YYYY-MM-DD
	Available bool                `json:"available"`
	Slots     []timeslot.Interval `json:"slots,omitempty"`
}

// WorkerScheduleConfig is the decoded, normalized schedule for one worker.
type WorkerScheduleConfig struct {
	Weekly             WeeklyPattern  `json:"weekly"`
	Overrides          []DateOverride `json:"overrides"`
	DrivingTimeMinutes *int           `json:"driving_time_minutes,omitempty"`
}

// DrivingMinutes resolves the effective driving-time buffer: the per-worker
// value wins over the company default when set and non-negative.
func (c WorkerScheduleConfig) DrivingMinutes(companyDefault int) int {
	if c.DrivingTimeMinutes != nil && *c.DrivingTimeMinutes >= 0 {
		return *c.DrivingTimeMinutes
	}
	return companyDefault
}
