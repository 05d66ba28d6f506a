package availability

import (
	"time"

	"field-service-api/internal/models"
	"field-service-api/pkg/timeslot"
	"field-service-api/pkg/weekdays"
)

// ResolveBaseAvailability produces a worker's nominal open hours for one
// calendar date from the recurring weekly pattern and the date overrides.
//
// Precedence: an exact-date override always wins over the weekly pattern,
// and an override with Available=false is terminal. When the same date has
// several overrides the last one wins. An override (or enabled weekly day)
// with no slots yields an open schedule: available with empty intervals.
//
// The resolver never substitutes defaults; bad data errors out here and the
// fallback policy lives with the caller.
func ResolveBaseAvailability(config models.WorkerScheduleConfig, date string) (models.BaseAvailability, error) {
	parsed, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return models.BaseAvailability{}, &timeslot.ParseError{Input: date, Reason: "expected YYYY-MM-DD"}
	}

	if override, ok := overrideFor(config.Overrides, date); ok {
		if !override.Available {
			return models.BaseAvailability{Available: false, Intervals: []timeslot.Interval{}}, nil
		}
		merged, err := timeslot.Merge(override.Slots)
		if err != nil {
			return models.BaseAvailability{}, err
		}
		return models.BaseAvailability{Available: true, Intervals: merged}, nil
	}

	day, ok := config.Weekly[weekdays.NameFor(parsed)]
	if !ok || !day.Enabled {
		return models.BaseAvailability{Available: false, Intervals: []timeslot.Interval{}}, nil
	}

	merged, err := timeslot.Merge(day.Slots)
	if err != nil {
		return models.BaseAvailability{}, err
	}
	return models.BaseAvailability{Available: true, Intervals: merged}, nil
}

// overrideFor finds the override for an exact date; the last match wins.
func overrideFor(overrides []models.DateOverride, date string) (models.DateOverride, bool) {
	found := models.DateOverride{}
	matched := false
	for _, override := range overrides {
		if override.Date == date {
			found = override
			matched = true
		}
	}
	return found, matched
}
