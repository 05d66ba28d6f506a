package availability

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"field-service-api/internal/models"
	"field-service-api/pkg/timeslot"
	"field-service-api/pkg/weekdays"
)

// NormalizeScheduleConfig decodes the availability payload stored on a
// worker record into a canonical WorkerScheduleConfig. Real-world payloads
// come in several shapes and this is the single place all of them are
// handled; everything past this boundary sees one canonical form.
//
// Accepted shapes:
//   - day schedules at the root or nested under "workingHours"
//   - day keys in any casing
//   - slots as {"start":"HH:MM","end":"HH:MM"} or {"startMinute":540,"endMinute":1020}
//   - a day as a bare range string like "9:00 AM - 6:00 PM", or an object
//     with an "hours" string, or an object with direct "start"/"end"
//   - overrides under "customAvailability" or "overrides"
//   - driving time under "drivingTime" or "drivingTimeMinutes"
//   - the whole payload double-encoded as a JSON string
func NormalizeScheduleConfig(raw []byte) (*models.WorkerScheduleConfig, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return &models.WorkerScheduleConfig{Weekly: models.WeeklyPattern{}}, nil
	}

	// Some clients store the payload JSON-encoded inside a JSON string.
	var asString string
	if err := json.Unmarshal([]byte(trimmed), &asString); err == nil {
		trimmed = asString
		if strings.TrimSpace(trimmed) == "" {
			return &models.WorkerScheduleConfig{Weekly: models.WeeklyPattern{}}, nil
		}
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &root); err != nil {
		return nil, &timeslot.ParseError{Input: truncate(trimmed), Reason: "schedule payload is not a JSON object"}
	}

	config := &models.WorkerScheduleConfig{
		Weekly:    models.WeeklyPattern{},
		Overrides: []models.DateOverride{},
	}

	// Day schedules live either under "workingHours" or at the root.
	daySource := root
	if nested, ok := root["workingHours"]; ok {
		if err := json.Unmarshal(nested, &daySource); err != nil {
			return nil, &timeslot.ParseError{Input: "workingHours", Reason: "expected an object"}
		}
	}

	for key, value := range daySource {
		day, ok := weekdays.Canonical(key)
		if !ok {
			continue
		}
		schedule, err := parseDaySchedule(day, value)
		if err != nil {
			return nil, err
		}
		config.Weekly[day] = schedule
	}

	overridesRaw, ok := root["customAvailability"]
	if !ok {
		overridesRaw = root["overrides"]
	}
	if overridesRaw != nil {
		overrides, err := parseOverrides(overridesRaw)
		if err != nil {
			return nil, err
		}
		config.Overrides = overrides
	}

	drivingRaw, ok := root["drivingTime"]
	if !ok {
		drivingRaw = root["drivingTimeMinutes"]
	}
	if drivingRaw != nil {
		var minutes int
		if err := json.Unmarshal(drivingRaw, &minutes); err != nil {
			return nil, &timeslot.ParseError{Input: string(drivingRaw), Reason: "driving time must be a number"}
		}
		config.DrivingTimeMinutes = &minutes
	}

	return config, nil
}

// dayScheduleJSON covers the object shapes a day schedule shows up in.
type dayScheduleJSON struct {
	Enabled *bool             `json:"enabled"`
	Slots   []json.RawMessage `json:"slots"`
	Hours   string            `json:"hours"`
	Start   json.RawMessage   `json:"start"`
	End     json.RawMessage   `json:"end"`
}

func parseDaySchedule(day string, raw json.RawMessage) (models.DaySchedule, error) {
	// Bare string: free-text range like "9:00 AM - 6:00 PM".
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		iv, err := parseHoursText(text)
		if err != nil {
			return models.DaySchedule{}, err
		}
		return models.DaySchedule{Enabled: true, Slots: []timeslot.Interval{iv}}, nil
	}

	var obj dayScheduleJSON
	if err := json.Unmarshal(raw, &obj); err != nil {
		return models.DaySchedule{}, &timeslot.ParseError{Input: day, Reason: "unrecognized day schedule shape"}
	}

	enabled := true
	if obj.Enabled != nil {
		enabled = *obj.Enabled
	}

	switch {
	case len(obj.Slots) > 0:
		slots, err := parseSlots(obj.Slots)
		if err != nil {
			return models.DaySchedule{}, err
		}
		return models.DaySchedule{Enabled: enabled, Slots: slots}, nil

	case obj.Hours != "":
		iv, err := parseHoursText(obj.Hours)
		if err != nil {
			return models.DaySchedule{}, err
		}
		return models.DaySchedule{Enabled: enabled, Slots: []timeslot.Interval{iv}}, nil

	case obj.Start != nil && obj.End != nil:
		iv, err := parseSlot(raw)
		if err != nil {
			return models.DaySchedule{}, err
		}
		return models.DaySchedule{Enabled: enabled, Slots: []timeslot.Interval{iv}}, nil
	}

	// Object with just an enabled flag (or nothing): no declared hours.
	return models.DaySchedule{Enabled: enabled, Slots: []timeslot.Interval{}}, nil
}

type overrideJSON struct {
	Date      string            `json:"date"`
	Available *bool             `json:"available"`
	Slots     []json.RawMessage `json:"slots"`
}

func parseOverrides(raw json.RawMessage) ([]models.DateOverride, error) {
	var entries []overrideJSON
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &timeslot.ParseError{Input: "overrides", Reason: "expected an array"}
	}

	overrides := make([]models.DateOverride, 0, len(entries))
	for _, entry := range entries {
		if entry.Date == "" {
			return nil, &timeslot.ParseError{Input: "overrides", Reason: "override missing date"}
		}

		// An override that lists hours without an explicit flag means available.
		available := true
		if entry.Available != nil {
			available = *entry.Available
		}

		slots, err := parseSlots(entry.Slots)
		if err != nil {
			return nil, err
		}

		overrides = append(overrides, models.DateOverride{
			Date:      entry.Date,
			Available: available,
			Slots:     slots,
		})
	}

	return overrides, nil
}

func parseSlots(raw []json.RawMessage) ([]timeslot.Interval, error) {
	slots := make([]timeslot.Interval, 0, len(raw))
	for _, r := range raw {
		iv, err := parseSlot(r)
		if err != nil {
			return nil, err
		}
		slots = append(slots, iv)
	}
	return slots, nil
}

// slotJSON covers both observed slot encodings.
type slotJSON struct {
	Start       json.RawMessage `json:"start"`
	End         json.RawMessage `json:"end"`
	StartMinute *int            `json:"startMinute"`
	EndMinute   *int            `json:"endMinute"`
}

func parseSlot(raw json.RawMessage) (timeslot.Interval, error) {
	var slot slotJSON
	if err := json.Unmarshal(raw, &slot); err != nil {
		return timeslot.Interval{}, &timeslot.ParseError{Input: truncate(string(raw)), Reason: "unrecognized slot shape"}
	}

	if slot.StartMinute != nil && slot.EndMinute != nil {
		return timeslot.NewInterval(*slot.StartMinute, *slot.EndMinute)
	}

	start, err := parseBoundary(slot.Start)
	if err != nil {
		return timeslot.Interval{}, err
	}
	end, err := parseBoundary(slot.End)
	if err != nil {
		return timeslot.Interval{}, err
	}

	return timeslot.NewInterval(start, end)
}

// parseBoundary accepts either an "HH:MM" string or a bare minute count.
func parseBoundary(raw json.RawMessage) (int, error) {
	if raw == nil {
		return 0, &timeslot.ParseError{Input: "slot", Reason: "missing start or end"}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return timeslot.ParseTime(s)
	}

	var minutes int
	if err := json.Unmarshal(raw, &minutes); err == nil {
		return minutes, nil
	}

	return 0, &timeslot.ParseError{Input: string(raw), Reason: "expected HH:MM or minutes"}
}

var hoursTextRe = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?\s*$`)

// parseHoursText parses free-text ranges like "9:00 AM - 6:00 PM" or "9 - 17".
func parseHoursText(text string) (timeslot.Interval, error) {
	m := hoursTextRe.FindStringSubmatch(text)
	if m == nil {
		return timeslot.Interval{}, &timeslot.ParseError{Input: text, Reason: "expected a time range like \"9:00 AM - 6:00 PM\""}
	}

	start := clockMinutes(m[1], m[2], m[3])
	end := clockMinutes(m[4], m[5], m[6])

	return timeslot.NewInterval(start, end)
}

func clockMinutes(hourStr, minuteStr, meridiem string) int {
	hours, _ := strconv.Atoi(hourStr)
	minutes := 0
	if minuteStr != "" {
		minutes, _ = strconv.Atoi(minuteStr)
	}

	switch strings.ToUpper(meridiem) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}

	if hours > 23 {
		hours = 23
	}
	if minutes > 59 {
		minutes = 59
	}

	return hours*60 + minutes
}

func truncate(s string) string {
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}
