package timeslot

import (
	"fmt"
	"regexp"
	"strconv"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight (0..1439).
type TimeOfDay = int

const MinutesPerDay = 1440

var timeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTime converts "HH:MM" (or "H:MM") into minutes since midnight.
// Hours are clamped to 0-23 and minutes to 0-59.
func ParseTime(s string) (TimeOfDay, error) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, &ParseError{Input: s, Reason: "expected HH:MM"}
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "bad hours"}
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "bad minutes"}
	}

	if hours > 23 {
		hours = 23
	}
	if minutes > 59 {
		minutes = 59
	}

	return hours*60 + minutes, nil
}

// FormatTime24 renders minutes since midnight as zero-padded "HH:MM".
func FormatTime24(t TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// FormatTime12 renders minutes since midnight as "H:MM AM/PM".
// Midnight is 12:00 AM, noon is 12:00 PM.
func FormatTime12(t TimeOfDay) string {
	hours := t / 60
	minutes := t % 60

	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}

	display := hours % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minutes, suffix)
}
