package weekdays

import (
	"strings"
	"time"
)

// Canonical day-name convention for the whole system: lowercase English
// names, indexed 0=sunday..6=saturday. Every other layer goes through this
// package instead of checking multiple casings.

var names = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// NameFor returns the canonical key for a calendar date.
func NameFor(date time.Time) string {
	return names[int(date.Weekday())]
}

// Name returns the canonical key for a day index (0=sunday..6=saturday).
// Out-of-range indexes return "".
func Name(index int) string {
	if index < 0 || index > 6 {
		return ""
	}
	return names[index]
}

// Canonical lowercases a day key and reports whether it is a known day name.
func Canonical(key string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(key))
	for _, name := range names {
		if name == lower {
			return name, true
		}
	}
	return "", false
}

// All returns the canonical day names in week order, sunday first.
func All() []string {
	result := make([]string, len(names))
	copy(result, names[:])
	return result
}
