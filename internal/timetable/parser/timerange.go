package parser

import (
	"strconv"
	"strings"
)

// RangeLabel joins two clock tokens into the display form "start–end"
// (en dash). The label is set once at parse time and never re-derived.
func RangeLabel(start, end string) string {
	return start + "–" + end
}

// DurationLabel computes the minutes between two "H:MM"/"HH:MM" clock tokens
// and renders them as "<minutes>min". A negative span is treated as crossing
// midnight (+24h). Any malformed token yields "" — a bad duration must never
// abort block construction.
func DurationLabel(start, end string) string {
	sh, sm, ok := splitClock(start)
	if !ok {
		return ""
	}
	eh, em, ok := splitClock(end)
	if !ok {
		return ""
	}

	mins := (eh*60 + em) - (sh*60 + sm)
	if mins < 0 {
		mins += 24 * 60
	}
	return strconv.Itoa(mins) + "min"
}

func splitClock(token string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
