package parser

import (
	"regexp"
	"strings"
)

var (
	bulletStartRe   = regexp.MustCompile(`(?m)^\s*\*\s+`)
	timeRangeHintRe = regexp.MustCompile(`\d{2}:\d{2}[-–]\d{2}:\d{2}`)
)

// timetablePhrases is a deliberately narrow, literal allow-list — not an
// intent classifier. It keeps quiz questions that happen to mention a time
// range from being rerouted into the timetable view.
var timetablePhrases = []string{
	"show timetable",
	"show my timetable",
	"show schedule",
	"show time",
}

// LooksLikeTimetable reports whether an agent reply is timetable-ish: a pipe
// character, a line opening with "* ", or a two-digit time range anywhere.
// Any one signal suffices. This is a low-precision, high-recall gate — false
// positives just flow through the cascade and end up as an unparsed fallback.
func LooksLikeTimetable(reply string) bool {
	if strings.Contains(reply, "|") {
		return true
	}
	if bulletStartRe.MatchString(reply) {
		return true
	}
	return timeRangeHintRe.MatchString(reply)
}

// UserRequestedTimetable reports whether the user's own message explicitly
// asked to see the timetable.
func UserRequestedTimetable(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range timetablePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ShouldRouteToTimetable combines both gates: the reply must look like
// timetable data AND the user must have asked for it.
func ShouldRouteToTimetable(reply, userMessage string) bool {
	return LooksLikeTimetable(reply) && UserRequestedTimetable(userMessage)
}
