package parser_test

import (
	"testing"

	"study-companion/internal/timetable/parser"
)

func TestLooksLikeTimetable(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{"Pipe character", "9:00 | 60 | study | Math | id=a1", true},
		{"Single pipe anywhere", "a|b", true},
		{"Bullet line", "Your plan:\n* 9:00-10:00: Math", true},
		{"Indented bullet line", "  * stretch", true},
		{"Two digit time range hyphen", "Here is your plan:\n09:00-10:00 Math", true},
		{"Two digit time range en dash", "10:30–11:00 revision", true},
		{"Single digit hours do not trip the hint", "9:00-10:00 Math", false},
		{"Dash bullet alone is not a signal", "- just a note", false},
		{"Plain reply", "Sounds good, keep going!", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.LooksLikeTimetable(tt.reply); got != tt.want {
				t.Errorf("LooksLikeTimetable(%q) = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestUserRequestedTimetable(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"Show timetable", "show timetable", true},
		{"Show my timetable embedded", "hey, please Show My Timetable now", true},
		{"Show schedule", "can you show schedule?", true},
		{"Show time prefix", "show time for today", true},
		{"Quiz question mentioning time", "what's 2+2", false},
		{"Timetable word alone is not enough", "update my timetable", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.UserRequestedTimetable(tt.message); got != tt.want {
				t.Errorf("UserRequestedTimetable(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestShouldRouteToTimetable(t *testing.T) {
	reply := "Here is your plan:\n09:00-10:00 Math"

	// Timetable-looking reply without an explicit user request stays in chat.
	if parser.ShouldRouteToTimetable(reply, "what's 2+2") {
		t.Error("reply must not reroute without a user request")
	}

	// Both gates hold: reroute.
	if !parser.ShouldRouteToTimetable(reply, "please show my timetable") {
		t.Error("expected rerouting when user asked and reply looks like a timetable")
	}

	// User asked but the reply has no timetable signals: stay in chat.
	if parser.ShouldRouteToTimetable("I added it!", "show my timetable") {
		t.Error("plain reply must not reroute even when requested")
	}
}
