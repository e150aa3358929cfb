package parser_test

import (
	"testing"

	"study-companion/internal/timetable/parser"
)

func TestRangeLabel(t *testing.T) {
	got := parser.RangeLabel("9:00", "10:30")
	if got != "9:00–10:30" {
		t.Errorf("RangeLabel() = %q, want en-dash joined label", got)
	}
}

func TestDurationLabel(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"Simple range", "09:00", "10:30", "90min"},
		{"Single digit hour", "9:00", "10:00", "60min"},
		{"Zero duration", "14:00", "14:00", "0min"},
		{"Overnight wraparound", "23:30", "00:15", "45min"},
		{"Full day minus a minute", "00:00", "23:59", "1439min"},
		{"Malformed start", "9am", "10:00", ""},
		{"Malformed end", "9:00", "ten", ""},
		{"Non numeric minutes", "9:xx", "10:00", ""},
		{"Empty tokens", "", "", ""},
		{"Surrounding whitespace tolerated", " 9:00 ", " 9:05 ", "5min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.DurationLabel(tt.start, tt.end)
			if got != tt.want {
				t.Errorf("DurationLabel(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
