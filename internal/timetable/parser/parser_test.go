package parser_test

import (
	"testing"

	"study-companion/internal/timetable"
	"study-companion/internal/timetable/parser"
)

func TestParseDelimitedRoundTrip(t *testing.T) {
	blocks := parser.Parse("9:00 AM | 60 | Study | Read Chapter 3 📚 | id=abc123")

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	b := blocks[0]
	if b.Time != "9:00 AM" {
		t.Errorf("time not preserved verbatim: %q", b.Time)
	}
	if b.Duration != "60" {
		t.Errorf("duration not preserved verbatim: %q", b.Duration)
	}
	if b.Category != "Study" {
		t.Errorf("category case-folded or altered: %q", b.Category)
	}
	if b.Task != "Read Chapter 3" {
		t.Errorf("task should be emoji-stripped and trimmed only: %q", b.Task)
	}
	if b.ID.String() != "abc123" {
		t.Errorf("server id altered: %q", b.ID.String())
	}
	if b.ID.IsSynthetic() {
		t.Error("server-supplied id must be addressable")
	}
}

func TestParseDelimitedMultipleRows(t *testing.T) {
	text := "7:00–8:00 | 60min | exercise | 🏃 Morning run | id=blk_1\n" +
		"8:00–9:00 | 60min | meal | Breakfast 🍽️ | id=blk-2\n"

	blocks := parser.Parse(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Task != "Morning run" || blocks[1].Task != "Breakfast" {
		t.Errorf("unexpected tasks: %q, %q", blocks[0].Task, blocks[1].Task)
	}
	if blocks[0].ID.String() != "blk_1" || blocks[1].ID.String() != "blk-2" {
		t.Errorf("unexpected ids: %q, %q", blocks[0].ID, blocks[1].ID)
	}
}

func TestParseDelimitedEmojiOnlyTask(t *testing.T) {
	blocks := parser.Parse("10:00 | 15 | break | ☕🔥 | id=b1")

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	// An all-emoji task degrades to empty text but the block is kept.
	if blocks[0].Task != "" {
		t.Errorf("expected empty task, got %q", blocks[0].Task)
	}
}

func TestParseShortCircuit(t *testing.T) {
	// Pipe rows and bulleted lines together: only the pipe strategy runs.
	text := "9:00 | 30 | study | Revise algebra | id=srv9\n" +
		"* 14:00-15:00: Team sync (meeting)\n" +
		"* 16:00-17:00: Gym session\n"

	blocks := parser.Parse(text)
	if len(blocks) != 1 {
		t.Fatalf("expected only the delimited row, got %d blocks", len(blocks))
	}
	if blocks[0].ID.String() != "srv9" {
		t.Errorf("expected server block, got id %q", blocks[0].ID)
	}
}

func TestParseBulleted(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantTask     string
		wantCategory string
		wantTime     string
		wantDuration string
	}{
		{
			name:         "No parenthesis defaults category to task",
			text:         "* 14:00-15:00: Team sync",
			wantTask:     "Team sync",
			wantCategory: "task",
			wantTime:     "14:00–15:00",
			wantDuration: "60min",
		},
		{
			name:         "Parenthesized suffix splits task and category",
			text:         "* 14:00-15:00: Team sync (meeting)",
			wantTask:     "Team sync",
			wantCategory: "meeting",
			wantTime:     "14:00–15:00",
			wantDuration: "60min",
		},
		{
			name:         "En dash range and dot bullet",
			text:         "• 9:00–9:45: Coffee chat (break)",
			wantTask:     "Coffee chat",
			wantCategory: "break",
			wantTime:     "9:00–9:45",
			wantDuration: "45min",
		},
		{
			name:         "Hyphen bullet without colon after range",
			text:         "- 18:30-19:00 Evening walk",
			wantTask:     "Evening walk",
			wantCategory: "task",
			wantTime:     "18:30–19:00",
			wantDuration: "30min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := parser.Parse(tt.text)
			if len(blocks) != 1 {
				t.Fatalf("expected 1 block, got %d", len(blocks))
			}
			b := blocks[0]
			if b.Task != tt.wantTask {
				t.Errorf("task = %q, want %q", b.Task, tt.wantTask)
			}
			if b.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", b.Category, tt.wantCategory)
			}
			if b.Time != tt.wantTime {
				t.Errorf("time = %q, want %q", b.Time, tt.wantTime)
			}
			if b.Duration != tt.wantDuration {
				t.Errorf("duration = %q, want %q", b.Duration, tt.wantDuration)
			}
			if !b.ID.IsSynthetic() {
				t.Errorf("bulleted block should carry a synthetic id, got %q", b.ID)
			}
		})
	}
}

func TestParseBulletedSkipsLinesWithoutRange(t *testing.T) {
	text := "* Remember to hydrate\n" +
		"* 10:00-11:00: Deep work (study)\n" +
		"* Stretch often\n" +
		"* 11:00-11:15: Break\n"

	blocks := parser.Parse(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	// Skipped lines must not consume synthetic sequence numbers.
	if blocks[0].ID.String() != "auto_1" || blocks[1].ID.String() != "auto_2" {
		t.Errorf("unexpected synthetic ids: %q, %q", blocks[0].ID, blocks[1].ID)
	}
}

func TestParseSimple(t *testing.T) {
	blocks := parser.Parse("Here is a rough plan:\n09:00-10:30 Study Math\n10:30-10:45 Rest\n")

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	first := blocks[0]
	if first.Time != "09:00–10:30" {
		t.Errorf("time = %q, want normalized en-dash label", first.Time)
	}
	if first.Duration != "90min" {
		t.Errorf("duration = %q, want 90min", first.Duration)
	}
	// Simple strategy infers category from the task words, not "task".
	if first.Category != timetable.CategoryStudy {
		t.Errorf("category = %q, want study", first.Category)
	}
	if blocks[1].Category != timetable.CategoryBreak {
		t.Errorf("category = %q, want break", blocks[1].Category)
	}
}

func TestParseTotalFailure(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Plain chat reply", "Sounds good!"},
		{"Bullets without times", "* hello\n* world"},
		{"Empty input", ""},
		{"Malformed pipe row without id", "a | b | c | d | e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if blocks := parser.Parse(tt.text); len(blocks) != 0 {
				t.Errorf("expected no blocks, got %d", len(blocks))
			}
		})
	}
}

func TestSyntheticIDsStrictlyIncreasing(t *testing.T) {
	text := "* 8:00-9:00: One\n* 9:00-10:00: Two\n* 10:00-11:00: Three\n"

	blocks := parser.Parse(text)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	for i, b := range blocks {
		want := timetable.SyntheticID(i + 1)
		if b.ID != want {
			t.Errorf("block %d id = %q, want %q", i, b.ID, want)
		}
		if !b.ID.IsSynthetic() {
			t.Errorf("block %d id should be synthetic", i)
		}
	}
}

func TestParseNeverMutatesDelimitedTime(t *testing.T) {
	// Delimited time fields are not HH:MM tokens; they must pass through
	// untouched — no normalization, no duration computation from them.
	blocks := parser.Parse("Morning | 2 hours | personal | Errands | id=e1")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Time != "Morning" || blocks[0].Duration != "2 hours" {
		t.Errorf("delimited fields reformatted: time=%q duration=%q",
			blocks[0].Time, blocks[0].Duration)
	}
}
