// Package parser converts loosely structured agent replies into schedule
// blocks. The agent's output format is not strictly contracted: it may emit
// pipe-delimited rows, bulleted lines, or bare "HH:MM–HH:MM task" lines,
// optionally decorated with emoji. Three strategies are tried in fixed
// priority order and the first one that yields any blocks wins; partial
// results are never merged across strategies.
//
// The package is pure and stateless: parsing is a deterministic function of
// its input, performs no I/O, and never returns an error — malformed agent
// output is the expected common case, so every failure mode degrades to data
// (an empty slice, an empty duration string).
package parser

import (
	"regexp"
	"strings"

	"study-companion/internal/timetable"
)

var (
	// Delimited row: <time> | <duration> | <category> | <task> | id=<id>.
	// Fixed 5-field arity — rows with a different field count simply do not
	// match and are skipped, no partial recovery.
	delimitedRowRe = regexp.MustCompile(`([^|]+)\|([^|]+)\|([^|]+)\|([^|]+)\|\s*id\s*=\s*([A-Za-z0-9_-]+)`)

	// Bulleted line: "* ...", "• ..." or "- ...".
	bulletLineRe = regexp.MustCompile(`[*•-]\s*([^\n]+)`)

	// Time range inside a bulleted line, with optional trailing colon.
	bulletRangeRe = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})\s*:?\s*(.+)`)

	// Parenthesized category suffix: "Task name (category)".
	parenCategoryRe = regexp.MustCompile(`(.+?)\s*\(([^)]+)\)`)

	// Simple line: "HH:MM-HH:MM task", independent of bullet markers.
	simpleLineRe = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})\s+(.+)`)

	// The fixed set of decorative emoji the agent salts task names with.
	// Only these are stripped — task text is otherwise preserved verbatim.
	decorEmojiRe = regexp.MustCompile(`[📚🎓☕🏃🍽️👤📌🗑️✅❌⏰🔥💪🎯]+`)
)

// Parse runs the parsing cascade over raw agent text and returns the blocks
// found by the highest-priority strategy that matched anything. An empty
// slice means nothing was understood; callers should fall back to showing
// the raw text.
func Parse(raw string) []timetable.ScheduleBlock {
	if blocks := parseDelimited(raw); len(blocks) > 0 {
		return blocks
	}
	if blocks := parseBulleted(raw); len(blocks) > 0 {
		return blocks
	}
	return parseSimple(raw)
}

// parseDelimited handles the pipe format the agent emits for structured
// timetables. This format is authoritative: every field except the task's
// decorative emoji is carried over byte-for-byte (trimmed), and the server
// ID is preserved so the block stays addressable for removal.
func parseDelimited(text string) []timetable.ScheduleBlock {
	var blocks []timetable.ScheduleBlock
	for _, m := range delimitedRowRe.FindAllStringSubmatch(text, -1) {
		task := strings.TrimSpace(decorEmojiRe.ReplaceAllString(strings.TrimSpace(m[4]), ""))
		blocks = append(blocks, timetable.ScheduleBlock{
			Task:     task,
			Time:     strings.TrimSpace(m[1]),
			Duration: strings.TrimSpace(m[2]),
			Category: strings.TrimSpace(m[3]),
			ID:       timetable.ServerID(m[5]),
		})
	}
	return blocks
}

// parseBulleted handles "* HH:MM-HH:MM: Task (category)" lines. Bulleted
// lines without a recognizable time range are skipped silently. Category
// defaults to "task" unless a parenthesized suffix names one.
func parseBulleted(text string) []timetable.ScheduleBlock {
	var blocks []timetable.ScheduleBlock
	seq := 0
	for _, bm := range bulletLineRe.FindAllStringSubmatch(text, -1) {
		line := strings.TrimSpace(bm[1])

		tm := bulletRangeRe.FindStringSubmatch(line)
		if tm == nil {
			continue
		}
		start := strings.TrimSpace(tm[1])
		end := strings.TrimSpace(tm[2])
		rest := strings.TrimSpace(tm[3])

		task := rest
		category := timetable.CategoryTask
		if pm := parenCategoryRe.FindStringSubmatch(rest); pm != nil {
			task = strings.TrimSpace(pm[1])
			category = strings.TrimSpace(pm[2])
		}

		seq++
		blocks = append(blocks, timetable.ScheduleBlock{
			Task:     task,
			Time:     RangeLabel(start, end),
			Duration: DurationLabel(start, end),
			Category: category,
			ID:       timetable.SyntheticID(seq),
		})
	}
	return blocks
}

// parseSimple is the last-resort strategy: any "HH:MM-HH:MM task" occurrence
// anywhere in the text. Category is inferred from the task words.
func parseSimple(text string) []timetable.ScheduleBlock {
	var blocks []timetable.ScheduleBlock
	seq := 0
	for _, m := range simpleLineRe.FindAllStringSubmatch(text, -1) {
		start := strings.TrimSpace(m[1])
		end := strings.TrimSpace(m[2])
		task := strings.TrimSpace(m[3])

		seq++
		blocks = append(blocks, timetable.ScheduleBlock{
			Task:     task,
			Time:     RangeLabel(start, end),
			Duration: DurationLabel(start, end),
			Category: GuessCategory(task),
			ID:       timetable.SyntheticID(seq),
		})
	}
	return blocks
}
