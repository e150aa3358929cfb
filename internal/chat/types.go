package chat

import (
	"time"

	"study-companion/internal/timetable"
)

// Kind tells the client how to render a reply.
type Kind string

const (
	// KindChat renders the reply as a plain message bubble.
	KindChat Kind = "chat"
	// KindTimetable renders the parsed schedule blocks.
	KindTimetable Kind = "timetable"
	// KindUnparsed means the reply looked like a timetable but the parsing
	// cascade understood nothing; the client shows the raw text.
	KindUnparsed Kind = "unparsed"
)

// Role identifies who produced a history entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one conversation turn kept in the per-user history buffer.
type Entry struct {
	Role Role
	Text string
	At   time.Time
}

// ScheduleBlockView re-exports the timetable block for chat replies so the
// delivery layer does not reach across domains.
type ScheduleBlockView = timetable.ScheduleBlock
