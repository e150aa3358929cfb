package timetable

import (
	"strconv"
	"strings"
)

// Block categories. The vocabulary is advisory: delimited rows carry whatever
// category string the agent emitted, preserved as-is.
const (
	CategoryStudy    = "study"
	CategoryClass    = "class"
	CategoryBreak    = "break"
	CategoryMeal     = "meal"
	CategoryExercise = "exercise"
	CategoryPersonal = "personal"
	CategoryTask     = "task"
)

// SyntheticIDPrefix is the string form prefix of locally numbered block IDs.
const SyntheticIDPrefix = "auto_"

// BlockID is a tagged identifier for a schedule block: either a stable
// server-supplied ID or a locally synthesized sequence number. Only server
// IDs are addressable — the backend has no record of synthetic blocks, so a
// remove request against one must be refused before it ever reaches the wire.
type BlockID struct {
	server    string
	synthetic string
}

// ServerID wraps a server-supplied identifier.
func ServerID(id string) BlockID {
	return BlockID{server: id}
}

// SyntheticID wraps a locally assigned 1-based sequence number.
func SyntheticID(n int) BlockID {
	return BlockID{synthetic: SyntheticIDPrefix + strconv.Itoa(n)}
}

// ParseBlockID reconstructs a BlockID from its string form, as received back
// from API consumers. The prefix alone decides the variant: anything carrying
// "auto_" is synthetic and therefore not addressable, even when the suffix is
// not a well-formed sequence number — the backend has no block under any such
// ID. Everything else is a server ID.
func ParseBlockID(s string) BlockID {
	if strings.HasPrefix(s, SyntheticIDPrefix) {
		return BlockID{synthetic: s}
	}
	return ServerID(s)
}

// IsSynthetic reports whether the ID was assigned locally by the parser.
func (id BlockID) IsSynthetic() bool {
	return id.server == ""
}

// String renders the ID in wire form: the server value, or "auto_<n>".
func (id BlockID) String() string {
	if id.server != "" {
		return id.server
	}
	return id.synthetic
}

// ScheduleBlock is one time-boxed entry in a user's timetable.
//
// Time is a display string ("HH:MM–HH:MM" for inferred blocks, verbatim agent
// text for delimited rows) and is never re-derived or reformatted after the
// block is constructed. Duration is "<minutes>min", or "" when it could not
// be computed.
type ScheduleBlock struct {
	Task     string
	Time     string
	Duration string
	Category string
	ID       BlockID
}
