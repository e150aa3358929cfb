package model

// Scope identifies the acting user for a request.
// The agent backend keys all state (timetable, quiz profile) by this value.
type Scope struct {
	UserEmail string
}
