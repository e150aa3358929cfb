package timetable

import (
	"context"

	"study-companion/internal/model"
)

// UseCase defines the business logic interface for the timetable domain.
type UseCase interface {
	// Show fetches the timetable text from the agent and parses it into blocks.
	Show(ctx context.Context, sc model.Scope) (ShowOutput, error)

	// Remove deletes a block by server ID and returns the refreshed timetable.
	// Synthetic IDs are refused with ErrBlockNotAddressable.
	Remove(ctx context.Context, sc model.Scope, input RemoveInput) (ShowOutput, error)

	// Export creates Google Calendar events for the currently parsed blocks.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}

// ShowOutput is the parsed timetable, or the raw agent text when parsing
// understood nothing (Parsed == false → render a could-not-parse fallback).
type ShowOutput struct {
	Blocks []ScheduleBlock
	Parsed bool
	Raw    string
}

type RemoveInput struct {
	BlockID string
}

type ExportInput struct {
	Date string // YYYY-MM-DD; defaults to today in the configured timezone
}

// ExportOutput reports how many blocks became calendar events. Blocks whose
// time label is not a plain HH:MM–HH:MM range are counted in Skipped.
type ExportOutput struct {
	Exported int
	Skipped  int
	EventIDs []string
}
