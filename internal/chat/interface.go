package chat

import (
	"context"

	"study-companion/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Send forwards a message to the scheduler agent and decides how the
	// reply should be rendered (plain chat, parsed timetable, or raw fallback).
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)

	// Solve sends a homework question to the tutor agent.
	Solve(ctx context.Context, sc model.Scope, input SolveInput) (SolveOutput, error)

	// History returns the user's recent conversation turns, oldest first.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)
}

type SendInput struct {
	Message string
}

// SendOutput carries the agent reply plus the routing decision. Blocks is
// populated only when Kind == KindTimetable.
type SendOutput struct {
	Kind   Kind
	Reply  string
	Blocks []ScheduleBlockView
}

type SolveInput struct {
	Question string
}

type SolveOutput struct {
	Answer string
}

type HistoryOutput struct {
	Entries []Entry
}
