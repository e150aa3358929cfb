package quiz

import (
	"context"

	"study-companion/internal/model"
)

// UseCase defines the business logic interface for the quiz and progress
// domain. All operations are thin translations over the quiz agent; the
// backend owns XP, streaks, and badge state.
type UseCase interface {
	// Generate asks the quiz agent for a fresh question set.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)

	// Submit sends the user's answers for evaluation and returns the
	// session result with updated XP and streak.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)

	// Dashboard returns the user's progress summary.
	Dashboard(ctx context.Context, sc model.Scope) (DashboardOutput, error)

	// Badges returns the user's badge collection.
	Badges(ctx context.Context, sc model.Scope) (BadgesOutput, error)
}

type GenerateInput struct {
	Topic string
}

type GenerateOutput struct {
	Questions []Question
}

type SubmitInput struct {
	Answers []string
}

type SubmitOutput struct {
	Result SessionResult
}

type DashboardOutput struct {
	Dashboard Dashboard
}

type BadgesOutput struct {
	Badges []Badge
}
