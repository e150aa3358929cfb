package usecase

import (
	"context"
	"strings"

	"study-companion/internal/chat"
	"study-companion/internal/model"
	"study-companion/pkg/agentgw"
)

// Solve sends a homework question to the tutor agent. Tutor exchanges are
// kept out of the scheduler history buffer.
func (uc *implUseCase) Solve(ctx context.Context, sc model.Scope, input chat.SolveInput) (chat.SolveOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return chat.SolveOutput{}, chat.ErrEmptyQuestion
	}

	answer, err := uc.agent.Converse(ctx, agentgw.AskRequest{
		User:     sc.UserEmail,
		Question: question,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Solve: tutor request failed for user=%s: %v", sc.UserEmail, err)
		return chat.SolveOutput{}, err
	}

	return chat.SolveOutput{Answer: answer}, nil
}
