package usecase

import (
	"context"

	"study-companion/internal/model"
	"study-companion/internal/timetable"
	"study-companion/internal/timetable/parser"
	"study-companion/pkg/agentgw"
)

// Show asks the scheduler agent for the timetable and runs the parsing
// cascade over its reply. An unparseable reply is not an error: the raw text
// is returned with Parsed=false so the client can render a fallback card.
func (uc *implUseCase) Show(ctx context.Context, sc model.Scope) (timetable.ShowOutput, error) {
	raw, err := uc.agent.Ask(ctx, agentgw.AskRequest{
		User:     sc.UserEmail,
		Question: questionShowTimetable,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Show: agent request failed for user=%s: %v", sc.UserEmail, err)
		return timetable.ShowOutput{}, err
	}

	blocks := parser.Parse(raw)
	if len(blocks) == 0 {
		uc.l.Infof(ctx, "Show: could not parse timetable reply for user=%s (len=%d)", sc.UserEmail, len(raw))
		return timetable.ShowOutput{Raw: raw}, nil
	}

	uc.l.Infof(ctx, "Show: parsed %d blocks for user=%s", len(blocks), sc.UserEmail)
	return timetable.ShowOutput{Blocks: blocks, Parsed: true, Raw: raw}, nil
}
