package usecase

import (
	"context"

	"study-companion/internal/model"
	"study-companion/internal/timetable"
	"study-companion/pkg/agentgw"
)

// Remove deletes a block by server ID via the scheduler agent, then
// re-fetches the timetable so the client always renders fresh state.
// Synthetic IDs never reach the wire: the backend has no record of them.
func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, input timetable.RemoveInput) (timetable.ShowOutput, error) {
	if input.BlockID == "" {
		return timetable.ShowOutput{}, timetable.ErrEmptyBlockID
	}

	id := timetable.ParseBlockID(input.BlockID)
	if id.IsSynthetic() {
		uc.l.Infof(ctx, "Remove: refused synthetic id %q for user=%s", input.BlockID, sc.UserEmail)
		return timetable.ShowOutput{}, timetable.ErrBlockNotAddressable
	}

	if _, err := uc.agent.Ask(ctx, agentgw.AskRequest{
		User:     sc.UserEmail,
		Question: questionRemovePrefix + id.String(),
	}); err != nil {
		uc.l.Errorf(ctx, "Remove: agent request failed for id=%s user=%s: %v", id, sc.UserEmail, err)
		return timetable.ShowOutput{}, err
	}

	return uc.Show(ctx, sc)
}
