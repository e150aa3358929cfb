package usecase

import (
	"context"

	"study-companion/internal/chat"
	"study-companion/internal/model"
)

func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{Entries: uc.history.recent(sc.UserEmail)}, nil
}
