package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"study-companion/internal/model"
	"study-companion/internal/quiz"
	"study-companion/pkg/agentgw"
)

func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope) (quiz.DashboardOutput, error) {
	raw, err := uc.agent.QuizAction(ctx, agentgw.QuizRequest{
		User:   sc.UserEmail,
		Action: agentgw.ActionDashboard,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Dashboard: agent request failed for user=%s: %v", sc.UserEmail, err)
		return quiz.DashboardOutput{}, err
	}

	var dash quiz.Dashboard
	if err := json.Unmarshal(raw, &dash); err != nil {
		return quiz.DashboardOutput{}, fmt.Errorf("%w: %v", quiz.ErrBadAgentPayload, err)
	}
	return quiz.DashboardOutput{Dashboard: dash}, nil
}

func (uc *implUseCase) Badges(ctx context.Context, sc model.Scope) (quiz.BadgesOutput, error) {
	raw, err := uc.agent.QuizAction(ctx, agentgw.QuizRequest{
		User:   sc.UserEmail,
		Action: agentgw.ActionBadges,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Badges: agent request failed for user=%s: %v", sc.UserEmail, err)
		return quiz.BadgesOutput{}, err
	}

	badges, err := decodeBadges(raw)
	if err != nil {
		uc.l.Errorf(ctx, "Badges: %v (payload=%.200s)", err, string(raw))
		return quiz.BadgesOutput{}, err
	}
	return quiz.BadgesOutput{Badges: badges}, nil
}

// decodeBadges accepts a bare badge array or an object wrapping it under
// "badges".
func decodeBadges(raw json.RawMessage) ([]quiz.Badge, error) {
	var badges []quiz.Badge
	if err := json.Unmarshal(raw, &badges); err == nil {
		return badges, nil
	}

	var wrapped struct {
		Badges []quiz.Badge `json:"badges"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Badges == nil {
		return nil, quiz.ErrBadAgentPayload
	}
	return wrapped.Badges, nil
}
