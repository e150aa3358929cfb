package http

import (
	"study-companion/internal/model"
	"study-companion/internal/quiz"
)

// --- Request DTOs ---

type generateReq struct {
	scope model.Scope
	Topic string `json:"topic"`
}

func (r generateReq) validate() error { return nil }

func (r generateReq) toInput() quiz.GenerateInput {
	return quiz.GenerateInput{Topic: r.Topic}
}

// ---

type submitReq struct {
	scope   model.Scope
	Answers []string `json:"answers" binding:"required,min=1"`
}

func (r submitReq) validate() error { return nil }

func (r submitReq) toInput() quiz.SubmitInput {
	return quiz.SubmitInput{Answers: r.Answers}
}

// --- Response DTOs ---

// The quiz agent's JSON field names are the API contract, so its types are
// returned as-is instead of being re-mapped.

type generateResp struct {
	Questions []quiz.Question `json:"questions"`
}

func newGenerateResp(out quiz.GenerateOutput) generateResp {
	return generateResp{Questions: out.Questions}
}

type submitResp struct {
	Result quiz.SessionResult `json:"result"`
}

func newSubmitResp(out quiz.SubmitOutput) submitResp {
	return submitResp{Result: out.Result}
}

type dashboardResp struct {
	Dashboard quiz.Dashboard `json:"dashboard"`
}

func newDashboardResp(out quiz.DashboardOutput) dashboardResp {
	return dashboardResp{Dashboard: out.Dashboard}
}

type badgesResp struct {
	Badges []quiz.Badge `json:"badges"`
}

func newBadgesResp(out quiz.BadgesOutput) badgesResp {
	return badgesResp{Badges: out.Badges}
}
