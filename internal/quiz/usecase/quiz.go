package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"study-companion/internal/model"
	"study-companion/internal/quiz"
	"study-companion/pkg/agentgw"
)

func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input quiz.GenerateInput) (quiz.GenerateOutput, error) {
	raw, err := uc.agent.QuizAction(ctx, agentgw.QuizRequest{
		User:     sc.UserEmail,
		Action:   agentgw.ActionGenerateQuiz,
		Question: input.Topic,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Generate: agent request failed for user=%s: %v", sc.UserEmail, err)
		return quiz.GenerateOutput{}, err
	}

	questions, err := decodeQuestions(raw)
	if err != nil {
		uc.l.Errorf(ctx, "Generate: %v (payload=%.200s)", err, string(raw))
		return quiz.GenerateOutput{}, err
	}

	uc.l.Infof(ctx, "Generate: %d questions for user=%s topic=%q", len(questions), sc.UserEmail, input.Topic)
	return quiz.GenerateOutput{Questions: questions}, nil
}

func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input quiz.SubmitInput) (quiz.SubmitOutput, error) {
	if len(input.Answers) == 0 {
		return quiz.SubmitOutput{}, quiz.ErrEmptyAnswers
	}

	raw, err := uc.agent.QuizAction(ctx, agentgw.QuizRequest{
		User:    sc.UserEmail,
		Action:  agentgw.ActionEvaluate,
		Answers: input.Answers,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Submit: agent request failed for user=%s: %v", sc.UserEmail, err)
		return quiz.SubmitOutput{}, err
	}

	var result quiz.SessionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return quiz.SubmitOutput{}, fmt.Errorf("%w: %v", quiz.ErrBadAgentPayload, err)
	}

	uc.l.Infof(ctx, "Submit: user=%s correct=%d/%d xp=%d", sc.UserEmail,
		result.SessionCorrect, result.TotalQuestions, result.SessionXP)
	return quiz.SubmitOutput{Result: result}, nil
}

// decodeQuestions accepts both payload shapes the quiz agent produces: a bare
// question array, or an object wrapping it under "questions".
func decodeQuestions(raw json.RawMessage) ([]quiz.Question, error) {
	var questions []quiz.Question
	if err := json.Unmarshal(raw, &questions); err == nil {
		return questions, nil
	}

	var wrapped struct {
		Questions []quiz.Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Questions == nil {
		return nil, quiz.ErrBadAgentPayload
	}
	return wrapped.Questions, nil
}
