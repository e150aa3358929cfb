package usecase

import (
	"context"
	"strings"

	"study-companion/internal/chat"
	"study-companion/internal/model"
	"study-companion/internal/timetable/parser"
	"study-companion/pkg/agentgw"
)

// Send forwards the message to the scheduler agent and classifies the reply.
// A reply is routed to the timetable view only when it both looks like
// timetable data and the user explicitly asked for the timetable; everything
// else stays a plain chat bubble.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	reply, err := uc.agent.Ask(ctx, agentgw.AskRequest{
		User:     sc.UserEmail,
		Question: message,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Send: agent request failed for user=%s: %v", sc.UserEmail, err)
		return chat.SendOutput{}, err
	}

	uc.history.append(sc.UserEmail, chat.RoleUser, message)
	uc.history.append(sc.UserEmail, chat.RoleAssistant, reply)

	if !parser.ShouldRouteToTimetable(reply, message) {
		return chat.SendOutput{Kind: chat.KindChat, Reply: reply}, nil
	}

	blocks := parser.Parse(reply)
	if len(blocks) == 0 {
		uc.l.Infof(ctx, "Send: timetable-ish reply did not parse for user=%s", sc.UserEmail)
		return chat.SendOutput{Kind: chat.KindUnparsed, Reply: reply}, nil
	}

	uc.l.Infof(ctx, "Send: routed reply to timetable view (%d blocks) for user=%s", len(blocks), sc.UserEmail)
	return chat.SendOutput{Kind: chat.KindTimetable, Reply: reply, Blocks: blocks}, nil
}
