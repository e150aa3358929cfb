package agentgw

import (
	"context"
	"encoding/json"
)

// IAgent is the interface exposed by the agent backend client.
// Defined for mocking in usecase tests.
type IAgent interface {
	// Ask sends a question to the scheduler agent and returns its text reply.
	Ask(ctx context.Context, req AskRequest) (string, error)

	// Converse sends a question to the doubt-solving agent.
	Converse(ctx context.Context, req AskRequest) (string, error)

	// QuizAction invokes the quiz agent and returns the raw response payload.
	QuizAction(ctx context.Context, req QuizRequest) (json.RawMessage, error)

	// Health checks backend liveness.
	Health(ctx context.Context) error
}
