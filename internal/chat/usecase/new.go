package usecase

import (
	"study-companion/pkg/agentgw"
	pkgLog "study-companion/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	agent   agentgw.IAgent
	history *historyStore
}

// New creates a new chat UseCase instance. historyLimit caps entries kept
// per user; maxUsers caps how many users hold a buffer at once (LRU-evicted).
func New(l pkgLog.Logger, agent agentgw.IAgent, historyLimit, maxUsers int) (*implUseCase, error) {
	store, err := newHistoryStore(historyLimit, maxUsers)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		l:       l,
		agent:   agent,
		history: store,
	}, nil
}
