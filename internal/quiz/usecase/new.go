package usecase

import (
	"study-companion/pkg/agentgw"
	pkgLog "study-companion/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	agent agentgw.IAgent
}

// New creates a new quiz UseCase instance.
func New(l pkgLog.Logger, agent agentgw.IAgent) *implUseCase {
	return &implUseCase{
		l:     l,
		agent: agent,
	}
}
