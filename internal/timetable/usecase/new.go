package usecase

import (
	"study-companion/pkg/agentgw"
	pkgLog "study-companion/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	agent      agentgw.IAgent
	calendar   CalendarClient
	calendarID string
	timezone   string
}

// New creates a new timetable UseCase instance. The calendar client is
// optional; Export fails with ErrCalendarNotConfigured when it is nil.
func New(
	l pkgLog.Logger,
	agent agentgw.IAgent,
	calendar CalendarClient,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		agent:      agent,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
