package usecase

import (
	"context"

	"study-companion/pkg/gcalendar"
)

// Questions sent to the scheduler agent. The backend keys its behavior off
// these literal phrases.
const (
	questionShowTimetable = "show timetable"
	questionRemovePrefix  = "remove id="
)

// CalendarClient is the slice of the calendar API the export flow needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
