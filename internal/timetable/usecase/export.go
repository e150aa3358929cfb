package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"study-companion/internal/model"
	"study-companion/internal/timetable"
	"study-companion/pkg/gcalendar"
)

// exportRangeRe matches the clock-range time labels the parser produces.
// Delimited rows may carry free-form time text ("Morning", "9:00 AM"); those
// blocks cannot be placed on a calendar and are counted as skipped.
var exportRangeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*[-–]\s*(\d{1,2}):(\d{2})$`)

// Export places the currently parsed schedule blocks on Google Calendar as
// events for the given date. Individual event failures are non-fatal.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input timetable.ExportInput) (timetable.ExportOutput, error) {
	if uc.calendar == nil {
		return timetable.ExportOutput{}, timetable.ErrCalendarNotConfigured
	}

	shown, err := uc.Show(ctx, sc)
	if err != nil {
		return timetable.ExportOutput{}, err
	}
	if !shown.Parsed {
		return timetable.ExportOutput{}, timetable.ErrNothingToExport
	}

	loc, locErr := time.LoadLocation(uc.timezone)
	if locErr != nil {
		loc = time.UTC
	}

	day := time.Now().In(loc)
	if input.Date != "" {
		parsed, dateErr := time.ParseInLocation("2006-01-02", input.Date, loc)
		if dateErr != nil {
			return timetable.ExportOutput{}, fmt.Errorf("invalid export date %q: %w", input.Date, dateErr)
		}
		day = parsed
	}

	out := timetable.ExportOutput{}
	for _, b := range shown.Blocks {
		start, end, ok := rangeOnDay(b.Time, day, loc)
		if !ok {
			out.Skipped++
			continue
		}

		event, evErr := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     b.Task,
			Description: fmt.Sprintf("Category: %s\nBlock: %s", b.Category, b.ID),
			StartTime:   start,
			EndTime:     end,
			Timezone:    uc.timezone,
		})
		if evErr != nil {
			uc.l.Warnf(ctx, "Export: calendar event failed for %q (non-fatal): %v", b.Task, evErr)
			out.Skipped++
			continue
		}

		out.Exported++
		out.EventIDs = append(out.EventIDs, event.ID)
	}

	uc.l.Infof(ctx, "Export: user=%s exported=%d skipped=%d", sc.UserEmail, out.Exported, out.Skipped)
	return out, nil
}

// rangeOnDay maps a "HH:MM–HH:MM" label onto concrete times for the given
// day. Ranges crossing midnight end on the following day.
func rangeOnDay(label string, day time.Time, loc *time.Location) (start, end time.Time, ok bool) {
	m := exportRangeRe.FindStringSubmatch(label)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}

	sh, _ := strconv.Atoi(m[1])
	sm, _ := strconv.Atoi(m[2])
	eh, _ := strconv.Atoi(m[3])
	em, _ := strconv.Atoi(m[4])

	start = time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, loc)
	end = time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, loc)
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}
