package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"study-companion/internal/model"
	"study-companion/internal/timetable"
	"study-companion/internal/timetable/usecase"
	"study-companion/pkg/agentgw"
	"study-companion/pkg/gcalendar"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockAgent struct {
	reply     string
	err       error
	questions []string
}

func (m *mockAgent) Ask(ctx context.Context, req agentgw.AskRequest) (string, error) {
	m.questions = append(m.questions, req.Question)
	return m.reply, m.err
}

func (m *mockAgent) Converse(ctx context.Context, req agentgw.AskRequest) (string, error) {
	return m.reply, m.err
}

func (m *mockAgent) QuizAction(ctx context.Context, req agentgw.QuizRequest) (json.RawMessage, error) {
	return nil, m.err
}

func (m *mockAgent) Health(ctx context.Context) error { return m.err }

type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	err     error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "evt_" + req.Summary, Summary: req.Summary}, nil
}

var testScope = model.Scope{UserEmail: "alice@example.com"}

// ── Show ───────────────────────────────────────────────────────────────────

func TestShowParsed(t *testing.T) {
	agent := &mockAgent{reply: "9:00–10:00 | 60min | study | Math 📚 | id=blk_1"}
	uc := usecase.New(&mockLogger{}, agent, nil, "", "UTC")

	out, err := uc.Show(context.Background(), testScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Parsed {
		t.Fatal("expected parsed output")
	}
	if len(out.Blocks) != 1 || out.Blocks[0].Task != "Math" {
		t.Errorf("unexpected blocks: %+v", out.Blocks)
	}
	if len(agent.questions) != 1 || agent.questions[0] != "show timetable" {
		t.Errorf("unexpected questions asked: %v", agent.questions)
	}
}

func TestShowUnparseableFallsBack(t *testing.T) {
	agent := &mockAgent{reply: "You have no timetable yet. Chat with me to build one!"}
	uc := usecase.New(&mockLogger{}, agent, nil, "", "UTC")

	out, err := uc.Show(context.Background(), testScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Parsed {
		t.Error("expected unparsed output")
	}
	if out.Raw != agent.reply {
		t.Errorf("raw text must be preserved for the fallback card, got %q", out.Raw)
	}
}

func TestShowAgentError(t *testing.T) {
	agent := &mockAgent{err: errors.New("connection refused")}
	uc := usecase.New(&mockLogger{}, agent, nil, "", "UTC")

	if _, err := uc.Show(context.Background(), testScope); err == nil {
		t.Fatal("expected error")
	}
}

// ── Remove ─────────────────────────────────────────────────────────────────

func TestRemoveSyntheticRefused(t *testing.T) {
	// The auto_ prefix alone marks a block as non-addressable, including
	// malformed forms a client could fabricate.
	for _, id := range []string{"auto_2", "auto_x", "auto_0"} {
		t.Run(id, func(t *testing.T) {
			agent := &mockAgent{}
			uc := usecase.New(&mockLogger{}, agent, nil, "", "UTC")

			_, err := uc.Remove(context.Background(), testScope, timetable.RemoveInput{BlockID: id})
			if !errors.Is(err, timetable.ErrBlockNotAddressable) {
				t.Fatalf("expected ErrBlockNotAddressable, got %v", err)
			}
			if len(agent.questions) != 0 {
				t.Errorf("id %q must never reach the agent, asked %v", id, agent.questions)
			}
		})
	}
}

func TestRemoveEmptyID(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockAgent{}, nil, "", "UTC")

	_, err := uc.Remove(context.Background(), testScope, timetable.RemoveInput{})
	if !errors.Is(err, timetable.ErrEmptyBlockID) {
		t.Fatalf("expected ErrEmptyBlockID, got %v", err)
	}
}

func TestRemoveServerIDRefreshes(t *testing.T) {
	agent := &mockAgent{reply: "10:00–11:00 | 60min | class | Physics | id=blk_9"}
	uc := usecase.New(&mockLogger{}, agent, nil, "", "UTC")

	out, err := uc.Remove(context.Background(), testScope, timetable.RemoveInput{BlockID: "blk_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(agent.questions) != 2 {
		t.Fatalf("expected remove + refresh, got questions %v", agent.questions)
	}
	if agent.questions[0] != "remove id=blk_1" {
		t.Errorf("unexpected remove question: %q", agent.questions[0])
	}
	if agent.questions[1] != "show timetable" {
		t.Errorf("unexpected refresh question: %q", agent.questions[1])
	}
	if !out.Parsed || len(out.Blocks) != 1 {
		t.Errorf("expected refreshed blocks, got %+v", out)
	}
}

// ── Export ─────────────────────────────────────────────────────────────────

func TestExportWithoutCalendar(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockAgent{}, nil, "", "UTC")

	_, err := uc.Export(context.Background(), testScope, timetable.ExportInput{})
	if !errors.Is(err, timetable.ErrCalendarNotConfigured) {
		t.Fatalf("expected ErrCalendarNotConfigured, got %v", err)
	}
}

func TestExportUnparsedTimetable(t *testing.T) {
	agent := &mockAgent{reply: "Nothing scheduled."}
	uc := usecase.New(&mockLogger{}, agent, &mockCalendar{}, "", "UTC")

	_, err := uc.Export(context.Background(), testScope, timetable.ExportInput{})
	if !errors.Is(err, timetable.ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

func TestExport(t *testing.T) {
	// One clock-range block, one free-form time label that cannot be placed.
	agent := &mockAgent{reply: "09:00–10:30 | 90min | study | Math | id=b1\n" +
		"Morning | 2 hours | personal | Errands | id=b2"}
	cal := &mockCalendar{}
	uc := usecase.New(&mockLogger{}, agent, cal, "team-cal", "UTC")

	out, err := uc.Export(context.Background(), testScope, timetable.ExportInput{Date: "2025-09-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Exported != 1 || out.Skipped != 1 {
		t.Errorf("exported=%d skipped=%d, want 1/1", out.Exported, out.Skipped)
	}
	if len(cal.created) != 1 {
		t.Fatalf("expected one calendar event, got %d", len(cal.created))
	}

	ev := cal.created[0]
	if ev.Summary != "Math" || ev.CalendarID != "team-cal" {
		t.Errorf("unexpected event request: %+v", ev)
	}
	if ev.StartTime.Hour() != 9 || ev.EndTime.Hour() != 10 || ev.EndTime.Minute() != 30 {
		t.Errorf("unexpected event times: %v → %v", ev.StartTime, ev.EndTime)
	}
	if ev.StartTime.Day() != 1 || ev.StartTime.Month() != 9 {
		t.Errorf("event not placed on requested date: %v", ev.StartTime)
	}
}

func TestExportInvalidDate(t *testing.T) {
	agent := &mockAgent{reply: "09:00–10:30 | 90min | study | Math | id=b1"}
	uc := usecase.New(&mockLogger{}, agent, &mockCalendar{}, "", "UTC")

	if _, err := uc.Export(context.Background(), testScope, timetable.ExportInput{Date: "yesterday"}); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestExportEventFailureIsNonFatal(t *testing.T) {
	agent := &mockAgent{reply: "09:00–10:30 | 90min | study | Math | id=b1"}
	cal := &mockCalendar{err: errors.New("quota exceeded")}
	uc := usecase.New(&mockLogger{}, agent, cal, "", "UTC")

	out, err := uc.Export(context.Background(), testScope, timetable.ExportInput{Date: "2025-09-01"})
	if err != nil {
		t.Fatalf("individual event failures must not fail the export: %v", err)
	}
	if out.Exported != 0 || out.Skipped != 1 {
		t.Errorf("exported=%d skipped=%d, want 0/1", out.Exported, out.Skipped)
	}
}
