package http

import (
	"errors"
	"regexp"

	"study-companion/internal/model"
	"study-companion/internal/timetable"
	"study-companion/internal/timetable/parser"
)

// --- Request DTOs ---

type removeReq struct {
	scope   model.Scope
	BlockID string
}

func (r removeReq) validate() error {
	if r.BlockID == "" {
		return errors.New("block id is required")
	}
	return nil
}

func (r removeReq) toInput() timetable.RemoveInput {
	return timetable.RemoveInput{BlockID: r.BlockID}
}

// ---

var exportDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type exportReq struct {
	scope model.Scope
	Date  string `json:"date"`
}

func (r exportReq) validate() error {
	if r.Date != "" && !exportDateRe.MatchString(r.Date) {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}

func (r exportReq) toInput() timetable.ExportInput {
	return timetable.ExportInput{Date: r.Date}
}

// --- Response DTOs ---

type blockResp struct {
	ID       string `json:"id"`
	Task     string `json:"task"`
	Time     string `json:"time"`
	Duration string `json:"duration"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

func newBlockResp(b timetable.ScheduleBlock) blockResp {
	return blockResp{
		ID:       b.ID.String(),
		Task:     b.Task,
		Time:     b.Time,
		Duration: b.Duration,
		Category: b.Category,
		Icon:     parser.CategoryIcon(b.Category),
		Color:    parser.CategoryColor(b.Category),
	}
}

type showResp struct {
	Parsed bool        `json:"parsed"`
	Blocks []blockResp `json:"blocks,omitempty"`
	Raw    string      `json:"raw,omitempty"`
}

func newShowResp(out timetable.ShowOutput) showResp {
	resp := showResp{Parsed: out.Parsed}
	if !out.Parsed {
		resp.Raw = out.Raw
		return resp
	}
	resp.Blocks = make([]blockResp, len(out.Blocks))
	for i, b := range out.Blocks {
		resp.Blocks[i] = newBlockResp(b)
	}
	return resp
}

type exportResp struct {
	Exported int      `json:"exported"`
	Skipped  int      `json:"skipped"`
	EventIDs []string `json:"event_ids,omitempty"`
}

func newExportResp(out timetable.ExportOutput) exportResp {
	return exportResp{
		Exported: out.Exported,
		Skipped:  out.Skipped,
		EventIDs: out.EventIDs,
	}
}
