package http

import (
	"time"

	"study-companion/internal/chat"
	"study-companion/internal/model"
	"study-companion/internal/timetable/parser"
)

// --- Request DTOs ---

type sendReq struct {
	scope   model.Scope
	Message string `json:"message" binding:"required"`
}

func (r sendReq) validate() error { return nil }

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{Message: r.Message}
}

// ---

type solveReq struct {
	scope    model.Scope
	Question string `json:"question" binding:"required"`
}

func (r solveReq) validate() error { return nil }

func (r solveReq) toInput() chat.SolveInput {
	return chat.SolveInput{Question: r.Question}
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

type sendResp struct {
	Kind   string      `json:"kind"`
	Reply  string      `json:"reply"`
	Blocks []blockResp `json:"blocks,omitempty"`
}

func newSendResp(out chat.SendOutput) sendResp {
	resp := sendResp{Kind: string(out.Kind), Reply: out.Reply}
	for _, b := range out.Blocks {
		resp.Blocks = append(resp.Blocks, blockResp{
			ID:       b.ID.String(),
			Task:     b.Task,
			Time:     b.Time,
			Duration: b.Duration,
			Category: b.Category,
			Icon:     parser.CategoryIcon(b.Category),
			Color:    parser.CategoryColor(b.Category),
		})
	}
	return resp
}

type solveResp struct {
	Answer string `json:"answer"`
}

func newSolveResp(out chat.SolveOutput) solveResp {
	return solveResp{Answer: out.Answer}
}

type entryResp struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type historyResp struct {
	Entries []entryResp `json:"entries"`
}

func newHistoryResp(out chat.HistoryOutput) historyResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = entryResp{Role: string(e.Role), Text: e.Text, At: e.At}
	}
	return historyResp{Entries: entries}
}
