package agentgw

import "encoding/json"

// AskRequest is the request body for the scheduler and tutor agents.
type AskRequest struct {
	User     string `json:"user"`
	Question string `json:"question"`
}

// QuizRequest is the request body for the quiz agent. Action selects the
// operation; Question carries the generation prompt; Answers carries the
// user's answers for evaluate_session.
type QuizRequest struct {
	User     string   `json:"user"`
	Action   string   `json:"action"`
	Question string   `json:"question,omitempty"`
	Answers  []string `json:"answers,omitempty"`
}

// envelope is the backend's response wrapper: exactly one of the fields is
// populated. The response value is either plain text (agent1/agent2) or a
// JSON object (agent3), hence the RawMessage.
type envelope struct {
	Response json.RawMessage `json:"response"`
	Message  string          `json:"message,omitempty"`
	Error    string          `json:"error,omitempty"`
}
