package agentgw

import "time"

const defaultTimeout = 90 * time.Second

// Backend endpoint paths.
const (
	pathScheduler = "/agent1" // timetable/scheduling agent
	pathTutor     = "/agent2" // doubt-solving conversational agent
	pathQuiz      = "/agent3" // gamified quiz agent (action-based)
	pathHealth    = "/health"
)

// Quiz agent actions.
const (
	ActionDashboard    = "dashboard"
	ActionBadges       = "badges"
	ActionGenerateQuiz = "generate_quiz"
	ActionEvaluate     = "evaluate_session"
)
