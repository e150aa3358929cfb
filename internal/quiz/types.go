package quiz

// Question is one quiz question as produced by the quiz agent. Field names
// mirror the agent's JSON payload.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	FunFact       string   `json:"fun_fact"`
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
	FormatType    string   `json:"format_type"`
}

// SessionResult is the evaluation of one answered quiz session.
type SessionResult struct {
	SessionCorrect int `json:"session_correct"`
	TotalQuestions int `json:"total_questions"`
	SessionXP      int `json:"session_xp"`
	TotalXP        int `json:"total_xp"`
	Level          int `json:"level"`
	CurrentStreak  int `json:"current_streak"`
}

// Dashboard is the user's progress summary.
type Dashboard struct {
	Level         int     `json:"level"`
	Title         string  `json:"title"`
	TotalXP       int     `json:"total_xp"`
	XPToNext      int     `json:"xp_to_next"`
	CurrentStreak int     `json:"current_streak"`
	BestStreak    int     `json:"best_streak"`
	BadgesEarned  int     `json:"badges_earned"`
	Accuracy      float64 `json:"accuracy"`
}

type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}
